package view

import (
	_ "embed"
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

//go:embed shell.html
var shellHTML string

// Document is an HTML page held in memory whose elements are bound by id.
// Writes are serialised; readers see either the old or the new content
// of an element, never a partial one.
type Document struct {
	mu  sync.RWMutex
	doc *goquery.Document
}

func NewDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &Document{doc: doc}, nil
}

// NewShell parses the built-in dashboard page.
func NewShell() (*Document, error) {
	return NewDocument(strings.NewReader(shellHTML))
}

func (d *Document) has(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.doc.Find("#" + id).Length() > 0
}

func (d *Document) Text(id string) (TextTarget, error) {
	if !d.has(id) {
		return nil, missing(id)
	}
	return element{d: d, id: id}, nil
}

func (d *Document) Markup(id string) (MarkupTarget, error) {
	if !d.has(id) {
		return nil, missing(id)
	}
	return element{d: d, id: id}, nil
}

// HTML renders the whole page including the doctype.
func (d *Document) HTML() (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.doc.Html()
}

// Inner returns the inner markup of one element.
func (d *Document) Inner(id string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	sel := d.doc.Find("#" + id)
	if sel.Length() == 0 {
		return "", missing(id)
	}
	return sel.Html()
}

type element struct {
	d  *Document
	id string
}

func (e element) SetText(text string) {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	e.d.doc.Find("#" + e.id).SetText(text)
}

func (e element) SetMarkup(markup string) {
	e.d.mu.Lock()
	defer e.d.mu.Unlock()
	e.d.doc.Find("#" + e.id).SetHtml(markup)
}
