package view

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestShellHasAllTargets(t *testing.T) {
	d, err := NewShell()
	if err != nil {
		t.Fatalf("NewShell: %v", err)
	}
	for _, id := range []string{TotalCompanies, TotalOpportunities, TotalSignals, SummaryText, LastUpdated} {
		if _, err := d.Text(id); err != nil {
			t.Errorf("text target %s: %v", id, err)
		}
	}
	for _, id := range []string{CompaniesBody, OpportunitiesBody} {
		if _, err := d.Markup(id); err != nil {
			t.Errorf("markup target %s: %v", id, err)
		}
	}
}

func TestDocumentMissingTarget(t *testing.T) {
	d, err := NewDocument(strings.NewReader(`<html><body><p id="x"></p></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Text("nope"); !errors.Is(err, ErrTargetMissing) {
		t.Fatalf("Text(nope) err = %v", err)
	}
	if _, err := d.Markup("nope"); !errors.Is(err, ErrTargetMissing) {
		t.Fatalf("Markup(nope) err = %v", err)
	}
	if _, err := d.Inner("nope"); !errors.Is(err, ErrTargetMissing) {
		t.Fatalf("Inner(nope) err = %v", err)
	}
}

func TestDocumentWrites(t *testing.T) {
	d, err := NewShell()
	if err != nil {
		t.Fatal(err)
	}

	txt, _ := d.Text(SummaryText)
	txt.SetText("<b>not bold</b>")

	body, _ := d.Markup(CompaniesBody)
	body.SetMarkup(NoCompaniesRow)

	page, err := d.HTML()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(strings.ToLower(page), "<!doctype html>") {
		t.Fatalf("page lacks doctype: %.40s", page)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Find("#summary-text").Text(); got != "<b>not bold</b>" {
		t.Fatalf("summary text = %q", got)
	}
	if doc.Find("#summary-text b").Length() != 0 {
		t.Fatal("text write was interpreted as markup")
	}
	rows := doc.Find("#companies-tbody tr")
	if rows.Length() != 1 {
		t.Fatalf("tbody rows = %d", rows.Length())
	}
	if span, _ := rows.Find("td").Attr("colspan"); span != "5" {
		t.Fatalf("colspan = %q", span)
	}

	inner, err := d.Inner(CompaniesBody)
	if err != nil || !strings.Contains(inner, "No companies found") {
		t.Fatalf("Inner = %q, %v", inner, err)
	}
}

func TestDocumentConcurrentWrites(t *testing.T) {
	d, err := NewShell()
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tt, _ := d.Text(TotalSignals)
			tt.SetText("7")
			_, _ = d.HTML()
		}()
	}
	wg.Wait()
	if got, _ := d.Inner(TotalSignals); got != "7" {
		t.Fatalf("total-signals = %q", got)
	}
}
