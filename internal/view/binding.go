package view

import (
	"errors"
	"fmt"
)

// Element ids the dashboard writes to.
const (
	TotalCompanies     = "total-companies"
	TotalOpportunities = "total-opportunities"
	TotalSignals       = "total-signals"
	SummaryText        = "summary-text"
	LastUpdated        = "last-updated"
	CompaniesBody      = "companies-tbody"
	OpportunitiesBody  = "opportunities-tbody"
)

var ErrTargetMissing = errors.New("view: target missing")

// TextTarget is an element whose text content can be replaced.
type TextTarget interface {
	SetText(text string)
}

// MarkupTarget is an element whose inner markup can be replaced. The
// markup must already be escaped.
type MarkupTarget interface {
	SetMarkup(markup string)
}

// Binding resolves element ids to writable targets.
type Binding interface {
	Text(id string) (TextTarget, error)
	Markup(id string) (MarkupTarget, error)
}

func missing(id string) error {
	return fmt.Errorf("%w: #%s", ErrTargetMissing, id)
}
