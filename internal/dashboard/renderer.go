package dashboard

import (
	"context"
	"strconv"
	"time"

	"roleradar-dashboard/internal/domain"
	"roleradar-dashboard/internal/events"
	"roleradar-dashboard/internal/format"
	"roleradar-dashboard/internal/logging"
	"roleradar-dashboard/internal/view"
)

const (
	DefaultCompanyLimit     = 20
	DefaultOpportunityLimit = 50

	NoSummary = "No summary available."
)

// Source is the backend the renderer reads from.
type Source interface {
	Summary(ctx context.Context) (domain.Summary, error)
	Companies(ctx context.Context, limit int) ([]domain.Company, error)
	Opportunities(ctx context.Context, limit int) ([]domain.Opportunity, error)
}

// Publisher receives one load_failed event per failed loader and one
// refreshed event per finished cycle.
type Publisher interface {
	Publish(evt string)
}

type Options struct {
	CompanyLimit     int
	OpportunityLimit int
	Locale           format.Locale
	Now              func() time.Time
	Reporter         Reporter
	Publisher        Publisher
	Log              *logging.Logger
}

// Renderer loads the three dashboard datasets and writes them into a
// view binding.
type Renderer struct {
	src    Source
	view   view.Binding
	opts   Options
	log    *logging.Logger
	status statusBox
}

func New(src Source, binding view.Binding, opts Options) *Renderer {
	if opts.CompanyLimit <= 0 {
		opts.CompanyLimit = DefaultCompanyLimit
	}
	if opts.OpportunityLimit <= 0 {
		opts.OpportunityLimit = DefaultOpportunityLimit
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Locale.DateLayout == "" {
		opts.Locale = format.DefaultLocale
	}
	log := logging.OrNop(opts.Log)
	if opts.Reporter == nil {
		opts.Reporter = LogReporter(log)
	}
	return &Renderer{src: src, view: binding, opts: opts, log: log}
}

// Cycle summarises one Refresh.
type Cycle struct {
	StartedAt     time.Time    `json:"started_at"`
	FinishedAt    time.Time    `json:"finished_at"`
	Companies     int          `json:"companies"`
	Opportunities int          `json:"opportunities"`
	Errors        []*LoadError `json:"-"`
}

func (c Cycle) OK() bool { return len(c.Errors) == 0 }

// Refresh runs the summary, company and opportunity loaders in order.
// A failing loader is reported and the next one still runs.
func (r *Renderer) Refresh(ctx context.Context) Cycle {
	c := Cycle{StartedAt: r.opts.Now()}
	r.status.begin(c.StartedAt)

	record := func(err *LoadError) {
		if err == nil {
			return
		}
		c.Errors = append(c.Errors, err)
		r.opts.Reporter.Report(ctx, err)
		r.publish(events.TypeLoadError, map[string]any{
			"loader": err.Loader,
			"kind":   err.Kind,
		})
	}

	record(r.LoadSummary(ctx))

	n, err := r.LoadCompanies(ctx)
	c.Companies = n
	record(err)

	n, err = r.LoadOpportunities(ctx)
	c.Opportunities = n
	record(err)

	c.FinishedAt = r.opts.Now()
	r.status.finish(c)

	r.log.Debug("dashboard refreshed",
		"companies", c.Companies, "opportunities", c.Opportunities,
		"errors", len(c.Errors), "dur_ms", c.FinishedAt.Sub(c.StartedAt).Milliseconds())

	r.publish(events.TypeRefreshed, map[string]any{
		"companies":     c.Companies,
		"opportunities": c.Opportunities,
		"ok":            c.OK(),
	})
	return c
}

func (r *Renderer) publish(typ string, data any) {
	if r.opts.Publisher != nil {
		r.opts.Publisher.Publish(events.MakeEvent("", typ, data))
	}
}

// Status returns a copy of the refresh status.
func (r *Renderer) Status() Status {
	return r.status.snapshot()
}

// LoadSummary writes the counters and summary text. last-updated is only
// touched when the backend supplies a timestamp.
func (r *Renderer) LoadSummary(ctx context.Context) *LoadError {
	s, err := r.src.Summary(ctx)
	if err != nil {
		return classify(LoaderSummary, err)
	}

	text := s.Summary
	if text == "" {
		text = NoSummary
	}
	writes := []struct{ id, text string }{
		{view.TotalCompanies, strconv.Itoa(s.TotalCompanies)},
		{view.TotalOpportunities, strconv.Itoa(s.TotalOpportunities)},
		{view.TotalSignals, strconv.Itoa(s.TotalSignals)},
		{view.SummaryText, text},
	}
	if s.LastUpdated != "" {
		writes = append(writes, struct{ id, text string }{view.LastUpdated, r.opts.Locale.DateTime(s.LastUpdated)})
	}

	for _, w := range writes {
		t, err := r.view.Text(w.id)
		if err != nil {
			return classify(LoaderSummary, err)
		}
		t.SetText(w.text)
	}
	return nil
}

// LoadCompanies replaces the companies table body and returns the number
// of records rendered.
func (r *Renderer) LoadCompanies(ctx context.Context) (int, *LoadError) {
	cs, err := r.src.Companies(ctx, r.opts.CompanyLimit)
	if err != nil {
		return 0, classify(LoaderCompanies, err)
	}
	body, err := r.view.Markup(view.CompaniesBody)
	if err != nil {
		return 0, classify(LoaderCompanies, err)
	}
	body.SetMarkup(view.CompanyRows(cs))
	return len(cs), nil
}

// LoadOpportunities replaces the opportunities table body and returns the
// number of records rendered.
func (r *Renderer) LoadOpportunities(ctx context.Context) (int, *LoadError) {
	opps, err := r.src.Opportunities(ctx, r.opts.OpportunityLimit)
	if err != nil {
		return 0, classify(LoaderOpportunities, err)
	}
	body, err := r.view.Markup(view.OpportunitiesBody)
	if err != nil {
		return 0, classify(LoaderOpportunities, err)
	}
	body.SetMarkup(view.OpportunityRows(opps, r.opts.Locale, r.opts.Now()))
	return len(opps), nil
}
