package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

type NewCompany struct {
	Name     string
	Domain   string
	Industry string
	Location string
	Score    float64
}

type NewOpportunity struct {
	CompanyID  int64
	Title      string
	RoleType   string
	URL        string
	Location   string
	Active     bool
	Discovered time.Time
}

type NewSignal struct {
	CompanyID  int64
	Type       string
	Detail     string
	SourceURL  string
	Confidence float64
	Detected   time.Time
}

// nullable maps "" to NULL so COALESCE and the API see "absent".
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (s *Store) insert(ctx context.Context, b sq.InsertBuilder) (int64, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	res, err := s.DB.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) AddCompany(ctx context.Context, c NewCompany) (int64, error) {
	now := stamp(s.now())
	id, err := s.insert(ctx, sq.Insert("companies").
		Columns("name", "domain", "industry", "location", "score", "last_updated", "created_at").
		Values(c.Name, nullable(c.Domain), nullable(c.Industry), nullable(c.Location), c.Score, now, now))
	if err != nil {
		return 0, fmt.Errorf("add company %q: %w", c.Name, err)
	}
	return id, nil
}

func (s *Store) AddOpportunity(ctx context.Context, o NewOpportunity) (int64, error) {
	if o.Discovered.IsZero() {
		o.Discovered = s.now()
	}
	active := 0
	if o.Active {
		active = 1
	}
	id, err := s.insert(ctx, sq.Insert("opportunities").
		Columns("company_id", "title", "role_type", "url", "location", "is_active", "discovered_date").
		Values(o.CompanyID, o.Title, nullable(o.RoleType), nullable(o.URL), nullable(o.Location), active, stamp(o.Discovered)))
	if err != nil {
		return 0, fmt.Errorf("add opportunity %q: %w", o.Title, err)
	}
	return id, nil
}

func (s *Store) AddSignal(ctx context.Context, sig NewSignal) (int64, error) {
	if sig.Detected.IsZero() {
		sig.Detected = s.now()
	}
	id, err := s.insert(ctx, sq.Insert("hiring_signals").
		Columns("company_id", "signal_type", "description", "source_url", "confidence", "detected_date").
		Values(sig.CompanyID, nullable(sig.Type), nullable(sig.Detail), nullable(sig.SourceURL), sig.Confidence, stamp(sig.Detected)))
	if err != nil {
		return 0, fmt.Errorf("add signal: %w", err)
	}
	return id, nil
}
