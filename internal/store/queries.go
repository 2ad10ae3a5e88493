package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"roleradar-dashboard/internal/domain"
)

const (
	signalWindow  = 90 * 24 * time.Hour
	summaryTopN   = 10
	NoResultsText = "No results to summarize."
)

// SummaryReport is the /api/summary body. The embedded Summary carries
// the fields the dashboard reads; the lists mirror what the API has
// always returned alongside them.
type SummaryReport struct {
	domain.Summary
	TopCompanies        []domain.Company     `json:"top_companies"`
	RecentOpportunities []domain.Opportunity `json:"recent_opportunities"`
}

// TopCompanies returns companies by score, highest first.
func (s *Store) TopCompanies(ctx context.Context, limit int) ([]domain.Company, error) {
	q, args, err := sq.Select(
		"c.name",
		"c.score",
		"COALESCE(c.location, '')",
		"(SELECT COUNT(*) FROM opportunities o WHERE o.company_id = c.id AND o.is_active = 1)",
		"(SELECT COUNT(*) FROM hiring_signals h WHERE h.company_id = c.id)",
	).
		From("companies c").
		OrderBy("c.score DESC", "c.id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("top companies: %w", err)
	}
	defer rows.Close()

	out := []domain.Company{}
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(&c.Name, &c.Score, &c.Location, &c.ActiveOpportunities, &c.SignalsCount); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ActiveOpportunities returns active opportunities, newest first.
func (s *Store) ActiveOpportunities(ctx context.Context, limit int) ([]domain.Opportunity, error) {
	q, args, err := sq.Select(
		"o.title",
		"COALESCE(c.name, 'Unknown')",
		"COALESCE(o.role_type, '')",
		"COALESCE(o.location, '')",
		"o.discovered_date",
		"COALESCE(o.url, '')",
	).
		From("opportunities o").
		LeftJoin("companies c ON c.id = o.company_id").
		Where(sq.Eq{"o.is_active": 1}).
		OrderBy("o.discovered_date DESC", "o.id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("active opportunities: %w", err)
	}
	defer rows.Close()

	out := []domain.Opportunity{}
	for rows.Next() {
		var o domain.Opportunity
		if err := rows.Scan(&o.Title, &o.CompanyName, &o.RoleType, &o.Location, &o.DiscoveredDate, &o.URL); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *Store) count(ctx context.Context, b sq.SelectBuilder) (int, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	err = s.DB.QueryRowContext(ctx, q, args...).Scan(&n)
	return n, err
}

// Summary counts companies, active opportunities and signals detected in
// the last 90 days, and lists the top companies as text.
func (s *Store) Summary(ctx context.Context) (SummaryReport, error) {
	var r SummaryReport
	now := s.now()

	var err error
	if r.TotalCompanies, err = s.count(ctx, sq.Select("COUNT(*)").From("companies")); err != nil {
		return r, fmt.Errorf("count companies: %w", err)
	}
	if r.TotalOpportunities, err = s.count(ctx, sq.Select("COUNT(*)").From("opportunities").Where(sq.Eq{"is_active": 1})); err != nil {
		return r, fmt.Errorf("count opportunities: %w", err)
	}
	cutoff := stamp(now.Add(-signalWindow))
	if r.TotalSignals, err = s.count(ctx, sq.Select("COUNT(*)").From("hiring_signals").Where(sq.Gt{"detected_date": cutoff})); err != nil {
		return r, fmt.Errorf("count signals: %w", err)
	}

	if r.TopCompanies, err = s.TopCompanies(ctx, summaryTopN); err != nil {
		return r, err
	}
	if r.RecentOpportunities, err = s.ActiveOpportunities(ctx, summaryTopN); err != nil {
		return r, err
	}

	r.Summary.Summary = SummarizeCompanies(r.TopCompanies)
	r.LastUpdated = stamp(now)
	return r, nil
}

// SummarizeCompanies renders one line per company.
func SummarizeCompanies(cs []domain.Company) string {
	if len(cs) == 0 {
		return NoResultsText
	}
	lines := make([]string, 0, len(cs))
	for _, c := range cs {
		name := c.Name
		if name == "" {
			name = "Unknown"
		}
		lines = append(lines, fmt.Sprintf("- %s: %d opportunities, score: %.1f", name, c.ActiveOpportunities, c.Score))
	}
	return strings.Join(lines, "\n")
}
