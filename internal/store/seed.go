package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
)

type demoCompany struct {
	co      NewCompany
	roles   []demoRole
	signals []string
}

type demoRole struct {
	title, roleType, location string
	age                       time.Duration
}

var demoData = []demoCompany{
	{
		co: NewCompany{Name: "Northwind Health", Domain: "northwind.example", Industry: "Healthcare", Location: "Boston, MA", Score: 86.4},
		roles: []demoRole{
			{"Senior Security Engineer", "Security", "Remote", 2 * time.Hour},
			{"HIPAA Compliance Manager", "Compliance", "Boston, MA", 50 * time.Hour},
		},
		signals: []string{"funding", "compliance_news"},
	},
	{
		co: NewCompany{Name: "Contoso Payments", Domain: "contoso.example", Industry: "Fintech", Location: "New York, NY", Score: 71.2},
		roles: []demoRole{
			{"GRC Analyst", "GRC", "New York, NY", 30 * time.Hour},
		},
		signals: []string{"expansion"},
	},
	{
		co: NewCompany{Name: "Fabrikam Cloud", Domain: "fabrikam.example", Industry: "SaaS", Score: 48.9},
		roles: []demoRole{
			{"Cloud Security Architect", "Security", "", 9 * 24 * time.Hour},
		},
	},
	{
		co: NewCompany{Name: "Tailspin Logistics", Industry: "Logistics", Location: "Denver, CO", Score: 22},
	},
}

// SeedDemo fills an empty database with a few companies. It reports
// whether anything was written.
func (s *Store) SeedDemo(ctx context.Context) (bool, error) {
	n, err := s.count(ctx, sq.Select("COUNT(*)").From("companies"))
	if err != nil || n > 0 {
		return false, err
	}

	now := s.now()
	for _, d := range demoData {
		id, err := s.AddCompany(ctx, d.co)
		if err != nil {
			return false, err
		}
		for _, r := range d.roles {
			if _, err := s.AddOpportunity(ctx, NewOpportunity{
				CompanyID:  id,
				Title:      r.title,
				RoleType:   r.roleType,
				Location:   r.location,
				URL:        "https://" + d.co.Domain + "/careers",
				Active:     true,
				Discovered: now.Add(-r.age),
			}); err != nil {
				return false, err
			}
		}
		for i, typ := range d.signals {
			if _, err := s.AddSignal(ctx, NewSignal{
				CompanyID:  id,
				Type:       typ,
				Confidence: 0.7,
				Detected:   now.Add(-time.Duration(i+1) * 72 * time.Hour),
			}); err != nil {
				return false, err
			}
		}
	}
	return true, nil
}
