package httpapi

import (
	"context"

	"roleradar-dashboard/internal/dashboard"
	"roleradar-dashboard/internal/domain"
	"roleradar-dashboard/internal/events"
	"roleradar-dashboard/internal/logging"
	"roleradar-dashboard/internal/store"
	"roleradar-dashboard/internal/view"
)

// Refresher is the part of the dashboard renderer the HTTP layer drives.
type Refresher interface {
	Refresh(ctx context.Context) dashboard.Cycle
	Status() dashboard.Status
}

// Backend serves the data endpoints when the binary hosts its own data.
type Backend interface {
	Summary(ctx context.Context) (store.SummaryReport, error)
	TopCompanies(ctx context.Context, limit int) ([]domain.Company, error)
	ActiveOpportunities(ctx context.Context, limit int) ([]domain.Opportunity, error)
}

type Deps struct {
	Log  *logging.Logger
	Hub  *events.Hub
	Page *view.Document

	Refresher Refresher
	// RefreshCtx bounds refreshes started over HTTP; usually the
	// process lifetime context.
	RefreshCtx context.Context

	// Backend is nil unless the embedded store is enabled.
	Backend Backend
}
