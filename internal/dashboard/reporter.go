package dashboard

import (
	"context"

	"roleradar-dashboard/internal/logging"
)

// Reporter decides what happens to a loader failure. Refresh never
// propagates failures itself.
type Reporter interface {
	Report(ctx context.Context, err *LoadError)
}

type ReporterFunc func(ctx context.Context, err *LoadError)

func (f ReporterFunc) Report(ctx context.Context, err *LoadError) { f(ctx, err) }

// LogReporter logs and swallows.
func LogReporter(log *logging.Logger) Reporter {
	log = logging.OrNop(log)
	return ReporterFunc(func(_ context.Context, err *LoadError) {
		log.Warn("dashboard load failed", "loader", err.Loader, "kind", string(err.Kind), "err", err.Err)
	})
}
