package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"roleradar-dashboard/internal/logging"
)

func NewRouter(d Deps) http.Handler {
	log := logging.OrNop(d.Log)
	rctx := d.RefreshCtx
	if rctx == nil {
		rctx = context.Background()
	}

	r := chi.NewRouter()
	r.Use(RequestID, Recover(log), AccessLog(log), Cors)

	ph := PageHandler{Page: d.Page}
	r.Get("/", ph.Index)
	r.Get("/fragments/{id}", ph.Fragment)

	eh := EventsHandler{Hub: d.Hub}
	r.Get("/events", eh.ServeSSE)

	rh := RefreshHandler{Refresher: d.Refresher, Ctx: rctx}
	r.Get("/refresh/status", rh.Status)
	r.Post("/refresh/run", rh.Run)

	hh := HealthHandler{Hub: d.Hub}
	r.Get("/health", hh.Health)

	if d.Backend != nil {
		bh := BackendHandler{Backend: d.Backend, Log: log}
		r.Route("/api", func(r chi.Router) {
			r.Get("/summary", bh.Summary)
			r.Get("/companies", bh.Companies)
			r.Get("/opportunities", bh.Opportunities)
		})
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, CodeNotFound, "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed")
	})
	return r
}
