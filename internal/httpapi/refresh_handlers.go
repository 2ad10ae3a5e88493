package httpapi

import (
	"context"
	"net/http"
)

type RefreshHandler struct {
	Refresher Refresher
	Ctx       context.Context
}

func (h RefreshHandler) Status(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Refresher.Status())
}

// Run starts a refresh in the background. Scheduled refreshes are not
// excluded, so the two may overlap.
func (h RefreshHandler) Run(w http.ResponseWriter, r *http.Request) {
	go h.Refresher.Refresh(h.Ctx)
	WriteJSON(w, http.StatusAccepted, map[string]any{"ok": true})
}
