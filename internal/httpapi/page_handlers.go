package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"roleradar-dashboard/internal/view"
)

type PageHandler struct {
	Page *view.Document
}

func (h PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	html, err := h.Page.HTML()
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, CodeRenderFailed, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = io.WriteString(w, html)
}

// Fragment returns the current inner markup of one bound element.
func (h PageHandler) Fragment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	inner, err := h.Page.Inner(id)
	if errors.Is(err, view.ErrTargetMissing) {
		WriteError(w, r, http.StatusNotFound, CodeUnknownTarget, err.Error())
		return
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, CodeRenderFailed, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = io.WriteString(w, inner)
}
