package httpapi

import (
	"net/http"
	"strconv"

	"roleradar-dashboard/internal/logging"
)

const (
	defaultCompanyLimit     = 20
	defaultOpportunityLimit = 50
	maxLimit                = 1000
)

// BackendHandler serves the three data endpoints the dashboard reads.
type BackendHandler struct {
	Backend Backend
	Log     *logging.Logger
}

func (h BackendHandler) Summary(w http.ResponseWriter, r *http.Request) {
	rep, err := h.Backend.Summary(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, rep)
}

func (h BackendHandler) Companies(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r, defaultCompanyLimit)
	if !ok {
		return
	}
	cs, err := h.Backend.TopCompanies(r.Context(), limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, cs)
}

func (h BackendHandler) Opportunities(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r, defaultOpportunityLimit)
	if !ok {
		return
	}
	opps, err := h.Backend.ActiveOpportunities(r.Context(), limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, opps)
}

func (h BackendHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	logging.OrNop(h.Log).Error("backend query failed",
		"request_id", RequestIDFrom(r.Context()), "path", r.URL.Path, "err", err)
	WriteError(w, r, http.StatusInternalServerError, CodeQueryFailed, "query failed")
}

func parseLimit(w http.ResponseWriter, r *http.Request, def int) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxLimit {
		WriteError(w, r, http.StatusBadRequest, CodeInvalidLimit, "limit must be an integer between 1 and "+strconv.Itoa(maxLimit))
		return 0, false
	}
	return n, true
}
