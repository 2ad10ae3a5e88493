package httpapi

import (
	"encoding/json"
	"net/http"
)

// Error codes returned in the "code" field of an error body.
const (
	CodeInternal          = "internal_error"
	CodeNotFound          = "not_found"
	CodeMethodNotAllowed  = "method_not_allowed"
	CodeUnknownTarget     = "unknown_target"
	CodeRenderFailed      = "render_failed"
	CodeStreamUnsupported = "stream_unsupported"
	CodeInvalidLimit      = "invalid_limit"
	CodeQueryFailed       = "query_failed"
)

// APIError is the body of every non-2xx JSON response:
//
//	{"error":{"code":"invalid_limit","message":"...","request_id":"..."}}
type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError sends an APIError tagged with the request id from ctx.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}
