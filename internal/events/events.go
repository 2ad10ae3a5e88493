package events

import (
	"encoding/json"
	"time"
)

const (
	TypePing      = "ping"
	TypeRefreshed = "dashboard.refreshed"
	TypeLoadError = "dashboard.load_failed"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// MakeEvent encodes an event envelope. Marshal errors on data drop the
// payload but still yield a valid envelope.
func MakeEvent(reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			raw = b
		}
	}
	b, _ := json.Marshal(Event{
		Type:      typ,
		Version:   1,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	})
	return string(b)
}
