package dashboard

import (
	"sync"
	"time"
)

// Status is the JSON view of recent refresh activity.
type Status struct {
	Running       int               `json:"running"`
	Cycles        int64             `json:"cycles"`
	LastRunAt     string            `json:"last_run_at"`
	LastOkAt      string            `json:"last_ok_at"`
	LastErrors    map[string]string `json:"last_errors"`
	Companies     int               `json:"companies"`
	Opportunities int               `json:"opportunities"`
}

type statusBox struct {
	mu sync.Mutex
	st Status
}

func (b *statusBox) begin(at time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.st.Running++
	b.st.LastRunAt = at.Format(time.RFC3339)
}

func (b *statusBox) finish(c Cycle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.st.Running--
	b.st.Cycles++
	b.st.Companies = c.Companies
	b.st.Opportunities = c.Opportunities
	b.st.LastErrors = make(map[string]string, len(c.Errors))
	for _, e := range c.Errors {
		b.st.LastErrors[e.Loader] = e.Error()
	}
	if c.OK() {
		b.st.LastOkAt = c.FinishedAt.Format(time.RFC3339)
	}
}

func (b *statusBox) snapshot() Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.st
	out.LastErrors = make(map[string]string, len(b.st.LastErrors))
	for k, v := range b.st.LastErrors {
		out.LastErrors[k] = v
	}
	return out
}
