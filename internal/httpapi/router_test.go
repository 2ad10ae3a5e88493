package httpapi

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"roleradar-dashboard/internal/dashboard"
	"roleradar-dashboard/internal/events"
	"roleradar-dashboard/internal/logging"
	"roleradar-dashboard/internal/store"
	"roleradar-dashboard/internal/view"
)

type fakeRefresher struct {
	runs atomic.Int32
	done chan struct{}
}

func (f *fakeRefresher) Refresh(ctx context.Context) dashboard.Cycle {
	f.runs.Add(1)
	if f.done != nil {
		f.done <- struct{}{}
	}
	return dashboard.Cycle{}
}

func (f *fakeRefresher) Status() dashboard.Status {
	return dashboard.Status{Cycles: int64(f.runs.Load()), LastErrors: map[string]string{}}
}

func newTestServer(t *testing.T, backend Backend) (*httptest.Server, *view.Document, *fakeRefresher, *events.Hub) {
	t.Helper()
	page, err := view.NewShell()
	if err != nil {
		t.Fatal(err)
	}
	ref := &fakeRefresher{done: make(chan struct{}, 1)}
	hub := events.NewHub()
	srv := httptest.NewServer(NewRouter(Deps{
		Hub:       hub,
		Page:      page,
		Refresher: ref,
		Backend:   backend,
	}))
	t.Cleanup(srv.Close)
	return srv, page, ref, hub
}

func decodeError(t *testing.T, res *http.Response) APIError {
	t.Helper()
	var e APIError
	if err := json.NewDecoder(res.Body).Decode(&e); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return e
}

func TestIndexServesDocument(t *testing.T) {
	srv, page, _, _ := newTestServer(t, nil)

	tgt, _ := page.Text(view.TotalCompanies)
	tgt.SetText("42")

	res, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if !strings.HasPrefix(res.Header.Get("Content-Type"), "text/html") {
		t.Fatalf("content type = %q", res.Header.Get("Content-Type"))
	}
	if res.Header.Get("X-Request-ID") == "" {
		t.Fatal("missing request id header")
	}
	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Find("#total-companies").Text(); got != "42" {
		t.Fatalf("total-companies = %q", got)
	}
}

func TestFragment(t *testing.T) {
	srv, page, _, _ := newTestServer(t, nil)
	body, _ := page.Markup(view.CompaniesBody)
	body.SetMarkup(`<tr><td>Acme</td></tr>`)

	res, err := http.Get(srv.URL + "/fragments/companies-tbody")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := io.ReadAll(res.Body)
	res.Body.Close()
	if !strings.Contains(string(b), "<td>Acme</td>") {
		t.Fatalf("fragment = %q", b)
	}

	res, err = http.Get(srv.URL + "/fragments/nope")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if e := decodeError(t, res); e.Error.Code != CodeUnknownTarget || e.Error.RequestID == "" {
		t.Fatalf("error = %+v", e.Error)
	}
}

func TestRefreshRunAndStatus(t *testing.T) {
	srv, _, ref, _ := newTestServer(t, nil)

	res, err := http.Post(srv.URL+"/refresh/run", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusAccepted {
		t.Fatalf("status = %d", res.StatusCode)
	}
	select {
	case <-ref.done:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh not triggered")
	}

	res, err = http.Get(srv.URL + "/refresh/status")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	var st dashboard.Status
	if err := json.NewDecoder(res.Body).Decode(&st); err != nil {
		t.Fatal(err)
	}
	if st.Cycles != 1 {
		t.Fatalf("cycles = %d", st.Cycles)
	}

	res2, err := http.Get(srv.URL + "/refresh/run")
	if err != nil {
		t.Fatal(err)
	}
	res2.Body.Close()
	if res2.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("GET /refresh/run = %d", res2.StatusCode)
	}
}

func TestEventsStream(t *testing.T) {
	srv, _, _, hub := newTestServer(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	rd := bufio.NewReader(res.Body)
	readData := func() string {
		for {
			line, err := rd.ReadString('\n')
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if strings.HasPrefix(line, "data: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "data: "))
			}
		}
	}

	var ping events.Event
	if err := json.Unmarshal([]byte(readData()), &ping); err != nil || ping.Type != events.TypePing {
		t.Fatalf("first event = %+v, %v", ping, err)
	}

	hub.Publish(events.MakeEvent("", events.TypeRefreshed, nil))
	var got events.Event
	if err := json.Unmarshal([]byte(readData()), &got); err != nil || got.Type != events.TypeRefreshed {
		t.Fatalf("event = %+v, %v", got, err)
	}
}

func TestBackendRoutesOnlyWhenEnabled(t *testing.T) {
	srv, _, _, _ := newTestServer(t, nil)
	res, err := http.Get(srv.URL + "/api/summary")
	if err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", res.StatusCode)
	}
}

func TestBackendEndpoints(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if _, err := st.SeedDemo(context.Background()); err != nil {
		t.Fatal(err)
	}
	srv, _, _, _ := newTestServer(t, st)

	res, err := http.Get(srv.URL + "/api/companies?limit=2")
	if err != nil {
		t.Fatal(err)
	}
	var cs []map[string]any
	_ = json.NewDecoder(res.Body).Decode(&cs)
	res.Body.Close()
	if len(cs) != 2 {
		t.Fatalf("companies = %d", len(cs))
	}
	for _, k := range []string{"name", "score", "active_opportunities", "signals_count"} {
		if _, ok := cs[0][k]; !ok {
			t.Errorf("company missing %q: %v", k, cs[0])
		}
	}

	res, err = http.Get(srv.URL + "/api/summary")
	if err != nil {
		t.Fatal(err)
	}
	var sum map[string]any
	_ = json.NewDecoder(res.Body).Decode(&sum)
	res.Body.Close()
	if sum["total_companies"].(float64) < 1 || sum["last_updated"] == "" {
		t.Fatalf("summary = %v", sum)
	}

	for _, q := range []string{"abc", "0", "-3", "100000"} {
		res, err := http.Get(srv.URL + "/api/opportunities?limit=" + q)
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != http.StatusBadRequest {
			t.Errorf("limit=%s status = %d", q, res.StatusCode)
		}
		if e := decodeError(t, res); e.Error.Code != CodeInvalidLimit {
			t.Errorf("limit=%s code = %q", q, e.Error.Code)
		}
		res.Body.Close()
	}
}

func TestHealth(t *testing.T) {
	srv, _, _, _ := newTestServer(t, nil)
	res, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	var body map[string]any
	_ = json.NewDecoder(res.Body).Decode(&body)
	if body["ok"] != true {
		t.Fatalf("health = %v", body)
	}
}

func TestErrorBodies(t *testing.T) {
	srv, _, _, _ := newTestServer(t, nil)
	res, err := http.Get(srv.URL + "/nowhere")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if e := decodeError(t, res); e.Error.Code != CodeNotFound || e.Error.RequestID == "" {
		t.Fatalf("error = %+v", e.Error)
	}

	h := RequestID(Recover(logging.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-1")
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("panic status = %d", rec.Code)
	}
	var e APIError
	if err := json.NewDecoder(rec.Body).Decode(&e); err != nil {
		t.Fatal(err)
	}
	if e.Error.Code != CodeInternal || e.Error.RequestID != "req-1" {
		t.Fatalf("panic error = %+v", e.Error)
	}
}
