package events

import (
	"encoding/json"
	"testing"
)

func TestHubPublishAndCancel(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	if h.Subscribers() != 1 {
		t.Fatalf("subscribers = %d", h.Subscribers())
	}

	h.Publish("hello")
	if got := <-ch; got != "hello" {
		t.Fatalf("got %q", got)
	}

	cancel()
	cancel()
	if h.Subscribers() != 0 {
		t.Fatalf("subscribers after cancel = %d", h.Subscribers())
	}
	if _, ok := <-ch; ok {
		t.Fatal("channel should be closed")
	}
	h.Publish("after")
}

func TestHubDropsWhenFull(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	defer cancel()
	for i := 0; i < 50; i++ {
		h.Publish("x")
	}
	if len(ch) != cap(ch) {
		t.Fatalf("buffered = %d, cap = %d", len(ch), cap(ch))
	}
}

func TestMakeEvent(t *testing.T) {
	var e Event
	if err := json.Unmarshal([]byte(MakeEvent("req-1", TypeRefreshed, map[string]int{"companies": 3})), &e); err != nil {
		t.Fatal(err)
	}
	if e.Type != TypeRefreshed || e.Version != 1 || e.RequestID != "req-1" {
		t.Fatalf("unexpected envelope: %+v", e)
	}
	if string(e.Data) != `{"companies":3}` {
		t.Fatalf("data = %s", e.Data)
	}
}
