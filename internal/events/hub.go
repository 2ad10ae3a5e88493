package events

import "sync"

// Hub fans events out to SSE subscribers. Slow subscribers lose events
// instead of blocking publishers.
type Hub struct {
	mu      sync.Mutex
	clients map[chan string]struct{}
	buffer  int
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan string]struct{}), buffer: 10}
}

// Subscribe returns a receive channel and a cancel func that must be
// called exactly once.
func (h *Hub) Subscribe() (<-chan string, func()) {
	ch := make(chan string, h.buffer)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.clients, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *Hub) Publish(evt string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- evt:
		default:
		}
	}
}

func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
