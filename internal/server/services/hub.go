package services

import (
	"sync"

	"github.com/dmitrijs2005/dermasight/internal/models"
)

// Hub fans out message-log changes to subscribers of a case. Each update
// carries the full log, so a slow subscriber only ever needs the latest
// one: its single-slot buffer is overwritten rather than blocking the
// publisher.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan []models.Message]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan []models.Message]struct{})}
}

// Subscribe registers for updates of caseID. The returned cancel function
// unregisters and closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe(caseID string) (<-chan []models.Message, func()) {
	ch := make(chan []models.Message, 1)

	h.mu.Lock()
	if h.subs[caseID] == nil {
		h.subs[caseID] = make(map[chan []models.Message]struct{})
	}
	h.subs[caseID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[caseID], ch)
			if len(h.subs[caseID]) == 0 {
				delete(h.subs, caseID)
			}
			close(ch)
		})
	}
}

// Publish delivers msgs to every subscriber of caseID without blocking.
func (h *Hub) Publish(caseID string, msgs []models.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs[caseID] {
		select {
		case <-ch:
		default:
		}
		ch <- msgs
	}
}

// Subscribers returns the number of live subscriptions for caseID.
func (h *Hub) Subscribers(caseID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[caseID])
}
