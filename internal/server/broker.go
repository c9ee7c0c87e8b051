package server

import (
	"encoding/json"
	"sync"
)

// Event is the payload published to live subscribers after a mutation.
type Event struct {
	Type    string `json:"type"`
	PhaseID string `json:"phaseId,omitempty"`
	Index   *int   `json:"index,omitempty"`
	View    string `json:"view,omitempty"`
}

const (
	eventConnected       = "connected"
	eventViewChanged     = "view_changed"
	eventLanguageChanged = "language_changed"
	eventColorChanged    = "color_changed"
	eventImageChanged    = "image_changed"
	eventSlideChanged    = "slide_changed"
	eventVoteChanged     = "vote_changed"
	eventPhaseReset      = "phase_reset"
)

func indexRef(i int) *int { return &i }

// Broker is an in-process pub/sub fanning events out to SSE and
// WebSocket subscribers.
type Broker struct {
	mu   sync.RWMutex
	subs map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded events.
func (b *Broker) Subscribe() chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Broker) Unsubscribe(ch chan []byte) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
}

// Publish sends an event to every subscriber.
func (b *Broker) Publish(event Event) {
	data, _ := json.Marshal(event)
	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
