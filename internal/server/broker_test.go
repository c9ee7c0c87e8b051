package server

import (
	"encoding/json"
	"testing"
)

func TestBrokerFanOut(t *testing.T) {
	b := NewBroker()
	a, c := b.Subscribe(), b.Subscribe()

	b.Publish(Event{Type: eventColorChanged, PhaseID: "fase1"})

	for i, ch := range []chan []byte{a, c} {
		select {
		case data := <-ch:
			var ev Event
			if err := json.Unmarshal(data, &ev); err != nil {
				t.Fatalf("sub %d: %v", i, err)
			}
			if ev.Type != eventColorChanged || ev.PhaseID != "fase1" {
				t.Errorf("sub %d: event = %+v", i, ev)
			}
		default:
			t.Errorf("sub %d: no event delivered", i)
		}
	}
}

func TestBrokerUnsubscribe(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	b.Unsubscribe(ch)

	b.Publish(Event{Type: eventPhaseReset})

	select {
	case <-ch:
		t.Error("unsubscribed channel received an event")
	default:
	}
}

func TestBrokerDropsWhenFull(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()

	for range cap(ch) + 5 {
		b.Publish(Event{Type: eventSlideChanged})
	}
	if len(ch) != cap(ch) {
		t.Errorf("buffered = %d, want %d", len(ch), cap(ch))
	}
}
