package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/playperu/aula/internal/aula"
)

var ErrNotPresenting = errors.New("no phase is being presented")

// Classroom owns the session state. Every call runs under one lock so
// each operation completes before the next is observed.
type Classroom struct {
	mu     sync.Mutex
	state  *aula.State
	show   *aula.Slideshow
	broker *Broker
	logger *slog.Logger
}

// SlideshowState is a detached copy of the presented phase and cursor.
type SlideshowState struct {
	Phase    aula.Phase
	Position int
	Current  int
	AtEnd    bool
	Language aula.Language
}

func NewClassroom(state *aula.State, broker *Broker, logger *slog.Logger) *Classroom {
	c := &Classroom{state: state, broker: broker, logger: logger}
	c.present(state.View())
	return c
}

// present rebuilds the slideshow for v. Caller holds c.mu or owns c.
func (c *Classroom) present(v aula.View) {
	if v == aula.ViewSettings {
		c.show = nil
		return
	}
	show, err := c.state.Slideshow(aula.PhaseID(v))
	if err != nil {
		c.show = nil
		return
	}
	c.show = show
}

func (c *Classroom) position(id aula.PhaseID) int {
	return slices.Index(c.state.PhaseIDs(), id) + 1
}

func (c *Classroom) slideshowState() SlideshowState {
	p := c.show.Phase()
	return SlideshowState{
		Phase:    p,
		Position: c.position(p.ID),
		Current:  c.show.Current(),
		AtEnd:    c.show.AtEnd(),
		Language: c.state.Language(),
	}
}

// Snapshot returns the whole session and, when a phase is on screen, its
// slideshow.
func (c *Classroom) Snapshot() (aula.Snapshot, *SlideshowState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.state.Snapshot()
	if c.show == nil {
		return snap, nil
	}
	ss := c.slideshowState()
	return snap, &ss
}

// Check reports whether the session still holds a presentable phase.
func (c *Classroom) Check(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.state.PhaseIDs()) == 0 {
		return errors.New("session has no phases")
	}
	return nil
}

func (c *Classroom) Language() aula.Language {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Language()
}

// HasSlot reports ErrUnknownPhase or ErrInvalidIndex for a slot that does
// not exist.
func (c *Classroom) HasSlot(id aula.PhaseID, index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.state.Phase(id)
	if err != nil {
		return err
	}
	if index < 0 || index >= p.Len() {
		return fmt.Errorf("%w: %d", aula.ErrInvalidIndex, index)
	}
	return nil
}

// SetView switches the sidebar selection. Moving to a different phase
// starts its slideshow from the first image; re-selecting the current
// phase keeps the cursor.
func (c *Classroom) SetView(v aula.View) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.state.View()
	if err := c.state.SetView(v); err != nil {
		return err
	}
	if v != prev || c.show == nil {
		c.present(v)
	}
	c.logger.Debug("view changed", "from", prev, "to", v)
	c.broker.Publish(Event{Type: eventViewChanged, View: string(v)})
	return nil
}

func (c *Classroom) SetLanguage(lang aula.Language) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.SetLanguage(lang)
	c.broker.Publish(Event{Type: eventLanguageChanged})
}

func (c *Classroom) SetBackgroundColor(id aula.PhaseID, color string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.state.SetBackgroundColor(id, color); err != nil {
		return err
	}
	c.logger.Debug("background color changed", "phase", id, "color", color)
	c.broker.Publish(Event{Type: eventColorChanged, PhaseID: string(id)})
	return nil
}

func (c *Classroom) SetImage(id aula.PhaseID, index int, ref string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.state.SetImage(id, index, ref); err != nil {
		return err
	}
	c.logger.Debug("image replaced", "phase", id, "index", index)
	c.broker.Publish(Event{Type: eventImageChanged, PhaseID: string(id), Index: indexRef(index)})
	return nil
}

// Slideshow returns the presented phase.
func (c *Classroom) Slideshow() (SlideshowState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.show == nil {
		return SlideshowState{}, ErrNotPresenting
	}
	return c.slideshowState(), nil
}

// step runs op against the presented slideshow and publishes eventType
// when op reports a change. The event carries target, or the cursor when
// target is negative.
func (c *Classroom) step(eventType string, target int, op func(s *aula.Slideshow) (bool, error)) (SlideshowState, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.show == nil {
		return SlideshowState{}, false, ErrNotPresenting
	}
	changed, err := op(c.show)
	if err != nil {
		return SlideshowState{}, false, err
	}
	ss := c.slideshowState()
	if changed {
		if target < 0 {
			target = ss.Current
		}
		c.logger.Debug("slideshow updated", "event", eventType, "phase", ss.Phase.ID, "index", target)
		c.broker.Publish(Event{Type: eventType, PhaseID: string(ss.Phase.ID), Index: indexRef(target)})
	}
	return ss, changed, nil
}

// Next advances and reveals. moved is false at the last image.
func (c *Classroom) Next() (SlideshowState, bool, error) {
	return c.step(eventSlideChanged, -1, func(s *aula.Slideshow) (bool, error) {
		return s.Next(), nil
	})
}

// Previous steps back. moved is false at the first image.
func (c *Classroom) Previous() (SlideshowState, bool, error) {
	return c.step(eventSlideChanged, -1, func(s *aula.Slideshow) (bool, error) {
		return s.Previous(), nil
	})
}

// Select jumps to a revealed image. moved is false for a locked one.
func (c *Classroom) Select(index int) (SlideshowState, bool, error) {
	return c.step(eventSlideChanged, -1, func(s *aula.Slideshow) (bool, error) {
		return s.Select(index)
	})
}

func (c *Classroom) Vote(index, delta int) (SlideshowState, error) {
	ss, _, err := c.step(eventVoteChanged, index, func(s *aula.Slideshow) (bool, error) {
		if err := s.Vote(index, delta); err != nil {
			return false, err
		}
		return true, nil
	})
	return ss, err
}

func (c *Classroom) Reset() (SlideshowState, error) {
	ss, _, err := c.step(eventPhaseReset, -1, func(s *aula.Slideshow) (bool, error) {
		s.Reset()
		return true, nil
	})
	return ss, err
}
