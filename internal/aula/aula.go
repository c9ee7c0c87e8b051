// Package aula holds the classroom session model: phases, their image
// slideshows, reveal progress and vote tallies. It has zero external
// dependencies and performs no I/O; callers serialize access.
package aula

import "errors"

var (
	ErrInvalidIndex = errors.New("invalid image index")
	ErrUnknownPhase = errors.New("unknown phase")
)

type PhaseID string

// View is the active sidebar selection: a phase or the settings screen.
type View string

const ViewSettings View = "settings"

// Language is a display language code. It only affects rendering.
type Language string
