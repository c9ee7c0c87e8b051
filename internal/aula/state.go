package aula

import "fmt"

// State is the whole session: phases keyed by id in seed order, plus the
// view and language selectors. Phase keys are fixed at construction.
type State struct {
	order    []PhaseID
	phases   map[PhaseID]*Phase
	view     View
	language Language
}

// Snapshot is a read-only copy of State for rendering.
type Snapshot struct {
	Phases   []Phase
	View     View
	Language Language
}

// NewState builds the session from seed. The first phase is the initial
// view.
func NewState(seed Seed, lang Language) (*State, error) {
	if err := seed.validate(); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	s := &State{
		order:    make([]PhaseID, 0, len(seed.Phases)),
		phases:   make(map[PhaseID]*Phase, len(seed.Phases)),
		view:     View(seed.Phases[0].ID),
		language: lang,
	}
	for _, ps := range seed.Phases {
		s.order = append(s.order, ps.ID)
		s.phases[ps.ID] = newPhase(ps)
	}
	return s, nil
}

func (s *State) phase(id PhaseID) (*Phase, error) {
	p, ok := s.phases[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPhase, id)
	}
	return p, nil
}

// Phase returns a detached copy of one phase.
func (s *State) Phase(id PhaseID) (Phase, error) {
	p, err := s.phase(id)
	if err != nil {
		return Phase{}, err
	}
	return p.Clone(), nil
}

// Slideshow starts a slideshow over the live phase. Reveals and votes made
// through it show up in later snapshots.
func (s *State) Slideshow(id PhaseID) (*Slideshow, error) {
	p, err := s.phase(id)
	if err != nil {
		return nil, err
	}
	return NewSlideshow(p), nil
}

// PhaseIDs returns phase ids in seed order.
func (s *State) PhaseIDs() []PhaseID {
	return append([]PhaseID(nil), s.order...)
}

func (s *State) SetBackgroundColor(id PhaseID, color string) error {
	p, err := s.phase(id)
	if err != nil {
		return err
	}
	p.BackgroundColor = color
	return nil
}

func (s *State) SetImage(id PhaseID, index int, ref string) error {
	p, err := s.phase(id)
	if err != nil {
		return err
	}
	return p.SetImage(index, ref)
}

func (s *State) View() View { return s.view }

// SetView selects a phase or the settings screen.
func (s *State) SetView(v View) error {
	if v != ViewSettings {
		if _, err := s.phase(PhaseID(v)); err != nil {
			return err
		}
	}
	s.view = v
	return nil
}

func (s *State) Language() Language { return s.language }

// SetLanguage stores lang as given; the caller owns validation.
func (s *State) SetLanguage(lang Language) { s.language = lang }

func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Phases:   make([]Phase, 0, len(s.order)),
		View:     s.view,
		Language: s.language,
	}
	for _, id := range s.order {
		snap.Phases = append(snap.Phases, s.phases[id].Clone())
	}
	return snap
}
