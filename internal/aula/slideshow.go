package aula

// Slideshow drives navigation over one Phase. The cursor is local to the
// slideshow; reveal progress and votes live on the Phase.
//
// Next past the last image and Previous before the first are rejected by
// returning false without mutating anything. Out-of-range indices return
// ErrInvalidIndex.
type Slideshow struct {
	phase   *Phase
	current int
}

// NewSlideshow starts at image 0. A phase whose first slot is somehow
// locked gets it revealed.
func NewSlideshow(p *Phase) *Slideshow {
	if len(p.Revealed) > 0 && !p.Revealed[0] {
		p.Revealed[0] = true
	}
	return &Slideshow{phase: p}
}

// Phase returns a copy of the phase being shown.
func (s *Slideshow) Phase() Phase { return s.phase.Clone() }

func (s *Slideshow) Current() int { return s.current }

// AtEnd reports whether the cursor sits on the last image.
func (s *Slideshow) AtEnd() bool { return s.current == s.phase.Len()-1 }

// Next advances one image and reveals it.
func (s *Slideshow) Next() bool {
	if s.current >= s.phase.Len()-1 {
		return false
	}
	s.current++
	s.phase.Revealed[s.current] = true
	return true
}

// Previous steps back one image. Reveal state is untouched.
func (s *Slideshow) Previous() bool {
	if s.current <= 0 {
		return false
	}
	s.current--
	return true
}

// Select jumps to image i if it has been revealed. Selecting a locked
// image is ignored.
func (s *Slideshow) Select(i int) (bool, error) {
	if err := s.phase.checkIndex(i); err != nil {
		return false, err
	}
	if !s.phase.Revealed[i] {
		return false, nil
	}
	s.current = i
	return true, nil
}

// Vote adjusts the tally of image i regardless of its reveal state.
func (s *Slideshow) Vote(i, delta int) error {
	return s.phase.Vote(i, delta)
}

// Reset rewinds to image 0, clears votes and relocks all but the first
// image. Images and background color are kept.
func (s *Slideshow) Reset() {
	s.current = 0
	s.phase.reset()
}
