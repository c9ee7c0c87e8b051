package aula

import "fmt"

// Phase is one stage of the activity. Images, Votes and Revealed are
// index-aligned and always have the same length.
type Phase struct {
	ID              PhaseID
	BackgroundColor string
	Images          []string
	Votes           []int
	Revealed        []bool
	// Voting tells the shell whether to show vote controls. The state
	// machine never reads it.
	Voting bool
}

func newPhase(s PhaseSeed) *Phase {
	p := &Phase{
		ID:              s.ID,
		BackgroundColor: s.BackgroundColor,
		Images:          append([]string(nil), s.Images...),
		Votes:           make([]int, len(s.Images)),
		Revealed:        make([]bool, len(s.Images)),
		Voting:          s.Voting,
	}
	p.Revealed[0] = true
	return p
}

// Len returns the number of image slots.
func (p *Phase) Len() int { return len(p.Images) }

func (p *Phase) checkIndex(i int) error {
	if i < 0 || i >= len(p.Images) {
		return fmt.Errorf("%w: %d (phase %s has %d images)", ErrInvalidIndex, i, p.ID, len(p.Images))
	}
	return nil
}

// SetImage substitutes the reference in slot i. Votes and reveal state of
// the slot are kept.
func (p *Phase) SetImage(i int, ref string) error {
	if err := p.checkIndex(i); err != nil {
		return err
	}
	p.Images[i] = ref
	return nil
}

// Vote adds delta to the tally of slot i. Tallies may go negative.
func (p *Phase) Vote(i, delta int) error {
	if err := p.checkIndex(i); err != nil {
		return err
	}
	p.Votes[i] += delta
	return nil
}

// IsRevealed reports whether slot i has been unlocked. Out-of-range
// indices are never revealed.
func (p *Phase) IsRevealed(i int) bool {
	return i >= 0 && i < len(p.Revealed) && p.Revealed[i]
}

// reset zeroes votes and locks every slot except the first.
func (p *Phase) reset() {
	for i := range p.Votes {
		p.Votes[i] = 0
	}
	for i := range p.Revealed {
		p.Revealed[i] = i == 0
	}
}

// Clone returns a deep copy sharing no slices with p.
func (p *Phase) Clone() Phase {
	c := *p
	c.Images = append([]string(nil), p.Images...)
	c.Votes = append([]int(nil), p.Votes...)
	c.Revealed = append([]bool(nil), p.Revealed...)
	return c
}
