package aula

import (
	"errors"
	"slices"
	"testing"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	st, err := NewState(DefaultSeed(SeedOptions{PhaseCount: 2, ImagesPerPhase: 3}), "CAST")
	if err != nil {
		t.Fatalf("new state: %v", err)
	}
	return st
}

func TestNewStateInitialPhases(t *testing.T) {
	st := newTestState(t)

	if got := st.PhaseIDs(); !slices.Equal(got, []PhaseID{"fase1", "fase2"}) {
		t.Fatalf("phase ids = %v", got)
	}
	if st.View() != "fase1" {
		t.Errorf("view = %q, want fase1", st.View())
	}

	for _, p := range st.Snapshot().Phases {
		if len(p.Images) != 3 || len(p.Votes) != 3 || len(p.Revealed) != 3 {
			t.Errorf("%s: lengths %d/%d/%d", p.ID, len(p.Images), len(p.Votes), len(p.Revealed))
		}
		if !slices.Equal(p.Revealed, []bool{true, false, false}) {
			t.Errorf("%s: revealed = %v", p.ID, p.Revealed)
		}
		if !slices.Equal(p.Votes, []int{0, 0, 0}) {
			t.Errorf("%s: votes = %v", p.ID, p.Votes)
		}
	}
}

func TestNewStateRejectsBadSeeds(t *testing.T) {
	tests := []struct {
		name string
		seed Seed
	}{
		{"empty", Seed{}},
		{"no images", Seed{Phases: []PhaseSeed{{ID: "a"}}}},
		{"duplicate", Seed{Phases: []PhaseSeed{
			{ID: "a", Images: []string{"x"}},
			{ID: "a", Images: []string{"y"}},
		}}},
		{"reserved", Seed{Phases: []PhaseSeed{{ID: "settings", Images: []string{"x"}}}}},
		{"blank id", Seed{Phases: []PhaseSeed{{Images: []string{"x"}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewState(tt.seed, "ENG"); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestSetBackgroundColor(t *testing.T) {
	st := newTestState(t)

	if err := st.SetBackgroundColor("fase2", "not-even-a-color"); err != nil {
		t.Fatalf("set color: %v", err)
	}
	p, _ := st.Phase("fase2")
	if p.BackgroundColor != "not-even-a-color" {
		t.Errorf("background = %q", p.BackgroundColor)
	}

	if err := st.SetBackgroundColor("fase9", "#fff"); !errors.Is(err, ErrUnknownPhase) {
		t.Errorf("err = %v, want ErrUnknownPhase", err)
	}
}

func TestSetImageKeepsVotesAndReveal(t *testing.T) {
	st := newTestState(t)
	s, err := st.Slideshow("fase1")
	if err != nil {
		t.Fatalf("slideshow: %v", err)
	}
	s.Next()
	s.Next()
	for range 5 {
		s.Vote(2, 1)
	}

	if err := st.SetImage("fase1", 2, "blob:new"); err != nil {
		t.Fatalf("set image: %v", err)
	}
	p, _ := st.Phase("fase1")
	if p.Images[2] != "blob:new" {
		t.Errorf("images[2] = %q", p.Images[2])
	}
	if p.Votes[2] != 5 {
		t.Errorf("votes[2] = %d, want 5", p.Votes[2])
	}
	if !p.Revealed[2] {
		t.Error("revealed[2] reset by SetImage")
	}
}

func TestSetImageErrors(t *testing.T) {
	st := newTestState(t)

	if err := st.SetImage("fase1", 3, "x"); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("index 3: err = %v, want ErrInvalidIndex", err)
	}
	if err := st.SetImage("fase1", -1, "x"); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("index -1: err = %v, want ErrInvalidIndex", err)
	}
	if err := st.SetImage("nope", 0, "x"); !errors.Is(err, ErrUnknownPhase) {
		t.Errorf("unknown phase: err = %v, want ErrUnknownPhase", err)
	}
}

func TestSetView(t *testing.T) {
	st := newTestState(t)

	if err := st.SetView(ViewSettings); err != nil {
		t.Fatalf("settings: %v", err)
	}
	if err := st.SetView("fase2"); err != nil {
		t.Fatalf("fase2: %v", err)
	}
	if err := st.SetView("fase3"); !errors.Is(err, ErrUnknownPhase) {
		t.Errorf("err = %v, want ErrUnknownPhase", err)
	}
	if st.View() != "fase2" {
		t.Errorf("view = %q, want fase2", st.View())
	}
}

func TestLanguageDoesNotTouchPhases(t *testing.T) {
	st := newTestState(t)
	before := st.Snapshot()

	st.SetLanguage("CAT")

	after := st.Snapshot()
	if after.Language != "CAT" {
		t.Errorf("language = %q", after.Language)
	}
	for i := range before.Phases {
		b, a := before.Phases[i], after.Phases[i]
		if b.BackgroundColor != a.BackgroundColor ||
			!slices.Equal(b.Images, a.Images) ||
			!slices.Equal(b.Votes, a.Votes) ||
			!slices.Equal(b.Revealed, a.Revealed) {
			t.Errorf("phase %s changed after language switch", b.ID)
		}
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	st := newTestState(t)
	snap := st.Snapshot()

	snap.Phases[0].Images[0] = "mutated"
	snap.Phases[0].Votes[0] = 99
	snap.Phases[0].Revealed[1] = true

	p, _ := st.Phase("fase1")
	if p.Images[0] == "mutated" || p.Votes[0] == 99 || p.Revealed[1] {
		t.Error("snapshot aliases live phase data")
	}
}

func TestPhaseIsDetached(t *testing.T) {
	st := newTestState(t)

	p, err := st.Phase("fase1")
	if err != nil {
		t.Fatalf("phase: %v", err)
	}
	p.Images = p.Images[:1]
	p.Revealed[0] = false
	p.Votes[0] = 42

	s, err := st.Slideshow("fase1")
	if err != nil {
		t.Fatalf("slideshow: %v", err)
	}
	live := s.Phase()
	live.Revealed[1] = true

	got, _ := st.Phase("fase1")
	if got.Len() != 3 {
		t.Errorf("len = %d, want 3", got.Len())
	}
	if !got.Revealed[0] || got.Revealed[1] {
		t.Errorf("revealed = %v, want [true false false]", got.Revealed)
	}
	if got.Votes[0] != 0 {
		t.Errorf("votes[0] = %d, want 0", got.Votes[0])
	}
}

func TestSlideshowUnknownPhase(t *testing.T) {
	st := newTestState(t)

	if _, err := st.Slideshow("fase9"); !errors.Is(err, ErrUnknownPhase) {
		t.Errorf("err = %v, want ErrUnknownPhase", err)
	}
}
