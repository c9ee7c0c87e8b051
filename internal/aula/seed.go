package aula

import (
	"fmt"
	"strings"
)

const (
	DefaultImageURLTemplate = "https://picsum.photos/seed/f%d_%d/800/600"
	DefaultPhaseCount       = 4
	DefaultImagesPerPhase   = 16
)

// DefaultPalette is cycled over phases when no colors are configured.
var DefaultPalette = []string{"#e0f2fe", "#fce7f3", "#dcfce7", "#f3e8ff"}

// Seed is the construction-time description of a session.
type Seed struct {
	Phases []PhaseSeed
}

type PhaseSeed struct {
	ID              PhaseID
	BackgroundColor string
	Images          []string
	Voting          bool
}

// SeedOptions parameterizes DefaultSeed. Zero values fall back to the
// package defaults.
type SeedOptions struct {
	PhaseCount     int
	ImagesPerPhase int
	// URLTemplate receives the 1-based phase and image numbers.
	URLTemplate  string
	Colors       []string
	VotingPhases []PhaseID
}

// PhaseIDFor names the n-th phase (1-based).
func PhaseIDFor(n int) PhaseID {
	return PhaseID(fmt.Sprintf("fase%d", n))
}

// DefaultSeed builds a deterministic placeholder session: phases
// fase1..faseN with numbered image URLs and a cycled palette.
func DefaultSeed(opts SeedOptions) Seed {
	opts = opts.withDefaults()

	voting := make(map[PhaseID]bool, len(opts.VotingPhases))
	for _, id := range opts.VotingPhases {
		voting[id] = true
	}

	seed := Seed{Phases: make([]PhaseSeed, 0, opts.PhaseCount)}
	for n := 1; n <= opts.PhaseCount; n++ {
		id := PhaseIDFor(n)
		images := make([]string, opts.ImagesPerPhase)
		for i := range images {
			images[i] = fmt.Sprintf(opts.URLTemplate, n, i+1)
		}
		seed.Phases = append(seed.Phases, PhaseSeed{
			ID:              id,
			BackgroundColor: opts.Colors[(n-1)%len(opts.Colors)],
			Images:          images,
			Voting:          voting[id],
		})
	}
	return seed
}

// Validate rejects options DefaultSeed would silently turn into a broken
// session: a URL template that does not take two integers, or a voting
// phase outside fase1..faseN.
func (o SeedOptions) Validate() error {
	o = o.withDefaults()

	if ref := fmt.Sprintf(o.URLTemplate, 1, 1); strings.Contains(ref, "%!") {
		return fmt.Errorf("url template %q must format a phase and an image number, got %q", o.URLTemplate, ref)
	}
	known := make(map[PhaseID]bool, o.PhaseCount)
	for n := 1; n <= o.PhaseCount; n++ {
		known[PhaseIDFor(n)] = true
	}
	for _, id := range o.VotingPhases {
		if !known[id] {
			return fmt.Errorf("voting phase %q is not one of fase1..fase%d", id, o.PhaseCount)
		}
	}
	return nil
}

func (o SeedOptions) withDefaults() SeedOptions {
	if o.PhaseCount <= 0 {
		o.PhaseCount = DefaultPhaseCount
	}
	if o.ImagesPerPhase <= 0 {
		o.ImagesPerPhase = DefaultImagesPerPhase
	}
	if o.URLTemplate == "" {
		o.URLTemplate = DefaultImageURLTemplate
	}
	if len(o.Colors) == 0 {
		o.Colors = DefaultPalette
	}
	return o
}

func (s Seed) validate() error {
	if len(s.Phases) == 0 {
		return fmt.Errorf("seed has no phases")
	}
	seen := make(map[PhaseID]bool, len(s.Phases))
	for _, p := range s.Phases {
		switch {
		case p.ID == "":
			return fmt.Errorf("phase id is required")
		case View(p.ID) == ViewSettings:
			return fmt.Errorf("phase id %q is reserved", p.ID)
		case seen[p.ID]:
			return fmt.Errorf("duplicate phase id %q", p.ID)
		case len(p.Images) == 0:
			return fmt.Errorf("phase %q has no images", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}
