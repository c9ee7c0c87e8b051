package aula

import "testing"

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed(SeedOptions{VotingPhases: []PhaseID{"fase2"}})

	if len(seed.Phases) != DefaultPhaseCount {
		t.Fatalf("phases = %d, want %d", len(seed.Phases), DefaultPhaseCount)
	}

	p := seed.Phases[0]
	if p.ID != "fase1" {
		t.Errorf("id = %q, want fase1", p.ID)
	}
	if len(p.Images) != DefaultImagesPerPhase {
		t.Errorf("images = %d, want %d", len(p.Images), DefaultImagesPerPhase)
	}
	if p.Images[0] != "https://picsum.photos/seed/f1_1/800/600" {
		t.Errorf("images[0] = %q", p.Images[0])
	}
	if p.Images[15] != "https://picsum.photos/seed/f1_16/800/600" {
		t.Errorf("images[15] = %q", p.Images[15])
	}
	if p.BackgroundColor != "#e0f2fe" {
		t.Errorf("color = %q", p.BackgroundColor)
	}
	if p.Voting {
		t.Error("fase1 should not vote")
	}
	if !seed.Phases[1].Voting {
		t.Error("fase2 should vote")
	}
}

func TestDefaultSeedCyclesColors(t *testing.T) {
	seed := DefaultSeed(SeedOptions{
		PhaseCount:     5,
		ImagesPerPhase: 1,
		Colors:         []string{"red", "blue"},
		URLTemplate:    "img-%d-%d",
	})

	want := []string{"red", "blue", "red", "blue", "red"}
	for i, p := range seed.Phases {
		if p.BackgroundColor != want[i] {
			t.Errorf("phase %d color = %q, want %q", i, p.BackgroundColor, want[i])
		}
	}
	if got := seed.Phases[4].Images[0]; got != "img-5-1" {
		t.Errorf("image = %q, want img-5-1", got)
	}
	if seed.Phases[4].ID != "fase5" {
		t.Errorf("id = %q, want fase5", seed.Phases[4].ID)
	}
}

func TestSeedOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    SeedOptions
		wantErr bool
	}{
		{"defaults", SeedOptions{}, false},
		{"default voting", SeedOptions{VotingPhases: []PhaseID{"fase2"}}, false},
		{"last phase votes", SeedOptions{PhaseCount: 6, VotingPhases: []PhaseID{"fase6"}}, false},
		{"custom template", SeedOptions{URLTemplate: "/img/%d/%02d.png"}, false},
		{"template without verbs", SeedOptions{URLTemplate: "https://cdn.test/img.png"}, true},
		{"template with one verb", SeedOptions{URLTemplate: "https://cdn.test/%d.png"}, true},
		{"template with three verbs", SeedOptions{URLTemplate: "/%d/%d/%d.png"}, true},
		{"template with string verbs", SeedOptions{URLTemplate: "/%s/%s.png"}, true},
		{"voting phase past the end", SeedOptions{VotingPhases: []PhaseID{"fase9"}}, true},
		{"voting phase wrong case", SeedOptions{VotingPhases: []PhaseID{"Fase2"}}, true},
		{"voting phase zero", SeedOptions{VotingPhases: []PhaseID{"fase0"}}, true},
		{"voting settings", SeedOptions{VotingPhases: []PhaseID{"settings"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
