package config

import (
	"log/slog"
	"testing"

	"github.com/playperu/aula/internal/i18n"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("addr = %q", cfg.HTTPAddr)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("log level = %v", cfg.LogLevel)
	}
	if cfg.Language() != i18n.Castilian {
		t.Errorf("language = %q", cfg.Language())
	}

	seed := cfg.Seed()
	if len(seed.Phases) != 4 {
		t.Fatalf("phases = %d, want 4", len(seed.Phases))
	}
	if len(seed.Phases[3].Images) != 16 {
		t.Errorf("images = %d, want 16", len(seed.Phases[3].Images))
	}
	if seed.Phases[3].BackgroundColor != "#f3e8ff" {
		t.Errorf("color = %q", seed.Phases[3].BackgroundColor)
	}
	if !seed.Phases[1].Voting || seed.Phases[0].Voting {
		t.Error("only fase2 should have voting by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PHASE_COUNT", "2")
	t.Setenv("IMAGES_PER_PHASE", "3")
	t.Setenv("PHASE_COLORS", "red, blue")
	t.Setenv("VOTING_PHASES", "fase1,fase2")
	t.Setenv("DEFAULT_LANGUAGE", "en")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("log level = %v", cfg.LogLevel)
	}
	if cfg.Language() != i18n.English {
		t.Errorf("language = %q", cfg.Language())
	}

	seed := cfg.Seed()
	if len(seed.Phases) != 2 || len(seed.Phases[0].Images) != 3 {
		t.Fatalf("seed shape = %d phases", len(seed.Phases))
	}
	if seed.Phases[1].BackgroundColor != "blue" {
		t.Errorf("color = %q, want blue", seed.Phases[1].BackgroundColor)
	}
	for _, p := range seed.Phases {
		if !p.Voting {
			t.Errorf("%s: voting disabled", p.ID)
		}
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"zero phases", "PHASE_COUNT", "0"},
		{"zero images", "IMAGES_PER_PHASE", "0"},
		{"bad number", "PHASE_COUNT", "four"},
		{"bad language", "DEFAULT_LANGUAGE", "ja"},
		{"bad upload limit", "MAX_UPLOAD_BYTES", "-1"},
		{"url template without verbs", "IMAGE_URL_TEMPLATE", "https://cdn.test/img.png"},
		{"url template with one verb", "IMAGE_URL_TEMPLATE", "https://cdn.test/%d.png"},
		{"unknown voting phase", "VOTING_PHASES", "fase9,Fase2"},
		{"voting phase beyond count", "VOTING_PHASES", "fase4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if tt.key == "VOTING_PHASES" {
				t.Setenv("PHASE_COUNT", "3")
			}
			if _, err := Load(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadVotingPhasesTrimmed(t *testing.T) {
	t.Setenv("VOTING_PHASES", " fase1 , fase3 ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	seed := cfg.Seed()
	for i, want := range []bool{true, false, true, false} {
		if seed.Phases[i].Voting != want {
			t.Errorf("%s voting = %v, want %v", seed.Phases[i].ID, seed.Phases[i].Voting, want)
		}
	}
}
