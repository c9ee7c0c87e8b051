package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/playperu/aula/internal/aula"
	"github.com/playperu/aula/internal/i18n"
)

type Config struct {
	HTTPAddr       string     `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel       slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir         string     `env:"SPA_DIR" envDefault:"../web/dist"`
	UploadDir      string     `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxUploadBytes int64      `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`

	PhaseCount       int      `env:"PHASE_COUNT" envDefault:"4"`
	ImagesPerPhase   int      `env:"IMAGES_PER_PHASE" envDefault:"16"`
	ImageURLTemplate string   `env:"IMAGE_URL_TEMPLATE" envDefault:"https://picsum.photos/seed/f%d_%d/800/600"`
	PhaseColors      []string `env:"PHASE_COLORS" envSeparator:"," envDefault:"#e0f2fe,#fce7f3,#dcfce7,#f3e8ff"`
	VotingPhases     []string `env:"VOTING_PHASES" envSeparator:"," envDefault:"fase2"`
	DefaultLanguage  string   `env:"DEFAULT_LANGUAGE" envDefault:"CAST"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.PhaseCount < 1 {
		return errors.New("PHASE_COUNT must be at least 1")
	}
	if c.ImagesPerPhase < 1 {
		return errors.New("IMAGES_PER_PHASE must be at least 1")
	}
	if c.MaxUploadBytes < 1 {
		return errors.New("MAX_UPLOAD_BYTES must be positive")
	}
	if _, ok := i18n.Parse(c.DefaultLanguage); !ok {
		return fmt.Errorf("DEFAULT_LANGUAGE %q is not supported", c.DefaultLanguage)
	}
	if err := c.seedOptions().Validate(); err != nil {
		return fmt.Errorf("invalid seed settings: %w", err)
	}
	return nil
}

// Language returns the validated startup language.
func (c *Config) Language() aula.Language {
	lang, _ := i18n.Parse(c.DefaultLanguage)
	return lang
}

// Seed builds the initial session description.
func (c *Config) Seed() aula.Seed {
	return aula.DefaultSeed(c.seedOptions())
}

func (c *Config) seedOptions() aula.SeedOptions {
	var voting []aula.PhaseID
	for _, id := range c.VotingPhases {
		if id = strings.TrimSpace(id); id != "" {
			voting = append(voting, aula.PhaseID(id))
		}
	}
	var colors []string
	for _, col := range c.PhaseColors {
		if col = strings.TrimSpace(col); col != "" {
			colors = append(colors, col)
		}
	}
	return aula.SeedOptions{
		PhaseCount:     c.PhaseCount,
		ImagesPerPhase: c.ImagesPerPhase,
		URLTemplate:    c.ImageURLTemplate,
		Colors:         colors,
		VotingPhases:   voting,
	}
}
