// Package config loads the card's startup options from a YAML card file,
// the environment (optionally seeded from a .env file) and defaults.
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"greetcard/internal/card"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable the card reads.
const EnvPrefix = "GREETCARD_"

// Config is the full set of startup options. It is immutable once the
// session starts.
type Config struct {
	Name      string `yaml:"name" env:"NAME"`
	Message   string `yaml:"message" env:"MESSAGE"`
	Image     string `yaml:"image" env:"IMAGE"`
	AssetsDir string `yaml:"assets_dir" env:"ASSETS_DIR"` // where rooted image refs are looked up
	Overflow  string `yaml:"overflow" env:"OVERFLOW"`     // hold | intro

	Timing  TimingConfig  `yaml:"timing" envPrefix:"TIMING_"`
	Logging LoggingConfig `yaml:"logging" envPrefix:"LOG_"`

	NoAltScreen bool `yaml:"no_alt_screen" env:"NO_ALT_SCREEN"`
	NoMouse     bool `yaml:"no_mouse" env:"NO_MOUSE"`
}

// TimingConfig configures the countdown screen.
type TimingConfig struct {
	CountdownFrom int           `yaml:"countdown_from" env:"COUNTDOWN_FROM"`
	Tick          time.Duration `yaml:"tick" env:"TICK"`
	FinalDelay    time.Duration `yaml:"final_delay" env:"FINAL_DELAY"`
}

// LoggingConfig configures the file logger. An empty File disables logging.
type LoggingConfig struct {
	File  string `yaml:"file" env:"FILE"`
	Level string `yaml:"level" env:"LEVEL"` // debug, info, warn, error
}

// Default returns the built-in card.
func Default() *Config {
	t := card.DefaultTiming()
	return &Config{
		Name:      card.DefaultName,
		Message:   card.DefaultMessage,
		Image:     card.DefaultImage,
		AssetsDir: ".",
		Overflow:  card.OverflowHold.String(),
		Timing: TimingConfig{
			CountdownFrom: t.CountdownFrom,
			Tick:          t.Tick,
			FinalDelay:    t.FinalDelay,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load builds a Config: defaults, then cardFile (if non-empty), then
// environment variables. A .env file in the working directory, when
// present, is loaded into the environment first without overriding
// variables that are already set.
func Load(cardFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()
	if cardFile != "" {
		if err := cfg.mergeFile(cardFile); err != nil {
			return nil, err
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading card file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing card file %s: %w", path, err)
	}
	return nil
}

// Validate reports the first invalid option.
func (c *Config) Validate() error {
	if _, err := card.ParseOverflowPolicy(c.Overflow); err != nil {
		return err
	}
	if c.Timing.CountdownFrom < 0 {
		return fmt.Errorf("timing.countdown_from must be >= 0, got %d", c.Timing.CountdownFrom)
	}
	if c.Timing.Tick <= 0 {
		return fmt.Errorf("timing.tick must be positive, got %s", c.Timing.Tick)
	}
	if c.Timing.FinalDelay < 0 {
		return fmt.Errorf("timing.final_delay must be >= 0, got %s", c.Timing.FinalDelay)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}

// Policy returns the parsed overflow policy. Call after Validate.
func (c *Config) Policy() card.OverflowPolicy {
	p, _ := card.ParseOverflowPolicy(c.Overflow)
	return p
}

// CardTiming converts the timing options for the countdown screen.
func (c *Config) CardTiming() card.Timing {
	return card.Timing{
		CountdownFrom: c.Timing.CountdownFrom,
		Tick:          c.Timing.Tick,
		FinalDelay:    c.Timing.FinalDelay,
	}
}

// Session builds the immutable session input.
func (c *Config) Session() card.Session {
	return card.NewSession(c.Name, c.Message, c.Image)
}
