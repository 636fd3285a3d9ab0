package config

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the clicker.
// Fields may be loaded from a JSON file and overridden by environment
// variables (optionally supplied through a .env file).
type Config struct {
	// WindowTitle is the case-insensitive substring used to locate the
	// target application window.
	WindowTitle string `json:"window_title"`

	// StartKey resumes the clicker from its initial paused state.
	StartKey string `json:"start_key"`
	// ToggleKey flips between paused and running.
	ToggleKey string `json:"toggle_key"`
	// DebounceMS suspends input sampling after a recognized key press so a
	// held key does not re-trigger every poll.
	DebounceMS int `json:"debounce_ms"`

	// CollectDogs enables the face-shape detector.
	CollectDogs bool `json:"collect_dogs"`

	// MinTickIntervalMS caps the polling rate when all detectors are cheap.
	MinTickIntervalMS int `json:"min_tick_interval_ms"`

	// Language selects the message catalog ("en", "ru").
	Language string `json:"language"`

	Debug bool `json:"debug"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		WindowTitle:       "TelegramDesktop",
		StartKey:          "s",
		ToggleKey:         "p",
		DebounceMS:        200,
		CollectDogs:       false,
		MinTickIntervalMS: 10,
		Language:          "en",
		Debug:             false,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.WindowTitle) == "" {
		c.WindowTitle = "TelegramDesktop"
	}
	if strings.TrimSpace(c.StartKey) == "" {
		c.StartKey = "s"
	}
	if strings.TrimSpace(c.ToggleKey) == "" {
		c.ToggleKey = "p"
	}
	if c.DebounceMS <= 0 {
		c.DebounceMS = 200
	}
	if c.MinTickIntervalMS < 0 {
		c.MinTickIntervalMS = 0
	}
	if strings.TrimSpace(c.Language) == "" {
		c.Language = "en"
	}
	return nil
}

// Debounce returns the input debounce interval.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// MinTickInterval returns the minimum duration of one loop tick.
func (c *Config) MinTickInterval() time.Duration {
	return time.Duration(c.MinTickIntervalMS) * time.Millisecond
}

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns DefaultConfig(). On JSON error it returns
// defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// ApplyEnv overrides selected fields from the environment. A .env file next
// to the working directory is loaded first when present; real environment
// variables win over .env entries per godotenv semantics.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()
	if v := os.Getenv("COLLECT_DOGS"); v != "" {
		c.CollectDogs = strings.EqualFold(v, "true") || v == "1"
	}
	if v := os.Getenv("WINDOW_TITLE"); v != "" {
		c.WindowTitle = v
	}
	if v := os.Getenv("LANGUAGE"); v != "" {
		c.Language = v
	}
	_ = c.Validate()
}
