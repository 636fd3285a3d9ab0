package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StartKey != "s" || cfg.ToggleKey != "p" || cfg.DebounceMS != 200 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.CollectDogs = true
	cfg.WindowTitle = "Blum"
	cfg.Language = "ru"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.CollectDogs || got.WindowTitle != "Blum" || got.Language != "ru" {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestValidateClampsBadValues(t *testing.T) {
	cfg := &Config{DebounceMS: -5, MinTickIntervalMS: -1}
	_ = cfg.Validate()
	if cfg.DebounceMS != 200 {
		t.Errorf("DebounceMS = %d, want 200", cfg.DebounceMS)
	}
	if cfg.MinTickIntervalMS != 0 {
		t.Errorf("MinTickIntervalMS = %d, want 0", cfg.MinTickIntervalMS)
	}
	if cfg.StartKey == "" || cfg.ToggleKey == "" || cfg.Language == "" {
		t.Errorf("empty fields not defaulted: %+v", cfg)
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Debounce() != 200*time.Millisecond {
		t.Errorf("Debounce() = %v", cfg.Debounce())
	}
	if cfg.MinTickInterval() != 10*time.Millisecond {
		t.Errorf("MinTickInterval() = %v", cfg.MinTickInterval())
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	os.Setenv("COLLECT_DOGS", "true")
	os.Setenv("WINDOW_TITLE", "Blum Bot")
	os.Setenv("LANGUAGE", "ru")
	defer func() {
		os.Unsetenv("COLLECT_DOGS")
		os.Unsetenv("WINDOW_TITLE")
		os.Unsetenv("LANGUAGE")
	}()
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	if !cfg.CollectDogs || cfg.WindowTitle != "Blum Bot" || cfg.Language != "ru" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}
