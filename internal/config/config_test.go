package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Load.Bands.Overload != 80 || cfg.Burnout.WindowDays != 14 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadOverlaysFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studypulse.yaml")
	content := []byte(`
load:
  bands:
    overload: 85
burnout:
  min_sessions: 5
patterns:
  confidence_floor: 0.7
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Load.Bands.Overload != 85 {
		t.Errorf("overload = %v, want 85", cfg.Load.Bands.Overload)
	}
	if cfg.Burnout.MinSessions != 5 {
		t.Errorf("min sessions = %v, want 5", cfg.Burnout.MinSessions)
	}
	if cfg.Patterns.ConfidenceFloor != 0.7 {
		t.Errorf("confidence floor = %v, want 0.7", cfg.Patterns.ConfidenceFloor)
	}

	// Untouched sections keep their defaults.
	if cfg.Load.Weights.Latency != 0.30 {
		t.Errorf("latency weight = %v, want default 0.30", cfg.Load.Weights.Latency)
	}
	if cfg.Burnout.Caps.ChronicLoad != 25 {
		t.Errorf("chronic cap = %v, want default 25", cfg.Burnout.Caps.ChronicLoad)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestResolvePrecedence(t *testing.T) {
	t.Setenv("STUDYPULSE_CONFIG", "/from/env.yaml")
	if got := Resolve("/from/flag.yaml"); got != "/from/flag.yaml" {
		t.Errorf("flag should win, got %s", got)
	}
	if got := Resolve(""); got != "/from/env.yaml" {
		t.Errorf("env fallback, got %s", got)
	}
	t.Setenv("STUDYPULSE_CONFIG", "")
	if got := Resolve(""); got != "" {
		t.Errorf("expected empty, got %s", got)
	}
}
