package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/fieldplot/internal/ode"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Field != "cbrt" {
		t.Errorf("expected field cbrt, got %s", cfg.Field)
	}
	if cfg.Count != 10 {
		t.Errorf("expected 10 trajectories, got %d", cfg.Count)
	}
	if cfg.Step != 0.001 {
		t.Errorf("expected step 0.001, got %g", cfg.Step)
	}
	if cfg.MaxX == nil || *cfg.MaxX != 150 {
		t.Errorf("expected max_x 150, got %v", cfg.MaxX)
	}
	if cfg.MaxAbsY == nil || *cfg.MaxAbsY != 150 {
		t.Errorf("expected max_abs_y 150, got %v", cfg.MaxAbsY)
	}
	if cfg.Width != 1280 || cfg.Height != 960 {
		t.Errorf("expected 1280x960 canvas, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Output != "output.png" {
		t.Errorf("expected output.png, got %s", cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"zero count", func(c *Config) { c.Count = 0 }, true},
		{"negative step", func(c *Config) { c.Step = -1 }, true},
		{"NaN max_x", func(c *Config) { c.MaxX = ode.Bound(math.NaN()) }, true},
		{"NaN max_abs_y", func(c *Config) { c.MaxAbsY = ode.Bound(math.NaN()) }, true},
		{"negative max_steps", func(c *Config) { c.MaxSteps = -5 }, true},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"zero height", func(c *Config) { c.Height = 0 }, true},
		{"empty output", func(c *Config) { c.Output = "" }, true},
		{"no bounds at all", func(c *Config) { c.MaxX, c.MaxAbsY = nil, nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_DefaultsMaxSteps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSteps = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("zero max_steps should be defaulted, got %v", err)
	}
	if cfg.MaxSteps != ode.DefaultMaxSteps {
		t.Errorf("max_steps = %d, want %d", cfg.MaxSteps, ode.DefaultMaxSteps)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte("field: decay\ncount: 4\nstep: 0.05\nmax_x: 20\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Field != "decay" || cfg.Count != 4 || cfg.Step != 0.05 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.MaxX == nil || *cfg.MaxX != 20 {
		t.Errorf("expected max_x 20, got %v", cfg.MaxX)
	}
	// Unset keys keep defaults.
	if cfg.Width != DefaultWidth {
		t.Errorf("expected default width, got %d", cfg.Width)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("cbrt", "reference")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Step != 0.001 {
		t.Errorf("expected step 0.001, got %g", cfg.Step)
	}
	if cfg.Width != DefaultWidth || cfg.Output != DefaultOutput {
		t.Errorf("preset not filled with canvas defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("cbrt", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "reference") != nil {
		t.Error("expected nil for nonexistent field")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("cbrt"); len(presets) == 0 {
		t.Error("expected presets for cbrt")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent field")
	}
}

func TestEndConditionMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxAbsY = nil

	end := cfg.EndCondition()
	if end.MaxX == nil || *end.MaxX != 150 {
		t.Errorf("max_x not carried over: %v", end.MaxX)
	}
	if end.MaxAbsY != nil {
		t.Error("nil max_abs_y should stay unbounded")
	}
	if end.MaxSteps != cfg.MaxSteps {
		t.Errorf("step cap mismatch: %d vs %d", end.MaxSteps, cfg.MaxSteps)
	}
}

func TestSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := DefaultConfig()
	cfg.Count = 7

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Count != 7 {
		t.Errorf("expected count 7, got %d", loaded.Count)
	}
}
