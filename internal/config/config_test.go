package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg ColorDashConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("Embedded default YAML does not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Embedded default YAML is invalid: %v", err)
	}
	if cfg != DefaultColorDashConfig() {
		t.Errorf("Embedded default drifted from hardcoded default:\n%+v\nvs\n%+v", cfg, DefaultColorDashConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yml := `
shapes:
  size: 2
  base_speed: 0.3
spawner:
  base_interval_ticks: 40
  min_interval_ticks: 10
  interval_step_ticks: 4
zones:
  width: 6
  bottom_margin: 2
  rotation: clamped
gameplay:
  lives: 7
  speed_up_every: 3
  speed_up_amount: 0.05
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Shapes.Size != 2 || cfg.Shapes.BaseSpeed != 0.3 {
		t.Errorf("Shapes not loaded: %+v", cfg.Shapes)
	}
	if cfg.Zones.Rotation != RotationClamped {
		t.Errorf("Expected clamped rotation, got %q", cfg.Zones.Rotation)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Expected 7 lives, got %d", cfg.Gameplay.Lives)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("An explicit path that does not exist must be an error, not a fallback")
	}
}

func TestLoadInvalidCustomConfigFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	// Parses fine, but the values are unusable
	yml := `
shapes:
  size: 0
  base_speed: 0.1
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected validation error for shapes.size 0")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ColorDashConfig)
		wantErr bool
	}{
		{"defaults", func(c *ColorDashConfig) {}, false},
		{"zero size", func(c *ColorDashConfig) { c.Shapes.Size = 0 }, true},
		{"negative speed", func(c *ColorDashConfig) { c.Shapes.BaseSpeed = -0.1 }, true},
		{"zero base interval", func(c *ColorDashConfig) { c.Spawner.BaseIntervalTicks = 0 }, true},
		{"min above base", func(c *ColorDashConfig) {
			c.Spawner.MinIntervalTicks = 100
			c.Spawner.BaseIntervalTicks = 50
		}, true},
		{"negative interval step", func(c *ColorDashConfig) { c.Spawner.IntervalStepTicks = -1 }, true},
		{"zero zone width", func(c *ColorDashConfig) { c.Zones.Width = 0 }, true},
		{"negative bottom margin", func(c *ColorDashConfig) { c.Zones.BottomMargin = -1 }, true},
		{"bogus rotation", func(c *ColorDashConfig) { c.Zones.Rotation = "spiral" }, true},
		{"empty rotation ok", func(c *ColorDashConfig) { c.Zones.Rotation = "" }, false},
		{"zero lives", func(c *ColorDashConfig) { c.Gameplay.Lives = 0 }, true},
		{"no speed-up ok", func(c *ColorDashConfig) {
			c.Gameplay.SpeedUpEvery = 0
			c.Gameplay.SpeedUpAmount = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultColorDashConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultColorDashConfig()

	easy := base
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Gameplay.Lives <= base.Gameplay.Lives {
		t.Error("Easy should grant extra lives")
	}
	if easy.Shapes.BaseSpeed >= base.Shapes.BaseSpeed {
		t.Error("Easy should slow shapes down")
	}
	if easy.Spawner.BaseIntervalTicks <= base.Spawner.BaseIntervalTicks {
		t.Error("Easy should spawn less often")
	}

	hard := base
	ApplyPreset(&hard, DifficultyHard)
	if hard.Gameplay.Lives >= base.Gameplay.Lives {
		t.Error("Hard should cut lives")
	}
	if hard.Shapes.BaseSpeed <= base.Shapes.BaseSpeed {
		t.Error("Hard should speed shapes up")
	}
	if hard.Spawner.BaseIntervalTicks < hard.Spawner.MinIntervalTicks {
		t.Errorf("Hard interval fell below the floor: %d < %d",
			hard.Spawner.BaseIntervalTicks, hard.Spawner.MinIntervalTicks)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("Hard preset should stay valid: %v", err)
	}

	normal := base
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("Normal preset should leave defaults untouched")
	}

	unknown := base
	ApplyPreset(&unknown, "nightmare")
	if unknown != base {
		t.Error("Unknown preset should leave the config untouched")
	}
}
