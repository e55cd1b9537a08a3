// Package config provides YAML-based game configuration loading and
// difficulty presets for Color Dash.
package config

// ColorDashConfig contains all tunables for the Color Dash simulation.
type ColorDashConfig struct {
	Shapes   ShapesConfig   `yaml:"shapes"`
	Spawner  SpawnerConfig  `yaml:"spawner"`
	Zones    ZonesConfig    `yaml:"zones"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// ShapesConfig defines falling-shape parameters.
type ShapesConfig struct {
	Size      int     `yaml:"size"`       // Half-extent in cells
	BaseSpeed float64 `yaml:"base_speed"` // Cells per tick at session start
}

// SpawnerConfig defines the spawn cadence and its acceleration.
type SpawnerConfig struct {
	BaseIntervalTicks int `yaml:"base_interval_ticks"` // Ticks between spawns at session start
	MinIntervalTicks  int `yaml:"min_interval_ticks"`  // Floor for the spawn interval
	IntervalStepTicks int `yaml:"interval_step_ticks"` // Reduction applied on each speed-up
}

// RotationMode selects how zone rotation behaves at the edges.
type RotationMode string

const (
	// RotationCyclic wraps the active slot modulo three. This is the
	// default: rotating left from the first position lands on the last.
	RotationCyclic RotationMode = "cyclic"
	// RotationClamped stops at the outer positions instead of wrapping.
	// A deliberate alternative feel, not a bug workaround.
	RotationClamped RotationMode = "clamped"
)

// ZonesConfig defines the collector-zone row.
type ZonesConfig struct {
	Width        int          `yaml:"width"`         // Width of one zone in cells
	BottomMargin int          `yaml:"bottom_margin"` // Rows between the zone row and the bottom edge
	Rotation     RotationMode `yaml:"rotation"`      // "cyclic" or "clamped"
}

// GameplayConfig defines scoring and difficulty progression.
type GameplayConfig struct {
	Lives         int     `yaml:"lives"`           // Starting lives
	SpeedUpEvery  int     `yaml:"speed_up_every"`  // Score interval between speed-ups
	SpeedUpAmount float64 `yaml:"speed_up_amount"` // Fall-speed increment per speed-up
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the config for a difficulty preset.
// Unknown or empty presets leave the config untouched.
func ApplyPreset(cfg *ColorDashConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Shapes.BaseSpeed *= 0.75
		cfg.Spawner.BaseIntervalTicks += 30
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Shapes.BaseSpeed *= 1.5
		cfg.Spawner.BaseIntervalTicks -= 30
		if cfg.Spawner.BaseIntervalTicks < cfg.Spawner.MinIntervalTicks {
			cfg.Spawner.BaseIntervalTicks = cfg.Spawner.MinIntervalTicks
		}
	case DifficultyNormal:
		// Defaults are the normal preset.
	}
}

// Validate checks the config for values the simulation cannot work with.
func (c ColorDashConfig) Validate() error {
	switch {
	case c.Shapes.Size < 1:
		return errInvalid("shapes.size must be at least 1")
	case c.Shapes.BaseSpeed <= 0:
		return errInvalid("shapes.base_speed must be positive")
	case c.Spawner.BaseIntervalTicks < 1:
		return errInvalid("spawner.base_interval_ticks must be at least 1")
	case c.Spawner.MinIntervalTicks < 1:
		return errInvalid("spawner.min_interval_ticks must be at least 1")
	case c.Spawner.MinIntervalTicks > c.Spawner.BaseIntervalTicks:
		return errInvalid("spawner.min_interval_ticks exceeds base_interval_ticks")
	case c.Spawner.IntervalStepTicks < 0:
		return errInvalid("spawner.interval_step_ticks must not be negative")
	case c.Zones.Width < 1:
		return errInvalid("zones.width must be at least 1")
	case c.Zones.BottomMargin < 0:
		return errInvalid("zones.bottom_margin must not be negative")
	case c.Zones.Rotation != "" && c.Zones.Rotation != RotationCyclic && c.Zones.Rotation != RotationClamped:
		return errInvalid("zones.rotation must be \"cyclic\" or \"clamped\"")
	case c.Gameplay.Lives < 1:
		return errInvalid("gameplay.lives must be at least 1")
	case c.Gameplay.SpeedUpEvery < 0:
		return errInvalid("gameplay.speed_up_every must not be negative")
	case c.Gameplay.SpeedUpAmount < 0:
		return errInvalid("gameplay.speed_up_amount must not be negative")
	}
	return nil
}

type configError string

func (e configError) Error() string { return "config: " + string(e) }

func errInvalid(msg string) error { return configError(msg) }
