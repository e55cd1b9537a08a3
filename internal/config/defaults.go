package config

import (
	_ "embed"
)

//go:embed defaults/colordash.yaml
var defaultColorDashYAML []byte

// DefaultColorDashConfig returns the default Color Dash configuration.
// These values are the fallback of last resort; the embedded YAML is the
// canonical source and should stay in sync.
func DefaultColorDashConfig() ColorDashConfig {
	return ColorDashConfig{
		Shapes: ShapesConfig{
			Size:      1,
			BaseSpeed: 0.12,
		},
		Spawner: SpawnerConfig{
			BaseIntervalTicks: 90,
			MinIntervalTicks:  30,
			IntervalStepTicks: 6,
		},
		Zones: ZonesConfig{
			Width:        8,
			BottomMargin: 1,
			Rotation:     RotationCyclic,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			SpeedUpEvery:  5,
			SpeedUpAmount: 0.02,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultColorDashYAML
}
