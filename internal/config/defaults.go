package config

import (
	_ "embed"
)

//go:embed defaults/craft.yaml
var defaultCraftYAML []byte

//go:embed defaults/farm.yaml
var defaultFarmYAML []byte

// DefaultCraftConfig returns the default side-view craft configuration.
func DefaultCraftConfig() CraftConfig {
	return CraftConfig{
		World: WorldConfig{
			Width:       160,
			Height:      48,
			Surface:     0.5,
			Amplitude:   6,
			DirtDepth:   4,
			TreeDensity: 0.125,
			NoiseScale:  0.05,
		},
		Physics: CraftPhysics{
			Gravity:      0.12,
			JumpImpulse:  -0.85,
			MaxFallSpeed: 1.5,
		},
		SavePath: "world_save.json",
	}
}

// DefaultFarmConfig returns the default top-down farm configuration.
func DefaultFarmConfig() FarmConfig {
	return FarmConfig{
		World: WorldConfig{
			Width:       60,
			Height:      40,
			Surface:     0.4,
			Amplitude:   2,
			DirtDepth:   4,
			TreeDensity: 0.125,
			NoiseScale:  0.08,
		},
		Clock: FarmClock{
			StartHour:    8.0,
			HoursPerTick: 0.01,
			NightStart:   18.0,
			NightEnd:     6.0,
		},
		Crops: FarmCrops{
			GrowDays:  3,
			SeedYield: 2,
			DirtYield: 1,
		},
		Start: FarmStart{
			Seeds:          5,
			Hoes:           1,
			Dirt:           10,
			Stone:          2,
			Wood:           3,
			ActionCooldown: 6,
		},
		SavePath: "farm_save.json",
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "craft":
		return defaultCraftYAML
	case "farm":
		return defaultFarmYAML
	default:
		return nil
	}
}
