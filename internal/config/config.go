// Package config provides YAML-based game configuration loading for the
// sandbox platform.
package config

// WorldConfig defines world dimensions and terrain generation parameters,
// shared by both game variants.
type WorldConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Surface     float64 `yaml:"surface"`      // base surface line, fraction of height
	Amplitude   float64 `yaml:"amplitude"`    // max surface displacement in tiles
	DirtDepth   int     `yaml:"dirt_depth"`   // dirt band below the grass layer
	TreeDensity float64 `yaml:"tree_density"` // trees per column
	NoiseScale  float64 `yaml:"noise_scale"`  // horizontal noise frequency
}

// CraftConfig contains all configuration for the side-view craft game.
type CraftConfig struct {
	World    WorldConfig  `yaml:"world"`
	Physics  CraftPhysics `yaml:"physics"`
	SavePath string       `yaml:"save_path"`
}

// CraftPhysics defines per-tick vertical physics for the side-view game.
type CraftPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// FarmConfig contains all configuration for the top-down farm game.
type FarmConfig struct {
	World    WorldConfig `yaml:"world"`
	Clock    FarmClock   `yaml:"clock"`
	Crops    FarmCrops   `yaml:"crops"`
	Start    FarmStart   `yaml:"start"`
	SavePath string      `yaml:"save_path"`
}

// FarmClock defines the in-game day cycle.
type FarmClock struct {
	StartHour    float64 `yaml:"start_hour"`     // hour of day at world creation
	HoursPerTick float64 `yaml:"hours_per_tick"` // clock advance per simulation tick
	NightStart   float64 `yaml:"night_start"`    // hour after which it is night
	NightEnd     float64 `yaml:"night_end"`      // hour before which it is night
}

// FarmCrops defines crop growth and harvest yields.
type FarmCrops struct {
	GrowDays  int `yaml:"grow_days"`  // days from planting to maturity
	SeedYield int `yaml:"seed_yield"` // seeds returned per harvest
	DirtYield int `yaml:"dirt_yield"` // bonus dirt per harvest
}

// FarmStart defines the starting inventory and action pacing.
type FarmStart struct {
	Seeds          int `yaml:"seeds"`
	Hoes           int `yaml:"hoes"`
	Dirt           int `yaml:"dirt"`
	Stone          int `yaml:"stone"`
	Wood           int `yaml:"wood"`
	ActionCooldown int `yaml:"action_cooldown"` // ticks between context actions
}
