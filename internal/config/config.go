// Package config provides YAML-based game configuration loading, validation
// and difficulty management for Slopetap.
package config

import "fmt"

// Config contains all tuning for the skiing simulation. Distances are in
// terminal cells, times in ticks (60/s) unless a field name says otherwise.
type Config struct {
	Rhythm     RhythmConfig     `yaml:"rhythm"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Skier      SkierConfig      `yaml:"skier"`
	World      WorldConfig      `yaml:"world"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Spectators SpectatorConfig  `yaml:"spectators"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RhythmConfig tunes the pole-push rhythm model. Quality lives in
// [0.1, 1.0]; the tolerance window shrinks from base toward min as quality
// rises, so a fast skier must keep a tighter beat.
type RhythmConfig struct {
	TargetIntervalMs int     `yaml:"target_interval_ms"` // ideal gap between alternating pushes
	BaseToleranceMs  int     `yaml:"base_tolerance_ms"`  // window at quality 0
	MinToleranceMs   int     `yaml:"min_tolerance_ms"`   // window at quality 1
	Gain             float64 `yaml:"gain"`               // quality added per good beat
	DecayPerTick     float64 `yaml:"decay_per_tick"`     // passive loss while stalled
}

// PhysicsConfig tunes jumping and forward motion.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // cells/tick² pulling down
	JumpImpulse float64 `yaml:"jump_impulse"` // initial vertical velocity, negative = up
	MaxSpeed    float64 `yaml:"max_speed"`    // cells/tick at quality 1
	MinForward  float64 `yaml:"min_forward"`  // cursor never advances slower than this
}

// SkierConfig defines the skier's fixed footprint and pose heights.
type SkierConfig struct {
	X          float64 `yaml:"x"`           // fixed horizontal screen position
	Width      float64 `yaml:"width"`       // collision footprint width
	Height     float64 `yaml:"height"`      // standing collision height
	DuckHeight float64 `yaml:"duck_height"` // collision height while ducking
	HeadOffset float64 `yaml:"head_offset"` // head point below the duck-pose top
	DuckTicks  int     `yaml:"duck_ticks"`  // how long a duck lasts
}

// WorldConfig tunes scroll drift and entity culling.
type WorldConfig struct {
	BaseDrift          float64 `yaml:"base_drift"`           // scroll cells/tick at zero speed
	DriftFactor        float64 `yaml:"drift_factor"`         // extra scroll per unit of speed
	ObstacleCullMargin float64 `yaml:"obstacle_cull_margin"` // cells behind the viewport
	GroupCullMargin    float64 `yaml:"group_cull_margin"`    // looser margin for spectators
}

// ObstacleConfig tunes obstacle spawning.
type ObstacleConfig struct {
	SpawnEveryTicks int     `yaml:"spawn_every_ticks"`
	SpawnOffsetMax  float64 `yaml:"spawn_offset_max"` // random cells past the frontier
	BridgeChance    float64 `yaml:"bridge_chance"`    // probability a spawn is a bridge

	FallenWidth  float64 `yaml:"fallen_width"`
	FallenHeight float64 `yaml:"fallen_height"`
	FallenPoses  int     `yaml:"fallen_poses"` // number of cosmetic sprawl poses

	BridgeWidth        float64 `yaml:"bridge_width"`
	BridgeMinClearance float64 `yaml:"bridge_min_clearance"`
	BridgeMaxClearance float64 `yaml:"bridge_max_clearance"`
	BridgeCrowdMax     int     `yaml:"bridge_crowd_max"` // decorative spectators on the deck
}

// SpectatorConfig tunes the decorative crowds beside the piste.
type SpectatorConfig struct {
	SpawnEveryTicks int     `yaml:"spawn_every_ticks"`
	MinCount        int     `yaml:"min_count"`
	MaxCount        int     `yaml:"max_count"`
	CampfireChance  float64 `yaml:"campfire_chance"`
	TentChance      float64 `yaml:"tent_chance"`
	LaneOffsetMin   float64 `yaml:"lane_offset_min"` // rows away from the travel lane
	LaneOffsetMax   float64 `yaml:"lane_offset_max"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // added to max speed at full difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // ticks cut from the obstacle interval
}

// Validate rejects malformed configuration before a session is built.
// Per-tick behavior is undefined on bad tuning, so this is a construction-time
// contract, not a runtime check.
func (c Config) Validate() error {
	if c.Rhythm.TargetIntervalMs <= 0 {
		return fmt.Errorf("config: rhythm.target_interval_ms must be positive, got %d", c.Rhythm.TargetIntervalMs)
	}
	if c.Rhythm.MinToleranceMs <= 0 || c.Rhythm.BaseToleranceMs <= c.Rhythm.MinToleranceMs {
		return fmt.Errorf("config: rhythm tolerances must satisfy 0 < min < base, got min=%d base=%d",
			c.Rhythm.MinToleranceMs, c.Rhythm.BaseToleranceMs)
	}
	if c.Rhythm.Gain <= 0 {
		return fmt.Errorf("config: rhythm.gain must be positive, got %g", c.Rhythm.Gain)
	}
	if c.Rhythm.DecayPerTick < 0 {
		return fmt.Errorf("config: rhythm.decay_per_tick must not be negative, got %g", c.Rhythm.DecayPerTick)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: physics.gravity must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		return fmt.Errorf("config: physics.jump_impulse must be negative (up), got %g", c.Physics.JumpImpulse)
	}
	if c.Physics.MaxSpeed <= 0 || c.Physics.MinForward <= 0 {
		return fmt.Errorf("config: physics speeds must be positive, got max=%g min_forward=%g",
			c.Physics.MaxSpeed, c.Physics.MinForward)
	}
	if c.Skier.Width <= 0 || c.Skier.Height <= 0 {
		return fmt.Errorf("config: skier footprint must be positive, got %gx%g", c.Skier.Width, c.Skier.Height)
	}
	if c.Skier.DuckHeight <= 0 || c.Skier.DuckHeight >= c.Skier.Height {
		return fmt.Errorf("config: skier.duck_height must be in (0, height), got %g", c.Skier.DuckHeight)
	}
	if c.Skier.DuckTicks <= 0 {
		return fmt.Errorf("config: skier.duck_ticks must be positive, got %d", c.Skier.DuckTicks)
	}
	if c.Obstacles.SpawnEveryTicks <= 0 {
		return fmt.Errorf("config: obstacles.spawn_every_ticks must be positive, got %d", c.Obstacles.SpawnEveryTicks)
	}
	if c.Obstacles.BridgeChance < 0 || c.Obstacles.BridgeChance > 1 {
		return fmt.Errorf("config: obstacles.bridge_chance must be in [0,1], got %g", c.Obstacles.BridgeChance)
	}
	if c.Obstacles.FallenPoses <= 0 {
		return fmt.Errorf("config: obstacles.fallen_poses must be positive, got %d", c.Obstacles.FallenPoses)
	}
	if c.Obstacles.BridgeMinClearance <= 0 || c.Obstacles.BridgeMaxClearance < c.Obstacles.BridgeMinClearance {
		return fmt.Errorf("config: bridge clearance range invalid, got [%g, %g]",
			c.Obstacles.BridgeMinClearance, c.Obstacles.BridgeMaxClearance)
	}
	if c.Spectators.SpawnEveryTicks <= 0 {
		return fmt.Errorf("config: spectators.spawn_every_ticks must be positive, got %d", c.Spectators.SpawnEveryTicks)
	}
	if c.Spectators.MinCount <= 0 || c.Spectators.MaxCount < c.Spectators.MinCount {
		return fmt.Errorf("config: spectator count range invalid, got [%d, %d]",
			c.Spectators.MinCount, c.Spectators.MaxCount)
	}
	if c.World.ObstacleCullMargin <= 0 || c.World.GroupCullMargin < c.World.ObstacleCullMargin {
		return fmt.Errorf("config: cull margins must satisfy 0 < obstacle <= group, got %g and %g",
			c.World.ObstacleCullMargin, c.World.GroupCullMargin)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
