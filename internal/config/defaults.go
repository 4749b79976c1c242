package config

import (
	_ "embed"
)

//go:embed defaults/slopetap.yaml
var defaultYAML []byte

// Default returns the built-in tuning, matching defaults/slopetap.yaml.
// Used as the last-resort fallback if the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Rhythm: RhythmConfig{
			TargetIntervalMs: 350,
			BaseToleranceMs:  250,
			MinToleranceMs:   80,
			Gain:             0.06,
			DecayPerTick:     0.004,
		},
		Physics: PhysicsConfig{
			Gravity:     0.04,
			JumpImpulse: -0.6,
			MaxSpeed:    1.1,
			MinForward:  0.15,
		},
		Skier: SkierConfig{
			X:          12,
			Width:      3,
			Height:     3,
			DuckHeight: 2,
			HeadOffset: 0.5,
			DuckTicks:  45,
		},
		World: WorldConfig{
			BaseDrift:          0.25,
			DriftFactor:        0.5,
			ObstacleCullMargin: 20,
			GroupCullMargin:    60,
		},
		Obstacles: ObstacleConfig{
			SpawnEveryTicks:    180,
			SpawnOffsetMax:     30,
			BridgeChance:       0.7,
			FallenWidth:        4,
			FallenHeight:       2,
			FallenPoses:        3,
			BridgeWidth:        10,
			BridgeMinClearance: 1.4,
			BridgeMaxClearance: 4.0,
			BridgeCrowdMax:     4,
		},
		Spectators: SpectatorConfig{
			SpawnEveryTicks: 240,
			MinCount:        2,
			MaxCount:        6,
			CampfireChance:  0.35,
			TentChance:      0.25,
			LaneOffsetMin:   3,
			LaneOffsetMax:   6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				SpacingReduction: 60,
			},
		},
	}
}
