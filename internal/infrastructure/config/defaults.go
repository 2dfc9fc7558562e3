package config

// DefaultMatchConfig returns the built-in tuning. match.json is decoded on top
// of this value, so a config file only needs the keys it changes.
func DefaultMatchConfig() *MatchConfig {
	return &MatchConfig{
		Display: DisplayConfig{
			ScreenWidth:   840,
			ScreenHeight:  560,
			Scale:         1,
			Framerate:     60,
			PixelsPerUnit: 8,
			GoalFreeze:    2,
		},
		Field: FieldConfig{
			Width:     100,
			Depth:     64,
			GoalWidth: 14,
		},
		Ball: BallConfig{
			Gravity:         25,
			GroundHeight:    0.4,
			GroundTolerance: 0.05,
			Restitution:     0.7,
			StopBounceSpeed: 1,
			GroundFriction:  0.98,
			WallDamping:     0.8,
			KickoffHeight:   10,
			ContactRadius:   1.0,
			ContactHeight:   2.0,
			PushImpulse:     5,
			PushNudge:       2,
		},
		Movement: MovementConfig{
			GroundOffset:  0.9,
			MinSeparation: 0.5,
			ArriveEpsilon: 0.5,
			Acceleration:  10,
			Friction:      8,
			Roles: Entries[RoleMovementConfig]{
				"gk":  {MaxSpeed: 8},
				"def": {MaxSpeed: 7},
				"mid": {MaxSpeed: 8},
				"att": {MaxSpeed: 9},
			},
		},
		AI: AIConfig{
			PressSpeed:      1.0,
			CoverSpeed:      0.8,
			KeeperSpeed:     1.1,
			PossessionRange: 1.5,
			DribbleLead:     1.0,
			Cover: CoverConfig{
				Blend:           0.35,
				FalloffDistance: 60,
				MinWeight:       0.25,
			},
			Keeper: KeeperConfig{
				SaveBoxWidth:  20,
				SaveBoxDepth:  12,
				KickRange:     2.0,
				GuardDistance: 3,
				GuardMaxDepth: 4,
			},
			Pressure: PressureConfig{
				Radius:     4,
				SwarmCount: 2,
			},
			ShootRange: map[string]float64{
				"gk":  0,
				"def": 14,
				"mid": 18,
				"att": 22,
			},
			Pass: PassConfig{
				MinDistance:    5,
				MaxDistance:    30,
				IdealDistance:  15,
				ProgressWeight: 1.0,
				DistanceWeight: 0.5,
				OpennessWeight: 0.8,
				OpennessCap:    10,
				MarkingRadius:  2,
				BlockedPenalty: 50,
			},
		},
		Kick: KickConfig{
			Range:      2.5,
			SpeedLimit: 10,
			Modes: Entries[KickModeConfig]{
				"shoot": {Power: 25, LiftMin: 2, LiftMax: 6, Noise: 0.08},
				"pass":  {PowerPerUnit: 1.2, MinPower: 8, MaxPower: 24, LiftMin: 0.5, LiftMax: 1.5},
				"clear": {Power: 28, LiftMin: 6, LiftMax: 10, Noise: 0.25},
				"weak":  {Power: 8, LiftMin: 0, LiftMax: 0.5},
			},
		},
	}
}
