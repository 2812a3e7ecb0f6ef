package character

// Offset is a local offset: X along the actor's forward vector, Z along up.
type Offset struct {
	X, Z float64
}

type Tuning struct {
	WalkingSpeed       float64
	SprintingSpeed     float64
	WalkingFOV         float64
	SprintingFOV       float64
	AlphaFOV           float64
	StopSpeed          float64
	CameraSpeed        float64
	SlowMotionCamSpeed float64

	ClimbingTime     float64
	ReachLedge       Offset
	ClimbingLocation Offset
	WallAboveHeight  float64
	WallAboveReach   float64

	ExecutionDistance      float64
	ShortTraceRange        float64
	ExecutionThreshold     float64
	ExecutionTimeDilation  float64
	MoveToExecuteSpeed     float64
	ExecutionNearDistance  float64
	ExecutionTimeout       float64
	ExecutionTimeCap       float64
	ExecutionDamage        int
	ExecutionHealing       int
	CapsuleRadius          float64
	CapsuleHalfHeight      float64
	CapsuleInset           float64
	ObstacleObjectTypes    ObjectType
	SlowMotionHeal         int
	HealthGenerationDelay  float64
	HealthGenerationAmount int

	DeathRollTarget   float64
	DeathRollLimit    float64
	DeathRollRate     float64
	RespawnRollTarget float64
	RespawnRollRate   float64
	DeathFallSpeed    float64

	// HurtSoundChance is out of ten.
	HurtSoundChance int

	Shakes ShakeNames
	Sounds SoundNames
}

type ShakeNames struct {
	IdleHeadBob   string
	WalkHeadBob   string
	SprintHeadBob string
	Land          string
	Execute       string
}

type SoundNames struct {
	ExecutionStart string
	Hurt           string
}

// DefaultTuning mirrors player.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		WalkingSpeed:       600,
		SprintingSpeed:     1000,
		WalkingFOV:         90,
		SprintingFOV:       105,
		AlphaFOV:           0.1,
		StopSpeed:          10,
		CameraSpeed:        1,
		SlowMotionCamSpeed: 2.5,

		ClimbingTime:     0.35,
		ReachLedge:       Offset{X: 70, Z: -40},
		ClimbingLocation: Offset{X: 80, Z: 150},
		WallAboveHeight:  60,
		WallAboveReach:   80,

		ExecutionDistance:      400,
		ShortTraceRange:        120,
		ExecutionThreshold:     0.6,
		ExecutionTimeDilation:  0.1,
		MoveToExecuteSpeed:     10,
		ExecutionNearDistance:  150,
		ExecutionTimeout:       1,
		ExecutionTimeCap:       2,
		ExecutionDamage:        100,
		ExecutionHealing:       25,
		CapsuleRadius:          55,
		CapsuleHalfHeight:      96,
		CapsuleInset:           30,
		ObstacleObjectTypes:    ObjectWorldStatic,
		SlowMotionHeal:         50,
		HealthGenerationDelay:  1,
		HealthGenerationAmount: 5,

		DeathRollTarget:   40,
		DeathRollLimit:    30,
		DeathRollRate:     1.25,
		RespawnRollTarget: -2,
		RespawnRollRate:   2.5,
		DeathFallSpeed:    400,

		HurtSoundChance: 3,

		Shakes: ShakeNames{
			IdleHeadBob:   "idle_bob",
			WalkHeadBob:   "walk_bob",
			SprintHeadBob: "sprint_bob",
			Land:          "land",
			Execute:       "execute",
		},
		Sounds: SoundNames{
			ExecutionStart: "execution_start",
			Hurt:           "player_hurt",
		},
	}
}
