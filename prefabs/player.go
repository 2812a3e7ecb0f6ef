package prefabs

import (
	"fmt"

	"github.com/milk9111/mood/character"
)

// PlayerSpec is player.yaml.
type PlayerSpec struct {
	Health    int           `yaml:"health"`
	Movement  MovementSpec  `yaml:"movement"`
	Camera    CameraSpec    `yaml:"camera"`
	Climb     ClimbSpec     `yaml:"climb"`
	Execution ExecutionSpec `yaml:"execution"`
	Regen     RegenSpec     `yaml:"regen"`
	Death     DeathSpec     `yaml:"death"`
	Shakes    struct {
		IdleHeadBob   string `yaml:"idle_head_bob"`
		WalkHeadBob   string `yaml:"walk_head_bob"`
		SprintHeadBob string `yaml:"sprint_head_bob"`
		Land          string `yaml:"land"`
		Execute       string `yaml:"execute"`
	} `yaml:"shakes"`
	Sounds struct {
		ExecutionStart string `yaml:"execution_start"`
		Hurt           string `yaml:"hurt"`
		// HurtChance is out of ten.
		HurtChance int `yaml:"hurt_chance"`
	} `yaml:"sounds"`
}

type MovementSpec struct {
	WalkingSpeed   float64 `yaml:"walking_speed"`
	SprintingSpeed float64 `yaml:"sprinting_speed"`
	StopSpeed      float64 `yaml:"stop_speed"`
	Acceleration   float64 `yaml:"acceleration"`
	Braking        float64 `yaml:"braking"`
	JumpSpeed      float64 `yaml:"jump_speed"`
	Gravity        float64 `yaml:"gravity"`
	CapsuleRadius  float64 `yaml:"capsule_radius"`
	CapsuleHalf    float64 `yaml:"capsule_half_height"`
}

type CameraSpec struct {
	WalkingFOV         float64 `yaml:"walking_fov"`
	SprintingFOV       float64 `yaml:"sprinting_fov"`
	AlphaFOV           float64 `yaml:"alpha_fov"`
	Speed              float64 `yaml:"speed"`
	SlowMotionCamSpeed float64 `yaml:"slow_motion_speed"`
	EyeHeight          float64 `yaml:"eye_height"`
	PitchLimit         float64 `yaml:"pitch_limit"`
}

type ClimbSpec struct {
	Time            float64    `yaml:"time"`
	ReachLedge      OffsetSpec `yaml:"reach_ledge"`
	Location        OffsetSpec `yaml:"location"`
	WallAboveHeight float64    `yaml:"wall_above_height"`
	WallAboveReach  float64    `yaml:"wall_above_reach"`
}

type ExecutionSpec struct {
	Distance        float64  `yaml:"distance"`
	ShortTraceRange float64  `yaml:"short_trace_range"`
	Threshold       float64  `yaml:"threshold"`
	TimeDilation    float64  `yaml:"time_dilation"`
	MoveSpeed       float64  `yaml:"move_speed"`
	NearDistance    float64  `yaml:"near_distance"`
	Timeout         float64  `yaml:"timeout"`
	TimeCap         float64  `yaml:"time_cap"`
	Damage          int      `yaml:"damage"`
	Healing         int      `yaml:"healing"`
	CapsuleInset    float64  `yaml:"capsule_inset"`
	ObstacleObjects []string `yaml:"obstacle_objects"`
}

type RegenSpec struct {
	SlowMotionHeal int     `yaml:"slow_motion_heal"`
	Delay          float64 `yaml:"delay"`
	Amount         int     `yaml:"amount"`
}

type DeathSpec struct {
	RollTarget        float64 `yaml:"roll_target"`
	RollLimit         float64 `yaml:"roll_limit"`
	RollRate          float64 `yaml:"roll_rate"`
	RespawnRollTarget float64 `yaml:"respawn_roll_target"`
	RespawnRollRate   float64 `yaml:"respawn_roll_rate"`
	FallSpeed         float64 `yaml:"fall_speed"`
}

// DefaultPlayerSpec matches the embedded player.yaml and character.DefaultTuning.
func DefaultPlayerSpec() PlayerSpec {
	t := character.DefaultTuning()
	var s PlayerSpec
	s.Health = 1000
	s.Movement = MovementSpec{
		WalkingSpeed:   t.WalkingSpeed,
		SprintingSpeed: t.SprintingSpeed,
		StopSpeed:      t.StopSpeed,
		Acceleration:   4000,
		Braking:        4000,
		JumpSpeed:      700,
		Gravity:        1960,
		CapsuleRadius:  t.CapsuleRadius,
		CapsuleHalf:    t.CapsuleHalfHeight,
	}
	s.Camera = CameraSpec{
		WalkingFOV:         t.WalkingFOV,
		SprintingFOV:       t.SprintingFOV,
		AlphaFOV:           t.AlphaFOV,
		Speed:              t.CameraSpeed,
		SlowMotionCamSpeed: t.SlowMotionCamSpeed,
		EyeHeight:          64,
		PitchLimit:         89,
	}
	s.Climb = ClimbSpec{
		Time:            t.ClimbingTime,
		ReachLedge:      OffsetSpec{X: t.ReachLedge.X, Z: t.ReachLedge.Z},
		Location:        OffsetSpec{X: t.ClimbingLocation.X, Z: t.ClimbingLocation.Z},
		WallAboveHeight: t.WallAboveHeight,
		WallAboveReach:  t.WallAboveReach,
	}
	s.Execution = ExecutionSpec{
		Distance:        t.ExecutionDistance,
		ShortTraceRange: t.ShortTraceRange,
		Threshold:       t.ExecutionThreshold,
		TimeDilation:    t.ExecutionTimeDilation,
		MoveSpeed:       t.MoveToExecuteSpeed,
		NearDistance:    t.ExecutionNearDistance,
		Timeout:         t.ExecutionTimeout,
		TimeCap:         t.ExecutionTimeCap,
		Damage:          t.ExecutionDamage,
		Healing:         t.ExecutionHealing,
		CapsuleInset:    t.CapsuleInset,
		ObstacleObjects: []string{"world_static"},
	}
	s.Regen = RegenSpec{
		SlowMotionHeal: t.SlowMotionHeal,
		Delay:          t.HealthGenerationDelay,
		Amount:         t.HealthGenerationAmount,
	}
	s.Death = DeathSpec{
		RollTarget:        t.DeathRollTarget,
		RollLimit:         t.DeathRollLimit,
		RollRate:          t.DeathRollRate,
		RespawnRollTarget: t.RespawnRollTarget,
		RespawnRollRate:   t.RespawnRollRate,
		FallSpeed:         t.DeathFallSpeed,
	}
	s.Shakes.IdleHeadBob = t.Shakes.IdleHeadBob
	s.Shakes.WalkHeadBob = t.Shakes.WalkHeadBob
	s.Shakes.SprintHeadBob = t.Shakes.SprintHeadBob
	s.Shakes.Land = t.Shakes.Land
	s.Shakes.Execute = t.Shakes.Execute
	s.Sounds.ExecutionStart = t.Sounds.ExecutionStart
	s.Sounds.Hurt = t.Sounds.Hurt
	s.Sounds.HurtChance = t.HurtSoundChance
	return s
}

// LoadPlayerSpec reads player.yaml over the defaults.
func LoadPlayerSpec() (PlayerSpec, error) {
	spec := DefaultPlayerSpec()
	if err := LoadSpecInto("player.yaml", &spec); err != nil {
		return PlayerSpec{}, err
	}
	return spec, nil
}

func parseObjectTypes(names []string) (character.ObjectType, error) {
	var out character.ObjectType
	for _, n := range names {
		switch n {
		case "world_static":
			out |= character.ObjectWorldStatic
		case "world_dynamic":
			out |= character.ObjectWorldDynamic
		case "pawn":
			out |= character.ObjectPawn
		default:
			return 0, fmt.Errorf("prefabs: unknown object type %q", n)
		}
	}
	return out, nil
}

// Tuning converts the spec into the character controller's tunables.
func (s PlayerSpec) Tuning() (character.Tuning, error) {
	objects, err := parseObjectTypes(s.Execution.ObstacleObjects)
	if err != nil {
		return character.Tuning{}, err
	}
	return character.Tuning{
		WalkingSpeed:       s.Movement.WalkingSpeed,
		SprintingSpeed:     s.Movement.SprintingSpeed,
		WalkingFOV:         s.Camera.WalkingFOV,
		SprintingFOV:       s.Camera.SprintingFOV,
		AlphaFOV:           s.Camera.AlphaFOV,
		StopSpeed:          s.Movement.StopSpeed,
		CameraSpeed:        s.Camera.Speed,
		SlowMotionCamSpeed: s.Camera.SlowMotionCamSpeed,

		ClimbingTime:     s.Climb.Time,
		ReachLedge:       character.Offset{X: s.Climb.ReachLedge.X, Z: s.Climb.ReachLedge.Z},
		ClimbingLocation: character.Offset{X: s.Climb.Location.X, Z: s.Climb.Location.Z},
		WallAboveHeight:  s.Climb.WallAboveHeight,
		WallAboveReach:   s.Climb.WallAboveReach,

		ExecutionDistance:      s.Execution.Distance,
		ShortTraceRange:        s.Execution.ShortTraceRange,
		ExecutionThreshold:     s.Execution.Threshold,
		ExecutionTimeDilation:  s.Execution.TimeDilation,
		MoveToExecuteSpeed:     s.Execution.MoveSpeed,
		ExecutionNearDistance:  s.Execution.NearDistance,
		ExecutionTimeout:       s.Execution.Timeout,
		ExecutionTimeCap:       s.Execution.TimeCap,
		ExecutionDamage:        s.Execution.Damage,
		ExecutionHealing:       s.Execution.Healing,
		CapsuleRadius:          s.Movement.CapsuleRadius,
		CapsuleHalfHeight:      s.Movement.CapsuleHalf,
		CapsuleInset:           s.Execution.CapsuleInset,
		ObstacleObjectTypes:    objects,
		SlowMotionHeal:         s.Regen.SlowMotionHeal,
		HealthGenerationDelay:  s.Regen.Delay,
		HealthGenerationAmount: s.Regen.Amount,

		DeathRollTarget:   s.Death.RollTarget,
		DeathRollLimit:    s.Death.RollLimit,
		DeathRollRate:     s.Death.RollRate,
		RespawnRollTarget: s.Death.RespawnRollTarget,
		RespawnRollRate:   s.Death.RespawnRollRate,
		DeathFallSpeed:    s.Death.FallSpeed,

		HurtSoundChance: s.Sounds.HurtChance,

		Shakes: character.ShakeNames{
			IdleHeadBob:   s.Shakes.IdleHeadBob,
			WalkHeadBob:   s.Shakes.WalkHeadBob,
			SprintHeadBob: s.Shakes.SprintHeadBob,
			Land:          s.Shakes.Land,
			Execute:       s.Shakes.Execute,
		},
		Sounds: character.SoundNames{
			ExecutionStart: s.Sounds.ExecutionStart,
			Hurt:           s.Sounds.Hurt,
		},
	}, nil
}
