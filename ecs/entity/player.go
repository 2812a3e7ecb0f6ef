package entity

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/milk9111/mood/character"
	"github.com/milk9111/mood/common"
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
	"github.com/milk9111/mood/ecs/system"
	"github.com/milk9111/mood/health"
	"github.com/milk9111/mood/mood"
	"github.com/milk9111/mood/prefabs"
	"github.com/milk9111/mood/timescale"
	"github.com/milk9111/mood/weapon"
)

// PlayerDeps are the shared collaborators a player is wired to.
type PlayerDeps struct {
	Physics  *system.PhysicsSystem
	Input    character.InputSurface
	GameMode *mood.GameMode
	Clock    *timescale.Clock
	Tiers    mood.TierTable
	Logger   *zap.Logger
	Rand     *rand.Rand
}

// NewPlayer spawns the player pawn and its character controller. The
// controller is begun and bound to input before it is returned.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, weapons prefabs.WeaponsSpec, spawn prefabs.SpawnSpec, deps PlayerDeps) (ecs.Entity, error) {
	tuning, err := spec.Tuning()
	if err != nil {
		return 0, fmt.Errorf("player: tuning: %w", err)
	}

	e := ecs.CreateEntity(w)
	transform := component.Transform{
		Location: spawn.Location.Vec3(),
		Rotation: common.Rotator{Yaw: spawn.Yaw},
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &transform); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.KinematicsComponent.Kind(), &component.Kinematics{
		MaxWalkSpeed: spec.Movement.WalkingSpeed,
		Acceleration: spec.Movement.Acceleration,
		Braking:      spec.Movement.Braking,
		JumpSpeed:    spec.Movement.JumpSpeed,
		Gravity:      spec.Movement.Gravity,
		Grounded:     true,
	}); err != nil {
		return 0, fmt.Errorf("player: add kinematics: %w", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Radius:     spec.Movement.CapsuleRadius,
		HalfHeight: spec.Movement.CapsuleHalf,
	}); err != nil {
		return 0, fmt.Errorf("player: add collider: %w", err)
	}
	if err := ecs.Add(w, e, component.ViewComponent.Kind(), &component.View{
		Rotation:   common.Rotator{Yaw: spawn.Yaw},
		FOV:        spec.Camera.WalkingFOV,
		EyeHeight:  spec.Camera.EyeHeight,
		PitchLimit: spec.Camera.PitchLimit,
	}); err != nil {
		return 0, fmt.Errorf("player: add view: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	hp := health.New("player", spec.Health)
	slot := weapon.NewSlot(nil)
	for _, ws := range weapons.Weapons {
		slot.Add(ws.Weapon())
	}

	host := system.NewPlayerHost(w, e, deps.Physics)
	cdeps := character.Deps{
		Body:    host,
		View:    host,
		Camera:  host.Camera(),
		World:   host,
		Sounds:  host,
		Health:  hp,
		Weapons: slot,
		Clock:   deps.Clock,
		Tiers:   deps.Tiers,
		Logger:  deps.Logger,
		Rand:    deps.Rand,
	}
	if deps.GameMode != nil {
		cdeps.GameMode = deps.GameMode
	}
	c := character.New(tuning, cdeps)
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Character: c,
		Health:    hp,
		Weapons:   slot,
		Spawn:     transform,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}

	c.BeginPlay()
	c.BindInput(deps.Input)
	return e, nil
}
