package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/mood/character"
	"github.com/milk9111/mood/common"
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
	"github.com/milk9111/mood/health"
	"github.com/milk9111/mood/mood"
	"github.com/milk9111/mood/timescale"
	"github.com/milk9111/mood/weapon"
)

const frame = 1.0 / 60

func addSolid(t *testing.T, w *ecs.World, min, max common.Vec3, climbable bool) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.SolidComponent.Kind(), &component.Solid{Min: min, Max: max, Climbable: climbable}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Location: common.LerpVec3(min, max, 0.5)}))
	return e
}

func addEnemy(t *testing.T, w *ecs.World, loc common.Vec3, hp int) (ecs.Entity, *component.Enemy) {
	t.Helper()
	e := ecs.CreateEntity(w)
	enemy := &component.Enemy{
		Name:           "grunt",
		Health:         health.New("grunt", hp),
		Speed:          300,
		SightRange:     1000,
		AttackRange:    100,
		AttackDamage:   10,
		AttackInterval: 1,
	}
	require.NoError(t, ecs.Add(w, e, component.EnemyComponent.Kind(), enemy))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Location: loc}))
	require.NoError(t, ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Radius: 40, HalfHeight: 96}))
	enemy.Health.SubscribeDeath(func(any) { enemy.Dead = true })
	return e, enemy
}

type playerRig struct {
	e      ecs.Entity
	p      *component.Player
	clock  *timescale.Clock
	mode   *mood.GameMode
	host   *PlayerHost
	tuning character.Tuning
}

// addPlayer builds a player pawn the way the level loader does, with default
// tuning and a single pistol.
func addPlayer(t *testing.T, w *ecs.World, ps *PhysicsSystem, loc common.Vec3) *playerRig {
	t.Helper()
	e := ecs.CreateEntity(w)
	spawn := component.Transform{Location: loc}
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Location: loc}))
	require.NoError(t, ecs.Add(w, e, component.KinematicsComponent.Kind(), &component.Kinematics{
		MaxWalkSpeed: 600,
		Acceleration: 4000,
		Braking:      4000,
		JumpSpeed:    700,
		Gravity:      1960,
		Grounded:     true,
	}))
	require.NoError(t, ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Radius: 55, HalfHeight: 96}))
	require.NoError(t, ecs.Add(w, e, component.ViewComponent.Kind(), &component.View{FOV: 90, EyeHeight: 64, PitchLimit: 89}))
	require.NoError(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))

	hp := health.New("player", 1000)
	slot := weapon.NewSlot(nil)
	slot.Add(&weapon.Weapon{Name: "pistol", FireInterval: 0.2, Damage: 50, Range: 3000})

	clock := timescale.NewClock()
	mode := mood.NewGameMode(mood.DefaultSettings(), clock, nil)
	host := NewPlayerHost(w, e, ps)
	tuning := character.DefaultTuning()
	c := character.New(tuning, character.Deps{
		Body:     host,
		View:     host,
		Camera:   host.Camera(),
		World:    host,
		Sounds:   host,
		Health:   hp,
		Weapons:  slot,
		GameMode: mode,
		Clock:    clock,
	})
	p := &component.Player{Character: c, Health: hp, Weapons: slot, Spawn: spawn}
	require.NoError(t, ecs.Add(w, e, component.PlayerComponent.Kind(), p))
	c.BeginPlay()

	return &playerRig{e: e, p: p, clock: clock, mode: mode, host: host, tuning: tuning}
}

func soundNames(w *ecs.World) []string {
	var names []string
	ecs.ForEach(w, component.SoundRequestComponent.Kind(), func(_ ecs.Entity, req *component.SoundRequest) {
		names = append(names, req.Name)
	})
	return names
}

func shakeNames(w *ecs.World) []string {
	var names []string
	ecs.ForEach(w, component.CameraShakeRequestComponent.Kind(), func(_ ecs.Entity, req *component.CameraShakeRequest) {
		names = append(names, req.Name)
	})
	return names
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr
}
