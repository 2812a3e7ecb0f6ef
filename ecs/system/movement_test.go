package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/mood/common"
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
)

// walker spawns a bare pawn with the player's movement tunables.
func walker(t *testing.T, w *ecs.World, loc common.Vec3) (ecs.Entity, *component.Kinematics) {
	t.Helper()
	e := ecs.CreateEntity(w)
	k := &component.Kinematics{
		MaxWalkSpeed: 600,
		Acceleration: 4000,
		Braking:      4000,
		JumpSpeed:    700,
		Gravity:      1960,
		Grounded:     true,
	}
	require.NoError(t, ecs.Add(w, e, component.KinematicsComponent.Kind(), k))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Location: loc}))
	require.NoError(t, ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Radius: 55, HalfHeight: 96}))
	return e, k
}

func runMovement(w *ecs.World, s *MovementSystem, k *component.Kinematics, input common.Vec3, steps int, dt float64) {
	w.SetDelta(dt, dt)
	for range steps {
		k.Pending = input
		s.Update(w)
	}
}

func TestMovementAcceleratesToMaxSpeed(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(nil)
	s := NewMovementSystem(ps)
	e, k := walker(t, w, common.Vec3{Z: 96})

	runMovement(w, s, k, common.Vec3{X: 1}, 1, 0.1)
	assert.InDelta(t, 400, k.Velocity.X, 1e-9)
	assert.InDelta(t, 40, transformOf(t, w, e).Location.X, 1e-9)

	runMovement(w, s, k, common.Vec3{X: 1}, 5, 0.1)
	assert.InDelta(t, 600, k.Velocity.X, 1e-9)
	assert.Equal(t, common.Vec3{}, k.Pending)
	assert.True(t, k.Grounded)
	assert.Equal(t, 96.0, transformOf(t, w, e).Location.Z)
}

func TestMovementBrakesWithoutInput(t *testing.T) {
	w := ecs.NewWorld()
	s := NewMovementSystem(NewPhysicsSystem(nil))
	_, k := walker(t, w, common.Vec3{Z: 96})
	k.Velocity = common.Vec3{X: 600}

	runMovement(w, s, k, common.Vec3{}, 1, 0.1)
	assert.InDelta(t, 200, k.Velocity.X, 1e-9)

	runMovement(w, s, k, common.Vec3{}, 1, 0.1)
	assert.Zero(t, k.Velocity.X)
}

func TestMovementJumpAndLand(t *testing.T) {
	w := ecs.NewWorld()
	s := NewMovementSystem(NewPhysicsSystem(nil))
	e, k := walker(t, w, common.Vec3{Z: 96})
	k.JumpRequested = true

	runMovement(w, s, k, common.Vec3{}, 1, frame)
	require.False(t, k.Grounded)
	assert.Greater(t, transformOf(t, w, e).Location.Z, 96.0)
	assert.False(t, k.JumpRequested)

	steps := 0
	for !k.Grounded && steps < 600 {
		runMovement(w, s, k, common.Vec3{}, 1, frame)
		steps++
	}
	require.True(t, k.Grounded)
	assert.Equal(t, 96.0, transformOf(t, w, e).Location.Z)
	assert.Zero(t, k.Velocity.Z)
	// 2*700/1960 seconds of flight
	assert.InDelta(t, 0.714/frame, float64(steps+1), 3)
}

func TestMovementWallStopsPawn(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(nil)
	s := NewMovementSystem(ps)
	addSolid(t, w, common.Vec3{X: 200, Y: -500}, common.Vec3{X: 240, Y: 500, Z: 400}, false)
	ps.Sync(w)
	e, k := walker(t, w, common.Vec3{Z: 96})

	runMovement(w, s, k, common.Vec3{X: 1, Y: 0.2}, 120, frame)

	loc := transformOf(t, w, e).Location
	assert.Less(t, loc.X, 200-55.0)
	assert.Greater(t, loc.Y, 0.0, "slides along the wall")
}

func TestMovementStepsOntoLowBox(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(nil)
	s := NewMovementSystem(ps)
	addSolid(t, w, common.Vec3{X: 100, Y: -200}, common.Vec3{X: 600, Y: 200, Z: 10}, false)
	ps.Sync(w)
	e, k := walker(t, w, common.Vec3{Z: 96})

	runMovement(w, s, k, common.Vec3{X: 1}, 60, frame)

	loc := transformOf(t, w, e).Location
	assert.Greater(t, loc.X, 200.0)
	assert.Equal(t, 106.0, loc.Z)
	assert.True(t, k.Grounded)
}

func TestMovementSkipsMoveTo(t *testing.T) {
	w := ecs.NewWorld()
	s := NewMovementSystem(NewPhysicsSystem(nil))
	e, k := walker(t, w, common.Vec3{Z: 96})
	require.NoError(t, ecs.Add(w, e, component.MoveToComponent.Kind(), &component.MoveTo{Duration: 1}))

	runMovement(w, s, k, common.Vec3{X: 1}, 10, frame)

	assert.Equal(t, common.Vec3{Z: 96}, transformOf(t, w, e).Location)
	assert.Equal(t, common.Vec3{}, k.Pending)
}

func TestMovementLandingShakesPlayer(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(nil)
	s := NewMovementSystem(ps)
	rig := addPlayer(t, w, ps, common.Vec3{Z: 300})
	k, _ := ecs.Get(w, rig.e, component.KinematicsComponent.Kind())
	k.Grounded = false

	runMovement(w, s, k, common.Vec3{}, 120, frame)

	assert.True(t, k.Grounded)
	assert.Equal(t, []string{"land"}, shakeNames(w))
}

func TestMoveToSystem(t *testing.T) {
	w := ecs.NewWorld()
	s := NewMoveToSystem()
	e, k := walker(t, w, common.Vec3{})
	k.Velocity = common.Vec3{X: 300}
	require.NoError(t, ecs.Add(w, e, component.MoveToComponent.Kind(), &component.MoveTo{
		From:     common.Vec3{},
		To:       common.Vec3{X: 100, Z: 40},
		Duration: 1,
	}))
	w.SetDelta(0.25, 0.25)

	s.Update(w)
	assert.Equal(t, common.Vec3{X: 25, Z: 10}, transformOf(t, w, e).Location)
	assert.Equal(t, common.Vec3{}, k.Velocity)

	for range 3 {
		s.Update(w)
	}
	assert.Equal(t, common.Vec3{X: 100, Z: 40}, transformOf(t, w, e).Location)
	assert.False(t, ecs.Has(w, e, component.MoveToComponent.Kind()))
}

func TestMoveToZeroDurationSnaps(t *testing.T) {
	w := ecs.NewWorld()
	e, _ := walker(t, w, common.Vec3{})
	require.NoError(t, ecs.Add(w, e, component.MoveToComponent.Kind(), &component.MoveTo{To: common.Vec3{X: 5}}))

	NewMoveToSystem().Update(w)

	assert.Equal(t, common.Vec3{X: 5}, transformOf(t, w, e).Location)
	assert.False(t, ecs.Has(w, e, component.MoveToComponent.Kind()))
}
