package system

import (
	"math"

	"github.com/milk9111/mood/common"
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
)

// MovementSystem integrates walking pawns: input acceleration, braking,
// jumping and gravity, then resolves the move against static geometry.
type MovementSystem struct {
	physics *PhysicsSystem
}

func NewMovementSystem(physics *PhysicsSystem) *MovementSystem {
	return &MovementSystem{physics: physics}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.Delta()
	if dt <= 0 {
		return
	}
	ecs.ForEach3(w, component.KinematicsComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(e ecs.Entity, k *component.Kinematics, t *component.Transform, c *component.Collider) {
			if ecs.Has(w, e, component.MoveToComponent.Kind()) {
				k.Pending = common.Vec3{}
				return
			}
			s.step(w, e, k, t, c, dt)
		})
}

func (s *MovementSystem) step(w *ecs.World, e ecs.Entity, k *component.Kinematics, t *component.Transform, c *component.Collider, dt float64) {
	wish := common.Vec3{X: k.Pending.X, Y: k.Pending.Y}
	if l := wish.Length(); l > 1 {
		// mood speed multipliers push input past unit length
		wish = wish.Scale(math.Min(l, 2) / l)
	}
	target := wish.Scale(k.MaxWalkSpeed)
	horiz := common.Vec3{X: k.Velocity.X, Y: k.Velocity.Y}
	rate := k.Acceleration
	if wish.IsZero() {
		rate = k.Braking
	}
	horiz = approach(horiz, target, rate*dt)
	k.Velocity.X, k.Velocity.Y = horiz.X, horiz.Y
	k.Pending = common.Vec3{}

	if k.JumpRequested && k.Grounded {
		k.Velocity.Z = k.JumpSpeed
		k.Grounded = false
		k.JumpRequested = false
	}
	if !k.Grounded {
		k.Velocity.Z -= k.Gravity * dt
	}

	loc := t.Location
	next := loc
	stepX := common.Vec3{X: loc.X + k.Velocity.X*dt, Y: loc.Y, Z: loc.Z}
	if s.physics.Blocked(loc, stepX, c.Radius, c.HalfHeight) {
		k.Velocity.X = 0
	} else {
		next.X = stepX.X
	}
	stepY := common.Vec3{X: next.X, Y: loc.Y + k.Velocity.Y*dt, Z: loc.Z}
	if s.physics.Blocked(next, stepY, c.Radius, c.HalfHeight) {
		k.Velocity.Y = 0
	} else {
		next.Y = stepY.Y
	}
	next.Z = loc.Z + k.Velocity.Z*dt

	floor := s.physics.GroundHeight(common.Vec3{X: next.X, Y: next.Y, Z: math.Max(loc.Z, next.Z)}, c.Radius, c.HalfHeight) + c.HalfHeight
	wasGrounded := k.Grounded
	switch {
	case next.Z <= floor && k.Velocity.Z <= 0:
		next.Z = floor
		k.Velocity.Z = 0
		k.Grounded = true
	case next.Z > floor+stepHeight || k.Velocity.Z > 0:
		k.Grounded = false
	default:
		// walking down a step
		next.Z = floor
	}
	t.Location = next

	if k.Grounded && !wasGrounded {
		if p, ok := ecs.Get(w, e, component.PlayerComponent.Kind()); ok && p.Character != nil {
			p.Character.Landed()
		}
	}
}

// approach moves v toward target by at most delta.
func approach(v, target common.Vec3, delta float64) common.Vec3 {
	diff := target.Sub(v)
	d := diff.Length()
	if d <= delta || d == 0 {
		return target
	}
	return v.Add(diff.Scale(delta / d))
}
