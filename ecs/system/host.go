package system

import (
	"github.com/milk9111/mood/character"
	"github.com/milk9111/mood/common"
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
)

// PlayerHost exposes the player entity's components to the character
// controller as its body, view, camera, world and sound capabilities.
type PlayerHost struct {
	w       *ecs.World
	e       ecs.Entity
	physics *PhysicsSystem
}

func NewPlayerHost(w *ecs.World, e ecs.Entity, physics *PhysicsSystem) *PlayerHost {
	return &PlayerHost{w: w, e: e, physics: physics}
}

func (h *PlayerHost) Entity() ecs.Entity { return h.e }

func (h *PlayerHost) transform() *component.Transform {
	t, ok := ecs.Get(h.w, h.e, component.TransformComponent.Kind())
	if !ok {
		return &component.Transform{}
	}
	return t
}

func (h *PlayerHost) kinematics() *component.Kinematics {
	k, ok := ecs.Get(h.w, h.e, component.KinematicsComponent.Kind())
	if !ok {
		return &component.Kinematics{}
	}
	return k
}

func (h *PlayerHost) view() *component.View {
	v, ok := ecs.Get(h.w, h.e, component.ViewComponent.Kind())
	if !ok {
		return &component.View{}
	}
	return v
}

func (h *PlayerHost) Location() common.Vec3 { return h.transform().Location }

func (h *PlayerHost) SetLocation(loc common.Vec3) { h.transform().Location = loc }

// Rotation is the pawn's facing; it follows the view's yaw only.
func (h *PlayerHost) Rotation() common.Rotator {
	return common.Rotator{Yaw: h.view().Rotation.Yaw}
}

func (h *PlayerHost) Velocity() common.Vec3 { return h.kinematics().Velocity }

func (h *PlayerHost) SetVelocity(v common.Vec3) { h.kinematics().Velocity = v }

func (h *PlayerHost) MaxWalkSpeed() float64 { return h.kinematics().MaxWalkSpeed }

func (h *PlayerHost) SetMaxWalkSpeed(speed float64) { h.kinematics().MaxWalkSpeed = speed }

func (h *PlayerHost) AddMovementInput(direction common.Vec3, scale float64) {
	k := h.kinematics()
	k.Pending = k.Pending.Add(direction.Scale(scale))
}

func (h *PlayerHost) Jump() { h.kinematics().JumpRequested = true }

func (h *PlayerHost) StopJumping() { h.kinematics().JumpRequested = false }

func (h *PlayerHost) ControlRotation() common.Rotator { return h.view().Rotation }

func (h *PlayerHost) SetControlRotation(r common.Rotator) { h.view().Rotation = r }

func (h *PlayerHost) AddYawInput(v float64) {
	view := h.view()
	view.Rotation.Yaw += v
}

func (h *PlayerHost) AddPitchInput(v float64) {
	view := h.view()
	view.Rotation.Pitch = clampPitch(view.Rotation.Pitch+v, view.PitchLimit)
}

func clampPitch(p, limit float64) float64 {
	if limit <= 0 {
		limit = 89
	}
	return common.Clamp(p, -limit, limit)
}

// PlayerCamera is the first-person camera at the player's eye.
type PlayerCamera struct {
	host *PlayerHost
}

// Camera returns the player's camera capability.
func (h *PlayerHost) Camera() *PlayerCamera { return &PlayerCamera{host: h} }

func (c *PlayerCamera) Location() common.Vec3 {
	h := c.host
	return h.Location().Add(common.Up.Scale(h.view().EyeHeight))
}

func (c *PlayerCamera) Forward() common.Vec3 { return c.host.view().Rotation.Forward() }

func (c *PlayerCamera) FieldOfView() float64 { return c.host.view().FOV }

func (c *PlayerCamera) SetFieldOfView(fov float64) { c.host.view().FOV = fov }

func (c *PlayerCamera) StartShake(name string, scale float64) {
	requestEntity(c.host.w, component.CameraShakeRequestComponent.Kind(), &component.CameraShakeRequest{Name: name, Scale: scale})
}

// World

func (h *PlayerHost) LineTrace(start, end common.Vec3, channel character.Channel) character.Hit {
	return h.physics.LineTrace(start, end, channel)
}

func (h *PlayerHost) CapsuleSweep(start, end common.Vec3, radius, halfHeight float64, objects character.ObjectType) character.Hit {
	return h.physics.CapsuleSweep(start, end, radius, halfHeight, objects)
}

func (h *PlayerHost) MoveTo(target common.Vec3, duration float64) {
	move := &component.MoveTo{From: h.Location(), To: target, Duration: duration}
	_ = ecs.Add(h.w, h.e, component.MoveToComponent.Kind(), move)
}

func (h *PlayerHost) CancelMove() {
	ecs.Remove(h.w, h.e, component.MoveToComponent.Kind())
}

func (h *PlayerHost) Play(name string) {
	requestEntity(h.w, component.SoundRequestComponent.Kind(), &component.SoundRequest{Name: name})
}

// requestEntity spawns a one-shot request entity for a consumer system.
func requestEntity[T any](w *ecs.World, kind component.ComponentKind[T], req *T) {
	if w == nil {
		return
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, kind, req); err != nil {
		ecs.DestroyEntity(w, e)
	}
}
