package character

import (
	"github.com/milk9111/mood/common"
	"github.com/milk9111/mood/health"
	"github.com/milk9111/mood/mood"
	"github.com/milk9111/mood/weapon"
)

// Channel selects which world geometry a line trace responds to.
type Channel int

const (
	ChannelClimbable Channel = iota + 1
	ChannelInterruptClimbing
)

// ObjectType is a bit set of collision object categories.
type ObjectType uint

const (
	ObjectWorldStatic ObjectType = 1 << iota
	ObjectWorldDynamic
	ObjectPawn
)

// Actor is anything a trace can hit.
type Actor interface {
	Location() common.Vec3
	// Valid is false once the actor has been destroyed.
	Valid() bool
}

// TargetHealth is the slice of an enemy's health the execution needs.
type TargetHealth interface {
	Percent() float64
	Hurt(amount int)
}

// Target is an enemy-type actor. TargetHealth may return nil when the enemy
// has no health handle.
type Target interface {
	Actor
	TargetHealth() TargetHealth
}

type Hit struct {
	Blocked  bool
	Location common.Vec3
	Actor    Actor
}

// World is the synchronous query surface of the host simulation.
type World interface {
	LineTrace(start, end common.Vec3, channel Channel) Hit
	CapsuleSweep(start, end common.Vec3, radius, halfHeight float64, objects ObjectType) Hit
	// MoveTo relocates the character smoothly over duration seconds.
	MoveTo(target common.Vec3, duration float64)
	CancelMove()
}

// Body is the character's movement component.
type Body interface {
	Location() common.Vec3
	SetLocation(common.Vec3)
	Rotation() common.Rotator
	Velocity() common.Vec3
	SetVelocity(common.Vec3)
	MaxWalkSpeed() float64
	SetMaxWalkSpeed(float64)
	AddMovementInput(direction common.Vec3, scale float64)
	Jump()
	StopJumping()
}

// View is the player controller's rotation.
type View interface {
	ControlRotation() common.Rotator
	SetControlRotation(common.Rotator)
	AddYawInput(v float64)
	AddPitchInput(v float64)
}

type Camera interface {
	Location() common.Vec3
	Forward() common.Vec3
	FieldOfView() float64
	SetFieldOfView(fov float64)
	StartShake(name string, scale float64)
}

type Sounds interface {
	Play(name string)
}

type Health interface {
	Heal(amount int)
	Hurt(amount int)
	Reset()
	Percent() float64
	AlterHealthLoss(multiplier float64)
	SubscribeHurt(fn health.HurtFunc)
	SubscribeDeath(fn health.DeathFunc)
}

type WeaponSlot interface {
	SetTriggerHeld(held bool)
	SelectWeapon(index int)
	SelectNext()
	SelectPrevious()
	SetDamageMultiplier(m float64)
	HasWeapon() bool
	Selected() *weapon.Weapon
	SubscribeWeaponUsed(fn weapon.UsedFunc)
}

type GameMode interface {
	ChangeMoodValue(delta int)
	ResetMoodValue()
	SubscribeMoodChanged(fn mood.ChangedFunc)
	SubscribeSlowMotionTriggered(fn mood.SlowMotionFunc)
	SubscribeSlowMotionEnded(fn mood.SlowMotionEndedFunc)
}
