package character

import (
	"math/rand/v2"

	"github.com/milk9111/mood/common"
	"github.com/milk9111/mood/health"
	"github.com/milk9111/mood/mood"
	"github.com/milk9111/mood/timescale"
	"github.com/milk9111/mood/weapon"
)

type movementInput struct {
	dir   common.Vec3
	scale float64
}

type fakeBody struct {
	loc      common.Vec3
	rot      common.Rotator
	vel      common.Vec3
	maxSpeed float64
	inputs   []movementInput
	jumps    int
	stops    int
}

func (b *fakeBody) Location() common.Vec3     { return b.loc }
func (b *fakeBody) SetLocation(v common.Vec3) { b.loc = v }
func (b *fakeBody) Rotation() common.Rotator  { return b.rot }
func (b *fakeBody) Velocity() common.Vec3     { return b.vel }
func (b *fakeBody) SetVelocity(v common.Vec3) { b.vel = v }
func (b *fakeBody) MaxWalkSpeed() float64     { return b.maxSpeed }
func (b *fakeBody) SetMaxWalkSpeed(v float64) { b.maxSpeed = v }
func (b *fakeBody) Jump()                     { b.jumps++ }
func (b *fakeBody) StopJumping()              { b.stops++ }
func (b *fakeBody) AddMovementInput(d common.Vec3, s float64) {
	b.inputs = append(b.inputs, movementInput{d, s})
}

type fakeView struct {
	rot   common.Rotator
	yaw   float64
	pitch float64
}

func (v *fakeView) ControlRotation() common.Rotator     { return v.rot }
func (v *fakeView) SetControlRotation(r common.Rotator) { v.rot = r }
func (v *fakeView) AddYawInput(x float64)               { v.yaw += x }
func (v *fakeView) AddPitchInput(y float64)             { v.pitch += y }

type fakeCamera struct {
	body   *fakeBody
	fov    float64
	shakes []string
}

func (c *fakeCamera) Location() common.Vec3 { return c.body.loc.Add(common.Vec3{Z: 60}) }
func (c *fakeCamera) Forward() common.Vec3  { return c.body.rot.FlatForward() }
func (c *fakeCamera) FieldOfView() float64  { return c.fov }
func (c *fakeCamera) SetFieldOfView(f float64) {
	c.fov = f
}
func (c *fakeCamera) StartShake(name string, _ float64) { c.shakes = append(c.shakes, name) }

// fakeWorld routes traces by channel and length: climbable traces are the
// ledge front probe, interrupt traces shorter than the short execution range
// are the ledge head probe, the rest are execution traces.
type fakeWorld struct {
	shortRange float64
	ledgeFront bool
	ledgeAbove bool
	short      Hit
	long       Hit
	sweep      Hit
	sweeps     int
	moves      []common.Vec3
	cancels    int
}

func (w *fakeWorld) LineTrace(start, end common.Vec3, channel Channel) Hit {
	if channel == ChannelClimbable {
		return Hit{Blocked: w.ledgeFront}
	}
	length := end.Sub(start).Length()
	switch {
	case length < w.shortRange-0.5:
		return Hit{Blocked: w.ledgeAbove}
	case length < w.shortRange+0.5:
		return w.short
	default:
		return w.long
	}
}

func (w *fakeWorld) CapsuleSweep(_, _ common.Vec3, _, _ float64, _ ObjectType) Hit {
	w.sweeps++
	return w.sweep
}

func (w *fakeWorld) MoveTo(target common.Vec3, _ float64) { w.moves = append(w.moves, target) }
func (w *fakeWorld) CancelMove()                          { w.cancels++ }

type fakeSounds struct{ played []string }

func (s *fakeSounds) Play(name string) { s.played = append(s.played, name) }

type fakeEnemy struct {
	loc   common.Vec3
	hp    *health.Health
	valid bool
	noHP  bool
}

func (e *fakeEnemy) Location() common.Vec3 { return e.loc }
func (e *fakeEnemy) Valid() bool           { return e.valid }
func (e *fakeEnemy) TargetHealth() TargetHealth {
	if e.noHP || e.hp == nil {
		return nil
	}
	return e.hp
}

// plainActor is a hit actor that is not an enemy.
type plainActor struct{ loc common.Vec3 }

func (a plainActor) Location() common.Vec3 { return a.loc }
func (a plainActor) Valid() bool           { return true }

type rig struct {
	c      *Character
	body   *fakeBody
	view   *fakeView
	camera *fakeCamera
	world  *fakeWorld
	sounds *fakeSounds
	health *health.Health
	slot   *weapon.Slot
	mode   *mood.GameMode
	clock  *timescale.Clock
}

func newRig() *rig {
	body := &fakeBody{maxSpeed: 600}
	tuning := DefaultTuning()
	world := &fakeWorld{shortRange: tuning.ShortTraceRange}
	clock := timescale.NewClock()
	r := &rig{
		body:   body,
		view:   &fakeView{},
		camera: &fakeCamera{body: body, fov: 90},
		world:  world,
		sounds: &fakeSounds{},
		health: health.New("player", 1000),
		slot:   weapon.NewSlot(nil),
		clock:  clock,
	}
	r.slot.Add(&weapon.Weapon{Name: "pistol", FireInterval: 0.5, SlowMotionFireInterval: 0.25, Damage: 10})
	r.slot.Add(&weapon.Weapon{Name: "shotgun", FireInterval: 1, Damage: 40})
	r.mode = mood.NewGameMode(mood.DefaultSettings(), clock, nil)
	r.c = New(tuning, Deps{
		Body:     body,
		View:     r.view,
		Camera:   r.camera,
		World:    world,
		Sounds:   r.sounds,
		Health:   r.health,
		Weapons:  r.slot,
		GameMode: r.mode,
		Clock:    clock,
		Rand:     rand.New(rand.NewPCG(1, 2)),
	})
	r.c.BeginPlay()
	return r
}

// lockEnemy places an executable enemy straight ahead at dist.
func (r *rig) lockEnemy(dist float64, pct float64) *fakeEnemy {
	hp := health.New("enemy", 100)
	hp.Hurt(int(100 - pct*100))
	enemy := &fakeEnemy{loc: common.Vec3{X: dist}, hp: hp, valid: true}
	r.world.long = Hit{Blocked: true, Location: enemy.loc, Actor: enemy}
	return enemy
}
