package character

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/mood/common"
)

type State int

const (
	StateIdle State = iota
	StateWalking
	StateSprinting
	StateClimbingLedge
	StateNoControl
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateSprinting:
		return "sprinting"
	case StateClimbingLedge:
		return "climbing_ledge"
	case StateNoControl:
		return "no_control"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type stateHandler func(c *Character, dt float64)

var stateHandlers = map[State]stateHandler{
	StateIdle:          (*Character).tickIdle,
	StateWalking:       (*Character).tickWalking,
	StateSprinting:     (*Character).tickSprinting,
	StateClimbingLedge: (*Character).tickClimbingLedge,
	StateNoControl:     (*Character).tickNoControl,
}

func (c *Character) checkPlayerState(dt float64) {
	handler, ok := stateHandlers[c.state]
	if !ok {
		c.logger.Error("unknown player state, falling back to idle", zap.Stringer("state", c.state))
		c.changeState(StateIdle)
	} else {
		handler(c, dt)
	}

	// A respawn can leave the view rolled; never keep roll while in control.
	if c.state != StateNoControl && c.view != nil {
		if rot := c.view.ControlRotation(); rot.Roll != 0 {
			rot.Roll = 0
			c.view.SetControlRotation(rot)
		}
	}
}

func (c *Character) tickIdle(dt float64) {
	c.lerpFOV(c.tuning.WalkingFOV)
	if !c.midAir {
		c.shake(c.tuning.Shakes.IdleHeadBob)
	}
	if !c.body.Velocity().IsZero() {
		c.changeState(StateWalking)
	}
}

func (c *Character) tickWalking(dt float64) {
	c.lerpFOV(c.tuning.WalkingFOV)
	c.body.SetMaxWalkSpeed(c.tuning.WalkingSpeed)
	if !c.midAir {
		c.shake(c.tuning.Shakes.WalkHeadBob)
	}
	if c.body.Velocity().Length() < c.tuning.StopSpeed {
		c.changeState(StateIdle)
	}
}

func (c *Character) tickSprinting(dt float64) {
	c.body.SetMaxWalkSpeed(c.tuning.SprintingSpeed)
	c.lerpFOV(c.tuning.SprintingFOV)
	if !c.midAir {
		c.shake(c.tuning.Shakes.SprintHeadBob)
	}
	if c.body.Velocity().Length() < c.tuning.StopSpeed {
		c.StopSprinting()
	}
}

func (c *Character) tickClimbingLedge(dt float64) {
	c.body.SetVelocity(common.Vec3{})
	c.body.SetMaxWalkSpeed(c.tuning.WalkingSpeed)
	c.shake(c.tuning.Shakes.WalkHeadBob)
	c.StopShoot()
	c.climbTimer += dt
	if c.climbTimer >= c.tuning.ClimbingTime {
		c.changeState(StateWalking)
	}
}

func (c *Character) tickNoControl(dt float64) {
	c.StopShoot()
	c.deathCamMovement(dt)
}

func (c *Character) lerpFOV(target float64) {
	if c.camera == nil {
		return
	}
	c.camera.SetFieldOfView(common.Lerp(c.camera.FieldOfView(), target, c.tuning.AlphaFOV))
}

func (c *Character) shake(name string) {
	if c.camera == nil || name == "" {
		return
	}
	c.camera.StartShake(name, 1)
}

// changeState assigns unconditionally; each tick handler owns its exits.
func (c *Character) changeState(to State) {
	from := c.state
	c.state = to
	if from == to {
		return
	}
	c.logger.Debug("player state changed", zap.Stringer("from", from), zap.Stringer("to", to))
	for _, fn := range c.onStateChanged {
		fn(from, to)
	}
}
