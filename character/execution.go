package character

import (
	"go.uber.org/zap"

	"github.com/milk9111/mood/common"
)

func (c *Character) canSearchTarget() bool {
	return !c.executing && c.state != StateClimbingLedge && c.state != StateNoControl
}

// findTarget looks for a low-health enemy straight ahead of the camera. Every
// failed check clears the lock and stops.
func (c *Character) findTarget(dt float64) {
	if c.world == nil || c.camera == nil {
		c.clearTarget()
		return
	}
	t := c.tuning
	start := c.camera.Location()
	forward := c.camera.Forward()
	end := start.Add(forward.Scale(t.ExecutionDistance))
	shortEnd := start.Add(forward.Scale(t.ShortTraceRange))

	short := c.world.LineTrace(start, shortEnd, ChannelInterruptClimbing)
	long := c.world.LineTrace(start, end, ChannelInterruptClimbing)
	if !long.Blocked || long.Actor == nil {
		c.clearTarget()
		return
	}

	target, ok := long.Actor.(Target)
	if !ok || !target.Valid() {
		c.clearTarget()
		return
	}
	hp := target.TargetHealth()
	if hp == nil {
		c.clearTarget()
		return
	}

	// Something within arm's reach means the enemy is right in front of us;
	// only sweep for cover when it is further out.
	if !short.Blocked {
		radius := t.CapsuleRadius - t.CapsuleInset
		half := t.CapsuleHalfHeight - t.CapsuleInset
		if c.world.CapsuleSweep(start, target.Location(), radius, half, t.ObstacleObjectTypes).Blocked {
			c.clearTarget()
			return
		}
	}

	pct := hp.Percent()
	dist := target.Location().Distance(c.body.Location())
	if pct > 0 && pct <= t.ExecutionThreshold && dist <= end.Sub(start).Length() {
		c.target = target
		c.targetHealth = hp
		c.foundExecutable = true
		return
	}
	c.clearTarget()
}

func (c *Character) clearTarget() {
	c.foundExecutable = false
	c.target = nil
	c.targetHealth = nil
}

// ToggleExecute starts the execution dash toward the locked enemy.
func (c *Character) ToggleExecute() {
	if !c.foundExecutable || c.executing || c.state == StateNoControl {
		return
	}
	c.executionTimer = 0

	if c.target == nil || !c.target.Valid() || c.targetHealth == nil {
		c.executing = false
		c.clearTarget()
		c.logger.Error("execution target is invalid", zap.String("op", "toggle_execute"))
		return
	}

	c.executing = true
	c.changeState(StateNoControl)
	c.dilation = c.clock.Acquire(executionOwner, c.tuning.ExecutionTimeDilation)
	c.play(c.tuning.Sounds.ExecutionStart)
}

// moveToTarget closes in on the target. The blend factor is the frame time
// scaled by MoveToExecuteSpeed, so closing speed depends on the time step.
func (c *Character) moveToTarget(dt float64) {
	if c.target == nil || !c.target.Valid() {
		c.logger.Error("execution target lost", zap.String("op", "move_to_target"))
		c.endExecution()
		return
	}

	if c.executionTimer < c.tuning.ExecutionTimeCap {
		c.executionTimer += dt
	}

	dest := c.target.Location()
	alpha := common.Clamp(c.tuning.MoveToExecuteSpeed*dt, 0, 1)
	c.body.SetLocation(common.LerpVec3(c.body.Location(), dest, alpha))

	if dest.Distance(c.body.Location()) < c.tuning.ExecutionNearDistance {
		c.executeTarget()
		return
	}

	if c.executionTimer >= c.tuning.ExecutionTimeout {
		c.logger.Error("could not reach execution target",
			zap.Float64("elapsed", c.executionTimer),
			zap.Float64("distance", dest.Distance(c.body.Location())),
		)
		c.endExecution()
	}
}

func (c *Character) executeTarget() {
	if c.target != nil && c.target.Valid() && c.targetHealth != nil {
		c.shake(c.tuning.Shakes.Execute)
		c.targetHealth.Hurt(c.tuning.ExecutionDamage)
		if c.gameMode != nil {
			c.gameMode.ChangeMoodValue(c.tuning.ExecutionDamage)
		}
		if c.health != nil {
			c.health.Heal(c.tuning.ExecutionHealing)
		}
	} else {
		c.logger.Error("execution target is invalid", zap.String("op", "execute"))
	}
	c.endExecution()
}

// endExecution is the single exit for every execution path and always
// returns the time lease.
func (c *Character) endExecution() {
	c.dilation.Release()
	c.dilation = nil
	c.executing = false
	c.clearTarget()
	if !c.dead {
		c.changeState(StateWalking)
	}
}
