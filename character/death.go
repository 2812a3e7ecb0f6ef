package character

import (
	"go.uber.org/zap"

	"github.com/milk9111/mood/common"
)

// OnDeath hands control to the death camera. A running execution or ledge
// climb is abandoned first so neither can hand control back.
func (c *Character) OnDeath(owner any) {
	if c.executing {
		c.logger.Debug("death interrupted execution")
		c.dilation.Release()
		c.dilation = nil
		c.executing = false
		c.clearTarget()
	}
	if c.state == StateClimbingLedge && c.world != nil {
		c.world.CancelMove()
	}
	c.dead = true
	c.respawned = false
	if c.gameMode != nil {
		c.gameMode.ResetMoodValue()
	}
	c.changeState(StateNoControl)
	c.logger.Info("player died")
}

// deathCamMovement tips the view over while dead, then rights it once a
// respawn has been requested and revives the player when level.
func (c *Character) deathCamMovement(dt float64) {
	if !c.dead || c.view == nil {
		return
	}
	t := c.tuning
	rot := c.view.ControlRotation()

	if !c.respawned {
		if rot.Roll < t.DeathRollLimit {
			goal := common.Rotator{Pitch: rot.Pitch, Yaw: rot.Yaw, Roll: t.DeathRollTarget}
			c.view.SetControlRotation(common.LerpRotator(rot, goal, t.DeathRollRate*dt))
			forward, right := c.actorAxes()
			drift := dt * t.DeathFallSpeed / 4
			c.body.AddMovementInput(forward.Scale(drift), 1)
			c.body.AddMovementInput(right.Scale(drift), 1)
		}
		return
	}

	if rot.Roll > 0 {
		goal := common.Rotator{Pitch: rot.Pitch, Yaw: rot.Yaw, Roll: t.RespawnRollTarget}
		c.view.SetControlRotation(common.LerpRotator(rot, goal, t.RespawnRollRate*dt))
		return
	}

	c.view.SetControlRotation(common.Rotator{Pitch: rot.Pitch, Yaw: rot.Yaw})
	c.dead = false
	c.respawned = false
	c.changeState(StateIdle)
	c.revive()
}

func (c *Character) revive() {
	if c.health != nil {
		c.health.Reset()
	}
	c.logger.Info("player revived", zap.Stringer("state", c.state))
}
