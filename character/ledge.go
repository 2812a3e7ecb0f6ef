package character

import "github.com/milk9111/mood/common"

func (c *Character) canSearchLedge() bool {
	return c.canClimb && c.state != StateClimbingLedge && c.state != StateNoControl
}

// findLedge starts a climb when a wall is in front at foot level, nothing
// blocks the head-level probe and the character is airborne.
func (c *Character) findLedge(dt float64) {
	if c.world == nil {
		return
	}
	loc := c.body.Location()
	forward, _ := c.actorAxes()
	t := c.tuning

	bottomStart := loc.Add(common.Up.Scale(t.ReachLedge.Z))
	bottomEnd := bottomStart.Add(forward.Scale(t.ReachLedge.X))
	topStart := loc.Add(common.Up.Scale(t.WallAboveHeight))
	topEnd := topStart.Add(forward.Scale(t.WallAboveReach))

	wallInFront := c.world.LineTrace(bottomStart, bottomEnd, ChannelClimbable)
	wallAbove := c.world.LineTrace(topStart, topEnd, ChannelInterruptClimbing)
	if !wallInFront.Blocked || wallAbove.Blocked || !c.midAir {
		return
	}

	c.climbTimer = 0
	c.changeState(StateClimbingLedge)
	dest := loc.Add(forward.Scale(t.ClimbingLocation.X)).Add(common.Up.Scale(t.ClimbingLocation.Z))
	c.world.MoveTo(dest, t.ClimbingTime)
}
