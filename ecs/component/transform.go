package component

import "github.com/milk9111/mood/common"

// Transform places an entity. Location is the capsule center for pawns and
// the box center for solids.
type Transform struct {
	Location common.Vec3
	Rotation common.Rotator
}

var TransformComponent = NewComponent[Transform]()
