package component

import "github.com/milk9111/mood/common"

// Solid is axis-aligned level geometry spanning Min to Max.
type Solid struct {
	Min, Max  common.Vec3
	Climbable bool
}

var SolidComponent = NewComponent[Solid]()
