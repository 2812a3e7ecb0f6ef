package component

import "github.com/milk9111/mood/common"

// MoveTo slides an entity from From to To over Duration seconds, ignoring
// physics, then removes itself.
type MoveTo struct {
	From     common.Vec3
	To       common.Vec3
	Duration float64
	Elapsed  float64
}

var MoveToComponent = NewComponent[MoveTo]()
