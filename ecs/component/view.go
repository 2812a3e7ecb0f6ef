package component

import "github.com/milk9111/mood/common"

// View is the first-person camera carried by the player.
type View struct {
	Rotation    common.Rotator
	FOV         float64
	EyeHeight   float64
	PitchLimit  float64
	ShakeOffset common.Rotator
}

var ViewComponent = NewComponent[View]()
