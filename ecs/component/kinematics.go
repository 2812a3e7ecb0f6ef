package component

import "github.com/milk9111/mood/common"

// Kinematics is the walking-pawn movement state integrated by the movement
// system.
type Kinematics struct {
	Velocity     common.Vec3
	MaxWalkSpeed float64
	Acceleration float64
	Braking      float64
	JumpSpeed    float64
	Gravity      float64

	// Pending accumulates movement input for the current frame.
	Pending       common.Vec3
	JumpRequested bool
	Grounded      bool
}

var KinematicsComponent = NewComponent[Kinematics]()
