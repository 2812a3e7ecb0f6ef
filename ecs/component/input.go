package component

// Button is one digital input sampled this frame.
type Button struct {
	Down     bool
	Pressed  bool
	Released bool
}

// Input stores per-frame device state for an entity.
type Input struct {
	MoveX, MoveY float64
	LookX, LookY float64
	Scroll       float64

	Jump     Button
	Sprint   Button
	Shoot    Button
	Execute  Button
	Interact Button
	Pause    Button
	Respawn  Button
	Weapon   [3]Button
}

var InputComponent = NewComponent[Input]()
