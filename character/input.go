package character

import "github.com/milk9111/mood/common"

type Action int

const (
	ActionJump Action = iota + 1
	ActionClimb
	ActionMove
	ActionLook
	ActionSprint
	ActionShoot
	ActionExecute
	ActionScrollWeapon
	ActionSelectWeapon1
	ActionSelectWeapon2
	ActionSelectWeapon3
	ActionInteract
	ActionPause
)

// Phase mirrors the trigger events of an action mapping.
type Phase int

const (
	PhaseStarted Phase = iota + 1
	PhaseTriggered
	PhaseCompleted
	PhaseCanceled
)

type InputEvent struct {
	Action Action
	Phase  Phase
	// X and Y carry axis values; scalar actions use X.
	X, Y float64
}

// InputSurface delivers action events synchronously.
type InputSurface interface {
	Subscribe(fn func(InputEvent))
}

type binding struct {
	action Action
	phase  Phase
}

var inputBindings = map[binding]func(c *Character, ev InputEvent){
	{ActionJump, PhaseStarted}:            func(c *Character, _ InputEvent) { c.Jump() },
	{ActionJump, PhaseCompleted}:          func(c *Character, _ InputEvent) { c.StopJumping() },
	{ActionClimb, PhaseStarted}:           func(c *Character, _ InputEvent) { c.AttemptClimb() },
	{ActionClimb, PhaseCompleted}:         func(c *Character, _ InputEvent) { c.DontClimb() },
	{ActionMove, PhaseTriggered}:          func(c *Character, ev InputEvent) { c.Move(ev.X, ev.Y) },
	{ActionSprint, PhaseTriggered}:        func(c *Character, _ InputEvent) { c.Sprint() },
	{ActionSprint, PhaseCompleted}:        func(c *Character, _ InputEvent) { c.StopSprinting() },
	{ActionLook, PhaseTriggered}:          func(c *Character, ev InputEvent) { c.Look(ev.X, ev.Y) },
	{ActionShoot, PhaseTriggered}:         func(c *Character, _ InputEvent) { c.Shoot() },
	{ActionShoot, PhaseCanceled}:          func(c *Character, _ InputEvent) { c.StopShoot() },
	{ActionShoot, PhaseCompleted}:         func(c *Character, _ InputEvent) { c.StopShoot() },
	{ActionExecute, PhaseTriggered}:       func(c *Character, _ InputEvent) { c.ToggleExecute() },
	{ActionScrollWeapon, PhaseTriggered}:  func(c *Character, ev InputEvent) { c.WeaponScroll(ev.X) },
	{ActionSelectWeapon1, PhaseTriggered}: func(c *Character, _ InputEvent) { c.SelectWeapon(1) },
	{ActionSelectWeapon2, PhaseTriggered}: func(c *Character, _ InputEvent) { c.SelectWeapon(2) },
	{ActionSelectWeapon3, PhaseTriggered}: func(c *Character, _ InputEvent) { c.SelectWeapon(3) },
	{ActionInteract, PhaseTriggered}:      func(c *Character, _ InputEvent) { c.Interact() },
	{ActionPause, PhaseTriggered}:         func(c *Character, _ InputEvent) { c.Pause() },
}

// BindInput subscribes the character to an input surface. Without one the
// character still ticks but never receives player input.
func (c *Character) BindInput(surface InputSurface) bool {
	if surface == nil {
		if !c.inputBound {
			c.logger.Error("no input surface available; player input disabled")
		}
		return false
	}
	if c.inputBound {
		return true
	}
	surface.Subscribe(c.HandleInput)
	c.inputBound = true
	return true
}

// HandleInput dispatches one action event. Unbound combinations are ignored.
func (c *Character) HandleInput(ev InputEvent) {
	fn, ok := inputBindings[binding{ev.Action, ev.Phase}]
	if !ok {
		return
	}
	fn(c, ev)
}

func (c *Character) Jump() {
	if c.state == StateNoControl {
		return
	}
	c.body.Jump()
}

func (c *Character) StopJumping() {
	c.body.StopJumping()
}

// Landed is called by the host when the body touches ground.
func (c *Character) Landed() {
	c.shake(c.tuning.Shakes.Land)
}

func (c *Character) AttemptClimb() { c.canClimb = true }

func (c *Character) DontClimb() { c.canClimb = false }

// Move applies x (right) and y (forward) scaled by the mood speed multiplier.
func (c *Character) Move(x, y float64) {
	if c.body == nil || c.state == StateNoControl {
		return
	}
	forward, right := c.actorAxes()
	c.body.AddMovementInput(forward, y*c.moodSpeed)
	c.body.AddMovementInput(right, x*c.moodSpeed)
}

func (c *Character) Look(x, y float64) {
	if c.view == nil || c.state == StateNoControl {
		return
	}
	x *= c.tuning.CameraSpeed
	y *= c.tuning.CameraSpeed
	if c.slowMotion {
		x *= c.tuning.SlowMotionCamSpeed
		y *= c.tuning.SlowMotionCamSpeed
	}
	c.view.AddYawInput(x)
	c.view.AddPitchInput(y)
}

func (c *Character) Sprint() {
	if c.body.Velocity().Length() > c.tuning.StopSpeed &&
		c.state != StateClimbingLedge &&
		c.state != StateNoControl {
		c.changeState(StateSprinting)
	}
}

// StopSprinting only leaves the sprint state; releasing the sprint key while
// climbing or dead must not hand control back.
func (c *Character) StopSprinting() {
	if c.state != StateSprinting {
		return
	}
	c.changeState(StateWalking)
}

func (c *Character) Shoot() {
	if c.weapons == nil || c.state == StateClimbingLedge || c.state == StateNoControl {
		return
	}
	c.weapons.SetTriggerHeld(true)
}

func (c *Character) StopShoot() {
	if c.weapons == nil {
		return
	}
	c.weapons.SetTriggerHeld(false)
}

func (c *Character) WeaponScroll(direction float64) {
	if c.weapons == nil || !c.weapons.HasWeapon() {
		return
	}
	switch {
	case direction > 0:
		c.weapons.SelectNext()
	case direction < 0:
		c.weapons.SelectPrevious()
	}
	c.applyWeaponFireRate()
}

// SelectWeapon takes the 1-based hotkey number.
func (c *Character) SelectWeapon(n int) {
	if c.weapons == nil || !c.weapons.HasWeapon() {
		return
	}
	c.weapons.SelectWeapon(n - 1)
	c.applyWeaponFireRate()
}

func (c *Character) Interact() {
	for _, fn := range c.onInteract {
		fn()
	}
}

func (c *Character) Pause() {
	if c.state == StateNoControl {
		return
	}
	for _, fn := range c.onPause {
		fn()
	}
}

// ResetPlayer is the respawn request; the death camera finishes the revive.
func (c *Character) ResetPlayer() {
	c.respawned = true
}

func (c *Character) applyWeaponFireRate() {
	if c.weapons == nil {
		return
	}
	if w := c.weapons.Selected(); w != nil {
		w.SetSlowMotion(c.slowMotion)
	}
}

func (c *Character) actorAxes() (forward, right common.Vec3) {
	rot := c.body.Rotation()
	return rot.FlatForward(), rot.Right()
}
