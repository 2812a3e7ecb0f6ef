package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
)

// InputSystem samples keyboard, mouse and the first gamepad into every Input
// component.
type InputSystem struct {
	MouseSensitivity float64
	StickLookSpeed   float64

	lastX, lastY int
	primed       bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{MouseSensitivity: 0.15, StickLookSpeed: 3}
}

func button(key ebiten.Key) component.Button {
	return component.Button{
		Down:     ebiten.IsKeyPressed(key),
		Pressed:  inpututil.IsKeyJustPressed(key),
		Released: inpututil.IsKeyJustReleased(key),
	}
}

func mouseButton(b ebiten.MouseButton) component.Button {
	return component.Button{
		Down:     ebiten.IsMouseButtonPressed(b),
		Pressed:  inpututil.IsMouseButtonJustPressed(b),
		Released: inpututil.IsMouseButtonJustReleased(b),
	}
}

func merge(a, b component.Button) component.Button {
	return component.Button{Down: a.Down || b.Down, Pressed: a.Pressed || b.Pressed, Released: a.Released || b.Released}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	const stickDeadzone = 0.2

	var in component.Input
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX -= 1
	}

	mx, my := ebiten.CursorPosition()
	if i.primed {
		in.LookX = float64(mx-i.lastX) * i.MouseSensitivity
		in.LookY = -float64(my-i.lastY) * i.MouseSensitivity
	}
	i.lastX, i.lastY, i.primed = mx, my, true
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		in.LookX -= i.StickLookSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) && !ebiten.IsKeyPressed(ebiten.KeyShift) {
		in.LookX += i.StickLookSpeed
	}
	_, in.Scroll = ebiten.Wheel()

	in.Jump = button(ebiten.KeySpace)
	in.Sprint = button(ebiten.KeyShiftLeft)
	in.Shoot = mouseButton(ebiten.MouseButtonLeft)
	in.Execute = merge(button(ebiten.KeyF), mouseButton(ebiten.MouseButtonRight))
	in.Interact = button(ebiten.KeyR)
	in.Pause = merge(button(ebiten.KeyEscape), button(ebiten.KeyP))
	in.Respawn = button(ebiten.KeyEnter)
	in.Weapon[0] = button(ebiten.Key1)
	in.Weapon[1] = button(ebiten.Key2)
	in.Weapon[2] = button(ebiten.Key3)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			in.MoveX, in.MoveY = lx, -ly
		}
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			in.LookX, in.LookY = rx*i.StickLookSpeed, -ry*i.StickLookSpeed
		}
		pad := func(b ebiten.StandardGamepadButton) component.Button {
			return component.Button{
				Down:     ebiten.IsStandardGamepadButtonPressed(id, b),
				Pressed:  inpututil.IsStandardGamepadButtonJustPressed(id, b),
				Released: inpututil.IsStandardGamepadButtonJustReleased(id, b),
			}
		}
		in.Jump = merge(in.Jump, pad(ebiten.StandardGamepadButtonRightBottom))
		in.Sprint = merge(in.Sprint, pad(ebiten.StandardGamepadButtonLeftStick))
		in.Shoot = merge(in.Shoot, pad(ebiten.StandardGamepadButtonFrontBottomRight))
		in.Execute = merge(in.Execute, pad(ebiten.StandardGamepadButtonRightRight))
		in.Interact = merge(in.Interact, pad(ebiten.StandardGamepadButtonRightLeft))
		in.Pause = merge(in.Pause, pad(ebiten.StandardGamepadButtonCenterRight))
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = in
	})
}
