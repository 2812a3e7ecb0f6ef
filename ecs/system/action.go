package system

import (
	"github.com/milk9111/mood/character"
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
)

// ActionSystem turns sampled device state into character action events. It
// is the character's input surface.
type ActionSystem struct {
	subscribers []func(character.InputEvent)
}

func NewActionSystem() *ActionSystem {
	return &ActionSystem{}
}

func (a *ActionSystem) Subscribe(fn func(character.InputEvent)) {
	if fn == nil {
		return
	}
	a.subscribers = append(a.subscribers, fn)
}

func (a *ActionSystem) emit(action character.Action, phase character.Phase, x, y float64) {
	ev := character.InputEvent{Action: action, Phase: phase, X: x, Y: y}
	for _, fn := range a.subscribers {
		fn(ev)
	}
}

// edges emits Started on press, Triggered while held when held is set, and
// Completed on release.
func (a *ActionSystem) edges(b component.Button, action character.Action, held bool) {
	if b.Pressed {
		a.emit(action, character.PhaseStarted, 0, 0)
	}
	if held && b.Down {
		a.emit(action, character.PhaseTriggered, 0, 0)
	} else if !held && b.Pressed {
		a.emit(action, character.PhaseTriggered, 0, 0)
	}
	if b.Released {
		a.emit(action, character.PhaseCompleted, 0, 0)
	}
}

func (a *ActionSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.InputComponent.Kind(), component.PlayerComponent.Kind(), func(_ ecs.Entity, in *component.Input, p *component.Player) {
		a.edges(in.Jump, character.ActionJump, false)
		a.edges(in.Jump, character.ActionClimb, false)
		if in.MoveX != 0 || in.MoveY != 0 {
			a.emit(character.ActionMove, character.PhaseTriggered, in.MoveX, in.MoveY)
		}
		if in.LookX != 0 || in.LookY != 0 {
			a.emit(character.ActionLook, character.PhaseTriggered, in.LookX, in.LookY)
		}
		a.edges(in.Sprint, character.ActionSprint, true)
		a.edges(in.Shoot, character.ActionShoot, true)
		a.edges(in.Execute, character.ActionExecute, false)
		if in.Scroll != 0 {
			a.emit(character.ActionScrollWeapon, character.PhaseTriggered, in.Scroll, 0)
		}
		for i, action := range []character.Action{character.ActionSelectWeapon1, character.ActionSelectWeapon2, character.ActionSelectWeapon3} {
			a.edges(in.Weapon[i], action, false)
		}
		a.edges(in.Interact, character.ActionInteract, false)
		a.edges(in.Pause, character.ActionPause, false)

		if in.Respawn.Pressed && p.Character != nil && p.Character.IsDead() {
			p.Character.ResetPlayer()
		}
	})
}
