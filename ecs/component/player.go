package component

import (
	"github.com/milk9111/mood/character"
	"github.com/milk9111/mood/health"
	"github.com/milk9111/mood/weapon"
)

// Player links the player entity to its character controller and the
// subsystems the controller drives.
type Player struct {
	Character *character.Character
	Health    *health.Health
	Weapons   *weapon.Slot
	Spawn     Transform
}

var PlayerComponent = NewComponent[Player]()
