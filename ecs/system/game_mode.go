package system

import (
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/mood"
)

// GameModeSystem advances the mood meter's slow-motion timer in real time, so
// slow motion lasts the same wall-clock duration whatever the dilation.
type GameModeSystem struct {
	mode *mood.GameMode
}

func NewGameModeSystem(mode *mood.GameMode) *GameModeSystem {
	return &GameModeSystem{mode: mode}
}

func (s *GameModeSystem) Update(w *ecs.World) {
	if s == nil || s.mode == nil || w == nil {
		return
	}
	s.mode.Update(w.RealDelta())
}
