package system

import (
	"github.com/milk9111/mood/common"
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
)

// CharacterSystem ticks every player's controller with dilated time, reports
// deaths and puts revived players back at their spawn.
type CharacterSystem struct {
	dead map[ecs.Entity]bool
}

func NewCharacterSystem() *CharacterSystem {
	return &CharacterSystem{dead: make(map[ecs.Entity]bool)}
}

func (s *CharacterSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
		if p.Character == nil {
			return
		}
		p.Character.Tick(dt)

		dead := p.Character.IsDead()
		switch {
		case dead && !s.dead[e]:
			w.Events().Push(ecs.Event{Type: ecs.EventPlayerDied, Entity: e})
		case !dead && s.dead[e]:
			s.respawn(w, e, p)
		}
		s.dead[e] = dead
	})
}

func (s *CharacterSystem) respawn(w *ecs.World, e ecs.Entity, p *component.Player) {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.Location = p.Spawn.Location
	}
	if k, ok := ecs.Get(w, e, component.KinematicsComponent.Kind()); ok {
		k.Velocity = common.Vec3{}
		k.Pending = common.Vec3{}
	}
	ecs.Remove(w, e, component.MoveToComponent.Kind())
}
