package system

import (
	"github.com/milk9111/mood/common"
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
)

// MoveToSystem advances scripted relocations such as the ledge climb.
type MoveToSystem struct{}

func NewMoveToSystem() *MoveToSystem { return &MoveToSystem{} }

func (s *MoveToSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach2(w, component.MoveToComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, m *component.MoveTo, t *component.Transform) {
		m.Elapsed += dt
		alpha := 1.0
		if m.Duration > 0 {
			alpha = common.Clamp(m.Elapsed/m.Duration, 0, 1)
		}
		t.Location = common.LerpVec3(m.From, m.To, alpha)
		if k, ok := ecs.Get(w, e, component.KinematicsComponent.Kind()); ok {
			k.Velocity = common.Vec3{}
			k.Pending = common.Vec3{}
		}
		if alpha >= 1 {
			ecs.Remove(w, e, component.MoveToComponent.Kind())
		}
	})
}
