package system

import (
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
)

// TTLSystem counts TTL components down in simulation time and destroys the
// entities that expire.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		ttl.Seconds -= dt
		if ttl.Seconds <= 0 {
			ecs.DestroyEntity(w, e)
		}
	})
}
