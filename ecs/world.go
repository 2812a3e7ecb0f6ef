package ecs

import "github.com/milk9111/mood/ecs/component"

// World owns entities, their component stores and the frame's time step.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]store
	events   EventQueue

	delta     float64
	realDelta float64
}

func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]store)}
}

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity drops every component of e. It reports false for handles
// that are already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return w.entities.destroy(e)
}

func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns the live entities in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.entities.count)
	w.entities.each(func(e Entity) { out = append(out, e) })
	return out
}

// SetDelta records the frame's wall-clock step and the dilated step systems
// simulate with.
func (w *World) SetDelta(real, scaled float64) {
	w.realDelta = real
	w.delta = scaled
}

// Delta is the dilated simulation step in seconds.
func (w *World) Delta() float64 { return w.delta }

// RealDelta is the unscaled frame step in seconds.
func (w *World) RealDelta() float64 { return w.realDelta }

func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
