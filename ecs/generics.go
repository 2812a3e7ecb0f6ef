package ecs

import "github.com/milk9111/mood/ecs/component"

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if s, ok := w.stores[kind.ID()]; ok {
		typed, _ := s.(*sparseSet[T])
		return typed
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]store)
	}
	s := newSparseSet[T]()
	w.stores[kind.ID()] = s
	return s
}

// Add attaches value to e, replacing any existing component of that kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	storeFor(w, kind, true).set(e, value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	s := storeFor(w, kind, false)
	if s == nil {
		return nil, false
	}
	return s.get(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := storeFor(w, kind, false)
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

// snapshot copies the dense entity list so callbacks may add, remove or
// destroy while iterating.
func snapshot[T any](s *sparseSet[T]) []Entity {
	if s == nil || len(s.dense) == 0 {
		return nil
	}
	return append([]Entity(nil), s.dense...)
}

func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := storeFor(w, kind, false)
	for _, e := range snapshot(s) {
		if !IsAlive(w, e) {
			continue
		}
		if v, ok := s.get(e.id()); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := storeFor(w, ka, false), storeFor(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	for _, e := range snapshot(sa) {
		if !IsAlive(w, e) {
			continue
		}
		a, ok := sa.get(e.id())
		if !ok {
			continue
		}
		b, ok := sb.get(e.id())
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sc := storeFor(w, kc, false)
	if sc == nil {
		return
	}
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := sc.get(e.id()); ok {
			fn(e, a, b, c)
		}
	})
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sd := storeFor(w, kd, false)
	if sd == nil {
		return
	}
	ForEach3(w, ka, kb, kc, func(e Entity, a *A, b *B, c *C) {
		if d, ok := sd.get(e.id()); ok {
			fn(e, a, b, c, d)
		}
	})
}

// First returns the lowest-stored live entity carrying kind, used for
// singletons like the player.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := storeFor(w, kind, false)
	if s == nil {
		return 0, false
	}
	for _, e := range s.dense {
		if IsAlive(w, e) {
			return e, true
		}
	}
	return 0, false
}

func Count[T any](w *World, kind component.ComponentKind[T]) int {
	s := storeFor(w, kind, false)
	if s == nil {
		return 0
	}
	return s.size()
}
