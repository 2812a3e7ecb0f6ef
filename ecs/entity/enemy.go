package entity

import (
	"fmt"

	"github.com/milk9111/mood/common"
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
	"github.com/milk9111/mood/health"
	"github.com/milk9111/mood/prefabs"
)

// NewEnemy spawns an enemy of the named archetype. Its health's death marks
// the enemy dead; the AI system removes it on its next update.
func NewEnemy(w *ecs.World, spec prefabs.EnemySpec, placement prefabs.EnemyPlacement) (ecs.Entity, error) {
	typ, ok := spec.Types[placement.Type]
	if !ok {
		return 0, fmt.Errorf("enemy: unknown type %q", placement.Type)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Location: placement.Location.Vec3(),
		Rotation: common.Rotator{Yaw: placement.Yaw},
	}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Radius:     typ.Radius,
		HalfHeight: typ.HalfHeight,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add collider: %w", err)
	}

	enemy := &component.Enemy{
		Name:           placement.Type,
		Health:         health.New(placement.Type, typ.Health),
		Speed:          typ.Speed,
		SightRange:     typ.SightRange,
		AttackRange:    typ.AttackRange,
		AttackDamage:   typ.AttackDamage,
		AttackInterval: typ.AttackInterval,
	}
	enemy.Health.SubscribeDeath(func(any) { enemy.Dead = true })
	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), enemy); err != nil {
		return 0, fmt.Errorf("enemy: add enemy: %w", err)
	}

	if typ.Script != "" {
		if err := ecs.Add(w, e, component.AIComponent.Kind(), &component.AI{Script: typ.Script}); err != nil {
			return 0, fmt.Errorf("enemy: add ai: %w", err)
		}
	}
	return e, nil
}
