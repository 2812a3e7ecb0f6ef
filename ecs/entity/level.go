package entity

import (
	"fmt"

	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
	"github.com/milk9111/mood/prefabs"
)

func NewSolid(w *ecs.World, spec prefabs.SolidSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SolidComponent.Kind(), &component.Solid{
		Min:       spec.Min.Vec3(),
		Max:       spec.Max.Vec3(),
		Climbable: spec.Climbable,
	}); err != nil {
		return 0, fmt.Errorf("solid: add solid: %w", err)
	}
	return e, nil
}

func NewPickup(w *ecs.World, spec prefabs.PickupPlacement) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Location: spec.Location.Vec3(),
	}); err != nil {
		return 0, fmt.Errorf("pickup: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{
		Kind:       spec.Kind,
		HealAmount: spec.HealAmount,
		Radius:     spec.Radius,
		Sound:      spec.Sound,
	}); err != nil {
		return 0, fmt.Errorf("pickup: add pickup: %w", err)
	}
	return e, nil
}

// LevelSpecs bundles the prefabs a level build reads.
type LevelSpecs struct {
	Level   prefabs.LevelSpec
	Player  prefabs.PlayerSpec
	Weapons prefabs.WeaponsSpec
	Enemies prefabs.EnemySpec
}

// LoadLevel populates an empty world with a level's geometry, enemies,
// pickups and the player, returning the player entity.
func LoadLevel(w *ecs.World, specs LevelSpecs, deps PlayerDeps) (ecs.Entity, error) {
	for i, s := range specs.Level.Solids {
		if _, err := NewSolid(w, s); err != nil {
			return 0, fmt.Errorf("level %s: solid %d: %w", specs.Level.Name, i, err)
		}
	}
	for i, p := range specs.Level.Enemies {
		if _, err := NewEnemy(w, specs.Enemies, p); err != nil {
			return 0, fmt.Errorf("level %s: enemy %d: %w", specs.Level.Name, i, err)
		}
	}
	for i, p := range specs.Level.Pickups {
		if _, err := NewPickup(w, p); err != nil {
			return 0, fmt.Errorf("level %s: pickup %d: %w", specs.Level.Name, i, err)
		}
	}
	player, err := NewPlayer(w, specs.Player, specs.Weapons, specs.Level.Spawn, deps)
	if err != nil {
		return 0, fmt.Errorf("level %s: %w", specs.Level.Name, err)
	}
	if deps.Physics != nil {
		deps.Physics.Sync(w)
	}
	return player, nil
}
