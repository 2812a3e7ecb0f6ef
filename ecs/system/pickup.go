package system

import (
	"math"

	"go.uber.org/zap"

	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
)

const (
	defaultPickupRadius = 24.0
	defaultHealAmount   = 400
	pickupBobSpeed      = 3.0
)

// PickupSystem animates pickups and applies them when a living player walks
// over one.
type PickupSystem struct {
	logger *zap.Logger
}

func NewPickupSystem(logger *zap.Logger) *PickupSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PickupSystem{logger: logger.Named("pickup")}
}

func (s *PickupSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.Delta()

	player, ok := ecs.First(w, component.PlayerComponent.Kind())
	var (
		p  *component.Player
		pt *component.Transform
		pc *component.Collider
	)
	if ok {
		p, _ = ecs.Get(w, player, component.PlayerComponent.Kind())
		pt, _ = ecs.Get(w, player, component.TransformComponent.Kind())
		pc, _ = ecs.Get(w, player, component.ColliderComponent.Kind())
	}
	alive := p != nil && pt != nil && (p.Character == nil || !p.Character.IsDead())

	var taken []ecs.Entity
	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pickup *component.Pickup, t *component.Transform) {
		pickup.BobPhase = math.Mod(pickup.BobPhase+dt*pickupBobSpeed, 2*math.Pi)
		if !alive || !overlaps(pt, pc, t, pickup) {
			return
		}
		taken = append(taken, e)
	})

	for _, e := range taken {
		pickup, _ := ecs.Get(w, e, component.PickupComponent.Kind())
		s.apply(w, p, pickup)
		ecs.DestroyEntity(w, e)
	}
}

func overlaps(pt *component.Transform, pc *component.Collider, t *component.Transform, pickup *component.Pickup) bool {
	radius := pickup.Radius
	if radius <= 0 {
		radius = defaultPickupRadius
	}
	half := 0.0
	if pc != nil {
		radius += pc.Radius
		half = pc.HalfHeight
	}
	dx, dy := pt.Location.X-t.Location.X, pt.Location.Y-t.Location.Y
	if math.Hypot(dx, dy) > radius {
		return false
	}
	return math.Abs(pt.Location.Z-t.Location.Z) <= half+pickup.Radius
}

func (s *PickupSystem) apply(w *ecs.World, p *component.Player, pickup *component.Pickup) {
	switch pickup.Kind {
	case "", "health":
		amount := pickup.HealAmount
		if amount <= 0 {
			amount = defaultHealAmount
		}
		if p.Health != nil {
			p.Health.Heal(amount)
		}
		s.logger.Debug("health picked up", zap.Int("amount", amount))
	default:
		s.logger.Warn("unknown pickup kind", zap.String("kind", pickup.Kind))
	}
	if pickup.Sound != "" {
		requestEntity(w, component.SoundRequestComponent.Kind(), &component.SoundRequest{Name: pickup.Sound})
	}
}
