package system

import (
	"errors"

	"go.uber.org/zap"

	"github.com/milk9111/mood/character"
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
	"github.com/milk9111/mood/weapon"
)

const (
	defaultWeaponRange = 5000.0
	tracerSeconds      = 0.08
)

// WeaponSystem fires each player's selected weapon as a hitscan along the
// camera's forward vector.
type WeaponSystem struct {
	physics *PhysicsSystem
	logger  *zap.Logger

	FireSound string

	bound map[ecs.Entity]*weapon.Slot
}

func NewWeaponSystem(physics *PhysicsSystem, logger *zap.Logger) *WeaponSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeaponSystem{
		physics:   physics,
		logger:    logger.Named("weapon"),
		FireSound: "weapon_fire",
		bound:     make(map[ecs.Entity]*weapon.Slot),
	}
}

func (s *WeaponSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(e ecs.Entity, p *component.Player) {
		if p.Weapons == nil {
			return
		}
		if s.bound[e] != p.Weapons {
			host := NewPlayerHost(w, e, s.physics)
			p.Weapons.SetFireFunc(func(wp *weapon.Weapon, damage int) {
				s.fire(w, host, wp, damage)
			})
			s.bound[e] = p.Weapons
		}
		if err := p.Weapons.Update(dt); err != nil && !errors.Is(err, weapon.ErrNoWeapon) {
			s.logger.Error("weapon update", zap.Error(err))
		}
	})
}

func (s *WeaponSystem) fire(w *ecs.World, host *PlayerHost, wp *weapon.Weapon, damage int) {
	cam := host.Camera()
	start := cam.Location()
	reach := wp.Range
	if reach <= 0 {
		reach = defaultWeaponRange
	}
	end := start.Add(cam.Forward().Scale(reach))

	hit := s.physics.LineTrace(start, end, character.ChannelInterruptClimbing)
	tracer := &component.Tracer{From: start, To: end}
	if hit.Blocked {
		tracer.To = hit.Location
		tracer.Hit = true
		if target, ok := hit.Actor.(character.Target); ok && target.Valid() {
			if hp := target.TargetHealth(); hp != nil {
				hp.Hurt(damage)
			}
		}
	}

	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TracerComponent.Kind(), tracer)
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Seconds: tracerSeconds})
	host.Play(s.FireSound)
	s.logger.Debug("fired", zap.String("weapon", wp.Name), zap.Int("damage", damage), zap.Bool("hit", tracer.Hit))
}
