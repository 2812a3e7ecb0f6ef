package system

import (
	"github.com/d5/tengo/v2"
	"go.uber.org/zap"

	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
	"github.com/milk9111/mood/prefabs"
)

// AISystem runs each enemy's tengo brain, counts down attack cooldowns and
// removes enemies once they die.
type AISystem struct {
	logger  *zap.Logger
	physics *PhysicsSystem
	load    func(name string) ([]byte, error)

	AttackSound string
	DeathSound  string

	compiled map[string]*tengo.Compiled
	runtimes map[ecs.Entity]*aiScriptRuntime
	failed   map[ecs.Entity]bool
}

func NewAISystem(physics *PhysicsSystem, logger *zap.Logger) *AISystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AISystem{
		logger:      logger.Named("ai"),
		physics:     physics,
		load:        prefabs.LoadScript,
		AttackSound: "enemy_attack",
		DeathSound:  "enemy_death",
		compiled:    make(map[string]*tengo.Compiled),
		runtimes:    make(map[ecs.Entity]*aiScriptRuntime),
		failed:      make(map[ecs.Entity]bool),
	}
}

// Reload drops compiled scripts so the next tick recompiles them from disk.
// Running enemies restart in their script's initial state.
func (s *AISystem) Reload() {
	s.compiled = make(map[string]*tengo.Compiled)
	s.runtimes = make(map[ecs.Entity]*aiScriptRuntime)
	s.failed = make(map[ecs.Entity]bool)
	s.logger.Info("scripts reloaded")
}

func (s *AISystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.Delta()

	player, target := s.findPlayer(w)

	var dead []ecs.Entity
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, t *component.Transform) {
		if enemy.Dead {
			dead = append(dead, e)
			return
		}
		if enemy.Cooldown > 0 {
			enemy.Cooldown -= dt
		}
		ai, ok := ecs.Get(w, e, component.AIComponent.Kind())
		if !ok || ai.Script == "" || s.failed[e] {
			return
		}
		if ai.Timer > 0 {
			ai.Timer -= dt
		}

		rt, err := s.runtimeFor(e, ai.Script)
		if err != nil {
			s.fail(e, err)
			return
		}
		collider, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
		ctx := &aiContext{
			sys:    s,
			w:      w,
			e:      e,
			enemy:  enemy,
			ai:     ai,
			t:      t,
			c:      collider,
			dt:     dt,
			player: player,
			target: target,
		}
		if err := rt.step(ctx); err != nil {
			s.fail(e, err)
		}
	})

	for _, e := range dead {
		s.kill(w, e)
	}
}

// findPlayer returns the first living player and its transform.
func (s *AISystem) findPlayer(w *ecs.World) (ecs.Entity, *component.Transform) {
	var (
		found  ecs.Entity
		target *component.Transform
	)
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Player, t *component.Transform) {
		if target != nil {
			return
		}
		if p.Character != nil && p.Character.IsDead() {
			return
		}
		found, target = e, t
	})
	return found, target
}

// fail stops scripting an enemy after its first script error so a broken
// script does not flood the log every frame.
func (s *AISystem) fail(e ecs.Entity, err error) {
	s.failed[e] = true
	s.logger.Error("script failed", zap.Stringer("entity", e), zap.Error(err))
}

func (s *AISystem) kill(w *ecs.World, e ecs.Entity) {
	var name string
	if enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind()); ok {
		name = enemy.Name
	}
	var data any
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		data = t.Location
	}
	delete(s.runtimes, e)
	delete(s.failed, e)
	ecs.DestroyEntity(w, e)
	w.Events().Push(ecs.Event{Type: ecs.EventEnemyKilled, Entity: e, Data: data})
	requestEntity(w, component.SoundRequestComponent.Kind(), &component.SoundRequest{Name: s.DeathSound})
	s.logger.Debug("enemy killed", zap.String("name", name), zap.Stringer("entity", e))
}
