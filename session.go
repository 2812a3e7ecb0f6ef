package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
	"github.com/milk9111/mood/ecs/entity"
	"github.com/milk9111/mood/ecs/system"
	"github.com/milk9111/mood/mood"
	"github.com/milk9111/mood/prefabs"
	"github.com/milk9111/mood/timescale"
)

// session is one loaded level: its world, the shared clock and mood meter,
// and the systems that run it.
type session struct {
	level string
	specs entity.LevelSpecs

	world     *ecs.World
	clock     *timescale.Clock
	mode      *mood.GameMode
	scheduler *ecs.Scheduler
	player    ecs.Entity

	physics *system.PhysicsSystem
	ai      *system.AISystem
	shakes  *system.CameraShakeSystem
	audio   *system.AudioSystem
	render  *system.RenderSystem
}

func loadLevelSpecs(level string) (entity.LevelSpecs, error) {
	lvl, err := prefabs.LoadLevelSpec(level)
	if err != nil {
		return entity.LevelSpecs{}, err
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return entity.LevelSpecs{}, err
	}
	weapons, err := prefabs.LoadWeaponsSpec()
	if err != nil {
		return entity.LevelSpecs{}, err
	}
	enemies, err := prefabs.LoadEnemySpec()
	if err != nil {
		return entity.LevelSpecs{}, err
	}
	return entity.LevelSpecs{Level: lvl, Player: player, Weapons: weapons, Enemies: enemies}, nil
}

func newSession(g *Game, level string) (*session, error) {
	specs, err := loadLevelSpecs(level)
	if err != nil {
		return nil, fmt.Errorf("load level %q: %w", level, err)
	}
	moodSpec, err := prefabs.LoadMoodSpec()
	if err != nil {
		return nil, fmt.Errorf("load mood: %w", err)
	}
	settings, err := moodSpec.Settings()
	if err != nil {
		return nil, fmt.Errorf("mood settings: %w", err)
	}
	tiers, err := moodSpec.TierTable()
	if err != nil {
		return nil, fmt.Errorf("mood tiers: %w", err)
	}

	s := &session{
		level: level,
		specs: specs,
		world: ecs.NewWorld(),
		clock: timescale.NewClock(),
	}
	s.mode = mood.NewGameMode(settings, s.clock, g.logger)
	s.physics = system.NewPhysicsSystem(g.logger)
	actions := system.NewActionSystem()

	seed := uint64(time.Now().UnixNano())
	s.player, err = entity.LoadLevel(s.world, specs, entity.PlayerDeps{
		Physics:  s.physics,
		Input:    actions,
		GameMode: s.mode,
		Clock:    s.clock,
		Tiers:    tiers,
		Logger:   g.logger,
		Rand:     rand.New(rand.NewPCG(seed, seed>>32)),
	})
	if err != nil {
		return nil, err
	}

	input := system.NewInputSystem()
	input.MouseSensitivity = g.cfg.Game.MouseSensitivity
	s.ai = system.NewAISystem(s.physics, g.logger)
	s.shakes = system.NewCameraShakeSystem(g.shakeDefs, g.logger)
	s.audio = system.NewAudioSystem(g.sounds, g.logger)
	s.audio.MasterVolume = g.cfg.Audio.MasterVolume
	s.render = system.NewRenderSystem(s.mode, s.clock)

	s.scheduler = ecs.NewScheduler(
		input,
		actions,
		s.physics,
		system.NewCharacterSystem(),
		system.NewMoveToSystem(),
		system.NewMovementSystem(s.physics),
		s.ai,
		system.NewWeaponSystem(s.physics, g.logger),
		system.NewTTLSystem(),
		system.NewPickupSystem(g.logger),
		system.NewGameModeSystem(s.mode),
		s.shakes,
		s.audio,
	)

	if p, ok := firstPlayer(s); ok {
		p.Character.SubscribePause(func() {
			s.world.Events().Push(ecs.Event{Type: ecs.EventPause, Entity: s.player})
		})
		p.Character.SubscribeInteract(func() {
			s.world.Events().Push(ecs.Event{Type: ecs.EventInteract, Entity: s.player})
		})
	}

	g.logger.Info("level loaded",
		zap.String("level", level),
		zap.String("name", specs.Level.Name),
		zap.Int("enemies", len(specs.Level.Enemies)),
		zap.Int("pickups", len(specs.Level.Pickups)))
	return s, nil
}

// step advances the world by one frame of realDt seconds, dilated by the
// clock.
func (s *session) step(realDt float64) []ecs.Event {
	s.world.SetDelta(realDt, realDt*s.clock.Dilation())
	s.scheduler.Update(s.world)
	return s.world.Events().Drain()
}

func firstPlayer(s *session) (*component.Player, bool) {
	p, ok := ecs.Get(s.world, s.player, playerKind)
	if !ok || p.Character == nil {
		return nil, false
	}
	return p, true
}
