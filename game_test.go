package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/milk9111/mood/config"
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
	"github.com/milk9111/mood/ecs/system"
	"github.com/milk9111/mood/prefabs"
)

func testGame() *Game {
	return &Game{
		cfg:       config.Default(),
		logger:    zap.NewNop(),
		shakeDefs: map[string]system.ShakeDef{},
		sounds:    map[string]system.Sound{},
	}
}

func TestShakeDefsFromSpec(t *testing.T) {
	defs := shakeDefs(prefabs.ShakesSpec{Shakes: map[string]prefabs.ShakeSpec{
		"land": {Amplitude: 2.5, Frequency: 8, Duration: 0.25, Fade: true},
	}})

	require.Len(t, defs, 1)
	assert.Equal(t, system.ShakeDef{Amplitude: 2.5, Frequency: 8, Duration: 0.25, Fade: true}, defs["land"])
}

func TestNewSessionBuildsLevel(t *testing.T) {
	g := testGame()

	s, err := newSession(g, "level1")
	require.NoError(t, err)

	assert.True(t, ecs.IsAlive(s.world, s.player))
	assert.Equal(t, len(s.specs.Level.Enemies), ecs.Count(s.world, component.EnemyComponent.Kind()))
	assert.Equal(t, len(s.specs.Level.Solids), ecs.Count(s.world, component.SolidComponent.Kind()))
	p, ok := firstPlayer(s)
	require.True(t, ok)
	assert.False(t, p.Character.IsDead())
	assert.Equal(t, 1.0, s.clock.Dilation())
}

func TestNewSessionUnknownLevel(t *testing.T) {
	_, err := newSession(testGame(), "no_such_level")
	assert.Error(t, err)
}

func TestPauseSubscriptionRaisesEvent(t *testing.T) {
	s, err := newSession(testGame(), "level1")
	require.NoError(t, err)
	p, ok := firstPlayer(s)
	require.True(t, ok)

	p.Character.Pause()

	events := s.world.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventPause, events[0].Type)
	assert.Equal(t, s.player, events[0].Entity)
}

func TestApplyReloadWithoutSession(t *testing.T) {
	g := testGame()

	g.applyReload("prefabs/shakes.yaml")
	assert.Contains(t, g.shakeDefs, "land")

	// nothing to apply these to yet
	assert.NotPanics(t, func() {
		g.applyReload("prefabs/scripts/enemy.tengo")
		g.applyReload("prefabs/player.yaml")
		g.applyReload("prefabs/levels/level1.yaml")
		g.applyReload("notes.txt")
	})
	assert.Nil(t, g.session)
}

func TestApplyReloadRetunesPlayer(t *testing.T) {
	g := testGame()
	s, err := newSession(g, "level1")
	require.NoError(t, err)
	g.session = s
	p, _ := firstPlayer(s)
	tuning := p.Character.Tuning()
	tuning.WalkingSpeed = 1
	p.Character.SetTuning(tuning)

	g.applyReload("prefabs/player.yaml")

	want, err := prefabs.LoadPlayerSpec()
	require.NoError(t, err)
	wantTuning, err := want.Tuning()
	require.NoError(t, err)
	assert.Equal(t, wantTuning.WalkingSpeed, p.Character.Tuning().WalkingSpeed)
}
