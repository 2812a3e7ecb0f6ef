package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/milk9111/mood/common"
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
)

func scripted(t *testing.T, w *ecs.World, e ecs.Entity, script string) *component.AI {
	t.Helper()
	ai := &component.AI{Script: script}
	require.NoError(t, ecs.Add(w, e, component.AIComponent.Kind(), ai))
	return ai
}

func inlineScripts(scripts map[string]string) (func(string) ([]byte, error), *int) {
	loads := 0
	return func(name string) ([]byte, error) {
		loads++
		src, ok := scripts[name]
		if !ok {
			return nil, assert.AnError
		}
		return []byte(src), nil
	}, &loads
}

func stepAI(w *ecs.World, s *AISystem, until func() bool, max int) int {
	ticks := 0
	for !until() && ticks < max {
		s.Update(w)
		ticks++
	}
	return ticks
}

func TestEnemyBrainChasesAndAttacks(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(nil)
	rig := addPlayer(t, w, ps, common.Vec3{Z: 96})
	e, enemy := addEnemy(t, w, common.Vec3{X: 500, Z: 96}, 200)
	ai := scripted(t, w, e, "enemy.tengo")
	ps.Sync(w)
	s := NewAISystem(ps, nil)
	w.SetDelta(0.1, 0.1)

	s.Update(w)
	require.Equal(t, "alert", ai.State)
	assert.InDelta(t, 0.4, ai.Timer, 1e-9)

	stepAI(w, s, func() bool { return ai.State == "chase" }, 10)
	require.Equal(t, "chase", ai.State)

	stepAI(w, s, func() bool { return rig.p.Health.Current() < 1000 }, 100)

	assert.Equal(t, "attack", ai.State)
	loc := transformOf(t, w, e).Location
	assert.InDelta(t, 99, loc.X, 1e-6)
	assert.InDelta(t, 0, loc.Y, 1e-6)
	assert.InDelta(t, 180, transformOf(t, w, e).Rotation.Yaw, 1e-9)
	assert.Equal(t, 990, rig.p.Health.Current())
	assert.Greater(t, enemy.Cooldown, 0.0)
	assert.Contains(t, soundNames(w), "enemy_attack")

	// the attack interval gates the next hit
	s.Update(w)
	assert.Equal(t, 990, rig.p.Health.Current())
}

func TestEnemyBrainBlindBehindWall(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(nil)
	addPlayer(t, w, ps, common.Vec3{Z: 96})
	addSolid(t, w, common.Vec3{X: 200, Y: -300}, common.Vec3{X: 240, Y: 300, Z: 400}, false)
	e, _ := addEnemy(t, w, common.Vec3{X: 500, Z: 96}, 200)
	ai := scripted(t, w, e, "enemy.tengo")
	ps.Sync(w)
	s := NewAISystem(ps, nil)
	w.SetDelta(0.1, 0.1)

	for range 10 {
		s.Update(w)
	}

	assert.Equal(t, "idle", ai.State)
	assert.Equal(t, common.Vec3{X: 500, Z: 96}, transformOf(t, w, e).Location)
}

func TestEnemyIgnoresDeadPlayer(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(nil)
	rig := addPlayer(t, w, ps, common.Vec3{Z: 96})
	rig.p.Health.Hurt(5000)
	e, _ := addEnemy(t, w, common.Vec3{X: 300, Z: 96}, 200)
	ai := scripted(t, w, e, "enemy.tengo")
	ps.Sync(w)
	s := NewAISystem(ps, nil)
	w.SetDelta(0.1, 0.1)

	for range 5 {
		s.Update(w)
	}
	assert.Equal(t, "idle", ai.State)
}

func TestScriptLifecycleOrder(t *testing.T) {
	const src = `
initial_state := "a"
record := func(state, entry) {
	if is_undefined(state.log) {
		state.log = ""
	}
	state.log = state.log + entry + ";"
}
onEnter := func(engine, state, current) {
	record(state, "enter:" + current)
}
update := func(engine, state, current) {
	record(state, "update:" + current)
	if current == "a" {
		engine.transition("b")
	}
}
onExit := func(engine, state, current) {
	record(state, "exit:" + current)
}
`
	w := ecs.NewWorld()
	e, _ := addEnemy(t, w, common.Vec3{}, 100)
	ai := scripted(t, w, e, "order.tengo")
	s := NewAISystem(NewPhysicsSystem(nil), nil)
	s.load, _ = inlineScripts(map[string]string{"order.tengo": src})
	w.SetDelta(0.1, 0.1)

	s.Update(w)
	s.Update(w)

	assert.Equal(t, "b", ai.State)
	rt := s.runtimes[e]
	require.NotNil(t, rt)
	log := objectToAny(rt.stateData.Value["log"])
	assert.Equal(t, "enter:a;update:a;exit:a;enter:b;update:b;", log)
}

func TestScriptErrorDisablesEnemy(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	w := ecs.NewWorld()
	e, _ := addEnemy(t, w, common.Vec3{}, 100)
	broken := scripted(t, w, e, "broken.tengo")
	e2, _ := addEnemy(t, w, common.Vec3{X: 50}, 100)
	missing := scripted(t, w, e2, "missing.tengo")

	s := NewAISystem(NewPhysicsSystem(nil), zap.New(core))
	s.load, _ = inlineScripts(map[string]string{"broken.tengo": `
onEnter := func(engine, state, current) {}
update := func(engine, state, current) { engine.explode() }
onExit := func(engine, state, current) {}
`})
	w.SetDelta(0.1, 0.1)

	for range 3 {
		s.Update(w)
	}

	assert.Equal(t, 2, logs.FilterMessage("script failed").Len())
	assert.Equal(t, "idle", broken.State)
	assert.Empty(t, missing.State)
}

func TestAIReloadRecompiles(t *testing.T) {
	w := ecs.NewWorld()
	e, _ := addEnemy(t, w, common.Vec3{}, 100)
	scripted(t, w, e, "enemy.tengo")
	s := NewAISystem(NewPhysicsSystem(nil), nil)
	load, loads := inlineScripts(map[string]string{"enemy.tengo": `
onEnter := func(engine, state, current) {}
update := func(engine, state, current) {}
onExit := func(engine, state, current) {}
`})
	s.load = load
	w.SetDelta(0.1, 0.1)

	s.Update(w)
	s.Update(w)
	assert.Equal(t, 1, *loads)

	s.Reload()
	s.Update(w)
	assert.Equal(t, 2, *loads)
}

func TestDeadEnemyIsRemoved(t *testing.T) {
	w := ecs.NewWorld()
	e, enemy := addEnemy(t, w, common.Vec3{X: 70, Y: 30, Z: 96}, 100)
	s := NewAISystem(NewPhysicsSystem(nil), nil)

	enemy.Health.Hurt(100)
	require.True(t, enemy.Dead)
	w.SetDelta(0.1, 0.1)
	s.Update(w)

	assert.False(t, ecs.IsAlive(w, e))
	events := w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventEnemyKilled, events[0].Type)
	assert.Equal(t, common.Vec3{X: 70, Y: 30, Z: 96}, events[0].Data)
	assert.Equal(t, []string{"enemy_death"}, soundNames(w))
}

func TestEnemyCooldownCountsDown(t *testing.T) {
	w := ecs.NewWorld()
	_, enemy := addEnemy(t, w, common.Vec3{}, 100)
	enemy.Cooldown = 0.5
	s := NewAISystem(NewPhysicsSystem(nil), nil)

	w.SetDelta(1, 0.2)
	s.Update(w)

	assert.InDelta(t, 0.3, enemy.Cooldown, 1e-9)
}
