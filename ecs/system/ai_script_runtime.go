package system

import (
	"fmt"
	"math"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"

	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
)

// aiScriptRuntime is one enemy's instance of a compiled brain script.
type aiScriptRuntime struct {
	script      string
	compiled    *tengo.Compiled
	stateData   *tengo.Map
	initial     string
	initialized bool
	pending     string
}

const aiLifecycleDispatchScript = `
if __phase == "enter" {
	onEnter(__engine, __state, __current_state)
} else if __phase == "update" {
	update(__engine, __state, __current_state)
} else if __phase == "exit" {
	onExit(__engine, __state, __current_state)
}
`

// aiContext is what the engine functions of one enemy tick can see.
type aiContext struct {
	sys    *AISystem
	w      *ecs.World
	e      ecs.Entity
	enemy  *component.Enemy
	ai     *component.AI
	t      *component.Transform
	c      *component.Collider
	dt     float64
	player ecs.Entity
	target *component.Transform
}

func (s *AISystem) compile(name string) (*tengo.Compiled, error) {
	if c, ok := s.compiled[name]; ok {
		return c, nil
	}
	src, err := s.load(name)
	if err != nil {
		return nil, fmt.Errorf("ai: load %s: %w", name, err)
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + aiLifecycleDispatchScript))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__current_state", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: compile %s: %w", name, err)
	}
	s.compiled[name] = compiled
	return compiled, nil
}

func (s *AISystem) runtimeFor(e ecs.Entity, name string) (*aiScriptRuntime, error) {
	if rt, ok := s.runtimes[e]; ok && rt.script == name {
		return rt, nil
	}
	compiled, err := s.compile(name)
	if err != nil {
		return nil, err
	}

	rt := &aiScriptRuntime{
		script:    name,
		compiled:  compiled.Clone(),
		stateData: &tengo.Map{Value: map[string]tengo.Object{}},
		initial:   "idle",
	}
	// a noop run defines the script globals so initial_state can be read
	if err := rt.runPhase("noop", rt.initial, nil); err != nil {
		return nil, err
	}
	if rt.compiled.IsDefined("initial_state") {
		if v := strings.TrimSpace(rt.compiled.Get("initial_state").String()); v != "" {
			rt.initial = v
		}
	}
	s.runtimes[e] = rt
	return rt, nil
}

func (rt *aiScriptRuntime) runPhase(phase, current string, engine *tengo.ImmutableMap) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("nil script runtime")
	}
	if engine == nil {
		engine = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if err := rt.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.stateData); err != nil {
		return err
	}
	if err := rt.compiled.Set("__current_state", current); err != nil {
		return err
	}
	return rt.compiled.Run()
}

// step runs enter on first use, then update, then any transition the update
// requested.
func (rt *aiScriptRuntime) step(ctx *aiContext) error {
	state := ctx.ai
	if state.State == "" {
		state.State = rt.initial
	}
	engine := buildAIScriptEngine(ctx, rt)
	if !rt.initialized {
		if err := rt.runPhase("enter", state.State, engine); err != nil {
			return fmt.Errorf("onEnter: %w", err)
		}
		rt.initialized = true
	}
	if err := rt.runPhase("update", state.State, engine); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if rt.pending == "" || rt.pending == state.State {
		rt.pending = ""
		return nil
	}

	if err := rt.runPhase("exit", state.State, engine); err != nil {
		return fmt.Errorf("onExit: %w", err)
	}
	state.State = rt.pending
	rt.pending = ""
	if err := rt.runPhase("enter", state.State, engine); err != nil {
		return fmt.Errorf("onEnter: %w", err)
	}
	return nil
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func buildAIScriptEngine(ctx *aiContext, rt *aiScriptRuntime) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}
	fn := func(name string, f func(args ...tengo.Object) (tengo.Object, error)) {
		values[name] = &tengo.UserFunction{Name: name, Value: f}
	}

	fn("transition", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := strings.TrimSpace(objectAsString(args[0]))
		if name == "" {
			return tengo.FalseValue, nil
		}
		rt.pending = name
		return tengo.TrueValue, nil
	})

	fn("distance_to_player", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: ctx.distanceToPlayer()}, nil
	})

	fn("can_see_player", func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(ctx.canSeePlayer()), nil
	})

	fn("sight_range", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: ctx.enemy.SightRange}, nil
	})

	fn("attack_range", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: ctx.enemy.AttackRange}, nil
	})

	fn("move_toward_player", func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(ctx.moveTowardPlayer()), nil
	})

	fn("ready", func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(ctx.enemy.Cooldown <= 0), nil
	})

	fn("attack", func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(ctx.attack()), nil
	})

	fn("wait", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		secs, ok := objectToAny(args[0]).(float64)
		if !ok {
			if n, isInt := objectToAny(args[0]).(int); isInt {
				secs, ok = float64(n), true
			}
		}
		if !ok {
			return tengo.FalseValue, nil
		}
		ctx.ai.Timer = math.Max(secs, 0)
		return tengo.TrueValue, nil
	})

	fn("waiting", func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(ctx.ai.Timer > 0), nil
	})

	fn("log", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) > 0 {
			ctx.sys.logger.Debug("script",
				zap.Stringer("entity", ctx.e),
				zap.String("state", ctx.ai.State),
				zap.String("msg", objectAsString(args[0])))
		}
		return tengo.UndefinedValue, nil
	})

	return &tengo.ImmutableMap{Value: values}
}

func (ctx *aiContext) distanceToPlayer() float64 {
	if ctx.target == nil {
		return math.Inf(1)
	}
	return ctx.t.Location.Distance(ctx.target.Location)
}

func (ctx *aiContext) canSeePlayer() bool {
	if ctx.target == nil || ctx.distanceToPlayer() > ctx.enemy.SightRange {
		return false
	}
	return ctx.sys.physics.LineOfSight(ctx.t.Location, ctx.target.Location)
}

// arriveInside is how far inside attack range a chaser stops.
const arriveInside = 1.0

// moveTowardPlayer walks horizontally toward the player until it is inside
// attack range. Static geometry stops it.
func (ctx *aiContext) moveTowardPlayer() bool {
	if ctx.target == nil {
		return false
	}
	to := ctx.target.Location.Sub(ctx.t.Location)
	to.Z = 0
	dist := to.Length()
	if dist <= ctx.enemy.AttackRange || dist == 0 {
		return false
	}
	dir := to.Scale(1 / dist)
	ctx.t.Rotation.Yaw = math.Atan2(dir.Y, dir.X) * 180 / math.Pi

	stop := math.Max(ctx.enemy.AttackRange-arriveInside, 0)
	step := math.Min(ctx.enemy.Speed*ctx.dt, dist-stop)
	radius, half := 0.0, 0.0
	if ctx.c != nil {
		radius, half = ctx.c.Radius, ctx.c.HalfHeight
	}
	next := ctx.t.Location.Add(dir.Scale(step))
	if ctx.sys.physics.Blocked(ctx.t.Location, next, radius, half) {
		return false
	}
	ctx.t.Location = next
	return true
}

func (ctx *aiContext) attack() bool {
	if ctx.enemy.Cooldown > 0 || ctx.distanceToPlayer() > ctx.enemy.AttackRange {
		return false
	}
	p, ok := ecs.Get(ctx.w, ctx.player, component.PlayerComponent.Kind())
	if !ok || p.Health == nil || p.Health.IsDead() {
		return false
	}
	ctx.enemy.Cooldown = ctx.enemy.AttackInterval
	p.Health.Hurt(ctx.enemy.AttackDamage)
	requestEntity(ctx.w, component.SoundRequestComponent.Kind(), &component.SoundRequest{Name: ctx.sys.AttackSound})
	return true
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectToAny(obj tengo.Object) any {
	if obj == nil {
		return nil
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	case *tengo.Int:
		return int(v.Value)
	case *tengo.Float:
		return v.Value
	case *tengo.Bool:
		return !v.IsFalsy()
	case *tengo.Array:
		out := make([]any, 0, len(v.Value))
		for _, item := range v.Value {
			out = append(out, objectToAny(item))
		}
		return out
	case *tengo.Map:
		out := make(map[string]any, len(v.Value))
		for k, item := range v.Value {
			out[k] = objectToAny(item)
		}
		return out
	case *tengo.Undefined:
		return nil
	default:
		return v.String()
	}
}
