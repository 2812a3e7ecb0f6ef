// Package character is the first-person player controller: a single state
// machine that tunes movement and camera per state and hosts the ledge climb,
// enemy execution, mood reaction, health regeneration and death camera
// behaviors. It talks to the simulation only through the interfaces in
// host.go, so it runs the same inside the ECS host and in tests.
package character

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/milk9111/mood/mood"
	"github.com/milk9111/mood/timescale"
)

const executionOwner = "character.execution"

type StateChangedFunc func(from, to State)

// Deps are the host collaborators. Body, View, Camera and World are
// required; the rest may be nil and their effects are skipped.
type Deps struct {
	Body     Body
	View     View
	Camera   Camera
	World    World
	Sounds   Sounds
	Health   Health
	Weapons  WeaponSlot
	GameMode GameMode
	Clock    *timescale.Clock
	Tiers    mood.TierTable
	Logger   *zap.Logger
	Rand     *rand.Rand
}

type Character struct {
	tuning Tuning
	logger *zap.Logger
	rng    *rand.Rand

	body     Body
	view     View
	camera   Camera
	world    World
	sounds   Sounds
	health   Health
	weapons  WeaponSlot
	gameMode GameMode
	clock    *timescale.Clock
	tiers    mood.TierTable

	state State

	midAir           bool
	canClimb         bool
	executing        bool
	foundExecutable  bool
	slowMotion       bool
	generatingHealth bool
	dead             bool
	respawned        bool
	inputBound       bool
	begun            bool

	climbTimer     float64
	executionTimer float64
	regenTimer     float64

	target       Target
	targetHealth TargetHealth
	dilation     *timescale.Lease

	moodSpeed      float64
	moodDamage     float64
	moodHealthLoss float64

	onStateChanged []StateChangedFunc
	onPause        []func()
	onInteract     []func()
}

func New(tuning Tuning, deps Deps) *Character {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tiers := deps.Tiers
	if tiers == nil {
		tiers = mood.DefaultTierTable()
	}
	return &Character{
		tuning:         tuning,
		logger:         logger.Named("character"),
		rng:            deps.Rand,
		body:           deps.Body,
		view:           deps.View,
		camera:         deps.Camera,
		world:          deps.World,
		sounds:         deps.Sounds,
		health:         deps.Health,
		weapons:        deps.Weapons,
		gameMode:       deps.GameMode,
		clock:          deps.Clock,
		tiers:          tiers,
		state:          StateIdle,
		moodSpeed:      1,
		moodDamage:     1,
		moodHealthLoss: 1,
	}
}

// BeginPlay registers the character with its collaborators' notifications.
// Calling it again is a no-op.
func (c *Character) BeginPlay() {
	if c.begun {
		return
	}
	c.begun = true

	if c.camera != nil && c.tuning.WalkingFOV == 0 {
		c.tuning.WalkingFOV = c.camera.FieldOfView()
	}
	if c.body != nil && c.tuning.WalkingSpeed == 0 {
		c.tuning.WalkingSpeed = c.body.MaxWalkSpeed()
	}

	if c.gameMode != nil {
		c.gameMode.SubscribeMoodChanged(c.OnMoodChanged)
		c.gameMode.SubscribeSlowMotionTriggered(c.OnSlowMotionTriggered)
		c.gameMode.SubscribeSlowMotionEnded(c.OnSlowMotionEnded)
	} else {
		c.logger.Error("no game mode; mood reactions disabled")
	}
	if c.health != nil {
		c.health.SubscribeHurt(c.OnHurt)
		c.health.SubscribeDeath(c.OnDeath)
	}
	if c.weapons != nil {
		c.weapons.SubscribeWeaponUsed(c.OnWeaponUsed)
	}
}

type procedure struct {
	name   string
	active func(c *Character) bool
	run    func(c *Character, dt float64)
}

// tickProcedures run after the state switch in this fixed order. Guards are
// evaluated just before each procedure so a later one sees state changes
// made earlier in the same tick.
var tickProcedures = []procedure{
	{name: "ledge", active: (*Character).canSearchLedge, run: (*Character).findLedge},
	{name: "execution_move", active: (*Character).IsExecuting, run: (*Character).moveToTarget},
	{name: "execution_find", active: (*Character).canSearchTarget, run: (*Character).findTarget},
	{name: "regen", active: (*Character).IsGeneratingHealth, run: (*Character).regenerateHealth},
}

// Tick advances the character by dt seconds of dilated simulation time.
func (c *Character) Tick(dt float64) {
	if c == nil || c.body == nil {
		return
	}
	c.midAir = c.body.Velocity().Z != 0

	c.checkPlayerState(dt)
	for _, p := range tickProcedures {
		if p.active(c) {
			p.run(c, dt)
		}
	}
}

// SetTuning swaps tunables at runtime, used by prefab hot reload.
func (c *Character) SetTuning(t Tuning) {
	c.tuning = t
}

func (c *Character) Tuning() Tuning { return c.tuning }

func (c *Character) State() State { return c.state }

func (c *Character) IsMidAir() bool { return c.midAir }

func (c *Character) CanClimb() bool { return c.canClimb }

func (c *Character) IsExecuting() bool { return c.executing }

func (c *Character) HasFoundExecutableEnemy() bool { return c.foundExecutable }

func (c *Character) IsSlowMotion() bool { return c.slowMotion }

func (c *Character) IsGeneratingHealth() bool { return c.generatingHealth }

func (c *Character) IsDead() bool { return c.dead }

func (c *Character) HasRespawned() bool { return c.respawned }

// Target is the executable enemy, nil when none is locked.
func (c *Character) Target() Target { return c.target }

// MoodModifiers returns the speed, damage and health-loss multipliers in use.
func (c *Character) MoodModifiers() (speed, damage, healthLoss float64) {
	return c.moodSpeed, c.moodDamage, c.moodHealthLoss
}

func (c *Character) SubscribeStateChanged(fn StateChangedFunc) {
	if fn == nil {
		return
	}
	c.onStateChanged = append(c.onStateChanged, fn)
}

func (c *Character) SubscribePause(fn func()) {
	if fn == nil {
		return
	}
	c.onPause = append(c.onPause, fn)
}

func (c *Character) SubscribeInteract(fn func()) {
	if fn == nil {
		return
	}
	c.onInteract = append(c.onInteract, fn)
}

func (c *Character) play(name string) {
	if c.sounds == nil || name == "" {
		return
	}
	c.sounds.Play(name)
}

func (c *Character) roll(n int) int {
	if c.rng != nil {
		return c.rng.IntN(n)
	}
	return rand.IntN(n)
}
