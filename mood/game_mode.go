package mood

import (
	"go.uber.org/zap"

	"github.com/milk9111/mood/timescale"
)

const slowMotionOwner = "mood.slowmotion"

type ChangedFunc func(tier Tier)

type SlowMotionFunc func(tier Tier)

type SlowMotionEndedFunc func()

// Settings are the game mode tunables, normally loaded from mood.yaml.
type Settings struct {
	MaxMood int
	// Thresholds maps a tier to the minimum mood value for it. TierNone is
	// implicit at zero.
	Thresholds         map[Tier]int
	SlowMotionFactor   float64
	SlowMotionDuration float64
}

func DefaultSettings() Settings {
	return Settings{
		MaxMood: 999,
		Thresholds: map[Tier]int{
			Tier222: 222,
			Tier444: 444,
			Tier666: 666,
		},
		SlowMotionFactor:   0.4,
		SlowMotionDuration: 1.5,
	}
}

// GameMode owns the mood value and tier. Observers run synchronously on the
// caller's goroutine.
type GameMode struct {
	settings Settings
	clock    *timescale.Clock
	logger   *zap.Logger

	value int
	tier  Tier

	slowMotion *timescale.Lease
	slowLeft   float64

	onChanged  []ChangedFunc
	onSlowMo   []SlowMotionFunc
	onSlowDone []SlowMotionEndedFunc
}

func NewGameMode(settings Settings, clock *timescale.Clock, logger *zap.Logger) *GameMode {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.MaxMood <= 0 {
		settings.MaxMood = DefaultSettings().MaxMood
	}
	if settings.Thresholds == nil {
		settings.Thresholds = DefaultSettings().Thresholds
	}
	return &GameMode{settings: settings, clock: clock, logger: logger}
}

func (g *GameMode) SubscribeMoodChanged(fn ChangedFunc) {
	if g == nil || fn == nil {
		return
	}
	g.onChanged = append(g.onChanged, fn)
}

func (g *GameMode) SubscribeSlowMotionTriggered(fn SlowMotionFunc) {
	if g == nil || fn == nil {
		return
	}
	g.onSlowMo = append(g.onSlowMo, fn)
}

func (g *GameMode) SubscribeSlowMotionEnded(fn SlowMotionEndedFunc) {
	if g == nil || fn == nil {
		return
	}
	g.onSlowDone = append(g.onSlowDone, fn)
}

func (g *GameMode) Value() int {
	if g == nil {
		return 0
	}
	return g.value
}

func (g *GameMode) Tier() Tier {
	if g == nil {
		return TierNone
	}
	return g.tier
}

func (g *GameMode) SlowMotionActive() bool {
	return g != nil && g.slowMotion != nil
}

// ChangeMoodValue adds delta, clamped to [0, MaxMood].
func (g *GameMode) ChangeMoodValue(delta int) {
	if g == nil || delta == 0 {
		return
	}
	g.setValue(g.value + delta)
}

func (g *GameMode) ResetMoodValue() {
	if g == nil {
		return
	}
	g.setValue(0)
}

// Update advances slow motion by unscaled frame time.
func (g *GameMode) Update(realDt float64) {
	if g == nil || g.slowMotion == nil {
		return
	}
	g.slowLeft -= realDt
	if g.slowLeft > 0 {
		return
	}
	g.endSlowMotion()
}

func (g *GameMode) setValue(v int) {
	if v < 0 {
		v = 0
	}
	if v > g.settings.MaxMood {
		v = g.settings.MaxMood
	}
	g.value = v

	next := g.tierFor(v)
	if next == g.tier {
		return
	}
	prev := g.tier
	g.tier = next
	g.logger.Debug("mood tier changed",
		zap.Stringer("from", prev),
		zap.Stringer("to", next),
		zap.Int("value", v),
	)
	for _, fn := range g.onChanged {
		fn(next)
	}
	if next > prev {
		g.startSlowMotion(next)
	}
}

func (g *GameMode) tierFor(v int) Tier {
	out := TierNone
	for _, t := range Tiers {
		threshold, ok := g.settings.Thresholds[t]
		if !ok {
			continue
		}
		if v >= threshold && t > out {
			out = t
		}
	}
	return out
}

func (g *GameMode) startSlowMotion(tier Tier) {
	if g.settings.SlowMotionDuration <= 0 {
		return
	}
	if g.slowMotion == nil {
		g.slowMotion = g.clock.Acquire(slowMotionOwner, g.settings.SlowMotionFactor)
		if g.slowMotion == nil {
			g.logger.Error("slow motion lease rejected", zap.Float64("factor", g.settings.SlowMotionFactor))
			return
		}
	}
	g.slowLeft = g.settings.SlowMotionDuration
	for _, fn := range g.onSlowMo {
		fn(tier)
	}
}

func (g *GameMode) endSlowMotion() {
	g.slowMotion.Release()
	g.slowMotion = nil
	g.slowLeft = 0
	for _, fn := range g.onSlowDone {
		fn()
	}
}
