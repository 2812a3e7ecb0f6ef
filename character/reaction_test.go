package character

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/milk9111/mood/common"
	"github.com/milk9111/mood/mood"
	"github.com/milk9111/mood/weapon"
)

func TestMoodTierModifiers(t *testing.T) {
	cases := []struct {
		tier  mood.Tier
		speed float64
		dmg   float64
		loss  float64
		regen bool
	}{
		{mood.TierNone, 1, 1, 1, false},
		{mood.Tier222, 1.1, 1.3, 1, false},
		{mood.Tier444, 1.2, 1.6, 0.9, false},
		{mood.Tier666, 1.5, 2, 0.9, true},
	}
	for _, tc := range cases {
		t.Run(tc.tier.String(), func(t *testing.T) {
			r := newRig()
			r.c.OnMoodChanged(tc.tier)

			speed, dmg, loss := r.c.MoodModifiers()
			assert.Equal(t, tc.speed, speed)
			assert.Equal(t, tc.dmg, dmg)
			assert.Equal(t, tc.loss, loss)
			assert.Equal(t, tc.regen, r.c.IsGeneratingHealth())
			assert.Equal(t, tc.dmg, r.slot.DamageMultiplier())
			assert.Equal(t, tc.loss, r.health.LossMultiplier())
		})
	}
}

func TestUnknownTierIgnored(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	r := newRig()
	r.c.logger = zap.New(core)
	r.c.OnMoodChanged(mood.Tier444)

	r.c.OnMoodChanged(mood.Tier(7))

	speed, _, _ := r.c.MoodModifiers()
	assert.Equal(t, 1.2, speed)
	assert.Equal(t, 1, logs.Len())
}

func TestRegenerationAtTopTier(t *testing.T) {
	r := newRig()
	r.mode.ChangeMoodValue(999)
	require.Equal(t, mood.Tier666, r.mode.Tier())
	require.True(t, r.c.IsGeneratingHealth())

	r.health.Hurt(100)
	require.Equal(t, 910, r.health.Current(), "666 takes 10% less damage")
	require.Equal(t, mood.Tier666, r.mode.Tier())

	for range 4 {
		r.c.Tick(0.25)
	}
	assert.Equal(t, 915, r.health.Current())

	r.mode.ResetMoodValue()
	assert.False(t, r.c.IsGeneratingHealth())
	for range 8 {
		r.c.Tick(0.25)
	}
	assert.Equal(t, 915, r.health.Current())
}

func TestSlowMotionScenario(t *testing.T) {
	r := newRig()

	r.mode.ChangeMoodValue(222)

	assert.True(t, r.c.IsSlowMotion())
	assert.Equal(t, 1000, r.health.Current(), "heal clamps at max")
	assert.True(t, r.slot.Selected().SlowMotion())
	assert.InDelta(t, 0.25, r.slot.Selected().Interval(), 1e-9)
	assert.InDelta(t, 0.4, r.clock.Dilation(), 1e-9)

	r.mode.Update(mood.DefaultSettings().SlowMotionDuration)

	assert.False(t, r.c.IsSlowMotion())
	assert.False(t, r.slot.Selected().SlowMotion())
	assert.Equal(t, 1.0, r.clock.Dilation())
}

func TestSlowMotionHeals(t *testing.T) {
	r := newRig()
	r.health.Hurt(200)
	r.mode.ChangeMoodValue(400)
	assert.Equal(t, 850, r.health.Current())
}

func TestHurtDrainsMood(t *testing.T) {
	r := newRig()
	r.mode.ChangeMoodValue(300)

	r.health.Hurt(120)

	assert.Equal(t, 180, r.mode.Value())
}

func TestHurtSoundChance(t *testing.T) {
	r := newRig()
	tuning := r.c.Tuning()
	tuning.HurtSoundChance = 10
	r.c.SetTuning(tuning)
	r.health.Hurt(10)
	assert.Equal(t, []string{"player_hurt"}, r.sounds.played)

	r = newRig()
	tuning.HurtSoundChance = 0
	r.c.SetTuning(tuning)
	for range 20 {
		r.health.Hurt(1)
	}
	assert.Empty(t, r.sounds.played)
}

func TestHurtSoundRateRoughlyThreeInTen(t *testing.T) {
	r := newRig()
	r.c.rng = rand.New(rand.NewPCG(7, 11))
	for range 1000 {
		r.c.OnHurt(0, 1000)
	}
	assert.InDelta(t, 300, len(r.sounds.played), 60)
}

func TestWeaponRecoilShakes(t *testing.T) {
	r := newRig()
	r.c.OnWeaponUsed(&weapon.Weapon{Name: "shotgun", RecoilShake: "recoil_heavy"})
	r.c.OnWeaponUsed(nil)
	assert.Equal(t, []string{"recoil_heavy"}, r.camera.shakes)
}

func TestLandedShakes(t *testing.T) {
	r := newRig()
	r.c.Landed()
	assert.Equal(t, []string{"land"}, r.camera.shakes)
}

func TestDeathAndRespawn(t *testing.T) {
	r := newRig()
	r.mode.ChangeMoodValue(500)
	r.view.rot = common.Rotator{Yaw: 90}

	r.health.Hurt(5000)

	require.True(t, r.c.IsDead())
	assert.Equal(t, StateNoControl, r.c.State())
	assert.Equal(t, 0, r.mode.Value())

	r.c.StopSprinting()
	r.c.Pause()
	assert.Equal(t, StateNoControl, r.c.State())

	for range 600 {
		r.c.Tick(frame)
	}
	roll := r.view.rot.Roll
	assert.GreaterOrEqual(t, roll, r.c.Tuning().DeathRollLimit)
	assert.Less(t, roll, r.c.Tuning().DeathRollTarget)
	assert.NotEmpty(t, r.body.inputs, "body drifts while falling")
	assert.True(t, r.c.IsDead())

	r.c.ResetPlayer()
	assert.True(t, r.c.HasRespawned())
	ticks := 0
	for r.c.IsDead() && ticks < 2000 {
		r.c.Tick(frame)
		ticks++
	}

	require.False(t, r.c.IsDead())
	assert.False(t, r.c.HasRespawned())
	assert.Equal(t, StateIdle, r.c.State())
	assert.Equal(t, 0.0, r.view.rot.Roll)
	assert.Equal(t, 90.0, r.view.rot.Yaw)
	assert.Equal(t, 1000, r.health.Current())
}

func TestDeathAbortsExecution(t *testing.T) {
	r := newRig()
	r.lockEnemy(300, 0.5)
	r.c.Tick(frame)
	r.c.ToggleExecute()
	require.True(t, r.c.IsExecuting())

	r.health.Hurt(5000)

	assert.False(t, r.c.IsExecuting())
	assert.Equal(t, 1.0, r.clock.Dilation())
	assert.Equal(t, StateNoControl, r.c.State())

	r.c.Tick(frame)
	assert.Equal(t, StateNoControl, r.c.State())
}

func TestDeathCancelsClimb(t *testing.T) {
	r := ledgeRig()
	r.c.Tick(frame)
	require.Equal(t, StateClimbingLedge, r.c.State())

	r.health.Hurt(5000)

	assert.Equal(t, 1, r.world.cancels)
	assert.Equal(t, StateNoControl, r.c.State())
	for range 60 {
		r.c.Tick(frame)
	}
	assert.Equal(t, StateNoControl, r.c.State())
}
