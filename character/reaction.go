package character

import (
	"go.uber.org/zap"

	"github.com/milk9111/mood/mood"
	"github.com/milk9111/mood/weapon"
)

// OnMoodChanged applies the tier's multipliers. Tiers missing from the table
// are ignored.
func (c *Character) OnMoodChanged(tier mood.Tier) {
	m, ok := c.tiers.Lookup(tier)
	if !ok {
		c.logger.Error("unknown mood tier ignored", zap.Stringer("tier", tier))
		return
	}
	c.moodSpeed = m.Speed
	c.moodDamage = m.Damage
	c.moodHealthLoss = m.HealthLoss

	if m.Regenerates && !c.generatingHealth {
		c.regenTimer = 0
	}
	c.generatingHealth = m.Regenerates

	if c.weapons != nil {
		c.weapons.SetDamageMultiplier(m.Damage)
	}
	if c.health != nil {
		c.health.AlterHealthLoss(m.HealthLoss)
	}
}

func (c *Character) OnSlowMotionTriggered(tier mood.Tier) {
	c.slowMotion = true
	if c.health != nil {
		c.health.Heal(c.tuning.SlowMotionHeal)
	}
	c.applyWeaponFireRate()
}

func (c *Character) OnSlowMotionEnded() {
	c.slowMotion = false
	c.applyWeaponFireRate()
}

// OnHurt drains mood by the damage taken and sometimes grunts.
func (c *Character) OnHurt(amount, newHealth int) {
	if c.gameMode != nil {
		c.gameMode.ChangeMoodValue(-amount)
	}
	if c.tuning.HurtSoundChance > 0 && c.roll(10) >= 10-c.tuning.HurtSoundChance {
		c.play(c.tuning.Sounds.Hurt)
	}
}

func (c *Character) OnWeaponUsed(w *weapon.Weapon) {
	if w == nil {
		return
	}
	c.shake(w.RecoilShake)
}

func (c *Character) regenerateHealth(dt float64) {
	c.regenTimer += dt
	if c.regenTimer < c.tuning.HealthGenerationDelay {
		return
	}
	if c.health != nil {
		c.health.Heal(c.tuning.HealthGenerationAmount)
	}
	c.regenTimer = 0
}
