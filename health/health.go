// Package health tracks hit points for the player and enemies.
package health

import "math"

type HurtFunc func(amount, newHealth int)

type DeathFunc func(owner any)

type Health struct {
	owner          any
	max            int
	current        int
	lossMultiplier float64
	dead           bool

	onHurt  []HurtFunc
	onDeath []DeathFunc
}

// New returns a full Health. owner is passed back to death observers.
func New(owner any, max int) *Health {
	if max < 1 {
		max = 1
	}
	return &Health{
		owner:          owner,
		max:            max,
		current:        max,
		lossMultiplier: 1,
	}
}

func (h *Health) SubscribeHurt(fn HurtFunc) {
	if h == nil || fn == nil {
		return
	}
	h.onHurt = append(h.onHurt, fn)
}

func (h *Health) SubscribeDeath(fn DeathFunc) {
	if h == nil || fn == nil {
		return
	}
	h.onDeath = append(h.onDeath, fn)
}

func (h *Health) Heal(amount int) {
	if h == nil || amount <= 0 || h.dead {
		return
	}
	h.current += amount
	if h.current > h.max {
		h.current = h.max
	}
}

// Hurt applies amount scaled by the loss multiplier. Death fires once, the
// first time health reaches zero.
func (h *Health) Hurt(amount int) {
	if h == nil || amount <= 0 || h.dead {
		return
	}
	loss := int(math.Round(float64(amount) * h.lossMultiplier))
	if loss <= 0 {
		return
	}
	h.current -= loss
	if h.current < 0 {
		h.current = 0
	}
	for _, fn := range h.onHurt {
		fn(loss, h.current)
	}
	if h.current == 0 && !h.dead {
		h.dead = true
		for _, fn := range h.onDeath {
			fn(h.owner)
		}
	}
}

func (h *Health) Reset() {
	if h == nil {
		return
	}
	h.current = h.max
	h.dead = false
}

func (h *Health) Percent() float64 {
	if h == nil || h.max <= 0 {
		return 0
	}
	return float64(h.current) / float64(h.max)
}

func (h *Health) AlterHealthLoss(multiplier float64) {
	if h == nil || multiplier < 0 {
		return
	}
	h.lossMultiplier = multiplier
}

func (h *Health) LossMultiplier() float64 {
	if h == nil {
		return 0
	}
	return h.lossMultiplier
}

func (h *Health) Current() int {
	if h == nil {
		return 0
	}
	return h.current
}

func (h *Health) Max() int {
	if h == nil {
		return 0
	}
	return h.max
}

func (h *Health) IsDead() bool {
	return h != nil && h.dead
}
