package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestHealClampsToMax(t *testing.T) {
	h := New(nil, 100)
	h.Heal(50)
	assert.Equal(t, 100, h.Current())
	assert.Equal(t, 1.0, h.Percent())
}

func TestHurtNotifiesAndDiesOnce(t *testing.T) {
	owner := "enemy"
	h := New(owner, 100)

	var hurts [][2]int
	deaths := 0
	var deadOwner any
	h.SubscribeHurt(func(amount, newHealth int) { hurts = append(hurts, [2]int{amount, newHealth}) })
	h.SubscribeDeath(func(o any) {
		deaths++
		deadOwner = o
	})

	h.Hurt(30)
	h.Hurt(80)
	h.Hurt(10)

	require.Len(t, hurts, 2)
	assert.Equal(t, [2]int{30, 70}, hurts[0])
	assert.Equal(t, [2]int{80, 0}, hurts[1])
	assert.Equal(t, 1, deaths)
	assert.Equal(t, owner, deadOwner)
	assert.True(t, h.IsDead())

	h.Heal(10)
	assert.Equal(t, 0, h.Current(), "dead health does not heal")

	h.Reset()
	assert.False(t, h.IsDead())
	assert.Equal(t, 100, h.Current())
}

func TestLossMultiplier(t *testing.T) {
	cases := []struct {
		name   string
		mult   float64
		amount int
		want   int
	}{
		{"normal", 1, 20, 80},
		{"mood_666", 0.9, 20, 82},
		{"ignored_negative", -1, 20, 80},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := New(nil, 100)
			h.AlterHealthLoss(c.mult)
			h.Hurt(c.amount)
			assert.Equal(t, c.want, h.Current())
		})
	}
}

func TestPropertyPercentInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := New(nil, rapid.IntRange(1, 1000).Draw(t, "max"))
		ops := rapid.SliceOf(rapid.IntRange(-500, 500)).Draw(t, "ops")
		for _, op := range ops {
			if op < 0 {
				h.Hurt(-op)
			} else {
				h.Heal(op)
			}
			p := h.Percent()
			if p < 0 || p > 1 {
				t.Fatalf("percent %v out of range", p)
			}
		}
	})
}
