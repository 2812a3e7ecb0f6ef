package component

import "github.com/milk9111/mood/health"

// Enemy is a hostile pawn. Health is shared with the character as its
// execution target.
type Enemy struct {
	Name           string
	Health         *health.Health
	Speed          float64
	SightRange     float64
	AttackRange    float64
	AttackDamage   int
	AttackInterval float64
	Cooldown       float64
	Dead           bool
}

var EnemyComponent = NewComponent[Enemy]()
