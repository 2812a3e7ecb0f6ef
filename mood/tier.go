// Package mood implements the game mode's escalation meter: a mood value that
// rises with violence, crosses thresholds into tiers and triggers slow motion.
package mood

import "fmt"

type Tier int

const (
	TierNone Tier = iota
	Tier222
	Tier444
	Tier666
)

func (t Tier) String() string {
	switch t {
	case TierNone:
		return "none"
	case Tier222:
		return "222"
	case Tier444:
		return "444"
	case Tier666:
		return "666"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// ParseTier accepts the names produced by String.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "none", "":
		return TierNone, nil
	case "222":
		return Tier222, nil
	case "444":
		return Tier444, nil
	case "666":
		return Tier666, nil
	}
	return TierNone, fmt.Errorf("mood: unknown tier %q", s)
}

// Tiers lists known tiers in ascending severity.
var Tiers = []Tier{TierNone, Tier222, Tier444, Tier666}

// Modifiers are the player stat multipliers for a tier.
type Modifiers struct {
	Speed      float64
	Damage     float64
	HealthLoss float64
	// Regenerates is true only for tiers that heal the player over time.
	Regenerates bool
}

type TierTable map[Tier]Modifiers

func DefaultTierTable() TierTable {
	return TierTable{
		TierNone: {Speed: 1, Damage: 1, HealthLoss: 1},
		Tier222:  {Speed: 1.1, Damage: 1.3, HealthLoss: 1},
		Tier444:  {Speed: 1.2, Damage: 1.6, HealthLoss: 0.9},
		Tier666:  {Speed: 1.5, Damage: 2, HealthLoss: 0.9, Regenerates: true},
	}
}

// Lookup reports ok=false for tiers missing from the table.
func (t TierTable) Lookup(tier Tier) (Modifiers, bool) {
	m, ok := t[tier]
	return m, ok
}
