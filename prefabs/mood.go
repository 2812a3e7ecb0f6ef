package prefabs

import (
	"fmt"

	"github.com/milk9111/mood/mood"
)

// MoodSpec is mood.yaml.
type MoodSpec struct {
	MaxMood    int                     `yaml:"max_mood"`
	Thresholds map[string]int          `yaml:"thresholds"`
	SlowMotion SlowMotionSpec          `yaml:"slow_motion"`
	Tiers      map[string]ModifierSpec `yaml:"tiers"`
}

type SlowMotionSpec struct {
	Factor   float64 `yaml:"factor"`
	Duration float64 `yaml:"duration"`
}

type ModifierSpec struct {
	Speed       float64 `yaml:"speed"`
	Damage      float64 `yaml:"damage"`
	HealthLoss  float64 `yaml:"health_loss"`
	Regenerates bool    `yaml:"regenerates"`
}

func LoadMoodSpec() (MoodSpec, error) {
	return LoadSpec[MoodSpec]("mood.yaml")
}

// Settings converts the spec; missing values fall back to mood.DefaultSettings.
func (s MoodSpec) Settings() (mood.Settings, error) {
	out := mood.DefaultSettings()
	if s.MaxMood > 0 {
		out.MaxMood = s.MaxMood
	}
	if s.SlowMotion.Factor > 0 {
		out.SlowMotionFactor = s.SlowMotion.Factor
	}
	if s.SlowMotion.Duration > 0 {
		out.SlowMotionDuration = s.SlowMotion.Duration
	}
	if len(s.Thresholds) > 0 {
		out.Thresholds = make(map[mood.Tier]int, len(s.Thresholds))
		for name, v := range s.Thresholds {
			tier, err := mood.ParseTier(name)
			if err != nil {
				return mood.Settings{}, fmt.Errorf("prefabs: mood thresholds: %w", err)
			}
			if tier == mood.TierNone {
				return mood.Settings{}, fmt.Errorf("prefabs: mood thresholds: tier none has no threshold")
			}
			out.Thresholds[tier] = v
		}
	}
	return out, nil
}

// TierTable converts the tier modifiers; an empty section yields the defaults.
func (s MoodSpec) TierTable() (mood.TierTable, error) {
	if len(s.Tiers) == 0 {
		return mood.DefaultTierTable(), nil
	}
	table := make(mood.TierTable, len(s.Tiers))
	for name, m := range s.Tiers {
		tier, err := mood.ParseTier(name)
		if err != nil {
			return nil, fmt.Errorf("prefabs: mood tiers: %w", err)
		}
		table[tier] = mood.Modifiers{Speed: m.Speed, Damage: m.Damage, HealthLoss: m.HealthLoss, Regenerates: m.Regenerates}
	}
	return table, nil
}
