package prefabs

import "github.com/milk9111/mood/weapon"

// WeaponsSpec is weapons.yaml; weapons fill the slot in file order.
type WeaponsSpec struct {
	Weapons []WeaponSpec `yaml:"weapons"`
}

type WeaponSpec struct {
	Name                   string  `yaml:"name"`
	FireInterval           float64 `yaml:"fire_interval"`
	SlowMotionFireInterval float64 `yaml:"slow_motion_fire_interval"`
	Damage                 int     `yaml:"damage"`
	Range                  float64 `yaml:"range"`
	RecoilShake            string  `yaml:"recoil_shake"`
}

func LoadWeaponsSpec() (WeaponsSpec, error) {
	return LoadSpec[WeaponsSpec]("weapons.yaml")
}

func (s WeaponSpec) Weapon() *weapon.Weapon {
	return &weapon.Weapon{
		Name:                   s.Name,
		FireInterval:           s.FireInterval,
		SlowMotionFireInterval: s.SlowMotionFireInterval,
		Damage:                 s.Damage,
		Range:                  s.Range,
		RecoilShake:            s.RecoilShake,
	}
}
