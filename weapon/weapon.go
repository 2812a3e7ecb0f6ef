package weapon

import "errors"

var ErrNoWeapon = errors.New("weapon: slot is empty")

// Weapon fires every FireInterval seconds, or SlowMotionFireInterval while the
// game is in slow motion.
type Weapon struct {
	Name                   string
	FireInterval           float64
	SlowMotionFireInterval float64
	Damage                 int
	Range                  float64
	RecoilShake            string

	slowMotion bool
}

func (w *Weapon) SetSlowMotion(on bool) {
	if w == nil {
		return
	}
	w.slowMotion = on
}

func (w *Weapon) SlowMotion() bool {
	return w != nil && w.slowMotion
}

// Interval is the current delay between shots.
func (w *Weapon) Interval() float64 {
	if w == nil {
		return 0
	}
	if w.slowMotion && w.SlowMotionFireInterval > 0 {
		return w.SlowMotionFireInterval
	}
	return w.FireInterval
}

// FireRate is shots per second.
func (w *Weapon) FireRate() float64 {
	iv := w.Interval()
	if iv <= 0 {
		return 0
	}
	return 1 / iv
}
