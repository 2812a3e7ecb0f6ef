package weapon

import "math"

// FireFunc performs the hit-scan for a shot. damage already includes the
// slot's damage multiplier.
type FireFunc func(w *Weapon, damage int)

type UsedFunc func(w *Weapon)

// Slot holds the player's weapons and the trigger state.
type Slot struct {
	weapons          []*Weapon
	selected         int
	triggerHeld      bool
	damageMultiplier float64
	cooldown         float64

	fire   FireFunc
	onUsed []UsedFunc
}

func NewSlot(fire FireFunc) *Slot {
	return &Slot{damageMultiplier: 1, fire: fire}
}

func (s *Slot) SetFireFunc(fire FireFunc) {
	if s == nil {
		return
	}
	s.fire = fire
}

func (s *Slot) SubscribeWeaponUsed(fn UsedFunc) {
	if s == nil || fn == nil {
		return
	}
	s.onUsed = append(s.onUsed, fn)
}

func (s *Slot) Add(w *Weapon) {
	if s == nil || w == nil {
		return
	}
	s.weapons = append(s.weapons, w)
}

func (s *Slot) HasWeapon() bool {
	return s != nil && len(s.weapons) > 0
}

func (s *Slot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.weapons)
}

// Selected returns the current weapon or nil.
func (s *Slot) Selected() *Weapon {
	if !s.HasWeapon() {
		return nil
	}
	return s.weapons[s.selected]
}

func (s *Slot) SelectedIndex() int {
	if s == nil {
		return -1
	}
	return s.selected
}

// SelectWeapon ignores indices outside the slot.
func (s *Slot) SelectWeapon(index int) {
	if !s.HasWeapon() || index < 0 || index >= len(s.weapons) {
		return
	}
	s.selected = index
}

func (s *Slot) SelectNext() {
	if !s.HasWeapon() {
		return
	}
	s.selected = (s.selected + 1) % len(s.weapons)
}

func (s *Slot) SelectPrevious() {
	if !s.HasWeapon() {
		return
	}
	s.selected = (s.selected - 1 + len(s.weapons)) % len(s.weapons)
}

func (s *Slot) SetTriggerHeld(held bool) {
	if s == nil {
		return
	}
	s.triggerHeld = held
}

func (s *Slot) TriggerHeld() bool {
	return s != nil && s.triggerHeld
}

func (s *Slot) SetDamageMultiplier(m float64) {
	if s == nil || m < 0 {
		return
	}
	s.damageMultiplier = m
}

func (s *Slot) DamageMultiplier() float64 {
	if s == nil {
		return 0
	}
	return s.damageMultiplier
}

// Update counts down the cooldown and fires while the trigger is held.
func (s *Slot) Update(dt float64) error {
	if s == nil {
		return nil
	}
	if s.cooldown > 0 {
		s.cooldown -= dt
	}
	if !s.triggerHeld {
		return nil
	}
	w := s.Selected()
	if w == nil {
		return ErrNoWeapon
	}
	if s.cooldown > 0 {
		return nil
	}
	s.cooldown = w.Interval()
	damage := int(math.Round(float64(w.Damage) * s.damageMultiplier))
	if s.fire != nil {
		s.fire(w, damage)
	}
	for _, fn := range s.onUsed {
		fn(w)
	}
	return nil
}
