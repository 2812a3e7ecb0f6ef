package component

// Pickup is a collectible consumed when the player overlaps it.
type Pickup struct {
	Kind       string
	HealAmount int
	Radius     float64
	Sound      string
	// BobPhase drives the hover animation.
	BobPhase float64
}

var PickupComponent = NewComponent[Pickup]()
