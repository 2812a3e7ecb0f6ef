package component

// Collider is the upright capsule of a pawn.
type Collider struct {
	Radius     float64
	HalfHeight float64
}

var ColliderComponent = NewComponent[Collider]()
