package component

// AI drives an enemy from a tengo script.
type AI struct {
	Script string
	State  string
	// Timer counts down in simulation seconds; scripts set it with wait().
	Timer float64
}

var AIComponent = NewComponent[AI]()
