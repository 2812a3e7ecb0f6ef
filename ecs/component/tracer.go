package component

import "github.com/milk9111/mood/common"

// Tracer is a short-lived shot line drawn by the renderer.
type Tracer struct {
	From, To common.Vec3
	Hit      bool
}

var TracerComponent = NewComponent[Tracer]()
