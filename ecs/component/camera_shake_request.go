package component

// CameraShakeRequest asks the camera shake system to start a named shake on
// the player view.
type CameraShakeRequest struct {
	Name  string
	Scale float64
}

var CameraShakeRequestComponent = NewComponent[CameraShakeRequest]()

// ActiveShake is one running shake instance.
type ActiveShake struct {
	Name      string
	Scale     float64
	Elapsed   float64
	Duration  float64
	Amplitude float64
	Frequency float64
	Fade      bool
}

// CameraShake holds the shakes running on a view.
type CameraShake struct {
	Active []ActiveShake
}

var CameraShakeComponent = NewComponent[CameraShake]()
