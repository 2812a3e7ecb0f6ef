package component

// SoundRequest is a one-shot sound cue consumed by the audio system.
type SoundRequest struct {
	Name string
}

var SoundRequestComponent = NewComponent[SoundRequest]()
