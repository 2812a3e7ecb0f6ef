package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
)

// SoundPlayer is the part of an audio player the audio system drives.
type SoundPlayer interface {
	Rewind() error
	Play()
	SetVolume(volume float64)
	IsPlaying() bool
}

// Sound is a loaded cue and its volume.
type Sound struct {
	Player SoundPlayer
	Volume float64
}

// AudioSystem consumes sound requests. A cue that is still playing is not
// restarted.
type AudioSystem struct {
	sounds map[string]Sound
	logger *zap.Logger
	warned map[string]bool

	MasterVolume float64
}

func NewAudioSystem(sounds map[string]Sound, logger *zap.Logger) *AudioSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sounds == nil {
		sounds = map[string]Sound{}
	}
	return &AudioSystem{sounds: sounds, logger: logger.Named("audio"), warned: make(map[string]bool), MasterVolume: 1}
}

// SetSounds swaps the cue table, for hot reload.
func (a *AudioSystem) SetSounds(sounds map[string]Sound) {
	if sounds == nil {
		sounds = map[string]Sound{}
	}
	a.sounds = sounds
	a.warned = make(map[string]bool)
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	var requests []ecs.Entity
	ecs.ForEach(w, component.SoundRequestComponent.Kind(), func(e ecs.Entity, req *component.SoundRequest) {
		requests = append(requests, e)
		a.play(req.Name)
	})
	for _, e := range requests {
		ecs.DestroyEntity(w, e)
	}
}

func (a *AudioSystem) play(name string) {
	if name == "" {
		return
	}
	sound, ok := a.sounds[name]
	if !ok || sound.Player == nil {
		if !a.warned[name] {
			a.warned[name] = true
			a.logger.Warn("unknown sound", zap.String("name", name))
		}
		return
	}
	if sound.Player.IsPlaying() {
		return
	}
	sound.Player.SetVolume(sound.Volume * a.MasterVolume)
	if err := sound.Player.Rewind(); err != nil {
		a.logger.Error("rewind", zap.String("name", name), zap.Error(err))
		return
	}
	sound.Player.Play()
}
