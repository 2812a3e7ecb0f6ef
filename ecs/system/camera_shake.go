package system

import (
	"math"

	"go.uber.org/zap"

	"github.com/milk9111/mood/common"
	"github.com/milk9111/mood/ecs"
	"github.com/milk9111/mood/ecs/component"
)

// ShakeDef describes a named camera shake. Amplitude is in degrees of pitch;
// yaw sways at half the frequency and half the amplitude.
type ShakeDef struct {
	Amplitude float64
	Frequency float64
	Duration  float64
	// Fade scales the shake down linearly over its duration.
	Fade bool
}

// CameraShakeSystem turns shake requests into view offsets. A shake that is
// already running ignores new requests with the same name. Shakes run on
// real time.
type CameraShakeSystem struct {
	defs   map[string]ShakeDef
	logger *zap.Logger
	warned map[string]bool
}

func NewCameraShakeSystem(defs map[string]ShakeDef, logger *zap.Logger) *CameraShakeSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CameraShakeSystem{defs: defs, logger: logger.Named("shake"), warned: make(map[string]bool)}
}

// SetDefs swaps the shake table, for hot reload.
func (s *CameraShakeSystem) SetDefs(defs map[string]ShakeDef) {
	s.defs = defs
	s.warned = make(map[string]bool)
}

func (s *CameraShakeSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.consume(w)

	dt := w.RealDelta()
	ecs.ForEach2(w, component.ViewComponent.Kind(), component.CameraShakeComponent.Kind(), func(_ ecs.Entity, view *component.View, shake *component.CameraShake) {
		var offset common.Rotator
		kept := shake.Active[:0]
		for _, a := range shake.Active {
			a.Elapsed += dt
			if a.Elapsed >= a.Duration {
				continue
			}
			offset = offset.Add(shakeOffset(a))
			kept = append(kept, a)
		}
		shake.Active = kept
		view.ShakeOffset = offset
	})
}

func (s *CameraShakeSystem) consume(w *ecs.World) {
	var requests []ecs.Entity
	target, hasTarget := ecs.First(w, component.ViewComponent.Kind())

	ecs.ForEach(w, component.CameraShakeRequestComponent.Kind(), func(e ecs.Entity, req *component.CameraShakeRequest) {
		requests = append(requests, e)
		if !hasTarget {
			return
		}
		def, ok := s.defs[req.Name]
		if !ok {
			if !s.warned[req.Name] {
				s.warned[req.Name] = true
				s.logger.Warn("unknown camera shake", zap.String("name", req.Name))
			}
			return
		}
		shake, ok := ecs.Get(w, target, component.CameraShakeComponent.Kind())
		if !ok {
			shake = &component.CameraShake{}
			_ = ecs.Add(w, target, component.CameraShakeComponent.Kind(), shake)
		}
		for _, a := range shake.Active {
			if a.Name == req.Name {
				return
			}
		}
		scale := req.Scale
		if scale <= 0 {
			scale = 1
		}
		shake.Active = append(shake.Active, component.ActiveShake{
			Name:      req.Name,
			Scale:     scale,
			Duration:  def.Duration,
			Amplitude: def.Amplitude,
			Frequency: def.Frequency,
			Fade:      def.Fade,
		})
	})

	for _, e := range requests {
		ecs.DestroyEntity(w, e)
	}
}

func shakeOffset(a component.ActiveShake) common.Rotator {
	amp := a.Amplitude * a.Scale
	if a.Fade && a.Duration > 0 {
		amp *= 1 - a.Elapsed/a.Duration
	}
	phase := 2 * math.Pi * a.Frequency * a.Elapsed
	return common.Rotator{
		Pitch: amp * math.Sin(phase),
		Yaw:   amp * 0.5 * math.Sin(phase/2),
	}
}
