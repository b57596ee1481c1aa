package system

import (
	"github.com/milk9111/squashbox/config"
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
)

// LandingSquashSystem consumes landed events: the visual shape snaps to the
// landing size and the body is nudged down into the squash.
type LandingSquashSystem struct {
	tuning *config.Tuning
}

func NewLandingSquashSystem(tuning *config.Tuning) *LandingSquashSystem {
	if tuning == nil {
		t := config.DefaultTuning()
		tuning = &t
	}
	return &LandingSquashSystem{tuning: tuning}
}

func (s *LandingSquashSystem) Update(w *ecs.World) {
	for _, evt := range w.Events().DrainCollisions(ecs.CollisionEventLanded) {
		shape, ok := ecs.Get(w, evt.Entity, component.ShapeComponent.Kind())
		if !ok {
			continue
		}
		if visual, ok := ecs.Get(w, evt.Entity, component.VisualShapeComponent.Kind()); ok {
			visual.Size = s.tuning.LandingSize(shape.Size)
		}
		if pos, ok := ecs.Get(w, evt.Entity, component.PositionComponent.Kind()); ok {
			pos.Vec.Y -= s.tuning.LandingNudge
		}
	}
}
