package system

import (
	"github.com/milk9111/squashbox/common"
	"github.com/milk9111/squashbox/config"
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
)

// LeanSystem tilts bodies in proportion to their horizontal speed.
type LeanSystem struct {
	tuning *config.Tuning
}

func NewLeanSystem(tuning *config.Tuning) *LeanSystem {
	if tuning == nil {
		t := config.DefaultTuning()
		tuning = &t
	}
	return &LeanSystem{tuning: tuning}
}

func (s *LeanSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.RotationComponent.Kind(), component.VelocityComponent.Kind(),
		func(_ ecs.Entity, rot *component.Rotation, vel *component.Velocity) {
			rot.Angle = common.Lerp(0, s.tuning.MaxLean, vel.Vec.X/s.tuning.PlayerSpeed)
		})
}
