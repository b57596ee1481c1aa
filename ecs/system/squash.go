package system

import (
	"github.com/milk9111/squashbox/common"
	"github.com/milk9111/squashbox/config"
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
)

// SquashRecoverySystem relaxes every visual shape back toward its logical
// shape.
type SquashRecoverySystem struct {
	tuning *config.Tuning
}

func NewSquashRecoverySystem(tuning *config.Tuning) *SquashRecoverySystem {
	if tuning == nil {
		t := config.DefaultTuning()
		tuning = &t
	}
	return &SquashRecoverySystem{tuning: tuning}
}

func (s *SquashRecoverySystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.VisualShapeComponent.Kind(), component.ShapeComponent.Kind(),
		func(_ ecs.Entity, visual *component.VisualShape, shape *component.Shape) {
			visual.Size = common.LerpVec(visual.Size, shape.Size, s.tuning.SquashRecovery)
		})
}
