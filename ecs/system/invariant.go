package system

import (
	"fmt"

	"github.com/milk9111/squashbox/common"
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
)

// InvariantSystem panics as soon as a position or velocity stops being
// finite. It is only installed in debug mode.
type InvariantSystem struct{}

func NewInvariantSystem() *InvariantSystem {
	return &InvariantSystem{}
}

func (s *InvariantSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.PositionComponent.Kind(), func(e ecs.Entity, pos *component.Position) {
		if !common.IsFiniteVec(pos.Vec) {
			panic(fmt.Sprintf("invariant: tick %d: entity %s position %v is not finite", w.Tick(), e, pos.Vec))
		}
	})
	ecs.ForEach(w, component.VelocityComponent.Kind(), func(e ecs.Entity, vel *component.Velocity) {
		if !common.IsFiniteVec(vel.Vec) {
			panic(fmt.Sprintf("invariant: tick %d: entity %s velocity %v is not finite", w.Tick(), e, vel.Vec))
		}
	})
}
