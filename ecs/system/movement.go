package system

import (
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
)

// MovementSystem integrates position += velocity for every body. Ticks are
// fixed, so there is no delta-time scaling.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PositionComponent.Kind(), component.VelocityComponent.Kind(),
		func(_ ecs.Entity, pos *component.Position, vel *component.Velocity) {
			pos.Vec = pos.Vec.Add(vel.Vec)
		})
}
