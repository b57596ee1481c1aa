package system

import (
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
)

// ProjectionSystem copies position, rotation and depth into Transform, the
// only state the renderer reads.
type ProjectionSystem struct{}

func NewProjectionSystem() *ProjectionSystem {
	return &ProjectionSystem{}
}

func (s *ProjectionSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.PositionComponent.Kind(),
		func(e ecs.Entity, tf *component.Transform, pos *component.Position) {
			tf.X = pos.Vec.X
			tf.Y = pos.Vec.Y
			tf.Rotation = 0
			if rot, ok := ecs.Get(w, e, component.RotationComponent.Kind()); ok {
				tf.Rotation = rot.Angle
			}
			if depth, ok := ecs.Get(w, e, component.DepthOrderComponent.Kind()); ok {
				tf.Depth = depth.Z
			}
		})
}
