package system

import (
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
)

// GravitySystem adds each gravitated body's Gravity to its Velocity. It runs
// before MovementSystem, so the move uses the updated velocity.
type GravitySystem struct{}

func NewGravitySystem() *GravitySystem {
	return &GravitySystem{}
}

func (s *GravitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.GravitatedTagComponent.Kind(), component.VelocityComponent.Kind(), component.GravityComponent.Kind(),
		func(_ ecs.Entity, _ *component.GravitatedTag, vel *component.Velocity, g *component.Gravity) {
			vel.Vec = vel.Vec.Add(g.Accel)
		})
}
