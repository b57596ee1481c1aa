package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
	"github.com/stretchr/testify/require"
)

var playerSize = cp.Vector{X: 60, Y: 100}

func must(t *testing.T, err error) {
	t.Helper()
	require.NoError(t, err)
}

func addPlayer(t *testing.T, w *ecs.World, pos, vel cp.Vector) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	must(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	must(t, ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{Vec: pos}))
	must(t, ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{Vec: vel}))
	must(t, ecs.Add(w, e, component.GravityComponent.Kind(), &component.Gravity{Accel: cp.Vector{Y: -0.2}}))
	must(t, ecs.Add(w, e, component.GravitatedTagComponent.Kind(), &component.GravitatedTag{}))
	must(t, ecs.Add(w, e, component.ShapeComponent.Kind(), &component.Shape{Size: playerSize}))
	must(t, ecs.Add(w, e, component.VisualShapeComponent.Kind(), &component.VisualShape{Size: playerSize}))
	must(t, ecs.Add(w, e, component.GroundedComponent.Kind(), &component.Grounded{}))
	must(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	must(t, ecs.Add(w, e, component.RotationComponent.Kind(), &component.Rotation{}))
	must(t, ecs.Add(w, e, component.DepthOrderComponent.Kind(), &component.DepthOrder{Z: 1}))
	must(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))
	return e
}

func addCamera(t *testing.T, w *ecs.World, pos cp.Vector) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	must(t, ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{}))
	must(t, ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{Zoom: 1}))
	must(t, ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{Vec: pos}))
	must(t, ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}))
	must(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))
	return e
}

func addBlock(t *testing.T, w *ecs.World, pos, size cp.Vector) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	must(t, ecs.Add(w, e, component.ColliderTagComponent.Kind(), &component.ColliderTag{}))
	must(t, ecs.Add(w, e, component.PositionComponent.Kind(), &component.Position{Vec: pos}))
	must(t, ecs.Add(w, e, component.ShapeComponent.Kind(), &component.Shape{Size: size}))
	must(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))
	return e
}

func get[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, h.Kind())
	require.True(t, ok)
	return v
}
