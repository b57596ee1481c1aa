package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
	"github.com/milk9111/squashbox/prefabs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	return NewCameraAt(w, 0, 0)
}

// NewCameraAt creates the camera. It has Position and Velocity but no
// gravity, so MovementSystem integrates it like any other body.
func NewCameraAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}
	zoom := cameraSpec.Zoom
	if zoom <= 0 {
		zoom = 1
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{Zoom: zoom}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	if err := ecs.Add(w, camera, component.PositionComponent.Kind(), &component.Position{Vec: cp.Vector{X: x, Y: y}}); err != nil {
		return 0, fmt.Errorf("camera: add position: %w", err)
	}
	if err := ecs.Add(w, camera, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("camera: add velocity: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	return camera, nil
}
