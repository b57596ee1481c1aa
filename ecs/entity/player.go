package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
	"github.com/milk9111/squashbox/levels"
	"github.com/milk9111/squashbox/prefabs"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	return NewPlayerAt(w, levels.PlayerPlacement{})
}

// NewPlayerAt builds the player from player.yaml, then applies the level's
// placement overrides.
func NewPlayerAt(w *ecs.World, at levels.PlayerPlacement) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}

	size := spec.Size.Vector()
	if at.Size != nil {
		size = at.Size.Vector()
	}
	vel := spec.Velocity.Vector()
	if at.Velocity != nil {
		vel = at.Velocity.Vector()
	}
	col, err := prefabs.ParseColor(spec.Color)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.PositionComponent.Kind(), &component.Position{Vec: at.Position.Vector()}); err != nil {
		return 0, fmt.Errorf("player: add position: %w", err)
	}
	if err := ecs.Add(w, player, component.VelocityComponent.Kind(), &component.Velocity{Vec: vel}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}
	if err := ecs.Add(w, player, component.GravityComponent.Kind(), &component.Gravity{Accel: spec.Gravity.Vector()}); err != nil {
		return 0, fmt.Errorf("player: add gravity: %w", err)
	}
	if err := ecs.Add(w, player, component.GravitatedTagComponent.Kind(), &component.GravitatedTag{}); err != nil {
		return 0, fmt.Errorf("player: add gravitated tag: %w", err)
	}
	if err := ecs.Add(w, player, component.ShapeComponent.Kind(), &component.Shape{Size: size}); err != nil {
		return 0, fmt.Errorf("player: add shape: %w", err)
	}
	if err := ecs.Add(w, player, component.VisualShapeComponent.Kind(), &component.VisualShape{Size: size}); err != nil {
		return 0, fmt.Errorf("player: add visual shape: %w", err)
	}
	if err := ecs.Add(w, player, component.GroundedComponent.Kind(), &component.Grounded{}); err != nil {
		return 0, fmt.Errorf("player: add grounded: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.RotationComponent.Kind(), &component.Rotation{}); err != nil {
		return 0, fmt.Errorf("player: add rotation: %w", err)
	}
	if err := ecs.Add(w, player, component.DepthOrderComponent.Kind(), &component.DepthOrder{Z: spec.Depth}); err != nil {
		return 0, fmt.Errorf("player: add depth: %w", err)
	}
	if err := ecs.Add(w, player, component.SpriteComponent.Kind(), &component.Sprite{Color: col}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: at.Position.X, Y: at.Position.Y, Depth: spec.Depth}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	return player, nil
}

// PlayerBox returns the player's current hitbox size: the visual shape when
// present, the logical shape otherwise.
func PlayerBox(w *ecs.World, e ecs.Entity) (cp.Vector, bool) {
	if vs, ok := ecs.Get(w, e, component.VisualShapeComponent.Kind()); ok {
		return vs.Size, true
	}
	if s, ok := ecs.Get(w, e, component.ShapeComponent.Kind()); ok {
		return s.Size, true
	}
	return cp.Vector{}, false
}
