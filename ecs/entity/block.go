package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
	"github.com/milk9111/squashbox/prefabs"
)

// NewBlock creates a static collider. Colliders never get a Velocity.
func NewBlock(w *ecs.World, pos, size cp.Vector, colorName string) (ecs.Entity, error) {
	spec, err := prefabs.LoadBlockSpec()
	if err != nil {
		return 0, fmt.Errorf("block: load spec: %w", err)
	}
	return newBlock(w, spec, pos, size, colorName)
}

func newBlock(w *ecs.World, spec *prefabs.BlockSpec, pos, size cp.Vector, colorName string) (ecs.Entity, error) {
	if colorName == "" {
		colorName = spec.Color
	}
	col, err := prefabs.ParseColor(colorName)
	if err != nil {
		return 0, fmt.Errorf("block: %w", err)
	}

	block := ecs.CreateEntity(w)
	if err := ecs.Add(w, block, component.ColliderTagComponent.Kind(), &component.ColliderTag{}); err != nil {
		return 0, fmt.Errorf("block: add collider tag: %w", err)
	}
	if err := ecs.Add(w, block, component.PositionComponent.Kind(), &component.Position{Vec: pos}); err != nil {
		return 0, fmt.Errorf("block: add position: %w", err)
	}
	if err := ecs.Add(w, block, component.ShapeComponent.Kind(), &component.Shape{Size: size}); err != nil {
		return 0, fmt.Errorf("block: add shape: %w", err)
	}
	if err := ecs.Add(w, block, component.DepthOrderComponent.Kind(), &component.DepthOrder{Z: spec.Depth}); err != nil {
		return 0, fmt.Errorf("block: add depth: %w", err)
	}
	if err := ecs.Add(w, block, component.SpriteComponent.Kind(), &component.Sprite{Color: col}); err != nil {
		return 0, fmt.Errorf("block: add sprite: %w", err)
	}
	if err := ecs.Add(w, block, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return 0, fmt.Errorf("block: add transform: %w", err)
	}
	return block, nil
}
