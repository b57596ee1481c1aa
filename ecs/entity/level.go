package entity

import (
	"fmt"

	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/levels"
	"github.com/milk9111/squashbox/prefabs"
)

// SpawnLevel populates an empty world with the level's camera, player and
// blocks. Blocks are created in file order.
func SpawnLevel(w *ecs.World, lvl *levels.Level) error {
	if err := lvl.Validate(); err != nil {
		return fmt.Errorf("spawn level: %w", err)
	}

	if _, err := NewCameraAt(w, lvl.Camera.Position.X, lvl.Camera.Position.Y); err != nil {
		return fmt.Errorf("spawn level %s: %w", lvl.Name, err)
	}
	if _, err := NewPlayerAt(w, lvl.Player); err != nil {
		return fmt.Errorf("spawn level %s: %w", lvl.Name, err)
	}

	blockSpec, err := prefabs.LoadBlockSpec()
	if err != nil {
		return fmt.Errorf("spawn level %s: block: load spec: %w", lvl.Name, err)
	}
	for i, b := range lvl.Blocks {
		if _, err := newBlock(w, blockSpec, b.Position.Vector(), b.Size.Vector(), b.Color); err != nil {
			return fmt.Errorf("spawn level %s: block %d: %w", lvl.Name, i, err)
		}
	}
	return nil
}
