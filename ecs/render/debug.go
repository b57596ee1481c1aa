package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
)

// DrawDebug prints the tick counter and the player's physics state in the
// top left corner.
func DrawDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick %d  TPS %.1f  FPS %.1f", w.Tick(), ebiten.ActualTPS(), ebiten.ActualFPS()), 8, 8)

	player, err := ecs.Single(w, component.PlayerTagComponent.Kind())
	if err != nil {
		ebitenutil.DebugPrintAt(screen, err.Error(), 8, 24)
		return
	}
	line := 24
	if pos, ok := ecs.Get(w, player, component.PositionComponent.Kind()); ok {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("pos  %8.2f %8.2f", pos.Vec.X, pos.Vec.Y), 8, line)
		line += 16
	}
	if vel, ok := ecs.Get(w, player, component.VelocityComponent.Kind()); ok {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("vel  %8.2f %8.2f", vel.Vec.X, vel.Vec.Y), 8, line)
		line += 16
	}
	if g, ok := ecs.Get(w, player, component.GroundedComponent.Kind()); ok {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("grounded %v", g.Value), 8, line)
	}
}
