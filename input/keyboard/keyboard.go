// Package keyboard reads ebiten keyboard and gamepad state as an
// input.Source.
package keyboard

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/squashbox/input"
)

const stickDeadzone = 0.5

var bindings = map[input.Action][]ebiten.Key{
	input.MoveLeft:  {ebiten.KeyA, ebiten.KeyLeft},
	input.MoveRight: {ebiten.KeyD, ebiten.KeyRight},
	input.Jump:      {ebiten.KeyW, ebiten.KeySpace, ebiten.KeyUp},
}

var buttons = map[input.Action]ebiten.StandardGamepadButton{
	input.MoveLeft:  ebiten.StandardGamepadButtonLeftLeft,
	input.MoveRight: ebiten.StandardGamepadButtonLeftRight,
	input.Jump:      ebiten.StandardGamepadButtonRightBottom,
}

// Keyboard answers queries from ebiten's state for the current frame.
// ebiten updates that state before each Update, so no Advance is needed.
type Keyboard struct {
	gamepads []ebiten.GamepadID
}

func New() *Keyboard {
	return &Keyboard{}
}

// Refresh picks up connected gamepads. Call once per Update before the
// tick runs.
func (k *Keyboard) Refresh() {
	k.gamepads = ebiten.AppendGamepadIDs(k.gamepads[:0])
}

func (k *Keyboard) IsHeld(a input.Action) bool {
	for _, key := range bindings[a] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, id := range k.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if b, ok := buttons[a]; ok && ebiten.IsStandardGamepadButtonPressed(id, b) {
			return true
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		switch a {
		case input.MoveLeft:
			if x < -stickDeadzone {
				return true
			}
		case input.MoveRight:
			if x > stickDeadzone {
				return true
			}
		}
	}
	return false
}

func (k *Keyboard) IsPressed(a input.Action) bool {
	for _, key := range bindings[a] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, id := range k.gamepads {
		if b, ok := buttons[a]; ok && inpututil.IsStandardGamepadButtonJustPressed(id, b) {
			return true
		}
	}
	return false
}
