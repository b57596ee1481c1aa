package system

import (
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
	"github.com/milk9111/squashbox/input"
)

// InputSystem samples the input source into the player's Input component.
// Sources that keep their own clock are advanced once per tick, whether or
// not a player exists.
type InputSystem struct {
	src    input.Source
	player singleton
}

func NewInputSystem(src input.Source) *InputSystem {
	if src == nil {
		src = input.None{}
	}
	return &InputSystem{src: src, player: playerSingleton("input")}
}

func (s *InputSystem) Source() input.Source {
	return s.src
}

// SetSource swaps the source between ticks.
func (s *InputSystem) SetSource(src input.Source) {
	if src == nil {
		src = input.None{}
	}
	s.src = src
}

func (s *InputSystem) Update(w *ecs.World) {
	if adv, ok := s.src.(input.Advancer); ok {
		defer adv.Advance()
	}

	player, ok := s.player.resolve(w)
	if !ok {
		return
	}
	in, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return
	}

	in.Left = s.src.IsHeld(input.MoveLeft)
	in.Right = s.src.IsHeld(input.MoveRight)
	in.Jump = s.src.IsHeld(input.Jump)
	in.JumpPressed = s.src.IsPressed(input.Jump)
}
