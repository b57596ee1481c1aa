package system

import (
	"math"

	"github.com/milk9111/squashbox/common"
	"github.com/milk9111/squashbox/config"
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
)

type PlayerControllerSystem struct {
	tuning *config.Tuning
	player singleton
}

// NewPlayerControllerSystem reads tuning through the pointer every tick, so
// a hot reload that updates *tuning takes effect on the next tick.
func NewPlayerControllerSystem(tuning *config.Tuning) *PlayerControllerSystem {
	if tuning == nil {
		t := config.DefaultTuning()
		tuning = &t
	}
	return &PlayerControllerSystem{tuning: tuning, player: playerSingleton("player controller")}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	player, ok := s.player.resolve(w)
	if !ok {
		return
	}
	in, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, player, component.VelocityComponent.Kind())
	if !ok {
		return
	}

	t := s.tuning
	vel.Vec.X = steer(vel.Vec.X, targetSpeed(in, t.PlayerSpeed), t.PlayerAccel, t.PlayerDecel)

	if !in.JumpPressed {
		return
	}
	vel.Vec.Y = t.JumpStrength
	s.stretch(w, player)
}

// targetSpeed sums the held directions, so holding both cancels out.
func targetSpeed(in *component.Input, speed float64) float64 {
	target := 0.0
	if in.Right {
		target += speed
	}
	if in.Left {
		target -= speed
	}
	return target
}

// steer approaches target exponentially, with the decel factor when the
// target is slower than the current speed.
func steer(v, target, accel, decel float64) float64 {
	t := accel
	if math.Abs(target) < math.Abs(v) {
		t = decel
	}
	return common.Lerp(v, target, t)
}

// stretch snaps the visual shape to the jump size, keeping the bottom edge
// where it was.
func (s *PlayerControllerSystem) stretch(w *ecs.World, player ecs.Entity) {
	shape, ok := ecs.Get(w, player, component.ShapeComponent.Kind())
	if !ok {
		return
	}
	visual, ok := ecs.Get(w, player, component.VisualShapeComponent.Kind())
	if !ok {
		return
	}
	pos, ok := ecs.Get(w, player, component.PositionComponent.Kind())
	if !ok {
		return
	}

	next := s.tuning.JumpSize(shape.Size)
	pos.Vec.Y += (next.Y - visual.Size.Y) / 2
	visual.Size = next
}
