package system

import (
	"github.com/milk9111/squashbox/config"
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/input"
)

// Pipeline is the fixed per-tick system order. The order matters: camera
// follow reads post-collision positions and projection must run last.
type Pipeline struct {
	Input      *InputSystem
	Gravity    *GravitySystem
	Controller *PlayerControllerSystem
	Movement   *MovementSystem
	Collision  *CollisionSystem
	Landing    *LandingSquashSystem
	Camera     *CameraFollowSystem
	Squash     *SquashRecoverySystem
	Lean       *LeanSystem
	Invariant  *InvariantSystem
	Projection *ProjectionSystem
}

// NewPipeline builds every stage against one shared tuning. The invariant
// check is included only when debug is set.
func NewPipeline(tuning *config.Tuning, src input.Source, debug bool) *Pipeline {
	if tuning == nil {
		t := config.DefaultTuning()
		tuning = &t
	}
	p := &Pipeline{
		Input:      NewInputSystem(src),
		Gravity:    NewGravitySystem(),
		Controller: NewPlayerControllerSystem(tuning),
		Movement:   NewMovementSystem(),
		Collision:  NewCollisionSystem(),
		Landing:    NewLandingSquashSystem(tuning),
		Camera:     NewCameraFollowSystem(tuning),
		Squash:     NewSquashRecoverySystem(tuning),
		Lean:       NewLeanSystem(tuning),
		Projection: NewProjectionSystem(),
	}
	if debug {
		p.Invariant = NewInvariantSystem()
	}
	return p
}

// Systems returns the stages in execution order.
func (p *Pipeline) Systems() []ecs.System {
	systems := []ecs.System{
		p.Input,
		p.Gravity,
		p.Controller,
		p.Movement,
		p.Collision,
		p.Landing,
		p.Camera,
		p.Squash,
		p.Lean,
	}
	if p.Invariant != nil {
		systems = append(systems, p.Invariant)
	}
	return append(systems, p.Projection)
}

// Install appends the stages to w's update order.
func (p *Pipeline) Install(w *ecs.World) {
	for _, s := range p.Systems() {
		w.AddSystem(s)
	}
}
