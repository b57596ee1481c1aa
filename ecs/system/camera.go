package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/squashbox/common"
	"github.com/milk9111/squashbox/config"
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
)

// CameraFollowSystem steers the camera's velocity toward the player. It
// never moves the camera itself; MovementSystem does that next tick.
type CameraFollowSystem struct {
	tuning *config.Tuning
	camera singleton
	player singleton
}

func NewCameraFollowSystem(tuning *config.Tuning) *CameraFollowSystem {
	if tuning == nil {
		t := config.DefaultTuning()
		tuning = &t
	}
	return &CameraFollowSystem{
		tuning: tuning,
		camera: cameraSingleton("camera follow"),
		player: playerSingleton("camera follow"),
	}
}

func (s *CameraFollowSystem) Update(w *ecs.World) {
	camera, ok := s.camera.resolve(w)
	if !ok {
		return
	}
	player, ok := s.player.resolve(w)
	if !ok {
		return
	}

	camPos, ok := ecs.Get(w, camera, component.PositionComponent.Kind())
	if !ok {
		return
	}
	camVel, ok := ecs.Get(w, camera, component.VelocityComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, player, component.PositionComponent.Kind())
	if !ok {
		return
	}

	dir := target.Vec.Sub(camPos.Vec)
	if dir.Length() <= s.tuning.CameraStopDistance {
		camVel.Vec = cp.Vector{}
		return
	}
	camVel.Vec = common.LerpVec(camVel.Vec, dir.Mult(s.tuning.CameraDamping), s.tuning.CameraBlend)
}
