package config

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/squashbox/common"
	"github.com/milk9111/squashbox/prefabs"
)

const TuningFile = "tuning.yaml"

// Tuning holds the per-tick simulation constants. Blend factors are applied
// as v += t*(target-v) once per tick.
type Tuning struct {
	PlayerSpeed  float64 `yaml:"player_speed"`
	PlayerAccel  float64 `yaml:"player_accel"`
	PlayerDecel  float64 `yaml:"player_decel"`
	JumpStrength float64 `yaml:"jump_strength"`

	CameraDamping      float64 `yaml:"camera_damping"`
	CameraBlend        float64 `yaml:"camera_blend"`
	CameraStopDistance float64 `yaml:"camera_stop_distance"`

	SquashRecovery float64          `yaml:"squash_recovery"`
	LandingScale   prefabs.Vec2Spec `yaml:"landing_scale"`
	LandingNudge   float64          `yaml:"landing_nudge"`
	JumpScale      prefabs.Vec2Spec `yaml:"jump_scale"`

	// MaxLean is the rotation at full speed. Negative leans into the
	// direction of travel in y-up space.
	MaxLean float64 `yaml:"max_lean"`
}

func DefaultTuning() Tuning {
	return Tuning{
		PlayerSpeed:        5,
		PlayerAccel:        0.07,
		PlayerDecel:        0.1,
		JumpStrength:       8,
		CameraDamping:      0.04,
		CameraBlend:        0.1,
		CameraStopDistance: 0.1,
		SquashRecovery:     0.1,
		LandingScale:       prefabs.Vec2Spec{X: 1.3, Y: 0.8},
		LandingNudge:       10,
		JumpScale:          prefabs.Vec2Spec{X: 0.8, Y: 1.2},
		MaxLean:            -0.15,
	}
}

var ErrInvalidTuning = errors.New("config: invalid tuning")

func (t Tuning) Validate() error {
	blends := []struct {
		name string
		v    float64
	}{
		{"player_accel", t.PlayerAccel},
		{"player_decel", t.PlayerDecel},
		{"camera_blend", t.CameraBlend},
		{"squash_recovery", t.SquashRecovery},
	}
	for _, b := range blends {
		if !(b.v > 0 && b.v <= 1) {
			return fmt.Errorf("%w: %s must be in (0,1], got %v", ErrInvalidTuning, b.name, b.v)
		}
	}
	if !(t.PlayerSpeed > 0) {
		return fmt.Errorf("%w: player_speed must be positive, got %v", ErrInvalidTuning, t.PlayerSpeed)
	}
	if t.CameraStopDistance < 0 {
		return fmt.Errorf("%w: camera_stop_distance must not be negative", ErrInvalidTuning)
	}
	for _, s := range []prefabs.Vec2Spec{t.LandingScale, t.JumpScale} {
		if !(s.X > 0 && s.Y > 0) {
			return fmt.Errorf("%w: squash scales must be positive, got %v", ErrInvalidTuning, s)
		}
	}
	vals := []float64{t.JumpStrength, t.CameraDamping, t.LandingNudge, t.MaxLean}
	for _, v := range vals {
		if !common.IsFinite(v) {
			return fmt.Errorf("%w: non-finite value %v", ErrInvalidTuning, v)
		}
	}
	return nil
}

// LandingSize is the footprint the player snaps to on landing.
func (t Tuning) LandingSize(shape cp.Vector) cp.Vector {
	return cp.Vector{X: shape.X * t.LandingScale.X, Y: shape.Y * t.LandingScale.Y}
}

// JumpSize is the footprint the player snaps to on a jump.
func (t Tuning) JumpSize(shape cp.Vector) cp.Vector {
	return cp.Vector{X: shape.X * t.JumpScale.X, Y: shape.Y * t.JumpScale.Y}
}

// LoadTuning reads tuning.yaml over the defaults, so missing keys keep
// their default value.
func LoadTuning() (*Tuning, error) {
	t := DefaultTuning()
	data, err := prefabs.Load(TuningFile)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", TuningFile, err)
	}
	if err := decodeTuning(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}
