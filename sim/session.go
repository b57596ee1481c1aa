// Package sim owns one running simulation: a world spawned from a level with
// the tick pipeline installed. The window host and the headless runner both
// drive it one tick at a time.
package sim

import (
	"fmt"

	"github.com/milk9111/squashbox/config"
	"github.com/milk9111/squashbox/ecs"
	"github.com/milk9111/squashbox/ecs/component"
	"github.com/milk9111/squashbox/ecs/entity"
	"github.com/milk9111/squashbox/ecs/system"
	"github.com/milk9111/squashbox/input"
	"github.com/milk9111/squashbox/levels"
	"github.com/milk9111/squashbox/prefabs"
	"gopkg.in/yaml.v3"
)

type Session struct {
	world    *ecs.World
	pipeline *system.Pipeline
	level    *levels.Level
	tuning   *config.Tuning
	debug    bool
}

// NewSession spawns lvl into a fresh world. tuning is shared with the
// pipeline by pointer, so edits made between ticks apply on the next tick.
func NewSession(lvl *levels.Level, tuning *config.Tuning, src input.Source, debug bool) (*Session, error) {
	if tuning == nil {
		t := config.DefaultTuning()
		tuning = &t
	}
	s := &Session{level: lvl, tuning: tuning, debug: debug}
	if err := s.build(src); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) build(src input.Source) error {
	w := ecs.NewWorld()
	if err := entity.SpawnLevel(w, s.level); err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	p := system.NewPipeline(s.tuning, src, s.debug)
	p.Install(w)
	// project once so the first frame draws spawn positions
	p.Projection.Update(w)

	s.world = w
	s.pipeline = p
	return nil
}

// Reset respawns the level, or a replacement level if lvl is non-nil. The
// current input source is kept. On error the running world is untouched.
func (s *Session) Reset(lvl *levels.Level) error {
	prev := s.level
	if lvl != nil {
		s.level = lvl
	}
	if err := s.build(s.pipeline.Input.Source()); err != nil {
		s.level = prev
		return err
	}
	return nil
}

// Step runs one tick.
func (s *Session) Step() {
	s.world.Update()
}

// Run runs n ticks.
func (s *Session) Run(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

func (s *Session) World() *ecs.World          { return s.world }
func (s *Session) Pipeline() *system.Pipeline { return s.pipeline }
func (s *Session) Level() *levels.Level       { return s.level }
func (s *Session) Tuning() *config.Tuning     { return s.tuning }

// SetSource swaps the input source between ticks.
func (s *Session) SetSource(src input.Source) {
	s.pipeline.Input.SetSource(src)
}

// BodyState is a plain copy of one body's simulation state.
type BodyState struct {
	Position prefabs.Vec2Spec `yaml:"position"`
	Velocity prefabs.Vec2Spec `yaml:"velocity"`
	Size     prefabs.Vec2Spec `yaml:"size,omitempty"`
	Rotation float64          `yaml:"rotation,omitempty"`
	Grounded bool             `yaml:"grounded,omitempty"`
}

type Snapshot struct {
	Level  string    `yaml:"level"`
	Tick   uint64    `yaml:"tick"`
	Player BodyState `yaml:"player"`
	Camera BodyState `yaml:"camera"`
}

// Snapshot copies the player and camera state. Missing singletons leave
// their entry zeroed.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{Level: s.level.Name, Tick: s.world.Tick()}
	if player, err := ecs.Single(s.world, component.PlayerTagComponent.Kind()); err == nil {
		snap.Player = bodyState(s.world, player)
		if vs, ok := ecs.Get(s.world, player, component.VisualShapeComponent.Kind()); ok {
			snap.Player.Size = prefabs.Vec2(vs.Size)
		}
		if rot, ok := ecs.Get(s.world, player, component.RotationComponent.Kind()); ok {
			snap.Player.Rotation = rot.Angle
		}
		if g, ok := ecs.Get(s.world, player, component.GroundedComponent.Kind()); ok {
			snap.Player.Grounded = g.Value
		}
	}
	if camera, err := ecs.Single(s.world, component.CameraTagComponent.Kind()); err == nil {
		snap.Camera = bodyState(s.world, camera)
	}
	return snap
}

func bodyState(w *ecs.World, e ecs.Entity) BodyState {
	var b BodyState
	if pos, ok := ecs.Get(w, e, component.PositionComponent.Kind()); ok {
		b.Position = prefabs.Vec2(pos.Vec)
	}
	if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		b.Velocity = prefabs.Vec2(vel.Vec)
	}
	return b
}

// YAML encodes the snapshot for the clipboard and the headless runner.
func (s Snapshot) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("sim: encode snapshot: %w", err)
	}
	return out, nil
}
