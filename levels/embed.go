package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/squashbox/common"
	"github.com/milk9111/squashbox/prefabs"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml *.tengo
var LevelsFS embed.FS

// Dir is checked for on-disk levels before the embedded set.
var Dir = "levels"

var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is the initial scene: one player, one camera and the static blocks.
// Blocks keep file order, which is also the collision iteration order.
type Level struct {
	Name   string           `yaml:"name"`
	Player PlayerPlacement  `yaml:"player"`
	Camera CameraPlacement  `yaml:"camera"`
	Blocks []BlockPlacement `yaml:"blocks"`
}

// PlayerPlacement overrides the player prefab. Nil fields keep the prefab
// value.
type PlayerPlacement struct {
	Position prefabs.Vec2Spec  `yaml:"position"`
	Size     *prefabs.Vec2Spec `yaml:"size,omitempty"`
	Velocity *prefabs.Vec2Spec `yaml:"velocity,omitempty"`
}

type CameraPlacement struct {
	Position prefabs.Vec2Spec `yaml:"position"`
}

type BlockPlacement struct {
	Position prefabs.Vec2Spec `yaml:"position"`
	Size     prefabs.Vec2Spec `yaml:"size"`
	Color    string           `yaml:"color,omitempty"`
}

// Validate rejects degenerate geometry. Zero or non-finite sizes would feed
// NaN into collision resolution.
func (l *Level) Validate() error {
	if l == nil {
		return fmt.Errorf("%w: nil level", ErrInvalidLevel)
	}
	check := func(what string, pos prefabs.Vec2Spec, size *prefabs.Vec2Spec) error {
		if !common.IsFiniteVec(pos.Vector()) {
			return fmt.Errorf("%w: %s position %v is not finite", ErrInvalidLevel, what, pos)
		}
		if size == nil {
			return nil
		}
		if !common.IsFiniteVec(size.Vector()) || size.X <= 0 || size.Y <= 0 {
			return fmt.Errorf("%w: %s size %v must be positive", ErrInvalidLevel, what, *size)
		}
		return nil
	}
	if err := check("player", l.Player.Position, l.Player.Size); err != nil {
		return err
	}
	if v := l.Player.Velocity; v != nil && !common.IsFiniteVec(v.Vector()) {
		return fmt.Errorf("%w: player velocity %v is not finite", ErrInvalidLevel, *v)
	}
	if err := check("camera", l.Camera.Position, nil); err != nil {
		return err
	}
	for i := range l.Blocks {
		b := &l.Blocks[i]
		if err := check(fmt.Sprintf("block %d", i), b.Position, &b.Size); err != nil {
			return err
		}
	}
	return nil
}

// Load resolves name to a YAML level or, for *.tengo, a level script. A
// bare name is tried as name.yaml.
func Load(name string) (*Level, error) {
	clean := cleanLevelName(name)
	data, err := read(clean)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}

	var lvl *Level
	if prefabs.IsScriptFile(clean) {
		lvl, err = RunScript(clean, data)
	} else {
		lvl, err = decode(data)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", clean, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(clean, filepath.Ext(clean))
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", clean, err)
	}
	return lvl, nil
}

func decode(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func read(clean string) ([]byte, error) {
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return fs.ReadFile(LevelsFS, clean)
}

func cleanLevelName(name string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		s = after
	}
	if s == "" {
		s = "default"
	}
	if filepath.Ext(s) == "" {
		s += ".yaml"
	}
	return s
}

// Names lists the embedded levels.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if prefabs.IsSpecFile(e.Name()) || prefabs.IsScriptFile(e.Name()) {
			out = append(out, e.Name())
		}
	}
	return out
}
