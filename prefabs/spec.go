package prefabs

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Vec2Spec is a YAML-friendly 2D vector.
type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2Spec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func Vec2(v cp.Vector) Vec2Spec {
	return Vec2Spec{X: v.X, Y: v.Y}
}

type PlayerSpec struct {
	Name     string   `yaml:"name"`
	Size     Vec2Spec `yaml:"size"`
	Velocity Vec2Spec `yaml:"velocity"`
	Gravity  Vec2Spec `yaml:"gravity"`
	Color    string   `yaml:"color"`
	Depth    float64  `yaml:"depth"`
}

type CameraSpec struct {
	Name string  `yaml:"name"`
	Zoom float64 `yaml:"zoom"`
}

type BlockSpec struct {
	Name  string  `yaml:"name"`
	Color string  `yaml:"color"`
	Depth float64 `yaml:"depth"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadBlockSpec() (*BlockSpec, error) {
	spec, err := LoadSpec[BlockSpec]("block.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// ParseColor accepts an SVG color name or a #rrggbb / #rrggbbaa hex string.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.White, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return nil, fmt.Errorf("prefabs: unknown color %q", s)
	}
	var r, g, b uint8
	a := uint8(0xff)
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("prefabs: parse color %q: %w", s, err)
		}
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return nil, fmt.Errorf("prefabs: parse color %q: %w", s, err)
		}
	default:
		return nil, fmt.Errorf("prefabs: parse color %q: want #rrggbb or #rrggbbaa", s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
