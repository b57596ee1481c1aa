package levels

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/squashbox/prefabs"
)

// RunScript runs a tengo level script and reads back its globals:
//
//	player := {x: 0, y: 0}               // optional, also w/h and vx/vy
//	camera := {x: 0, y: 0}               // optional
//	blocks := [{x: 0, y: -200, w: 500, h: 50, color: "gray"}]
//
// Scripts may import the tengo stdlib (math, text, fmt, ...).
func RunScript(name string, src []byte) (*Level, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("run script %s: %w", name, err)
	}

	lvl := &Level{}
	if compiled.IsDefined("name") {
		lvl.Name = compiled.Get("name").String()
	}
	if compiled.IsDefined("player") {
		m := compiled.Get("player").Map()
		if m == nil {
			return nil, fmt.Errorf("script %s: player must be a map", name)
		}
		if lvl.Player.Position, err = vecField(m, "x", "y", true); err != nil {
			return nil, fmt.Errorf("script %s: player: %w", name, err)
		}
		if size, ok, err := optionalVec(m, "w", "h"); err != nil {
			return nil, fmt.Errorf("script %s: player: %w", name, err)
		} else if ok {
			lvl.Player.Size = &size
		}
		if vel, ok, err := optionalVec(m, "vx", "vy"); err != nil {
			return nil, fmt.Errorf("script %s: player: %w", name, err)
		} else if ok {
			lvl.Player.Velocity = &vel
		}
	}
	if compiled.IsDefined("camera") {
		m := compiled.Get("camera").Map()
		if m == nil {
			return nil, fmt.Errorf("script %s: camera must be a map", name)
		}
		if lvl.Camera.Position, err = vecField(m, "x", "y", true); err != nil {
			return nil, fmt.Errorf("script %s: camera: %w", name, err)
		}
	}
	if !compiled.IsDefined("blocks") {
		return lvl, nil
	}
	for i, item := range compiled.Get("blocks").Array() {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("script %s: block %d must be a map, got %T", name, i, item)
		}
		var b BlockPlacement
		if b.Position, err = vecField(m, "x", "y", false); err != nil {
			return nil, fmt.Errorf("script %s: block %d: %w", name, i, err)
		}
		if b.Size, err = vecField(m, "w", "h", false); err != nil {
			return nil, fmt.Errorf("script %s: block %d: %w", name, i, err)
		}
		if c, ok := m["color"].(string); ok {
			b.Color = c
		}
		lvl.Blocks = append(lvl.Blocks, b)
	}
	return lvl, nil
}

func vecField(m map[string]any, kx, ky string, optional bool) (prefabs.Vec2Spec, error) {
	x, okx, err := number(m, kx)
	if err != nil {
		return prefabs.Vec2Spec{}, err
	}
	y, oky, err := number(m, ky)
	if err != nil {
		return prefabs.Vec2Spec{}, err
	}
	if !optional && (!okx || !oky) {
		return prefabs.Vec2Spec{}, fmt.Errorf("missing %s/%s", kx, ky)
	}
	return prefabs.Vec2Spec{X: x, Y: y}, nil
}

func optionalVec(m map[string]any, kx, ky string) (prefabs.Vec2Spec, bool, error) {
	_, okx := m[kx]
	_, oky := m[ky]
	if !okx && !oky {
		return prefabs.Vec2Spec{}, false, nil
	}
	v, err := vecField(m, kx, ky, false)
	return v, err == nil, err
}

func number(m map[string]any, key string) (float64, bool, error) {
	raw, ok := m[key]
	if !ok {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case int64:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case float64:
		return v, true, nil
	default:
		return 0, false, fmt.Errorf("%s must be a number, got %T", key, raw)
	}
}
