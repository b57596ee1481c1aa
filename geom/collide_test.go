package geom

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(cx, cy, w, h float64) AABB {
	return NewAABB(cp.Vector{X: cx, Y: cy}, cp.Vector{X: w, Y: h})
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b AABB
		want bool
	}{
		{"overlap", box(0, 0, 10, 10), box(4, 4, 10, 10), true},
		{"touching_edge", box(0, 0, 10, 10), box(10, 0, 10, 10), true},
		{"touching_corner", box(0, 0, 10, 10), box(10, 10, 10, 10), true},
		{"apart_x", box(0, 0, 10, 10), box(10.5, 0, 10, 10), false},
		{"apart_y", box(0, 0, 10, 10), box(0, -11, 10, 10), false},
		{"contained", box(0, 0, 100, 100), box(1, 1, 2, 2), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Intersects(tt.a, tt.b))
			assert.Equal(t, tt.want, Intersects(tt.b, tt.a))
		})
	}
}

func TestClosestPoint(t *testing.T) {
	b := box(0, 0, 100, 50)
	assert.Equal(t, cp.Vector{X: 50, Y: 25}, ClosestPoint(b, cp.Vector{X: 70, Y: 90}))
	assert.Equal(t, cp.Vector{X: -50, Y: 3}, ClosestPoint(b, cp.Vector{X: -80, Y: 3}))
	assert.Equal(t, cp.Vector{X: 1, Y: 2}, ClosestPoint(b, cp.Vector{X: 1, Y: 2}))
}

func TestCollide(t *testing.T) {
	static := box(0, 0, 100, 100)
	tests := []struct {
		name    string
		moving  AABB
		ok      bool
		side    Side
		pushout cp.Vector
	}{
		{"no_overlap", box(200, 0, 20, 20), false, 0, cp.Vector{}},
		{"touching_is_none", box(60, 0, 20, 20), false, 0, cp.Vector{}},
		{"left", box(55, 0, 20, 20), true, Left, cp.Vector{X: 5, Y: 10}},
		{"right", box(-55, 0, 20, 20), true, Right, cp.Vector{X: 5, Y: 10}},
		{"top", box(0, -55, 20, 20), true, Top, cp.Vector{X: 10, Y: 5}},
		{"bottom", box(0, 55, 20, 20), true, Bottom, cp.Vector{X: 10, Y: 5}},
		{"corner_biased_horizontal", box(58, 56, 20, 20), true, Left, cp.Vector{X: 2, Y: 4}},
		{"corner_biased_vertical", box(56, 58, 20, 20), true, Bottom, cp.Vector{X: 4, Y: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Collide(tt.moving, static)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.side, c.Side)
			assert.Equal(t, tt.pushout, c.Pushout)
		})
	}
}

func TestCollideLandingOnBlock(t *testing.T) {
	player := box(0, -226, 60, 100)
	block := box(0, -300, 400, 50)

	c, ok := Collide(player, block)
	require.True(t, ok)
	assert.Equal(t, Bottom, c.Side)

	pos := player.Center
	vel := cp.Vector{X: 3, Y: -4}
	c.Apply(&pos, &vel)
	assert.Equal(t, cp.Vector{X: 0, Y: -225}, pos)
	assert.Equal(t, cp.Vector{X: 3, Y: 0}, vel)
}

func TestCollideApplyZeroesResolvedAxis(t *testing.T) {
	static := box(0, 0, 100, 100)
	tests := []struct {
		name    string
		moving  AABB
		wantVel cp.Vector
	}{
		{"left_zeroes_x", box(55, 0, 20, 20), cp.Vector{X: 0, Y: 2}},
		{"right_zeroes_x", box(-55, 0, 20, 20), cp.Vector{X: 0, Y: 2}},
		{"top_zeroes_y", box(0, -55, 20, 20), cp.Vector{X: 1, Y: 0}},
		{"bottom_zeroes_y", box(0, 55, 20, 20), cp.Vector{X: 1, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Collide(tt.moving, static)
			require.True(t, ok)
			pos := tt.moving.Center
			vel := cp.Vector{X: 1, Y: 2}
			c.Apply(&pos, &vel)
			assert.Equal(t, tt.wantVel, vel)
		})
	}
}

func TestCollideMirrorSymmetry(t *testing.T) {
	static := box(7, -3, 90, 40)
	mirror := func(a AABB) AABB {
		a.Center.X = -a.Center.X
		return a
	}
	swapped := map[Side]Side{Left: Right, Right: Left, Top: Top, Bottom: Bottom}

	for x := -60.0; x <= 60; x += 2.5 {
		for y := -40.0; y <= 40; y += 2.5 {
			moving := box(x, y, 30, 20)
			c, ok := Collide(moving, static)
			mc, mok := Collide(mirror(moving), mirror(static))
			require.Equal(t, ok, mok, "center (%v,%v)", x, y)
			if !ok {
				continue
			}
			assert.Equal(t, swapped[c.Side], mc.Side, "center (%v,%v)", x, y)
			assert.Equal(t, c.Depth(), mc.Depth(), "center (%v,%v)", x, y)
		}
	}
}

func TestCollideResolvesToTangent(t *testing.T) {
	static := box(0, 0, 100, 50)
	for _, size := range []cp.Vector{{X: 20, Y: 20}, {X: 60, Y: 40}, {X: 20, Y: 80}} {
		half := size.Mult(0.5)
		for x := -50 - half.X; x <= 50+half.X; x += 0.5 {
			for y := -25 - half.Y; y <= 25+half.Y; y += 0.5 {
				moving := box(x, y, size.X, size.Y)
				c, ok := Collide(moving, static)
				if !ok {
					continue
				}
				offset := moving.Center.Sub(ClosestPoint(static, moving.Center))
				axisOffset := offset.Y
				if c.Side.Horizontal() {
					axisOffset = offset.X
				}
				if axisOffset == 0 {
					// center inside the static box on this axis; pushout is half-size
					continue
				}

				pos := moving.Center
				vel := cp.Vector{X: 1, Y: 1}
				c.Apply(&pos, &vel)
				resolved := AABB{Center: pos, HalfSize: moving.HalfSize}

				require.True(t, Intersects(resolved, static), "size %v center (%v,%v) should touch", size, x, y)
				_, again := Collide(resolved, static)
				require.False(t, again, "size %v center (%v,%v) still overlaps after %s", size, x, y, c.Side)

				var gap float64
				switch c.Side {
				case Left:
					gap = resolved.Min().X - static.Max().X
				case Right:
					gap = static.Min().X - resolved.Max().X
				case Top:
					gap = static.Min().Y - resolved.Max().Y
				case Bottom:
					gap = resolved.Min().Y - static.Max().Y
				}
				require.Zero(t, gap, "size %v center (%v,%v)", size, x, y)
			}
		}
	}
}

func TestCollideNonFinite(t *testing.T) {
	static := box(0, 0, 100, 100)
	_, ok := Collide(box(math.NaN(), 0, 10, 10), static)
	assert.False(t, ok)
	_, ok = Collide(box(0, 0, 10, 10), box(0, 0, math.Inf(1), 10))
	assert.False(t, ok)
}

func TestSideString(t *testing.T) {
	assert.Equal(t, "top", Top.String())
	assert.Equal(t, "bottom", Bottom.String())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "unknown", Side(42).String())
}
