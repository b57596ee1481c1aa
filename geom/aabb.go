package geom

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/squashbox/common"
)

// AABB is an axis-aligned box stored as center and half-size.
type AABB struct {
	Center   cp.Vector
	HalfSize cp.Vector
}

// NewAABB builds a box from its center and full size.
func NewAABB(center, size cp.Vector) AABB {
	return AABB{Center: center, HalfSize: size.Mult(0.5)}
}

// BB converts the box to chipmunk's left/bottom/right/top form.
func (a AABB) BB() cp.BB {
	return cp.NewBBForExtents(a.Center, a.HalfSize.X, a.HalfSize.Y)
}

func (a AABB) Min() cp.Vector {
	return a.Center.Sub(a.HalfSize)
}

func (a AABB) Max() cp.Vector {
	return a.Center.Add(a.HalfSize)
}

func (a AABB) finite() bool {
	return common.IsFiniteVec(a.Center) && common.IsFiniteVec(a.HalfSize)
}

// Intersects reports whether the boxes overlap on both axes. Bounds are
// inclusive, so boxes that only touch intersect.
func Intersects(a, b AABB) bool {
	return a.BB().Intersects(b.BB())
}

// ClosestPoint clamps p into b.
func ClosestPoint(b AABB, p cp.Vector) cp.Vector {
	lo, hi := b.Min(), b.Max()
	return cp.Vector{
		X: cp.Clamp(p.X, lo.X, hi.X),
		Y: cp.Clamp(p.Y, lo.Y, hi.Y),
	}
}
