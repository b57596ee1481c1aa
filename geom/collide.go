package geom

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Side names the face of the static box that the mover is pushed out
// through, from the mover's point of view: Bottom means the mover's bottom
// rests on the static box.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the side resolves along x.
func (s Side) Horizontal() bool {
	return s == Left || s == Right
}

// Contact is the result of a resolved overlap.
type Contact struct {
	Side    Side
	Pushout cp.Vector
}

// Depth is the pushout along the resolved axis.
func (c Contact) Depth() float64 {
	if c.Side.Horizontal() {
		return c.Pushout.X
	}
	return c.Pushout.Y
}

// Apply zeroes the velocity on the resolved axis and moves pos out of the
// static box.
func (c Contact) Apply(pos, vel *cp.Vector) {
	switch c.Side {
	case Top:
		vel.Y = 0
		pos.Y -= c.Pushout.Y
	case Bottom:
		vel.Y = 0
		pos.Y += c.Pushout.Y
	case Left:
		vel.X = 0
		pos.X += c.Pushout.X
	case Right:
		vel.X = 0
		pos.X -= c.Pushout.X
	}
}

// Collide classifies the overlap of moving against static.
//
// The side is chosen by comparing |offset.x|+half.y against
// |offset.y|+half.x, where offset runs from the closest point on static to
// the mover's center. This biases corner hits toward the dominant axis and is
// an approximation, not a per-axis overlap depth or time-of-impact test.
//
// Boxes that only touch report no contact, so resolving an already separated
// pair is a no-op. Non-finite input also reports no contact.
func Collide(moving, static AABB) (Contact, bool) {
	if !moving.finite() || !static.finite() {
		return Contact{}, false
	}
	if !Intersects(moving, static) {
		return Contact{}, false
	}

	closest := ClosestPoint(static, moving.Center)
	offset := moving.Center.Sub(closest)
	half := moving.HalfSize

	var c Contact
	if math.Abs(offset.X)+half.Y > math.Abs(offset.Y)+half.X {
		if offset.X > 0 {
			c = Contact{Side: Left, Pushout: half.Sub(offset)}
		} else {
			c = Contact{Side: Right, Pushout: half.Add(offset)}
		}
	} else if offset.Y < 0 {
		c = Contact{Side: Top, Pushout: half.Add(offset)}
	} else {
		c = Contact{Side: Bottom, Pushout: half.Sub(offset)}
	}

	if c.Depth() <= 0 {
		return Contact{}, false
	}
	return c, true
}
