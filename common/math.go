package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Lerp blends a toward b by t as a + t*(b-a).
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpVec applies Lerp per axis. cp.Vector.Lerp uses the (1-t)a + tb form,
// which rounds differently, so keep the a + t*(b-a) form everywhere.
func LerpVec(a, b cp.Vector, t float64) cp.Vector {
	return cp.Vector{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func IsFiniteVec(v cp.Vector) bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}
