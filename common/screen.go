package common

import "github.com/jakecoffman/cp"

// WorldToScreen maps a y-up world point to y-down screen pixels with the
// camera at the centre of a BaseWidth x BaseHeight screen.
func WorldToScreen(p, camera cp.Vector, zoom float64) (float64, float64) {
	if zoom <= 0 {
		zoom = 1
	}
	return (p.X-camera.X)*zoom + BaseWidth/2, BaseHeight/2 - (p.Y-camera.Y)*zoom
}
