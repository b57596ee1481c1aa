package component

import "github.com/jakecoffman/cp"

// Shape is the logical footprint (full width and height).
type Shape struct {
	Size cp.Vector
}

var ShapeComponent = NewComponent[Shape]()

// VisualShape is the squashed footprint. For the player it is also the
// hitbox, so squash and stretch change what the player collides with.
type VisualShape struct {
	Size cp.Vector
}

var VisualShapeComponent = NewComponent[VisualShape]()
