package component

// Rotation is the visual lean in radians.
type Rotation struct {
	Angle float64
}

var RotationComponent = NewComponent[Rotation]()

// DepthOrder sorts draw order; physics ignores it.
type DepthOrder struct {
	Z float64
}

var DepthOrderComponent = NewComponent[DepthOrder]()
