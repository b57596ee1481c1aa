package component

// Transform is the projected presentation state handed to the renderer.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
	Depth    float64
}

var TransformComponent = NewComponent[Transform]()
