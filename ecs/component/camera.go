package component

// Camera holds view settings for the camera singleton. Follow tuning lives
// in config.Tuning.
type Camera struct {
	Zoom float64
}

var CameraComponent = NewComponent[Camera]()
