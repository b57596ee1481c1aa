package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// ColliderTag marks static level geometry.
type ColliderTag struct{}

var ColliderTagComponent = NewComponent[ColliderTag]()
