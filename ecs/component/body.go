package component

import "github.com/jakecoffman/cp"

// Position is the world-space center of an entity, y up.
type Position struct {
	Vec cp.Vector
}

var PositionComponent = NewComponent[Position]()

// Velocity is applied to Position once per tick, unscaled.
type Velocity struct {
	Vec cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()

// Gravity is added to Velocity every tick for entities tagged Gravitated.
type Gravity struct {
	Accel cp.Vector
}

var GravityComponent = NewComponent[Gravity]()

type GravitatedTag struct{}

var GravitatedTagComponent = NewComponent[GravitatedTag]()
