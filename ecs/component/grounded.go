package component

// Grounded is rebuilt by the collision pass every tick. Prev holds the value
// from the tick before so landings can be detected as an edge.
type Grounded struct {
	Value bool
	Prev  bool
}

// Landed reports a false to true transition in the current tick.
func (g Grounded) Landed() bool {
	return g.Value && !g.Prev
}

var GroundedComponent = NewComponent[Grounded]()
