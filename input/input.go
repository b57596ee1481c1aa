package input

// Action is an abstract control the simulation reacts to.
type Action int

const (
	MoveLeft Action = iota
	MoveRight
	Jump
)

func (a Action) String() string {
	switch a {
	case MoveLeft:
		return "move_left"
	case MoveRight:
		return "move_right"
	case Jump:
		return "jump"
	default:
		return "unknown"
	}
}

// Source answers input queries for the current tick. Implementations must
// not change state when queried.
type Source interface {
	// IsHeld is level-triggered.
	IsHeld(a Action) bool
	// IsPressed is edge-triggered: true only on the tick the action went down.
	IsPressed(a Action) bool
}

// Advancer is implemented by sources that step their own clock once per tick,
// after the tick's input has been sampled.
type Advancer interface {
	Advance()
}

// None is a Source with nothing held.
type None struct{}

func (None) IsHeld(Action) bool    { return false }
func (None) IsPressed(Action) bool { return false }
