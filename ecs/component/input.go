package component

// Input stores the sampled input for one tick.
type Input struct {
	Left        bool
	Right       bool
	Jump        bool
	JumpPressed bool
}

var InputComponent = NewComponent[Input]()
