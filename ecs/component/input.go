package component

// Input is the control state for the current tick. The simulation overwrites
// it before the scheduler runs.
type Input struct {
	Left   bool
	Right  bool
	Jump   bool
	Attack bool
}

// MoveX returns -1, 0 or 1.
func (in Input) MoveX() int {
	x := 0
	if in.Left {
		x--
	}
	if in.Right {
		x++
	}
	return x
}

var InputComponent = NewComponent[Input]()
