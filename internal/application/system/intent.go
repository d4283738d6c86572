package system

// Intent is what the character wants to do this step, resolved from raw input
type Intent struct {
	Run       bool
	Direction int // -1 for left, 1 for right
	Jump      bool
	Action    bool
}

// ResolveIntent turns sampled input into an Intent.
// Left takes priority when both directions are held. With no direction held
// the previous direction is kept so facing does not snap back to the right.
func ResolveIntent(in InputState, direction int) Intent {
	if direction == 0 {
		direction = 1
	}

	intent := Intent{
		Direction: direction,
		Jump:      in.Jump,
		Action:    in.Action,
	}
	switch {
	case in.MoveLeft:
		intent.Direction = -1
		intent.Run = true
	case in.MoveRight:
		intent.Direction = 1
		intent.Run = true
	}

	return intent
}
