package state

// Motion is the character's discrete movement state.
type Motion int

const (
	GroundedIdle Motion = iota
	GroundedRunning
	AirborneAscending
	AirborneDescending
)

// String returns the string representation of the motion state
func (m Motion) String() string {
	switch m {
	case GroundedIdle:
		return "Idle"
	case GroundedRunning:
		return "Running"
	case AirborneAscending:
		return "Ascending"
	case AirborneDescending:
		return "Descending"
	default:
		return "Unknown"
	}
}

// Grounded reports whether the state is one of the grounded states.
func (m Motion) Grounded() bool {
	return m == GroundedIdle || m == GroundedRunning
}

// Facing is the direction the character sprite faces.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns the string representation of the facing
func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "Right"
	case FacingLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// FacingFor returns the facing for a movement direction (-1 left, +1 right).
func FacingFor(direction int) Facing {
	if direction < 0 {
		return FacingLeft
	}
	return FacingRight
}

// GameState represents the scene's run mode
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}
