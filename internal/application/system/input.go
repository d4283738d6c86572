package system

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyMap binds each input to one or more keys
type KeyMap struct {
	Left   []ebiten.Key
	Right  []ebiten.Key
	Jump   []ebiten.Key
	Action []ebiten.Key
}

// DefaultKeyMap is arrows or WASD for movement, Space for the action.
var DefaultKeyMap = KeyMap{
	Left:   []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
	Right:  []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
	Jump:   []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
	Action: []ebiten.Key{ebiten.KeySpace},
}

// InputSystem samples the keyboard once per step
type InputSystem struct {
	keys    KeyMap
	pressed func(ebiten.Key) bool
}

// NewInputSystem creates an input system reading the ebiten keyboard
func NewInputSystem() *InputSystem {
	return &InputSystem{keys: DefaultKeyMap, pressed: ebiten.IsKeyPressed}
}

// InputState holds the input sampled at the start of a step
type InputState struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
	Action    bool
}

// GetInput reads the current input state.
func (s *InputSystem) GetInput() InputState {
	return InputState{
		MoveLeft:  s.any(s.keys.Left),
		MoveRight: s.any(s.keys.Right),
		Jump:      s.any(s.keys.Jump),
		Action:    s.any(s.keys.Action),
	}
}

func (s *InputSystem) any(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.pressed(k) {
			return true
		}
	}
	return false
}
