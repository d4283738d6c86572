package config

import "fmt"

// CharacterConfig is the root config for character.json
type CharacterConfig struct {
	Display   DisplayConfig   `json:"display"`
	Sprite    SpriteConfig    `json:"sprite"`
	Movement  MovementConfig  `json:"movement"`
	Jump      JumpConfig      `json:"jump"`
	Animation AnimationConfig `json:"animation"`
	Timing    TimingConfig    `json:"timing"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// SpriteConfig sizes the placeholder frames used when no asset directory is given
type SpriteConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type MovementConfig struct {
	Acceleration     float64 `json:"acceleration"`
	Deceleration     float64 `json:"deceleration"`
	FlipDeceleration float64 `json:"flipDeceleration"`
	MaxSpeed         float64 `json:"maxSpeed"`
}

type JumpConfig struct {
	LaunchSpeed float64 `json:"launchSpeed"` // negative is upward
	Gravity     float64 `json:"gravity"`
}

type AnimationConfig struct {
	RunSlowDuration   float64         `json:"runSlowDuration"`   // per-frame seconds at rest
	RunFastDuration   float64         `json:"runFastDuration"`   // per-frame seconds at max speed
	JumpFrameDuration float64         `json:"jumpFrameDuration"` // per-frame seconds in the air
	Clips             ClipNamesConfig `json:"clips"`
}

// ClipNamesConfig maps controller states to clip directory names
type ClipNamesConfig struct {
	Idle    string `json:"idle"`
	Run     string `json:"run"`
	Ascend  string `json:"ascend"`
	Descend string `json:"descend"`
}

// All returns the configured clip names in state order.
func (c ClipNamesConfig) All() []string {
	return []string{c.Idle, c.Run, c.Ascend, c.Descend}
}

type TimingConfig struct {
	// MaxStep caps a single step's elapsed time in seconds (0 disables)
	MaxStep float64 `json:"maxStep"`
}

// Validate checks the values the controller depends on. Rates, speeds and
// frame durations must be positive, the launch speed points up and
// maxStep is not negative.
func (c *CharacterConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"movement.maxSpeed", c.Movement.MaxSpeed},
		{"movement.acceleration", c.Movement.Acceleration},
		{"movement.deceleration", c.Movement.Deceleration},
		{"movement.flipDeceleration", c.Movement.FlipDeceleration},
		{"jump.gravity", c.Jump.Gravity},
		{"animation.runSlowDuration", c.Animation.RunSlowDuration},
		{"animation.runFastDuration", c.Animation.RunFastDuration},
		{"animation.jumpFrameDuration", c.Animation.JumpFrameDuration},
	}
	for _, f := range positive {
		if !(f.v > 0) {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidCharacter, f.name, f.v)
		}
	}
	if !(c.Jump.LaunchSpeed < 0) {
		return fmt.Errorf("%w: jump.launchSpeed must be < 0, got %v", ErrInvalidCharacter, c.Jump.LaunchSpeed)
	}
	if !(c.Timing.MaxStep >= 0) {
		return fmt.Errorf("%w: timing.maxStep must be >= 0, got %v", ErrInvalidCharacter, c.Timing.MaxStep)
	}
	return nil
}
