package system

import (
	"github.com/younwookim/webslinger/internal/infrastructure/config"
)

// Tuning holds the numeric constants that drive a character
type Tuning struct {
	MaxSpeed    float64
	Accel       float64
	Decel       float64
	FlipDecel   float64
	Gravity     float64
	LaunchSpeed float64 // negative is upward

	RunSlowDuration   float64
	RunFastDuration   float64
	JumpFrameDuration float64

	MaxStep float64 // 0 disables the per-step clamp
}

// Clips names the clip played in each motion state
type Clips struct {
	Idle    string
	Run     string
	Ascend  string
	Descend string
}

func (c Clips) all() []string {
	return []string{c.Idle, c.Run, c.Ascend, c.Descend}
}

// TuningFromConfig converts the character config into controller tuning
func TuningFromConfig(cfg *config.CharacterConfig) Tuning {
	return Tuning{
		MaxSpeed:          cfg.Movement.MaxSpeed,
		Accel:             cfg.Movement.Acceleration,
		Decel:             cfg.Movement.Deceleration,
		FlipDecel:         cfg.Movement.FlipDeceleration,
		Gravity:           cfg.Jump.Gravity,
		LaunchSpeed:       cfg.Jump.LaunchSpeed,
		RunSlowDuration:   cfg.Animation.RunSlowDuration,
		RunFastDuration:   cfg.Animation.RunFastDuration,
		JumpFrameDuration: cfg.Animation.JumpFrameDuration,
		MaxStep:           cfg.Timing.MaxStep,
	}
}

// ClipsFromConfig converts the configured clip names
func ClipsFromConfig(cfg *config.CharacterConfig) Clips {
	names := cfg.Animation.Clips
	return Clips{
		Idle:    names.Idle,
		Run:     names.Run,
		Ascend:  names.Ascend,
		Descend: names.Descend,
	}
}
