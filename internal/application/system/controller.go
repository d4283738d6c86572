package system

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"

	"github.com/younwookim/webslinger/internal/application/state"
	"github.com/younwookim/webslinger/internal/domain/animation"
	"github.com/younwookim/webslinger/internal/domain/entity"
)

// Output is what one step hands to the renderer
type Output[H any] struct {
	Handle     H
	Mirror     bool // draw flipped horizontally
	Position   entity.Vec2
	Motion     state.Motion
	Facing     state.Facing
	FlipLocked bool
	Action     bool
}

// Pos returns the body position after the step.
func (o Output[H]) Pos() entity.Vec2 {
	return o.Position
}

// Controller drives one character: it feeds input into a KinematicBody,
// tracks grounded/airborne and facing, and picks the animation clip that
// matches the resulting motion.
//
// Each Step runs input, physics, ground transition, clip selection and
// animation advance in that order. Facing only changes while grounded, and
// the step in which it changes brakes with FlipDecel instead of Decel.
type Controller[H any] struct {
	body   entity.KinematicBody
	player *animation.Player[H]
	clips  Clips
	tuning Tuning
	ground float64
	spawn  entity.Vec2

	grounded  bool
	flipArmed bool
	flipLock  bool
	facing    state.Facing
	motion    state.Motion
}

// NewController creates a controller for a character spawned at spawn.
// Every clip named in clips must exist in set.
func NewController[H any](set *animation.ClipSet[H], clips Clips, tuning Tuning, spawn entity.Vec2, groundLevel float64) (*Controller[H], error) {
	for _, name := range clips.all() {
		if !set.Has(name) {
			return nil, fmt.Errorf("controller clip %q: %w", name, animation.ErrUnknownClip)
		}
	}

	c := &Controller[H]{
		player: animation.NewPlayer(set),
		clips:  clips,
		ground: groundLevel,
	}
	c.Retune(tuning)
	c.Respawn(spawn)
	return c, nil
}

// Retune replaces the movement constants. Position, velocity and animation
// state are kept.
func (c *Controller[H]) Retune(t Tuning) {
	c.tuning = t
	c.body.MaxSpeed = t.MaxSpeed
	c.body.Accel = t.Accel
	c.body.Decel = t.Decel
	c.body.FlipDecel = t.FlipDecel
	c.body.Gravity = t.Gravity
}

// Respawn places the character at spawn, at rest, facing right. spawn
// becomes the point reported by Spawn.
func (c *Controller[H]) Respawn(spawn entity.Vec2) {
	c.spawn = spawn
	c.body.Position = spawn
	c.body.Velocity = entity.Vec2{}
	c.body.Run = false
	c.body.Direction = 1
	c.body.Flip = false

	c.grounded = spawn.Y >= c.ground
	if c.grounded {
		c.body.Position.Y = c.ground
	}
	c.flipArmed = c.grounded
	c.flipLock = false
	c.facing = state.FacingRight
	c.motion = c.classify()
	c.player.Reset()
}

// Step advances the character by dt seconds.
func (c *Controller[H]) Step(in InputState, dt float64) (Output[H], error) {
	var zero Output[H]
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return zero, fmt.Errorf("%w: step %v", animation.ErrInvalidTime, dt)
	}
	if c.tuning.MaxStep > 0 && dt > c.tuning.MaxStep {
		dt = c.tuning.MaxStep
	}

	// Input
	intent := ResolveIntent(in, c.body.Direction)
	c.body.Run = intent.Run
	c.body.Direction = intent.Direction
	if intent.Jump && c.grounded {
		c.grounded = false
		c.flipArmed = false
		c.body.Velocity.Y = c.tuning.LaunchSpeed
	}

	c.flipLock = false
	if c.flipArmed {
		facing := state.FacingFor(c.body.Direction)
		c.flipLock = facing != c.facing
		c.facing = facing
	}

	// Physics
	c.body.Flip = c.flipLock
	c.body.Update(dt)

	// State transition
	c.settle()
	c.motion = c.classify()

	// Animation
	clip, pb := c.selectClip()
	handle, err := c.player.Advance(clip, dt, pb)
	if err != nil {
		return zero, fmt.Errorf("advance %q: %w", clip, err)
	}

	return Output[H]{
		Handle:     handle,
		Mirror:     c.facing == state.FacingLeft,
		Position:   c.body.Position,
		Motion:     c.motion,
		Facing:     c.facing,
		FlipLocked: c.flipLock,
		Action:     intent.Action,
	}, nil
}

// settle applies ground contact. A rising body that has just launched is
// left alone until it comes back down.
func (c *Controller[H]) settle() {
	b := &c.body
	if b.Position.Y < c.ground {
		return
	}
	if !c.grounded {
		if b.Velocity.Y < 0 {
			return
		}
		c.grounded = true
		c.flipArmed = true
	}
	b.Velocity.Y = math.Min(0, b.Velocity.Y)
	b.Position.Y = c.ground
}

func (c *Controller[H]) classify() state.Motion {
	if c.grounded {
		if c.body.Run {
			return state.GroundedRunning
		}
		return state.GroundedIdle
	}
	if c.body.Velocity.Y < 0 {
		return state.AirborneAscending
	}
	return state.AirborneDescending
}

func (c *Controller[H]) selectClip() (string, animation.Playback) {
	switch c.motion {
	case state.GroundedRunning:
		return c.clips.Run, animation.Playback{Duration: c.runFrameDuration()}
	case state.AirborneAscending:
		return c.clips.Ascend, animation.Playback{Duration: c.tuning.JumpFrameDuration, Once: true}
	case state.AirborneDescending:
		return c.clips.Descend, animation.Playback{Duration: c.tuning.JumpFrameDuration, Once: true}
	default:
		return c.clips.Idle, animation.Playback{}
	}
}

// runFrameDuration interpolates the run clip's frame duration from slow to
// fast as speed approaches MaxSpeed, rounded to centiseconds.
func (c *Controller[H]) runFrameDuration() float64 {
	ratio := 0.0
	if c.tuning.MaxSpeed > 0 {
		ratio = math.Min(1, math.Abs(c.body.Velocity.X)/c.tuning.MaxSpeed)
	}
	slow, fast := c.tuning.RunSlowDuration, c.tuning.RunFastDuration
	d := ease.Linear(float32(ratio), float32(slow), float32(fast-slow), 1)
	return math.Round(float64(d)*100) / 100
}

// Pos returns the body position.
func (c *Controller[H]) Pos() entity.Vec2 {
	return c.body.Position
}

// Spawn returns the point of the last respawn.
func (c *Controller[H]) Spawn() entity.Vec2 {
	return c.spawn
}

// Body returns a copy of the kinematic body.
func (c *Controller[H]) Body() entity.KinematicBody {
	return c.body
}

// Motion returns the motion state of the last step.
func (c *Controller[H]) Motion() state.Motion {
	return c.motion
}

// Facing returns the current facing.
func (c *Controller[H]) Facing() state.Facing {
	return c.facing
}

// Grounded reports whether the character stands on the ground line.
func (c *Controller[H]) Grounded() bool {
	return c.grounded
}

// FlipLocked reports whether the last step changed facing.
func (c *Controller[H]) FlipLocked() bool {
	return c.flipLock
}

// Animation returns the character's animation player.
func (c *Controller[H]) Animation() *animation.Player[H] {
	return c.player
}
