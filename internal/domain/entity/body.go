package entity

// Vec2 is a 2D vector in pixels (position) or pixels per second (velocity).
// Y grows downward, so a negative Y velocity moves up the screen.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// KinematicBody integrates position and velocity for a single character.
// It knows nothing about animation or input devices; the controller sets
// the drive fields (Run, Direction, Flip) before each Update.
type KinematicBody struct {
	Position Vec2
	Velocity Vec2

	MaxSpeed  float64 // horizontal speed limit
	Accel     float64 // horizontal acceleration while running
	Decel     float64 // horizontal deceleration while not running
	FlipDecel float64 // deceleration for the step in which facing flips
	Gravity   float64 // downward acceleration

	// Drive, set once per step
	Run       bool
	Direction int // -1 left, +1 right
	Flip      bool

	appliedDecel float64
}

// Update advances the body by dt seconds.
func (b *KinematicBody) Update(dt float64) {
	b.appliedDecel = 0

	if b.Run {
		b.Velocity.X += b.Accel * float64(b.Direction) * dt
	}
	if b.Flip || !b.Run {
		rate := b.Decel
		if b.Flip {
			rate = b.FlipDecel
		}
		b.Velocity.X = Decelerate(b.MaxSpeed, b.Velocity.X, rate, dt)
		b.appliedDecel = rate
	}

	b.Velocity.Y += b.Gravity * dt

	b.Velocity.X = clamp(b.Velocity.X, -b.MaxSpeed, b.MaxSpeed)
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// AppliedDecel returns the deceleration rate used by the last Update, or 0
// if that step only accelerated.
func (b *KinematicBody) AppliedDecel() float64 {
	return b.appliedDecel
}

// Decelerate moves value toward zero by decel*dt. The result stays on the
// side of zero it started on and its magnitude never exceeds maxSpeed.
func Decelerate(maxSpeed, value, decel, dt float64) float64 {
	switch {
	case value > 0:
		return clamp(value-decel*dt, 0, maxSpeed)
	case value < 0:
		return clamp(value+decel*dt, -maxSpeed, 0)
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
