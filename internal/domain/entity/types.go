package entity

// Positionable is anything with a world position. The scene places both
// the character and the obstacles through it.
type Positionable interface {
	Pos() Vec2
}

// Obstacle is a static, non-colliding block placed by the stage.
type Obstacle struct {
	Position      Vec2
	Width, Height float64
}

// Pos returns the obstacle's top-left corner.
func (o Obstacle) Pos() Vec2 {
	return o.Position
}

// Stage represents the current stage: its extent, the ground line the
// character lands on, the spawn point and decorative obstacles.
type Stage struct {
	ID          string
	Width       float64
	Height      float64
	GroundLevel float64 // Y at or below which a character is grounded
	Spawn       Vec2
	Obstacles   []Obstacle
}
