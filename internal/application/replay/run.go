package replay

import (
	"fmt"

	"github.com/younwookim/webslinger/internal/application/state"
	"github.com/younwookim/webslinger/internal/application/system"
	"github.com/younwookim/webslinger/internal/domain/entity"
)

// Result summarizes a headless playback
type Result struct {
	Frames   int
	Elapsed  float64
	Actions  int
	Position entity.Vec2
	Velocity entity.Vec2
	Motion   state.Motion
	Facing   state.Facing
}

// Run feeds every remaining frame of r into c. A frame recorded with a
// respawn puts c back at its spawn point before stepping. observe, if not
// nil, sees each step's output.
func Run[H any](c *system.Controller[H], r *Replayer, observe func(frame int, out system.Output[H])) (Result, error) {
	var res Result
	for {
		input, dt, ok := r.Next()
		if !ok {
			break
		}

		if r.Respawned() {
			c.Respawn(c.Spawn())
		}
		out, err := c.Step(input, dt)
		if err != nil {
			return res, fmt.Errorf("frame %d: %w", r.CurrentFrame()-1, err)
		}
		if observe != nil {
			observe(res.Frames, out)
		}

		res.Frames++
		res.Elapsed += dt
		if out.Action {
			res.Actions++
		}
	}

	body := c.Body()
	res.Position = body.Position
	res.Velocity = body.Velocity
	res.Motion = c.Motion()
	res.Facing = c.Facing()
	return res, nil
}
