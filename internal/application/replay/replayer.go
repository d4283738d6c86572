package replay

import (
	"time"

	"github.com/younwookim/webslinger/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data    ReplayData
	frame   int
	respawn bool
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Next returns the input and step time of the current frame and advances.
// ok is false once every frame has been played.
func (r *Replayer) Next() (input system.InputState, dt float64, ok bool) {
	r.respawn = false
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, 0, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	r.respawn = fi.S

	return system.InputState{
		MoveLeft:  fi.L,
		MoveRight: fi.R,
		Jump:      fi.J,
		Action:    fi.A,
	}, fi.DT, true
}

// Respawned reports whether the frame last returned by Next began with the
// character being sent back to its spawn point.
func (r *Replayer) Respawned() bool {
	return r.respawn
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Stage returns the stage the recording was made on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.respawn = false
}

// CreateTestReplayData creates replay data for testing (idle character)
func CreateTestReplayData(frames int, dt float64) ReplayData {
	data := ReplayData{
		Version:   Version,
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i, DT: dt}
	}

	return data
}
