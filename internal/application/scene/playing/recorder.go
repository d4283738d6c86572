package playing

import (
	"fmt"
	"time"

	"github.com/younwookim/webslinger/internal/application/replay"
	"github.com/younwookim/webslinger/internal/application/system"
)

// Recorder captures each step's input and elapsed time for replay
type Recorder struct {
	data replay.ReplayData
}

// NewRecorder creates a recorder for a session on stage
func NewRecorder(stage string) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.Version,
			Stage:     stage,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600), // ~1 minute at 60fps
		},
	}
}

// RecordFrame records a single step. respawned marks a step that began
// with the character sent back to its spawn point.
func (r *Recorder) RecordFrame(input system.InputState, dt float64, respawned bool) {
	r.data.Frames = append(r.data.Frames, replay.FrameInput{
		F:  len(r.data.Frames),
		L:  input.MoveLeft,
		R:  input.MoveRight,
		J:  input.Jump,
		A:  input.Action,
		S:  respawned,
		DT: dt,
	})
}

// Save writes the recording to filename
func (r *Recorder) Save(filename string) error {
	return replay.SaveReplay(filename, r.data)
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recording so far
func (r *Recorder) Data() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
