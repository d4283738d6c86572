package animation

import (
	"fmt"
	"math"
)

// Playback tunes a single Advance call. The zero value plays the clip with
// its stored frame durations and loops at the end.
type Playback struct {
	// Duration, when non-zero, replaces the stored frame duration for this call.
	Duration float64
	// Offset, when non-zero and Duration is zero, is added to the stored
	// duration; the absolute value of the sum is used.
	Offset float64
	// Once freezes the clip on its last frame instead of wrapping to frame 0.
	Once bool
}

// Player is a cursor over a ClipSet. It is owned by one character and is not
// safe for concurrent use.
type Player[H any] struct {
	set    *ClipSet[H]
	active string
	frames []Frame[H]
	cursor int
	once   bool
	timer  Timer
}

// NewPlayer creates a player over set. No clip is active until the first
// Advance.
func NewPlayer[H any](set *ClipSet[H]) *Player[H] {
	return &Player[H]{set: set}
}

// Advance moves the animation of clip forward by elapsed seconds and returns
// the frame to display for this call.
//
// Switching to a different clip resets the accumulator but keeps the cursor
// value; it is then clamped against the new clip like any other overflow.
// The returned frame is the one under the cursor before this call's advance,
// so a threshold crossing becomes visible on the next call.
func (p *Player[H]) Advance(clip string, elapsed float64, pb Playback) (H, error) {
	var zero H
	if err := checkElapsed(elapsed); err != nil {
		return zero, err
	}

	if clip != p.active || p.frames == nil {
		frames, ok := p.set.clips[clip]
		if !ok {
			return zero, fmt.Errorf("%w: %q", ErrUnknownClip, clip)
		}
		p.active = clip
		p.frames = frames
		p.timer.Reset()
	}
	if len(p.frames) == 0 {
		return zero, nil
	}

	p.once = pb.Once
	last := len(p.frames) - 1
	if p.cursor > last {
		if pb.Once {
			p.cursor = last
		} else {
			p.cursor = 0
		}
	}

	frame := p.frames[p.cursor]
	threshold := frame.Duration
	switch {
	case pb.Duration != 0:
		threshold = pb.Duration
	case pb.Offset != 0:
		threshold = math.Abs(frame.Duration + pb.Offset)
	}

	next, err := p.timer.Tick(elapsed, threshold)
	if err != nil {
		return zero, err
	}
	if next {
		p.cursor++
	}

	return frame.Handle, nil
}

// Cursor returns the index of the frame the next Advance of the active clip
// starts from, with end-of-clip wrapping or freezing already applied.
func (p *Player[H]) Cursor() int {
	if last := len(p.frames) - 1; last >= 0 && p.cursor > last {
		if p.once {
			return last
		}
		return 0
	}
	return p.cursor
}

// Accumulated returns the time accumulated toward the current frame.
func (p *Player[H]) Accumulated() float64 {
	return p.timer.Elapsed()
}

// ActiveClip returns the clip played by the last Advance.
func (p *Player[H]) ActiveClip() (string, bool) {
	return p.active, p.frames != nil
}

// Reset returns the player to its initial state with no active clip.
func (p *Player[H]) Reset() {
	p.active = ""
	p.frames = nil
	p.cursor = 0
	p.once = false
	p.timer.Reset()
}
