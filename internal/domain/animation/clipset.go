// Package animation provides time-driven sprite animation: an immutable
// catalog of named clips and a player that walks a cursor through them
// using elapsed wall time instead of frame counts.
package animation

import (
	"fmt"
	"math"
	"sort"
)

// DefaultFrameDuration is the time in seconds each frame is shown unless a
// clip's durations are overridden.
const DefaultFrameDuration = 0.3

// Frame is one entry of a clip. H is the caller's opaque frame handle
// (an image, a sprite id, ...); it is stored and returned but never inspected.
type Frame[H any] struct {
	Handle   H
	Index    int     // 0-based position within the clip
	Duration float64 // seconds
}

// ClipSet maps clip names to their ordered frames.
// A ClipSet is immutable once built; WithDurations returns a new set.
type ClipSet[H any] struct {
	clips map[string][]Frame[H]
}

// NewClipSet builds a clip set from a catalog of clip name to ordered frame
// handles. Every frame gets DefaultFrameDuration.
func NewClipSet[H any](catalog map[string][]H) (*ClipSet[H], error) {
	if len(catalog) == 0 {
		return nil, fmt.Errorf("%w: catalog has no clips", ErrInvalidFormat)
	}

	clips := make(map[string][]Frame[H], len(catalog))
	for name, handles := range catalog {
		if len(handles) == 0 {
			return nil, fmt.Errorf("%w: clip %q has no frames", ErrInvalidFormat, name)
		}
		frames := make([]Frame[H], len(handles))
		for i, h := range handles {
			frames[i] = Frame[H]{Handle: h, Index: i, Duration: DefaultFrameDuration}
		}
		clips[name] = frames
	}

	return &ClipSet[H]{clips: clips}, nil
}

// WithDurations returns a copy of the set in which every frame of clip uses
// the matching entry of durations. The list must cover the whole clip;
// partial overrides are rejected.
func (s *ClipSet[H]) WithDurations(clip string, durations []float64) (*ClipSet[H], error) {
	frames, ok := s.clips[clip]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClip, clip)
	}
	if len(durations) != len(frames) {
		return nil, fmt.Errorf("%w: clip %q has %d frames, got %d durations",
			ErrInvalidFormat, clip, len(frames), len(durations))
	}
	for i, d := range durations {
		if !(d > 0) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("%w: clip %q frame %d duration %v", ErrInvalidFormat, clip, i, d)
		}
	}

	clips := make(map[string][]Frame[H], len(s.clips))
	for name, fs := range s.clips {
		clips[name] = fs
	}
	replaced := make([]Frame[H], len(frames))
	for i, f := range frames {
		f.Duration = durations[i]
		replaced[i] = f
	}
	clips[clip] = replaced

	return &ClipSet[H]{clips: clips}, nil
}

// Names returns the clip names in sorted order.
func (s *ClipSet[H]) Names() []string {
	names := make([]string, 0, len(s.clips))
	for name := range s.clips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the set contains clip.
func (s *ClipSet[H]) Has(clip string) bool {
	_, ok := s.clips[clip]
	return ok
}

// Len returns the number of frames in clip, or 0 if it is unknown.
func (s *ClipSet[H]) Len(clip string) int {
	return len(s.clips[clip])
}

// Frames returns a copy of the frames of clip.
func (s *ClipSet[H]) Frames(clip string) ([]Frame[H], error) {
	frames, ok := s.clips[clip]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClip, clip)
	}
	out := make([]Frame[H], len(frames))
	copy(out, frames)
	return out, nil
}

// Frame returns a single frame of clip.
func (s *ClipSet[H]) Frame(clip string, index int) (Frame[H], error) {
	frames, ok := s.clips[clip]
	if !ok {
		return Frame[H]{}, fmt.Errorf("%w: %q", ErrUnknownClip, clip)
	}
	if index < 0 || index >= len(frames) {
		return Frame[H]{}, fmt.Errorf("%w: clip %q index %d (len %d)", ErrFrameOutOfRange, clip, index, len(frames))
	}
	return frames[index], nil
}
