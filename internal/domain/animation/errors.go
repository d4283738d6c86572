package animation

import "errors"

var (
	// ErrInvalidFormat reports a malformed clip catalog: an empty clip, a
	// non-positive duration or an override list of the wrong length.
	ErrInvalidFormat = errors.New("animation: invalid format")

	// ErrUnknownClip reports a clip name that is not in the catalog.
	ErrUnknownClip = errors.New("animation: unknown clip")

	// ErrFrameOutOfRange reports a frame index outside a clip.
	ErrFrameOutOfRange = errors.New("animation: frame index out of range")

	// ErrInvalidTime reports an elapsed time that is negative or not finite.
	ErrInvalidTime = errors.New("animation: invalid elapsed time")
)
