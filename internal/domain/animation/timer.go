package animation

import (
	"fmt"
	"math"
)

// Timer accumulates elapsed time and reports when a frame threshold is
// reached. Values are kept at millisecond precision so that deltas which
// sum to a threshold on paper also reach it in floating point.
type Timer struct {
	acc float64
}

// Tick adds elapsed to the accumulator. When the accumulator reaches
// threshold it is reset to zero and Tick returns true.
func (t *Timer) Tick(elapsed, threshold float64) (bool, error) {
	if err := checkElapsed(elapsed); err != nil {
		return false, err
	}

	t.acc = roundMillis(t.acc + roundMillis(elapsed))
	if t.acc >= roundMillis(threshold) {
		t.acc = 0
		return true, nil
	}
	return false, nil
}

// Elapsed returns the time accumulated since the last threshold crossing.
func (t *Timer) Elapsed() float64 {
	return t.acc
}

// Reset clears the accumulator.
func (t *Timer) Reset() {
	t.acc = 0
}

func checkElapsed(elapsed float64) error {
	if elapsed < 0 || math.IsNaN(elapsed) || math.IsInf(elapsed, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidTime, elapsed)
	}
	return nil
}

func roundMillis(v float64) float64 {
	return math.Round(v*1000) / 1000
}
