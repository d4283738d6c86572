package animation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPlayer(t *testing.T) *Player[string] {
	t.Helper()
	set, err := NewClipSet(createTestCatalog())
	require.NoError(t, err)
	return NewPlayer(set)
}

func TestPlayer_IdleScenario(t *testing.T) {
	p := createTestPlayer(t)

	_, ok := p.ActiveClip()
	assert.False(t, ok, "no clip is active before the first advance")

	frame, err := p.Advance("Idle", 0.3, Playback{})
	require.NoError(t, err)
	assert.Equal(t, "f0", frame)
	assert.Equal(t, 1, p.Cursor())
	assert.Equal(t, 0.0, p.Accumulated())

	frame, err = p.Advance("Idle", 0.3, Playback{})
	require.NoError(t, err)
	assert.Equal(t, "f1", frame)
	assert.Equal(t, 0, p.Cursor(), "cursor wraps on a looping clip")

	frame, err = p.Advance("Idle", 0.0, Playback{})
	require.NoError(t, err)
	assert.Equal(t, "f0", frame)

	name, ok := p.ActiveClip()
	assert.True(t, ok)
	assert.Equal(t, "Idle", name)
}

func TestPlayer_AdvancesOnceForSplitDeltas(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float64
	}{
		{"single", []float64{0.3}},
		{"halves", []float64{0.15, 0.15}},
		{"thirds", []float64{0.1, 0.1, 0.1}},
		{"uneven", []float64{0.017, 0.033, 0.1, 0.05, 0.1}},
		{"sixtieths", repeat(1.0/60.0, 18)},
		{"with zeros", []float64{0, 0.2, 0, 0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createTestPlayer(t)
			for i, dt := range tt.deltas {
				frame, err := p.Advance("Run", dt, Playback{})
				require.NoError(t, err)
				assert.Equal(t, "g0", frame, "frame returned on call %d", i)
				if i < len(tt.deltas)-1 {
					assert.Equal(t, 0, p.Cursor(), "advanced early on call %d", i)
				}
			}
			assert.Equal(t, 1, p.Cursor())
			assert.Equal(t, 0.0, p.Accumulated())
		})
	}
}

func TestPlayer_LoopIsCyclic(t *testing.T) {
	p := createTestPlayer(t)

	var seen []string
	for i := 0; i < 7; i++ {
		frame, err := p.Advance("Run", DefaultFrameDuration, Playback{})
		require.NoError(t, err)
		seen = append(seen, frame)
	}

	assert.Equal(t, []string{"g0", "g1", "g2", "g0", "g1", "g2", "g0"}, seen)
	assert.Equal(t, 1, p.Cursor())
}

func TestPlayer_OnceFreezesOnLastFrame(t *testing.T) {
	p := createTestPlayer(t)

	var seen []string
	for i := 0; i < 8; i++ {
		frame, err := p.Advance("Run", 0.2, Playback{Duration: 0.2, Once: true})
		require.NoError(t, err)
		seen = append(seen, frame)
		assert.LessOrEqual(t, p.Cursor(), 2)
	}

	assert.Equal(t, []string{"g0", "g1", "g2", "g2", "g2", "g2", "g2", "g2"}, seen)
	assert.Equal(t, 2, p.Cursor())
}

func TestPlayer_ExplicitDuration(t *testing.T) {
	p := createTestPlayer(t)

	_, err := p.Advance("Run", 0.1, Playback{Duration: 0.1})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Cursor())

	// Explicit duration wins over offset
	_, err = p.Advance("Run", 0.1, Playback{Duration: 0.1, Offset: 5})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Cursor())
}

func TestPlayer_DurationOffset(t *testing.T) {
	p := createTestPlayer(t)

	// 0.3 - 0.1 = 0.2
	_, err := p.Advance("Run", 0.2, Playback{Offset: -0.1})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Cursor())

	// |0.3 - 0.5| = 0.2
	_, err = p.Advance("Run", 0.1, Playback{Offset: -0.5})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Cursor())
	_, err = p.Advance("Run", 0.1, Playback{Offset: -0.5})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Cursor())

	// 0.3 + 0.2 = 0.5
	_, err = p.Advance("Run", 0.4, Playback{Offset: 0.2})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Cursor())
	_, err = p.Advance("Run", 0.1, Playback{Offset: 0.2})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Cursor())
}

func TestPlayer_StoredDurations(t *testing.T) {
	set, err := NewClipSet(createTestCatalog())
	require.NoError(t, err)
	set, err = set.WithDurations("Idle", []float64{0.1, 0.5})
	require.NoError(t, err)
	p := NewPlayer(set)

	_, err = p.Advance("Idle", 0.1, Playback{})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Cursor())

	frame, err := p.Advance("Idle", 0.4, Playback{})
	require.NoError(t, err)
	assert.Equal(t, "f1", frame)
	assert.Equal(t, 1, p.Cursor())
	assert.InDelta(t, 0.4, p.Accumulated(), 1e-9)
}

func TestPlayer_SwitchKeepsCursor(t *testing.T) {
	p := createTestPlayer(t)

	// Run: cursor 0 -> 1
	_, err := p.Advance("Run", 0.3, Playback{})
	require.NoError(t, err)
	// Partially accumulate on frame 1
	_, err = p.Advance("Run", 0.2, Playback{})
	require.NoError(t, err)
	require.Equal(t, 1, p.Cursor())
	require.InDelta(t, 0.2, p.Accumulated(), 1e-9)

	// Idle has a frame 1, so the cursor is kept but the accumulator resets
	frame, err := p.Advance("Idle", 0.0, Playback{})
	require.NoError(t, err)
	assert.Equal(t, "f1", frame)
	assert.Equal(t, 1, p.Cursor())
	assert.Equal(t, 0.0, p.Accumulated())
}

func TestPlayer_SwitchClampsCursor(t *testing.T) {
	p := createTestPlayer(t)

	for i := 0; i < 2; i++ {
		_, err := p.Advance("Run", 0.3, Playback{})
		require.NoError(t, err)
	}
	require.Equal(t, 2, p.Cursor())

	// Idle is shorter: cursor 2 overflows and wraps
	frame, err := p.Advance("Idle", 0.0, Playback{})
	require.NoError(t, err)
	assert.Equal(t, "f0", frame)

	p.Reset()
	for i := 0; i < 2; i++ {
		_, err := p.Advance("Run", 0.3, Playback{})
		require.NoError(t, err)
	}

	// Non-looping: cursor 2 freezes on Idle's last frame
	frame, err = p.Advance("Idle", 0.0, Playback{Once: true})
	require.NoError(t, err)
	assert.Equal(t, "f1", frame)
}

func TestPlayer_UnknownClip(t *testing.T) {
	p := createTestPlayer(t)

	_, err := p.Advance("Idle", 0.3, Playback{})
	require.NoError(t, err)

	frame, err := p.Advance("Swing", 0.1, Playback{})
	assert.ErrorIs(t, err, ErrUnknownClip)
	assert.Equal(t, "", frame)

	name, _ := p.ActiveClip()
	assert.Equal(t, "Idle", name, "failed advance must not switch clips")
	assert.Equal(t, 1, p.Cursor())
}

func TestPlayer_InvalidElapsed(t *testing.T) {
	for _, dt := range []float64{-0.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		p := createTestPlayer(t)
		_, err := p.Advance("Idle", 0.1, Playback{})
		require.NoError(t, err)

		_, err = p.Advance("Run", dt, Playback{})
		assert.ErrorIs(t, err, ErrInvalidTime)

		name, _ := p.ActiveClip()
		assert.Equal(t, "Idle", name)
		assert.InDelta(t, 0.1, p.Accumulated(), 1e-9)
	}
}

func TestPlayer_Reset(t *testing.T) {
	p := createTestPlayer(t)
	_, err := p.Advance("Run", 0.3, Playback{})
	require.NoError(t, err)

	p.Reset()

	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, 0.0, p.Accumulated())
	_, ok := p.ActiveClip()
	assert.False(t, ok)
}

func TestTimer_Tick(t *testing.T) {
	var tm Timer

	done, err := tm.Tick(0.1, 0.3)
	require.NoError(t, err)
	assert.False(t, done)

	done, err = tm.Tick(0.2, 0.3)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 0.0, tm.Elapsed())

	// Sub-millisecond noise is rounded away
	done, err = tm.Tick(0.2999999, 0.3)
	require.NoError(t, err)
	assert.True(t, done)

	_, err = tm.Tick(-1, 0.3)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
