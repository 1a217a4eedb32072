package derivative

import (
	"testing"

	"github.com/opd-ai/videoderiv/frame"
	"github.com/stretchr/testify/require"
)

// solidFrame creates a width x height frame filled with one grey level.
func solidFrame(t testing.TB, width, height int, level uint8, index uint64) *frame.Frame {
	t.Helper()
	f, err := frame.NewFilled(width, height, frame.RGB{R: level, G: level, B: level}, index, float64(index)/30)
	require.NoError(t, err)
	return f
}

// createTestFrame creates a frame with a deterministic gradient pattern.
func createTestFrame(t testing.TB, width, height int) *frame.Frame {
	t.Helper()
	f, err := frame.New(width, height, 0, 0)
	require.NoError(t, err)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f.Set(x, y, frame.RGB{R: uint8(x * 3), G: uint8(y * 5), B: uint8((x + y) % 256)})
		}
	}
	return f
}

func newTestEngine(t testing.TB, mutate func(*ProcessingConfig)) *Engine {
	t.Helper()
	cfg := NewProcessingConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	e, err := NewEngine(cfg)
	require.NoError(t, err)
	return e
}
