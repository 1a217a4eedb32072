package derivative

import (
	"testing"

	"github.com/opd-ai/videoderiv/frame"
	"github.com/opd-ai/videoderiv/limits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockFrame fills each 2x2 block with one colour, rising linearly from
// block to block, so a symmetric 2x downscale lands on the centre block.
func blockFrame(t testing.TB, width, height int) *frame.Frame {
	t.Helper()
	f, err := frame.New(width, height, 0, 0)
	require.NoError(t, err)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f.Set(x, y, frame.RGB{R: uint8(x / 2 * 8), G: uint8(y / 2 * 10), B: 7})
		}
	}
	return f
}

func TestScaler_Scale_UpScaling(t *testing.T) {
	scaler := NewScaler()
	src := createTestFrame(t, 32, 24)
	src.Index = 4
	src.Timestamp = 0.4

	result, err := scaler.Scale(src, 64, 48)
	require.NoError(t, err)
	assert.Equal(t, 64, result.Width())
	assert.Equal(t, 48, result.Height())
	assert.Len(t, result.Pix(), 64*48*3)
	assert.Equal(t, uint64(4), result.Index)
	assert.Equal(t, 0.4, result.Timestamp)

	// Out-of-frame taps are dropped, so corners map exactly
	assert.Equal(t, src.At(0, 0), result.At(0, 0))
	assert.Equal(t, src.At(31, 23), result.At(63, 47))

	// Interior samples fall between their source neighbours
	got := result.At(21, 0).R
	assert.GreaterOrEqual(t, got, src.At(10, 0).R)
	assert.LessOrEqual(t, got, src.At(11, 0).R)
}

func TestScaler_Scale_DownScaling(t *testing.T) {
	scaler := NewScaler()
	src := blockFrame(t, 64, 48)

	result, err := scaler.Scale(src, 32, 24)
	require.NoError(t, err)
	assert.Equal(t, 32, result.Width())
	assert.Equal(t, 24, result.Height())
	assert.Equal(t, frame.RGB{R: 40, G: 30, B: 7}, result.At(5, 3))
	assert.Equal(t, frame.RGB{R: 80, G: 100, B: 7}, result.At(10, 10))
}

func TestScaler_Scale_SameDimensions(t *testing.T) {
	scaler := NewScaler()
	src := createTestFrame(t, 16, 16)

	result, err := scaler.Scale(src, 16, 16)
	require.NoError(t, err)
	assert.Equal(t, src.Pix(), result.Pix())

	// Verify it's a copy, not the same buffer
	src.Set(1, 1, frame.RGB{R: 201})
	assert.NotEqual(t, uint8(201), result.At(1, 1).R)
}

func TestScaler_Scale_UniformStaysUniform(t *testing.T) {
	scaler := NewScaler()
	src := solidFrame(t, 7, 5, 77, 0)

	result, err := scaler.Scale(src, 23, 11)
	require.NoError(t, err)
	for y := 0; y < result.Height(); y++ {
		for x := 0; x < result.Width(); x++ {
			require.Equal(t, frame.RGB{R: 77, G: 77, B: 77}, result.At(x, y))
		}
	}
}

func TestScaler_Scale_ErrorCases(t *testing.T) {
	scaler := NewScaler()
	src := createTestFrame(t, 16, 16)

	tests := []struct {
		name   string
		frame  *frame.Frame
		width  int
		height int
	}{
		{"nil frame", nil, 16, 16},
		{"zero width", src, 0, 16},
		{"zero height", src, 16, 0},
		{"too large", src, limits.MaxFrameWidth + 1, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := scaler.Scale(tt.frame, tt.width, tt.height)
			assert.Error(t, err)
			assert.Nil(t, result)
		})
	}
}

func TestScaler_IsScalingRequired(t *testing.T) {
	scaler := NewScaler()

	assert.False(t, scaler.IsScalingRequired(640, 480, 640, 480))
	assert.True(t, scaler.IsScalingRequired(640, 480, 320, 480))
	assert.True(t, scaler.IsScalingRequired(640, 480, 640, 240))
}
