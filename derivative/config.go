package derivative

import (
	"fmt"

	"github.com/opd-ai/videoderiv/limits"
)

// Default processing parameters.
const (
	DefaultThreshold    uint8  = 30
	DefaultFPS          uint32 = 30
	DefaultOutputWidth  uint32 = 640
	DefaultOutputHeight uint32 = 480
	DefaultBlurRadius          = 1

	// MaxBlurRadius bounds the noise reduction kernel.
	MaxBlurRadius = 5
)

// ProcessingConfig holds the tunable parameters of a differencing run.
//
// It is a plain value: copies are independent and equality is structural.
// An Engine only observes a new config through SetConfig.
type ProcessingConfig struct {
	// Threshold is the gate level; deltas at or below it are zeroed.
	Threshold uint8

	// FPS is a frame rate hint for callers deriving timestamps or
	// re-encoding the output. The differencing itself ignores it.
	FPS uint32

	// OutputWidth and OutputHeight are only applied when ResizeOutput is set.
	// Otherwise output frames always match the input dimensions.
	OutputWidth  uint32
	OutputHeight uint32

	// NoiseReduction box-blurs both frames before differencing so isolated
	// single-pixel changes are attenuated below the threshold.
	NoiseReduction bool

	// BlurRadius is the box blur radius used by NoiseReduction (1-5).
	BlurRadius int

	// Gate selects which channel deltas decide pass/block.
	Gate GatePolicy

	// ResizeOutput scales each output frame to OutputWidth x OutputHeight.
	ResizeOutput bool
}

// NewProcessingConfig returns the default configuration:
// threshold 30, 30 fps, 640x480, noise reduction on, red channel gate.
func NewProcessingConfig() ProcessingConfig {
	return ProcessingConfig{
		Threshold:      DefaultThreshold,
		FPS:            DefaultFPS,
		OutputWidth:    DefaultOutputWidth,
		OutputHeight:   DefaultOutputHeight,
		NoiseReduction: true,
		BlurRadius:     DefaultBlurRadius,
		Gate:           GateRed,
		ResizeOutput:   false,
	}
}

// Validate checks the config for values the engine cannot run with.
func (c ProcessingConfig) Validate() error {
	if c.FPS == 0 {
		return fmt.Errorf("%w: fps cannot be zero", ErrInvalidConfig)
	}
	if !c.Gate.Valid() {
		return fmt.Errorf("%w: %w: %d", ErrInvalidConfig, ErrUnknownGate, int(c.Gate))
	}
	if c.NoiseReduction && (c.BlurRadius < 1 || c.BlurRadius > MaxBlurRadius) {
		return fmt.Errorf("%w: blur radius %d outside 1-%d", ErrInvalidConfig, c.BlurRadius, MaxBlurRadius)
	}
	if c.ResizeOutput {
		if err := limits.ValidateFrameDimensions(int(c.OutputWidth), int(c.OutputHeight)); err != nil {
			return fmt.Errorf("%w: output size: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// FrameTimestamp derives the timestamp in seconds of the frame at index
// from the FPS hint.
func (c ProcessingConfig) FrameTimestamp(index uint64) float64 {
	if c.FPS == 0 {
		return 0
	}
	return float64(index) / float64(c.FPS)
}
