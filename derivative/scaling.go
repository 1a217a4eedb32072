// Package derivative provides output scaling for the differencing engine.
//
// This file implements RGB frame scaling used by the optional resize stage
// between difference computation and output.
package derivative

import (
	"fmt"
	"image"

	"github.com/opd-ai/videoderiv/frame"
	"github.com/opd-ai/videoderiv/limits"
	"golang.org/x/image/draw"
)

// Scaler resizes RGB frames with an x/image interpolation kernel.
type Scaler struct {
	kernel draw.Interpolator
}

// NewScaler creates a bilinear frame scaler.
func NewScaler() *Scaler {
	return &Scaler{
		kernel: draw.BiLinear,
	}
}

// Scale resizes a frame to the specified dimensions.
//
// Samples are taken at pixel centres and weights are renormalized at the
// edges, so uniform frames stay uniform and upscaled corners map exactly.
// Index and Timestamp are carried over. When the dimensions already match,
// a copy is returned.
func (s *Scaler) Scale(f *frame.Frame, targetWidth, targetHeight int) (*frame.Frame, error) {
	if f == nil {
		return nil, fmt.Errorf("source frame cannot be nil")
	}

	if err := limits.ValidateFrameDimensions(targetWidth, targetHeight); err != nil {
		return nil, fmt.Errorf("invalid target dimensions: %w", err)
	}

	if !s.IsScalingRequired(f.Width(), f.Height(), targetWidth, targetHeight) {
		return f.Clone(), nil
	}

	src := f.Image()
	dst := image.NewNRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	s.kernel.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return frame.FromImage(dst, f.Index, f.Timestamp)
}

// IsScalingRequired checks if scaling is needed for given dimensions.
func (s *Scaler) IsScalingRequired(srcWidth, srcHeight, dstWidth, dstHeight int) bool {
	return srcWidth != dstWidth || srcHeight != dstHeight
}
