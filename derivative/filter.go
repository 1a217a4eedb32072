// Package derivative provides noise reduction filters for the differencing engine.
//
// This file implements pre-difference filters that can be applied to RGB
// frames before the thresholded difference is computed.
package derivative

import (
	"fmt"

	"github.com/opd-ai/videoderiv/frame"
)

// Filter represents a pixel filter that can be applied to frames.
type Filter interface {
	// Apply processes a frame and returns a new filtered frame
	Apply(f *frame.Frame) (*frame.Frame, error)
	// GetName returns the filter name for identification
	GetName() string
}

// FilterChain applies its filters in order. A nil or empty chain is a
// pass-through that still returns a copy.
type FilterChain []Filter

// Apply processes a frame through all filters in the chain.
// The input frame is never modified.
func (fc FilterChain) Apply(f *frame.Frame) (*frame.Frame, error) {
	if f == nil {
		return nil, ErrNilFrame
	}

	if len(fc) == 0 {
		return f.Clone(), nil
	}

	current := f
	for i, filter := range fc {
		result, err := filter.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("filter %d (%s) failed: %w", i, filter.GetName(), err)
		}
		current = result
	}

	return current, nil
}

// BoxBlurFilter applies a box blur to all three channels.
type BoxBlurFilter struct {
	radius int // Blur radius (1-5)
}

// NewBoxBlurFilter creates a box blur with the given radius.
// radius: 1-5, larger values blur more; out of range values are clamped
func NewBoxBlurFilter(radius int) *BoxBlurFilter {
	if radius < 1 {
		radius = 1
	}
	if radius > MaxBlurRadius {
		radius = MaxBlurRadius
	}

	return &BoxBlurFilter{
		radius: radius,
	}
}

// Apply averages each pixel with its neighbours inside the radius.
// Neighbours outside the frame are excluded from the average, so a
// uniform frame is returned unchanged.
func (bf *BoxBlurFilter) Apply(f *frame.Frame) (*frame.Frame, error) {
	if f == nil {
		return nil, ErrNilFrame
	}

	result := f.Clone()
	width, height := f.Dimensions()
	src := f.Pix()
	dst := result.Pix()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sumR, sumG, sumB, count int

			for dy := -bf.radius; dy <= bf.radius; dy++ {
				ny := y + dy
				if ny < 0 || ny >= height {
					continue
				}
				for dx := -bf.radius; dx <= bf.radius; dx++ {
					nx := x + dx
					if nx < 0 || nx >= width {
						continue
					}
					i := (ny*width + nx) * 3
					sumR += int(src[i])
					sumG += int(src[i+1])
					sumB += int(src[i+2])
					count++
				}
			}

			i := (y*width + x) * 3
			dst[i] = byte(sumR / count)
			dst[i+1] = byte(sumG / count)
			dst[i+2] = byte(sumB / count)
		}
	}

	return result, nil
}

// GetName returns the filter name.
func (bf *BoxBlurFilter) GetName() string {
	return fmt.Sprintf("BoxBlur(%d)", bf.radius)
}
