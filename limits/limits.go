// Package limits provides centralized frame size limits for the differencing engine.
// This ensures consistent validation across frame construction, decoding and scaling.
package limits

import (
	"errors"
	"fmt"
)

const (
	// BytesPerPixel is the number of 8-bit samples stored per pixel (R, G, B).
	BytesPerPixel = 3

	// MaxFrameWidth is the widest frame accepted (8K UHD)
	MaxFrameWidth = 7680

	// MaxFrameHeight is the tallest frame accepted (8K UHD)
	MaxFrameHeight = 4320
)

var (
	// ErrInvalidDimensions indicates a zero-area frame was requested
	ErrInvalidDimensions = errors.New("invalid frame dimensions")

	// ErrFrameTooLarge indicates frame dimensions exceed MaxFrameWidth or MaxFrameHeight
	ErrFrameTooLarge = errors.New("frame too large")
)

// ValidateFrameDimensions validates width and height against the frame limits.
// Returns an error with context including the actual and maximum sizes.
func ValidateFrameDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > MaxFrameWidth || height > MaxFrameHeight {
		return fmt.Errorf("%w: %dx%d exceeds limit %dx%d", ErrFrameTooLarge, width, height, MaxFrameWidth, MaxFrameHeight)
	}
	return nil
}

// BufferSize returns the packed RGB buffer length for the given dimensions.
// It does not validate; call ValidateFrameDimensions first.
func BufferSize(width, height int) int {
	return width * height * BytesPerPixel
}
