package frame

import "errors"

// Sentinel errors for frame operations.
// These errors enable reliable error classification using errors.Is().
var (
	// ErrEncoding indicates a frame could not be written to a raster file.
	ErrEncoding = errors.New("frame encoding failed")

	// ErrDecoding indicates a raster file could not be read into a frame.
	ErrDecoding = errors.New("frame decoding failed")

	// ErrBufferSize indicates a pixel buffer does not match the frame dimensions.
	ErrBufferSize = errors.New("pixel buffer size mismatch")
)
