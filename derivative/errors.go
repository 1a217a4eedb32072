package derivative

import "errors"

// Sentinel errors for derivative package operations.
// These errors enable reliable error classification using errors.Is().

// Input errors.
var (
	// ErrNilFrame indicates a nil frame was passed to the engine.
	ErrNilFrame = errors.New("input frame cannot be nil")

	// ErrDimensionMismatch indicates a frame does not match the dimensions
	// of the frame retained from the previous call.
	ErrDimensionMismatch = errors.New("frame dimensions do not match previous frame")
)

// Configuration errors.
var (
	// ErrInvalidConfig indicates a ProcessingConfig failed validation.
	ErrInvalidConfig = errors.New("invalid processing config")

	// ErrUnknownGate indicates an unrecognised GatePolicy value.
	ErrUnknownGate = errors.New("unknown gate policy")
)
