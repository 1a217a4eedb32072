// Package limits provides centralized frame size constants and validation functions
// for the differencing engine. This package ensures consistent size enforcement across
// all components that allocate pixel buffers.
//
// # Frame Size Limits
//
//   - MaxFrameWidth x MaxFrameHeight (7680x4320): the largest frame accepted by
//     frame construction, image decoding and the output scaler. frame.Load checks
//     the decoded header dimensions before the pixel data is decoded.
//
// # Validation Functions
//
//	err := limits.ValidateFrameDimensions(width, height)
//	if err != nil {
//	    if errors.Is(err, limits.ErrInvalidDimensions) {
//	        // zero-area frame
//	    }
//	    if errors.Is(err, limits.ErrFrameTooLarge) {
//	        // exceeds the 8K limit
//	    }
//	}
//
// All errors wrap the package sentinel errors so callers can classify them with
// errors.Is.
package limits
