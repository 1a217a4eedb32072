// Package derivative provides frame differencing for offline video analysis.
//
// An Engine turns an ordered sequence of RGB frames into a derivative
// sequence where each output frame highlights per-pixel change between
// consecutive inputs. Change at or below a configurable threshold is
// suppressed, isolating motion and edges.
//
// # Processing Model
//
//	Frame N-1 ┐
//	          ├→ Noise Reduction → |prev − cur| → Gate → (Resize) → Derivative N
//	Frame N   ┘
//
// The first frame after construction or Reset has no predecessor and
// produces a black frame. Each later frame is compared with a private copy
// of the one before it.
//
//	engine, err := derivative.NewEngine(derivative.NewProcessingConfig())
//	if err != nil {
//	    return err
//	}
//
//	for _, f := range frames {
//	    d, err := engine.Process(f)
//	    if err != nil {
//	        return fmt.Errorf("differencing failed: %w", err)
//	    }
//	    // d.Index counts engine calls from 0; d.Timestamp is f.Timestamp
//	}
//
// # Threshold Gate
//
// For every pixel the channel deltas dr, dg and db are computed as absolute
// differences. The GatePolicy then decides whether the pixel keeps all three
// deltas or becomes black:
//
//   - GateRed (default): pass when dr > Threshold
//   - GateAnyChannel: pass when any delta > Threshold
//   - GateLuminance: pass when the Rec.601 luma of the deltas > Threshold
//
// Channels are never gated independently.
//
// # Noise Reduction
//
// With NoiseReduction enabled both frames are box blurred (BlurRadius)
// before differencing. Uniform regions are unaffected, while isolated
// single-pixel changes are spread out and usually fall under the threshold.
//
// # Output Size
//
// Output frames match the input dimensions. OutputWidth and OutputHeight
// only take effect when ResizeOutput is set, in which case a bilinear
// Scaler runs after the gate.
//
// # Errors
//
// Process fails with ErrNilFrame or ErrDimensionMismatch; NewEngine and
// SetConfig fail with ErrInvalidConfig. Failed calls leave the engine state
// untouched. Use errors.Is to classify.
//
// # Thread Safety
//
// Engine is NOT thread-safe. The retained frame swap and counter increment
// form one logical step; share an engine only behind external
// synchronization, or create one engine per stream.
package derivative
