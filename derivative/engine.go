package derivative

import (
	"fmt"

	"github.com/opd-ai/videoderiv/frame"
	"github.com/sirupsen/logrus"
)

// Engine converts a frame sequence into change-highlight frames by
// thresholded differencing of consecutive pairs.
//
// The engine has two states. EMPTY (initial, and after Reset) emits a
// black frame for the next input. PRIMED holds a copy of the last input
// and emits the gated difference against it. Every Process call moves the
// engine to PRIMED.
//
// An Engine is not safe for concurrent use. Use one engine per stream.
type Engine struct {
	config   ProcessingConfig
	filters  FilterChain
	scaler   *Scaler
	previous *frame.Frame // owned copy, nil while EMPTY
	counter  uint64
}

// NewEngine creates a differencing engine with the given configuration.
func NewEngine(config ProcessingConfig) (*Engine, error) {
	if err := config.Validate(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "NewEngine",
			"error":    err.Error(),
		}).Error("Processing config validation failed")
		return nil, err
	}

	e := &Engine{
		scaler: NewScaler(),
	}
	e.applyConfig(config)

	logrus.WithFields(logrus.Fields{
		"function":        "NewEngine",
		"threshold":       config.Threshold,
		"fps":             config.FPS,
		"noise_reduction": config.NoiseReduction,
		"gate":            config.Gate.String(),
		"resize_output":   config.ResizeOutput,
	}).Info("Difference engine created")

	return e, nil
}

// applyConfig installs config and rebuilds the noise reduction chain.
func (e *Engine) applyConfig(config ProcessingConfig) {
	e.config = config
	e.filters = nil
	if config.NoiseReduction {
		e.filters = FilterChain{NewBoxBlurFilter(config.BlurRadius)}
	}
}

// Process feeds one frame and returns its derivative.
//
// The first frame after construction or Reset yields a black frame of the
// same dimensions. Later frames yield the gated absolute difference against
// the previous input. The output index is the engine's call counter and the
// timestamp is copied from f. f is never modified.
//
// With NoiseReduction enabled (the default) both frames are box blurred
// before differencing, so output values near edges are the difference of
// local averages rather than the raw |prev-cur|. Uniform regions are
// unaffected. Disable NoiseReduction to get the raw thresholded difference.
//
// A frame whose dimensions differ from the retained frame is rejected with
// ErrDimensionMismatch and leaves the engine state unchanged.
func (e *Engine) Process(f *frame.Frame) (*frame.Frame, error) {
	if f == nil {
		return nil, ErrNilFrame
	}

	var (
		out     *frame.Frame
		changed int
		err     error
	)

	if e.previous == nil {
		out, err = frame.New(f.Width(), f.Height(), e.counter, f.Timestamp)
		if err != nil {
			return nil, err
		}
	} else {
		if !e.previous.SameDimensions(f) {
			pw, ph := e.previous.Dimensions()
			logrus.WithFields(logrus.Fields{
				"function":        "Engine.Process",
				"expected_width":  pw,
				"expected_height": ph,
				"actual_width":    f.Width(),
				"actual_height":   f.Height(),
			}).Error("Frame dimension validation failed")
			return nil, fmt.Errorf("%w: expected %dx%d, got %dx%d",
				ErrDimensionMismatch, pw, ph, f.Width(), f.Height())
		}

		out, changed, err = e.thresholdedDifference(e.previous, f)
		if err != nil {
			return nil, err
		}
	}

	out, err = e.applyResize(out)
	if err != nil {
		return nil, err
	}
	out.Index = e.counter
	out.Timestamp = f.Timestamp

	logrus.WithFields(logrus.Fields{
		"function":       "Engine.Process",
		"input_index":    f.Index,
		"output_index":   out.Index,
		"changed_pixels": changed,
		"primed":         e.previous != nil,
	}).Debug("Frame processed")

	e.previous = f.Clone()
	e.counter++

	return out, nil
}

// thresholdedDifference computes the gated difference between prev and cur,
// returning the derivative frame and the number of pixels that passed.
func (e *Engine) thresholdedDifference(prev, cur *frame.Frame) (*frame.Frame, int, error) {
	a, err := e.filters.Apply(prev)
	if err != nil {
		return nil, 0, fmt.Errorf("noise reduction failed: %w", err)
	}
	b, err := e.filters.Apply(cur)
	if err != nil {
		return nil, 0, fmt.Errorf("noise reduction failed: %w", err)
	}

	out, err := frame.New(cur.Width(), cur.Height(), e.counter, cur.Timestamp)
	if err != nil {
		return nil, 0, err
	}

	pa, pb, po := a.Pix(), b.Pix(), out.Pix()
	gate := e.config.Gate
	threshold := e.config.Threshold
	changed := 0

	for i := 0; i < len(po); i += 3 {
		dr := absDiff(pa[i], pb[i])
		dg := absDiff(pa[i+1], pb[i+1])
		db := absDiff(pa[i+2], pb[i+2])

		if gate.Pass(dr, dg, db, threshold) {
			po[i] = byte(dr)
			po[i+1] = byte(dg)
			po[i+2] = byte(db)
			changed++
		}
	}

	return out, changed, nil
}

// applyResize scales the derivative when ResizeOutput is enabled.
func (e *Engine) applyResize(f *frame.Frame) (*frame.Frame, error) {
	if !e.config.ResizeOutput {
		return f, nil
	}

	w, h := int(e.config.OutputWidth), int(e.config.OutputHeight)
	if !e.scaler.IsScalingRequired(f.Width(), f.Height(), w, h) {
		return f, nil
	}

	scaled, err := e.scaler.Scale(f, w, h)
	if err != nil {
		return nil, fmt.Errorf("scaling failed: %w", err)
	}
	return scaled, nil
}

// ProcessSequence feeds every frame in order and collects the outputs.
// It stops at the first error and returns the outputs produced so far.
func (e *Engine) ProcessSequence(frames []*frame.Frame) ([]*frame.Frame, error) {
	out := make([]*frame.Frame, 0, len(frames))
	for i, f := range frames {
		d, err := e.Process(f)
		if err != nil {
			return out, fmt.Errorf("frame %d: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// Reset clears the retained frame and the output counter. The next
// Process call behaves like the first one.
func (e *Engine) Reset() {
	logrus.WithFields(logrus.Fields{
		"function":         "Engine.Reset",
		"frames_processed": e.counter,
	}).Info("Resetting difference engine")

	e.previous = nil
	e.counter = 0
}

// Config returns a copy of the active configuration.
func (e *Engine) Config() ProcessingConfig {
	return e.config
}

// SetConfig replaces the active configuration. The retained frame is kept,
// so a new threshold applies to the very next Process call.
func (e *Engine) SetConfig(config ProcessingConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"function":        "Engine.SetConfig",
		"old_threshold":   e.config.Threshold,
		"new_threshold":   config.Threshold,
		"noise_reduction": config.NoiseReduction,
		"gate":            config.Gate.String(),
	}).Info("Updating processing config")

	e.applyConfig(config)
	return nil
}

// Primed reports whether the engine holds a previous frame.
func (e *Engine) Primed() bool {
	return e.previous != nil
}

// FrameCount returns the number of frames processed since construction
// or the last Reset. It is also the index of the next output frame.
func (e *Engine) FrameCount() uint64 {
	return e.counter
}

// Difference returns the ungated per-channel absolute difference of two
// frames of equal size. The result carries b's index and timestamp.
func Difference(a, b *frame.Frame) (*frame.Frame, error) {
	if a == nil || b == nil {
		return nil, ErrNilFrame
	}
	if !a.SameDimensions(b) {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d",
			ErrDimensionMismatch, a.Width(), a.Height(), b.Width(), b.Height())
	}

	out, err := frame.New(b.Width(), b.Height(), b.Index, b.Timestamp)
	if err != nil {
		return nil, err
	}

	pa, pb, po := a.Pix(), b.Pix(), out.Pix()
	for i := range po {
		po[i] = byte(absDiff(pa[i], pb[i]))
	}
	return out, nil
}

func absDiff(a, b byte) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
