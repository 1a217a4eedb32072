// Package generator synthesizes deterministic frame sequences for exercising
// the differencing engine without real video input.
//
// Sequences consist of gradient backgrounds with moving shapes and optional
// single-pixel noise. All randomness comes from an injectable, seedable
// source, so two generators built with the same parameters and seed produce
// identical sequences pixel for pixel.
package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/opd-ai/videoderiv/frame"
	"github.com/opd-ai/videoderiv/limits"
	"github.com/sirupsen/logrus"
)

// ErrInvalidParameters indicates generator construction parameters are unusable.
var ErrInvalidParameters = errors.New("invalid generator parameters")

// DefaultSeed seeds the random source when no option overrides it.
const DefaultSeed uint64 = 0x5eed

// Moving object scene parameters.
const (
	MovingObjectSize     = 80
	MovingObjectStep     = 8
	MovingObjectBaseY    = 100
	MovingObjectBobAmp   = 20.0
	MovingObjectBobFreq  = 0.05
	NoiseFrameInterval   = 4
	NoisePixelsPerFrame  = 15
	movingBackgroundBlue = 100
)

// Complex scene parameters.
const (
	SquareSize    = 50
	SquareStep    = 5
	SquareBaseY   = 50
	SquareBobAmp  = 15.0
	SquareBobFreq = 0.1

	DiscRadius  = 25
	DiscMargin  = 60
	DiscStep    = 3
	DiscBaseY   = 150
	DiscBobAmp  = 10.0
	DiscBobFreq = 0.2
)

// Shape colours.
var (
	White = frame.RGB{R: 255, G: 255, B: 255}
	Red   = frame.RGB{R: 255}
	Green = frame.RGB{G: 255}
)

// SyntheticFrameGenerator produces parameterized frame sequences.
//
// It is not safe for concurrent use because it owns a single random source.
type SyntheticFrameGenerator struct {
	width  int
	height int
	fps    uint32
	rng    *rand.Rand
}

// Option customizes a SyntheticFrameGenerator.
type Option func(*SyntheticFrameGenerator)

// WithSeed seeds the generator's random source.
func WithSeed(seed uint64) Option {
	return func(g *SyntheticFrameGenerator) {
		g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand injects a caller-owned random source. A nil source is ignored.
func WithRand(r *rand.Rand) Option {
	return func(g *SyntheticFrameGenerator) {
		if r != nil {
			g.rng = r
		}
	}
}

// New creates a generator for width x height frames at the given frame rate.
// The frame rate only determines timestamps (index / fps).
func New(width, height int, fps uint32, opts ...Option) (*SyntheticFrameGenerator, error) {
	if err := limits.ValidateFrameDimensions(width, height); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameters, err)
	}
	if fps == 0 {
		return nil, fmt.Errorf("%w: fps cannot be zero", ErrInvalidParameters)
	}

	g := &SyntheticFrameGenerator{
		width:  width,
		height: height,
		fps:    fps,
	}
	WithSeed(DefaultSeed)(g)
	for _, opt := range opts {
		opt(g)
	}

	logrus.WithFields(logrus.Fields{
		"function": "generator.New",
		"width":    width,
		"height":   height,
		"fps":      fps,
	}).Debug("Synthetic frame generator created")

	return g, nil
}

// Dimensions returns the generated frame size.
func (g *SyntheticFrameGenerator) Dimensions() (width, height int) {
	return g.width, g.height
}

// Timestamp returns the timestamp in seconds of the frame at index.
func (g *SyntheticFrameGenerator) Timestamp(index int) float64 {
	return float64(index) / float64(g.fps)
}

// GenerateMovingObjectFrames produces count frames of a white square moving
// right over a two-tone gradient, wrapping at the right edge and bobbing
// vertically. Every NoiseFrameInterval-th frame (starting with frame 0)
// receives NoisePixelsPerFrame random pixels.
func (g *SyntheticFrameGenerator) GenerateMovingObjectFrames(count int) ([]*frame.Frame, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative frame count %d", ErrInvalidParameters, count)
	}

	frames := make([]*frame.Frame, 0, count)

	for i := 0; i < count; i++ {
		f, err := g.movingBackground(i)
		if err != nil {
			return nil, err
		}

		x := wrap(i*MovingObjectStep, g.width-MovingObjectSize)
		y := MovingObjectBaseY + bob(MovingObjectBobAmp, math.Sin, i, MovingObjectBobFreq)
		DrawRect(f, x, y, MovingObjectSize, MovingObjectSize, White)

		if i%NoiseFrameInterval == 0 {
			g.AddNoise(f, NoisePixelsPerFrame)
		}

		frames = append(frames, f)
	}

	logrus.WithFields(logrus.Fields{
		"function": "SyntheticFrameGenerator.GenerateMovingObjectFrames",
		"count":    count,
	}).Debug("Moving object sequence generated")

	return frames, nil
}

// GenerateComplexSceneFrames produces count frames over a full-range
// gradient with a red square moving right (sine bob) and a green disc
// moving left (cosine bob).
func (g *SyntheticFrameGenerator) GenerateComplexSceneFrames(count int) ([]*frame.Frame, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative frame count %d", ErrInvalidParameters, count)
	}

	frames := make([]*frame.Frame, 0, count)

	for i := 0; i < count; i++ {
		f, err := g.gradientBackground(i)
		if err != nil {
			return nil, err
		}

		sx := wrap(i*SquareStep, g.width-SquareSize)
		sy := SquareBaseY + bob(SquareBobAmp, math.Sin, i, SquareBobFreq)
		DrawRect(f, sx, sy, SquareSize, SquareSize, Red)

		span := g.width - DiscMargin
		dx := 0
		if span > 0 {
			dx = span - wrap(i*DiscStep, span)
		}
		dy := DiscBaseY + bob(DiscBobAmp, math.Cos, i, DiscBobFreq)
		DrawDisc(f, dx, dy, DiscRadius, Green)

		frames = append(frames, f)
	}

	logrus.WithFields(logrus.Fields{
		"function": "SyntheticFrameGenerator.GenerateComplexSceneFrames",
		"count":    count,
	}).Debug("Complex scene sequence generated")

	return frames, nil
}

// movingBackground fills R and G from position (0-99) over a constant blue.
func (g *SyntheticFrameGenerator) movingBackground(index int) (*frame.Frame, error) {
	f, err := frame.New(g.width, g.height, uint64(index), g.Timestamp(index))
	if err != nil {
		return nil, err
	}

	for y := 0; y < g.height; y++ {
		gv := uint8(float32(y) * 100 / float32(g.height))
		for x := 0; x < g.width; x++ {
			rv := uint8(float32(x) * 100 / float32(g.width))
			f.Set(x, y, frame.RGB{R: rv, G: gv, B: movingBackgroundBlue})
		}
	}
	return f, nil
}

// gradientBackground spans the full 0-255 range along both axes.
func (g *SyntheticFrameGenerator) gradientBackground(index int) (*frame.Frame, error) {
	f, err := frame.New(g.width, g.height, uint64(index), g.Timestamp(index))
	if err != nil {
		return nil, err
	}

	diag := float32(g.width + g.height)
	for y := 0; y < g.height; y++ {
		gv := uint8(float32(y) * 255 / float32(g.height))
		for x := 0; x < g.width; x++ {
			f.Set(x, y, frame.RGB{
				R: uint8(float32(x) * 255 / float32(g.width)),
				G: gv,
				B: uint8(float32(x+y) * 255 / diag),
			})
		}
	}
	return f, nil
}

// AddNoise sets n randomly placed pixels to random colours.
func (g *SyntheticFrameGenerator) AddNoise(f *frame.Frame, n int) {
	w, h := f.Dimensions()
	for k := 0; k < n; k++ {
		x := g.rng.IntN(w)
		y := g.rng.IntN(h)
		f.Set(x, y, frame.RGB{
			R: uint8(g.rng.UintN(256)),
			G: uint8(g.rng.UintN(256)),
			B: uint8(g.rng.UintN(256)),
		})
	}
}

// wrap returns v modulo span, or 0 when there is no room to move.
func wrap(v, span int) int {
	if span <= 0 {
		return 0
	}
	return v % span
}

// bob returns the truncated magnitude of amp * wave(index * freq).
func bob(amp float64, wave func(float64) float64, index int, freq float64) int {
	return int(math.Abs(amp * wave(float64(index)*freq)))
}
