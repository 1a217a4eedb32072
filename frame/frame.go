// Package frame provides the raster frame type consumed and produced by the
// differencing engine.
//
// A Frame is a packed 8-bit RGB pixel grid with a sequence index and a
// timestamp. Dimensions are fixed at construction.
package frame

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"

	"github.com/opd-ai/videoderiv/limits"
	"golang.org/x/crypto/blake2b"
)

// RGB is a single 8-bit three channel sample.
type RGB struct {
	R, G, B uint8
}

// Black is the zero sample.
var Black = RGB{}

// Frame is an RGB raster image plus its position in a sequence.
//
// Pixels are stored row-major, three bytes per pixel, with no padding.
// Index and Timestamp are informational and never affect pixel data.
type Frame struct {
	width  int
	height int
	pix    []byte

	Index     uint64  // Sequence number within a processing run
	Timestamp float64 // Seconds, caller supplied
}

// New creates a black frame of the given dimensions.
func New(width, height int, index uint64, timestamp float64) (*Frame, error) {
	if err := limits.ValidateFrameDimensions(width, height); err != nil {
		return nil, err
	}

	return &Frame{
		width:     width,
		height:    height,
		pix:       make([]byte, limits.BufferSize(width, height)),
		Index:     index,
		Timestamp: timestamp,
	}, nil
}

// NewFromPixels creates a frame from a packed RGB buffer.
// The buffer is copied; the caller keeps ownership of pix.
func NewFromPixels(width, height int, pix []byte, index uint64, timestamp float64) (*Frame, error) {
	if err := limits.ValidateFrameDimensions(width, height); err != nil {
		return nil, err
	}
	if want := limits.BufferSize(width, height); len(pix) != want {
		return nil, fmt.Errorf("%w: got %d bytes, expected %d for %dx%d", ErrBufferSize, len(pix), want, width, height)
	}

	return &Frame{
		width:     width,
		height:    height,
		pix:       append([]byte(nil), pix...),
		Index:     index,
		Timestamp: timestamp,
	}, nil
}

// NewFilled creates a frame where every pixel is c.
func NewFilled(width, height int, c RGB, index uint64, timestamp float64) (*Frame, error) {
	f, err := New(width, height, index, timestamp)
	if err != nil {
		return nil, err
	}
	f.Fill(c)
	return f, nil
}

// FromImage converts any image.Image into a frame. Channels are truncated to
// 8 bits and alpha is discarded.
func FromImage(img image.Image, index uint64, timestamp float64) (*Frame, error) {
	b := img.Bounds()
	f, err := New(b.Dx(), b.Dy(), index, timestamp)
	if err != nil {
		return nil, err
	}

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < f.height; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < f.width; x++ {
				copy(f.pix[f.offset(x, y):f.offset(x, y)+3], row[x*4:x*4+3])
			}
		}
		return f, nil
	}

	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			f.Set(x, y, RGB{R: c.R, G: c.G, B: c.B})
		}
	}
	return f, nil
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Dimensions returns the (width, height) pair.
func (f *Frame) Dimensions() (width, height int) {
	return f.width, f.height
}

// SameDimensions reports whether both frames have identical width and height.
func (f *Frame) SameDimensions(other *Frame) bool {
	return f.width == other.width && f.height == other.height
}

// Contains reports whether (x, y) lies inside the pixel grid.
func (f *Frame) Contains(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

func (f *Frame) offset(x, y int) int {
	return (y*f.width + x) * limits.BytesPerPixel
}

// At returns the sample at (x, y). Out of bounds coordinates return Black.
func (f *Frame) At(x, y int) RGB {
	if !f.Contains(x, y) {
		return Black
	}
	i := f.offset(x, y)
	return RGB{R: f.pix[i], G: f.pix[i+1], B: f.pix[i+2]}
}

// Set writes the sample at (x, y). Out of bounds coordinates are ignored.
func (f *Frame) Set(x, y int, c RGB) {
	if !f.Contains(x, y) {
		return
	}
	i := f.offset(x, y)
	f.pix[i] = c.R
	f.pix[i+1] = c.G
	f.pix[i+2] = c.B
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c RGB) {
	for i := 0; i < len(f.pix); i += limits.BytesPerPixel {
		f.pix[i] = c.R
		f.pix[i+1] = c.G
		f.pix[i+2] = c.B
	}
}

// Pix returns the packed RGB buffer. Callers must not resize it.
func (f *Frame) Pix() []byte {
	return f.pix
}

// IsBlack reports whether every sample in the frame is zero.
func (f *Frame) IsBlack() bool {
	for _, v := range f.pix {
		if v != 0 {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	return &Frame{
		width:     f.width,
		height:    f.height,
		pix:       append([]byte(nil), f.pix...),
		Index:     f.Index,
		Timestamp: f.Timestamp,
	}
}

// Image returns an opaque NRGBA copy of the frame for use with image codecs.
func (f *Frame) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	for i, j := 0, 0; i < len(f.pix); i, j = i+3, j+4 {
		img.Pix[j] = f.pix[i]
		img.Pix[j+1] = f.pix[i+1]
		img.Pix[j+2] = f.pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// Digest returns a BLAKE2b-256 hash over the dimensions and pixel data.
// Index and Timestamp are not included, so two frames with identical
// pixels hash equal regardless of their position in a sequence.
func (f *Frame) Digest() [32]byte {
	h, _ := blake2b.New256(nil) // only fails for an oversized key

	var dims [8]byte
	binary.BigEndian.PutUint32(dims[0:4], uint32(f.width))
	binary.BigEndian.PutUint32(dims[4:8], uint32(f.height))
	h.Write(dims[:])
	h.Write(f.pix)

	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
