package frame

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/opd-ai/videoderiv/limits"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format identifies a lossless raster file format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// FormatFromPath selects the raster format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("%w: unsupported file extension %q", ErrEncoding, filepath.Ext(path))
	}
}

// Encode writes the frame to w in the given format.
func (f *Frame) Encode(w io.Writer, format Format) error {
	img := f.Image()

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: unknown format %q", ErrEncoding, format)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return nil
}

// Save encodes the frame to a raster file chosen by the path extension
// (.png, .bmp, .tif, .tiff). All formats are lossless so channel values
// survive a Save/Load round trip exactly. The file is closed on every path.
func (f *Frame) Save(path string) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Frame.Save",
			"path":     path,
			"error":    err.Error(),
		}).Error("Unsupported output format")
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Frame.Save",
			"path":     path,
			"error":    err.Error(),
		}).Error("Failed to create frame file")
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %v", ErrEncoding, path, cerr)
		}
	}()

	if err := f.Encode(file, format); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"function": "Frame.Save",
		"path":     path,
		"format":   format,
		"width":    f.width,
		"height":   f.height,
		"index":    f.Index,
	}).Debug("Frame saved")

	return nil
}

// Load decodes a raster file (PNG, BMP or TIFF) into a frame. The image
// header is checked against the frame limits before pixel data is decoded.
func Load(path string, index uint64, timestamp float64) (*Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecoding, err)
	}
	defer file.Close()

	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecoding, path, err)
	}
	if err := limits.ValidateFrameDimensions(cfg.Width, cfg.Height); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecoding, path, err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecoding, err)
	}
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecoding, path, err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Load",
		"path":     path,
		"format":   format,
		"width":    cfg.Width,
		"height":   cfg.Height,
	}).Debug("Frame loaded")

	return FromImage(img, index, timestamp)
}
