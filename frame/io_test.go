package frame

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/opd-ai/videoderiv/limits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"frame_000001.png", FormatPNG, false},
		{"FRAME.PNG", FormatPNG, false},
		{"out/frame.bmp", FormatBMP, false},
		{"frame.tif", FormatTIFF, false},
		{"frame.tiff", FormatTIFF, false},
		{"frame.jpg", "", true},
		{"frame", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEncoding)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFrame_SaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := createTestFrame(t, 33, 17)

	for _, name := range []string{"frame.png", "frame.bmp", "frame.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, original.Save(path))

			loaded, err := Load(path, 5, 0.5)
			require.NoError(t, err)

			assert.Equal(t, original.Width(), loaded.Width())
			assert.Equal(t, original.Height(), loaded.Height())
			assert.Equal(t, original.Pix(), loaded.Pix(), "lossless formats must preserve exact channel values")
			assert.Equal(t, uint64(5), loaded.Index)
			assert.Equal(t, 0.5, loaded.Timestamp)
		})
	}
}

func TestFrame_SaveUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	f := createTestFrame(t, 4, 4)

	err := f.Save(filepath.Join(dir, "frame.jpg"))
	assert.ErrorIs(t, err, ErrEncoding)

	_, statErr := os.Stat(filepath.Join(dir, "frame.jpg"))
	assert.True(t, os.IsNotExist(statErr), "no file should be created for an unsupported format")
}

func TestFrame_SaveInvalidPath(t *testing.T) {
	f := createTestFrame(t, 4, 4)

	err := f.Save(filepath.Join(t.TempDir(), "missing", "dir", "frame.png"))
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestFrame_EncodeUnknownFormat(t *testing.T) {
	f := createTestFrame(t, 4, 4)

	var buf bytes.Buffer
	err := f.Encode(&buf, Format("gif"))
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "absent.png"), 0, 0)
	assert.ErrorIs(t, err, ErrDecoding)

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o600))
	_, err = Load(garbage, 0, 0)
	assert.ErrorIs(t, err, ErrDecoding)
}

func TestLoad_RejectsOversizedImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.png")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(file, image.NewNRGBA(image.Rect(0, 0, limits.MaxFrameWidth+1, 1))))
	require.NoError(t, file.Close())

	f, err := Load(path, 0, 0)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrDecoding)
	assert.ErrorIs(t, err, limits.ErrFrameTooLarge)
}
