package gifx

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestGIF writes a 3-frame animation whose frames alternate palette
// indices so pixel content is distinguishable across frames. Delays are in
// hundredths of a second, per the GIF format.
func writeTestGIF(t *testing.T, delays []int) string {
	t.Helper()
	palette := color.Palette{color.White, color.Black}
	img := &gif.GIF{LoopCount: 3}
	for i, delay := range delays {
		frame := image.NewPaletted(image.Rect(0, 0, 4, 4), palette)
		frame.SetColorIndex(i%4, i%4, uint8(i%2))
		img.Image = append(img.Image, frame)
		img.Delay = append(img.Delay, delay)
	}
	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, img))
	path := filepath.Join(t.TempDir(), "agent_history.gif")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func decodeAll(t *testing.T, data []byte) *gif.GIF {
	t.Helper()
	img, err := gif.DecodeAll(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestSpeedUpHalvesFrameDurations(t *testing.T) {
	path := writeTestGIF(t, []int{10, 10, 10})
	original := decodeAll(t, mustRead(t, path))

	data, err := SpeedUp(path, 2)
	require.NoError(t, err)

	img := decodeAll(t, data)
	assert.Equal(t, []int{5, 5, 5}, img.Delay)
	assert.Equal(t, 0, img.LoopCount, "loop count must be infinite")
	require.Len(t, img.Image, len(original.Image))
	for i := range img.Image {
		assert.Equal(t, original.Image[i].Pix, img.Image[i].Pix, "frame %d pixel content changed", i)
	}
}

func TestSpeedUpUsesIntegerDivision(t *testing.T) {
	path := writeTestGIF(t, []int{5, 1, 0})
	data, err := SpeedUp(path, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 0}, decodeAll(t, data).Delay)
}

func TestSpeedUpFactorOneReencodes(t *testing.T) {
	path := writeTestGIF(t, []int{10, 20, 30})
	data, err := SpeedUp(path, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, decodeAll(t, data).Delay)
}

func TestSpeedUpMissingFile(t *testing.T) {
	data, err := SpeedUp(filepath.Join(t.TempDir(), "missing.gif"), 2)
	assert.Nil(t, data)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestSpeedUpUndecodableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.gif")
	require.NoError(t, os.WriteFile(path, []byte("not a gif"), 0644))
	_, err := SpeedUp(path, 2)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, path, decodeErr.Path)
}

func TestSpeedUpRejectsNonPositiveFactor(t *testing.T) {
	path := writeTestGIF(t, []int{10})
	_, err := SpeedUp(path, 0)
	require.Error(t, err)
	var decodeErr *DecodeError
	assert.False(t, errors.As(err, &decodeErr))
}

func mustRead(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}
