// Package gifx post-processes the animated GIF an agent run leaves behind.
package gifx

import (
	"bytes"
	"fmt"
	"image/gif"
	"os"
)

// DecodeError reports a GIF that is missing or not decodable as an
// animation. It is distinct from a failed run so callers can surface the
// rest of the outcome regardless.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode gif %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// SpeedUp re-encodes the animation at path with each frame's display
// duration divided by speedFactor (integer division; a resulting duration
// of 0 is allowed). Frame order, count, and pixel content are unchanged,
// and the loop count is forced to infinite. The re-encoded bytes are
// returned without being written anywhere.
func SpeedUp(path string, speedFactor int) ([]byte, error) {
	if speedFactor < 1 {
		return nil, fmt.Errorf("speed factor must be a positive integer, got %d", speedFactor)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()
	img, err := gif.DecodeAll(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	for i := range img.Delay {
		img.Delay[i] /= speedFactor
	}
	img.LoopCount = 0 // loop forever
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to re-encode gif %s: %w", path, err)
	}
	return buf.Bytes(), nil
}
