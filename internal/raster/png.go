package raster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// ErrEmpty is returned when there is nothing to encode.
var ErrEmpty = errors.New("empty image")

// EncodePNG writes img as a PNG. image.RGBA is premultiplied, which is what
// the canvas stores, so pixels go out unchanged.
func EncodePNG(w io.Writer, img *image.RGBA) error {
	if img == nil || img.Bounds().Empty() {
		return ErrEmpty
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to path, replacing any existing file.
func SavePNG(path string, img *image.RGBA) (err error) {
	if img == nil || img.Bounds().Empty() {
		return ErrEmpty
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return EncodePNG(f, img)
}
