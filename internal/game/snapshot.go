package game

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/aurora-lab/internal/raster"
)

// saveSnapshot asks for a destination and writes img there as a PNG.
// A cancelled dialog returns an empty path and no error.
func saveSnapshot(img *image.RGBA, now time.Time) (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Snapshot"),
		zenity.Filename(snapshotName(now)),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", fmt.Errorf("choose snapshot path: %w", err)
	}

	path = withPNGExt(path)
	if err := raster.SavePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

func snapshotName(now time.Time) string {
	return "aurora-" + now.Format("20060102-150405") + ".png"
}

func withPNGExt(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return path
	}
	return path + ".png"
}
