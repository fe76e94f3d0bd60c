package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Downscale converts the canvas to an 8-bit image of the requested size
// using bicubic (Catmull-Rom) resampling.
func Downscale(c *Canvas, width, height int) *image.NRGBA {
	return imaging.Resize(c.Image(), width, height, imaging.CatmullRom)
}

// Save encodes img to path, picking the encoder from the file extension
// (png, jpg/jpeg, gif, tif/tiff, bmp).
//
// The image is first written to a temporary file in the destination
// directory and then renamed over path, so path is either left untouched or
// holds the complete image.
func Save(img image.Image, path string) (err error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("unsupported output format for %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = imaging.Encode(tmp, img, format); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}
