package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// Oversample is the ratio between the working canvas and the output size.
// Tiles are drawn at this resolution and smoothed by the final downscale.
const Oversample = 2

// PrepareOptions controls how a source image becomes the working canvases.
type PrepareOptions struct {
	// Width and Height are the requested output size in pixels.
	Width  int
	Height int

	// Filter is the box blur kernel size. 0 and 1 leave the image untouched.
	Filter int

	// Background multiplies the output canvas before tiles are drawn.
	// 1 keeps the source as background, lower values darken it.
	Background float64
}

// Prepare crops img to the output aspect ratio, resizes it to the working
// resolution, optionally blurs it and returns two canvases:
//
//   - samples: the preprocessed source, used only for color lookups.
//   - output: samples scaled by opts.Background, the initial state of the
//     mosaic before any tile is drawn.
//
// Both canvases are Oversample times the requested size.
func Prepare(img image.Image, opts PrepareOptions) (samples, output *Canvas, err error) {
	if opts.Filter < 0 {
		return nil, nil, fmt.Errorf("filter size must be >= 0, got %d", opts.Filter)
	}
	if opts.Background < 0 {
		return nil, nil, fmt.Errorf("background factor must be >= 0, got %g", opts.Background)
	}

	cropped, err := CropToAspect(img, opts.Width, opts.Height)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to crop image: %w", err)
	}

	var work image.Image = imaging.Resize(cropped, opts.Width*Oversample, opts.Height*Oversample, imaging.CatmullRom)
	work = BoxBlur(work, opts.Filter)

	samples = CanvasFromImage(work)
	return samples, samples.Scaled(opts.Background), nil
}

// BoxBlur averages each pixel over a size x size window. Sizes below 2
// return img unchanged.
func BoxBlur(img image.Image, size int) image.Image {
	if size < 2 {
		return img
	}
	// bild builds a kernel of ceil(2*radius+1) pixels per side.
	return blur.Box(img, float64(size-1)/2)
}
