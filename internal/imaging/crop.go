package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// CropRegion returns the centered region of src that has the aspect ratio of
// width x height and is as large as possible.
//
// The scale factor is the one that makes src cover the target in both
// dimensions, max(width/srcW, height/srcH); the region is the target size
// divided by that factor, truncated to whole pixels.
func CropRegion(src image.Rectangle, width, height int) (image.Rectangle, error) {
	if width <= 0 || height <= 0 {
		return image.Rectangle{}, fmt.Errorf("target size must be positive, got %dx%d", width, height)
	}
	srcW, srcH := src.Dx(), src.Dy()
	if srcW <= 0 || srcH <= 0 {
		return image.Rectangle{}, fmt.Errorf("source image is empty")
	}

	factor := math.Max(float64(width)/float64(srcW), float64(height)/float64(srcH))
	w := min(int(float64(width)/factor), srcW)
	h := min(int(float64(height)/factor), srcH)
	if w == 0 || h == 0 {
		return image.Rectangle{}, fmt.Errorf("crop of %dx%d to aspect %dx%d is empty", srcW, srcH, width, height)
	}

	x := int(float64(srcW-w) / 2)
	y := int(float64(srcH-h) / 2)
	return image.Rect(x, y, x+w, y+h).Add(src.Min), nil
}

// CropToAspect cuts the centered region computed by CropRegion out of img.
func CropToAspect(img image.Image, width, height int) (*image.NRGBA, error) {
	r, err := CropRegion(img.Bounds(), width, height)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(img, r), nil
}
