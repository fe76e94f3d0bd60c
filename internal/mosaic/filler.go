package mosaic

import (
	"image"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"

	"github.com/ironsheep/mosaic-tiles/internal/imaging"
)

// Filler rasterizes polygons onto a Canvas with anti-aliased edges.
//
// Coverage is computed by golang.org/x/image/vector over the polygon's
// bounding box only, then blended into the canvas: fully covered pixels
// take the fill color, partially covered ones are mixed in proportion.
// A Filler is not safe for concurrent use.
type Filler struct {
	dst  *imaging.Canvas
	z    vector.Rasterizer
	mask *image.Alpha
}

// NewFiller returns a Filler drawing onto dst.
func NewFiller(dst *imaging.Canvas) *Filler {
	return &Filler{dst: dst}
}

// FillPolygon implements Rasterizer. Rings with fewer than three vertices,
// zero-area bounding boxes and polygons entirely off the canvas draw
// nothing.
func (f *Filler) FillPolygon(pts []image.Point, c colorful.Color) {
	if len(pts) < 3 {
		return
	}

	box := polygonBounds(pts).Intersect(f.dst.Bounds())
	if box.Empty() {
		return
	}
	w, h := box.Dx(), box.Dy()

	f.z.Reset(w, h)
	f.z.DrawOp = draw.Src
	f.z.MoveTo(float32(pts[0].X-box.Min.X), float32(pts[0].Y-box.Min.Y))
	for _, p := range pts[1:] {
		f.z.LineTo(float32(p.X-box.Min.X), float32(p.Y-box.Min.Y))
	}
	f.z.ClosePath()

	mask := f.maskOf(w, h)
	f.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, a := range row {
			switch a {
			case 0:
			case 0xff:
				f.dst.Set(box.Min.X+x, box.Min.Y+y, c)
			default:
				f.dst.Blend(box.Min.X+x, box.Min.Y+y, c, float64(a)/0xff)
			}
		}
	}
}

// maskOf returns a w x h alpha mask, reusing the previous buffer when it is
// large enough.
func (f *Filler) maskOf(w, h int) *image.Alpha {
	if f.mask == nil || cap(f.mask.Pix) < w*h {
		f.mask = image.NewAlpha(image.Rect(0, 0, w, h))
		return f.mask
	}
	f.mask.Pix = f.mask.Pix[:w*h]
	f.mask.Stride = w
	f.mask.Rect = image.Rect(0, 0, w, h)
	return f.mask
}

// polygonBounds is the smallest pixel rectangle containing every vertex.
func polygonBounds(pts []image.Point) image.Rectangle {
	r := image.Rectangle{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}
