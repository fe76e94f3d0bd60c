package imaging

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Canvas is a floating point RGB buffer used while compositing.
//
// Channels are normalized so that 0 is black and 1 is full intensity.
// Values outside [0,1] are kept as-is (a background factor above 1 pushes
// them past 1) and are only clamped by Image.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width, height int
	pix           []colorful.Color
}

// NewCanvas returns a black canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]colorful.Color, width*height),
	}
}

// CanvasFromImage copies img into a new canvas with origin (0,0). Alpha is
// dropped after un-premultiplying; fully transparent pixels become black.
func CanvasFromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	c := NewCanvas(bounds.Dx(), bounds.Dy())

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < c.height; y++ {
			for x := 0; x < c.width; x++ {
				i := src.PixOffset(x+bounds.Min.X, y+bounds.Min.Y)
				p := src.Pix[i : i+4 : i+4]
				if p[3] == 0 {
					continue
				}
				c.pix[y*c.width+x] = colorful.Color{
					R: float64(p[0]) / 255,
					G: float64(p[1]) / 255,
					B: float64(p[2]) / 255,
				}
			}
		}
		return c
	}

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			// MakeColor reports false only for fully transparent pixels,
			// which become black.
			col, _ := colorful.MakeColor(img.At(x+bounds.Min.X, y+bounds.Min.Y))
			c.pix[y*c.width+x] = col
		}
	}
	return c
}

// Bounds returns the canvas rectangle, always anchored at (0,0).
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// At returns the color at (x, y). Coordinates must be inside Bounds.
func (c *Canvas) At(x, y int) colorful.Color {
	return c.pix[y*c.width+x]
}

// Set stores col at (x, y). Coordinates must be inside Bounds.
func (c *Canvas) Set(x, y int, col colorful.Color) {
	c.pix[y*c.width+x] = col
}

// Blend mixes col into (x, y) with weight t in [0,1].
func (c *Canvas) Blend(x, y int, col colorful.Color, t float64) {
	i := y*c.width + x
	c.pix[i] = c.pix[i].BlendRgb(col, t)
}

// Clone returns an independent copy.
func (c *Canvas) Clone() *Canvas {
	out := &Canvas{width: c.width, height: c.height, pix: make([]colorful.Color, len(c.pix))}
	copy(out.pix, c.pix)
	return out
}

// Scaled returns a copy with every channel multiplied by factor.
func (c *Canvas) Scaled(factor float64) *Canvas {
	out := c.Clone()
	for i, p := range out.pix {
		out.pix[i] = colorful.Color{R: p.R * factor, G: p.G * factor, B: p.B * factor}
	}
	return out
}

// Image clamps the canvas to [0,1] and converts it to a 16-bit opaque image.
func (c *Canvas) Image() *image.NRGBA64 {
	img := image.NewNRGBA64(c.Bounds())
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pix[y*c.width+x].Clamped()
			img.SetNRGBA64(x, y, color.NRGBA64{
				R: uint16(p.R*65535 + 0.5),
				G: uint16(p.G*65535 + 0.5),
				B: uint16(p.B*65535 + 0.5),
				A: 0xffff,
			})
		}
	}
	return img
}
