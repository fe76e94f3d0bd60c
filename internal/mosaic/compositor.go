package mosaic

import (
	"errors"
	"fmt"
	"image"
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/mosaic-tiles/internal/geometry"
)

// DefaultHoleRate is the fraction of cells dropped when holes are enabled.
const DefaultHoleRate = 0.3

// Sampler provides source colors. *imaging.Canvas implements it.
type Sampler interface {
	Bounds() image.Rectangle
	At(x, y int) colorful.Color
}

// Rasterizer fills a closed polygon with a flat color.
type Rasterizer interface {
	FillPolygon(pts []image.Point, c colorful.Color)
}

// Compositor draws one tile per lattice cell.
type Compositor struct {
	// Geometry is the lattice to draw. Required.
	Geometry geometry.Geometry

	// Holes enables random tile dropout.
	Holes bool

	// HoleRate is the probability of dropping a cell when Holes is set.
	// Zero means DefaultHoleRate.
	HoleRate float64

	// Rand drives the dropout. Required when Holes is set.
	Rand *rand.Rand
}

// Stats summarizes one Compose call.
type Stats struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
	Drawn   int `json:"drawn"`
	Skipped int `json:"skipped"`
}

// Cells is the number of lattice cells visited.
func (s Stats) Cells() int { return s.Columns * s.Rows }

func (s Stats) String() string {
	return fmt.Sprintf("%dx%d cells, %d drawn, %d skipped", s.Columns, s.Rows, s.Drawn, s.Skipped)
}

// GridSize returns how many columns and rows cover bounds. One extra row and
// column beyond the ceiling keep the cropped edges free of gaps.
func (c *Compositor) GridSize(bounds image.Rectangle) (cols, rows int) {
	stepx, stepy := c.Geometry.Step()
	cols = int(math.Ceil(float64(bounds.Dx())/float64(stepx))) + 2
	rows = int(math.Ceil(float64(bounds.Dy())/float64(stepy))) + 2
	return cols, rows
}

// Compose draws the tiling of src into dst.
//
// Returns an error only for an invalid configuration: missing geometry,
// holes without a random source, or a hole rate outside [0,1].
func (c *Compositor) Compose(src Sampler, dst Rasterizer) (Stats, error) {
	if c.Geometry == nil {
		return Stats{}, errors.New("compositor has no geometry")
	}
	rate := c.HoleRate
	if rate == 0 {
		rate = DefaultHoleRate
	}
	if c.Holes {
		if c.Rand == nil {
			return Stats{}, errors.New("holes enabled without a random source")
		}
		if rate < 0 || rate > 1 {
			return Stats{}, fmt.Errorf("hole rate must be in [0,1], got %g", rate)
		}
	}

	bounds := src.Bounds()
	var stats Stats
	stats.Columns, stats.Rows = c.GridSize(bounds)
	if bounds.Empty() {
		return stats, nil
	}

	for x := 0; x < stats.Columns; x++ {
		for y := 0; y < stats.Rows; y++ {
			if c.Holes && c.Rand.Float64() < rate {
				stats.Skipped++
				continue
			}

			tile := c.Geometry.Properties(x, y)
			dst.FillPolygon(tile.Vertices, SampleAt(src, tile.Center))
			stats.Drawn++
		}
	}

	return stats, nil
}

// SampleAt reads the color under a tile center. The center is truncated to
// whole pixels and each axis is clamped into bounds separately, so edge
// tiles take the nearest border pixel.
func SampleAt(src Sampler, center geometry.Center) colorful.Color {
	b := src.Bounds()
	x := clamp(int(center.X), b.Min.X, b.Max.X-1)
	y := clamp(int(center.Y), b.Min.Y, b.Max.Y-1)
	return src.At(x, y)
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
