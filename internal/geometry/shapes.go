package geometry

import (
	"image"
	"math"
)

var sqrt3 = math.Sqrt(3)

// rectangle is an axis-aligned square lattice.
type rectangle struct {
	lattice
}

func newRectangle(step, margin int) *rectangle {
	return &rectangle{lattice{
		stepx:  step,
		stepy:  step,
		radius: float64(step)/2 - float64(margin),
	}}
}

func (*rectangle) Kind() Kind { return Rectangle }

func (r *rectangle) Properties(x, y int) Tile {
	cx := float64(x * r.stepx)
	cy := float64(y * r.stepy)
	s := r.extent()

	return Tile{
		Center: Center{X: cx, Y: cy},
		Vertices: []image.Point{
			pt(cx-s, cy+s), // bottom-left
			pt(cx-s, cy-s), // top-left
			pt(cx+s, cy-s), // top-right
			pt(cx+s, cy+s), // bottom-right
		},
	}
}

// losange is a diamond lattice. Rows are two steps apart and odd columns
// sit half a row lower, so neighboring diamonds share edges.
type losange struct {
	lattice
}

func newLosange(step, margin int) *losange {
	return &losange{lattice{
		stepx:  step,
		stepy:  step * 2,
		radius: float64(step - margin),
	}}
}

func (*losange) Kind() Kind { return Losange }

func (l *losange) Properties(x, y int) Tile {
	cx := float64(x * l.stepx)
	cy := l.staggerY(x, y)
	s := l.extent()

	return Tile{
		Center: Center{X: cx, Y: cy},
		Vertices: []image.Point{
			pt(cx-s, cy),
			pt(cx, cy-s),
			pt(cx+s, cy),
			pt(cx, cy+s),
		},
	}
}

// hexagon is a flat-top hexagon lattice in offset coordinates.
type hexagon struct {
	lattice
}

func newHexagon(step, margin int) *hexagon {
	return &hexagon{lattice{
		stepx:  step,
		stepy:  int(float64(step) * 2 / 3 * sqrt3),
		radius: float64(step)*2/3 - float64(margin),
	}}
}

func (*hexagon) Kind() Kind { return Hexagon }

func (h *hexagon) Properties(x, y int) Tile {
	cx := float64(x * h.stepx)
	cy := h.staggerY(x, y)

	r := h.extent()
	sx := sqrt3 / 2 * r // half height
	sy := r / 2         // half top edge
	sz := r             // center to left/right corner

	return Tile{
		Center: Center{X: cx, Y: cy},
		Vertices: []image.Point{
			pt(cx-sz, cy),
			pt(cx-sy, cy-sx),
			pt(cx+sy, cy-sx),
			pt(cx+sz, cy),
			pt(cx+sy, cy+sx),
			pt(cx-sy, cy+sx),
		},
	}
}

// triangle alternates upward and downward triangles along each row. The
// triangle side is twice the step, so consecutive cells overlap by half a
// side and interlock.
type triangle struct {
	lattice

	// su moves the center from the row line to the centroid.
	su float64
}

func newTriangle(step, margin int) *triangle {
	return &triangle{
		lattice: lattice{
			stepx:  step,
			stepy:  int(float64(step) * sqrt3),
			radius: float64(step)*2 - float64(margin),
		},
		su: float64(step) * 2 / 3 * sqrt3 / 4,
	}
}

func (*triangle) Kind() Kind { return Triangle }

// Up reports whether cell (x, y) holds an upward-pointing triangle.
func (*triangle) Up(x, y int) bool {
	return (x+y)&1 == 0
}

func (t *triangle) Properties(x, y int) Tile {
	cx := float64(x * t.stepx)
	row := float64(y * t.stepy)

	r := t.extent()
	sx := r / 2                 // half side
	sy := r * 2 / 3 * sqrt3 / 2 // centroid to apex
	sz := r / 3 * sqrt3 / 2     // centroid to base

	if t.Up(x, y) {
		cy := row + t.su
		return Tile{
			Center: Center{X: cx, Y: cy},
			Vertices: []image.Point{
				pt(cx, cy-sy),
				pt(cx-sx, cy+sz),
				pt(cx+sx, cy+sz),
			},
		}
	}

	cy := row - t.su
	return Tile{
		Center: Center{X: cx, Y: cy},
		Vertices: []image.Point{
			pt(cx-sx, cy-sz),
			pt(cx, cy+sy),
			pt(cx+sx, cy-sz),
		},
	}
}
