package geometry

import (
	"fmt"
	"image"
	"math"
	"strings"
)

// Kind identifies one of the four tiling lattices.
type Kind int

const (
	Rectangle Kind = iota
	Losange
	Hexagon
	Triangle
)

var kindNames = [...]string{
	Rectangle: "rec",
	Losange:   "los",
	Hexagon:   "hex",
	Triangle:  "tri",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind converts a short shape name ("rec", "los", "hex", "tri") or its
// long form ("rectangle", "losange", "diamond", "hexagon", "triangle") into a
// Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rec", "rect", "rectangle":
		return Rectangle, nil
	case "los", "losange", "diamond":
		return Losange, nil
	case "hex", "hexagon":
		return Hexagon, nil
	case "tri", "triangle":
		return Triangle, nil
	}
	return 0, fmt.Errorf("unknown geometry: %q", s)
}

// Center is a tile center in canvas pixels.
type Center struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Tile is the drawable result for one cell index.
type Tile struct {
	// Center is where the source color is sampled.
	Center Center `json:"center"`

	// Vertices is the closed polygon ring in drawing order. The first vertex
	// is not repeated at the end.
	Vertices []image.Point `json:"vertices"`
}

// Geometry computes tiles for a lattice. The set of implementations is
// closed: Rectangle, Losange, Hexagon and Triangle shapes are the only ones.
type Geometry interface {
	// Kind reports which lattice this is.
	Kind() Kind

	// Step returns the lattice spacing in pixels. Both values are > 0.
	Step() (stepx, stepy int)

	// Radius returns the characteristic radius after the margin, rounded up.
	// A value <= 0 means tiles have collapsed.
	Radius() int

	// Properties returns the tile for cell (x, y).
	Properties(x, y int) Tile

	sealed()
}

// New builds the Geometry for kind with the given grid step and margin.
//
// Returns an error if step is not positive, margin is negative or kind is
// unknown. A margin at or above the natural radius is accepted and yields
// degenerate tiles.
func New(kind Kind, step, margin int) (Geometry, error) {
	if step <= 0 {
		return nil, fmt.Errorf("grid step must be > 0, got %d", step)
	}
	if margin < 0 {
		return nil, fmt.Errorf("margin must be >= 0, got %d", margin)
	}

	switch kind {
	case Rectangle:
		return newRectangle(step, margin), nil
	case Losange:
		return newLosange(step, margin), nil
	case Hexagon:
		return newHexagon(step, margin), nil
	case Triangle:
		return newTriangle(step, margin), nil
	}
	return nil, fmt.Errorf("unknown geometry kind %d", int(kind))
}

// lattice holds what every variant shares.
type lattice struct {
	stepx, stepy int
	radius       float64
}

func (l lattice) Step() (int, int) { return l.stepx, l.stepy }

func (l lattice) Radius() int { return int(math.Ceil(l.radius)) }

func (lattice) sealed() {}

// extent is the radius used to place vertices; collapsed tiles use 0.
func (l lattice) extent() float64 {
	if l.radius <= 0 {
		return 0
	}
	return l.radius
}

// staggerY returns the row center for column x, shifting odd columns down
// by half a row.
func (l lattice) staggerY(x, y int) float64 {
	cy := float64(y * l.stepy)
	if x&1 == 1 {
		cy += float64(l.stepy) / 2
	}
	return cy
}

// pt truncates toward zero, the rounding used for every vertex.
func pt(x, y float64) image.Point {
	return image.Point{X: int(x), Y: int(y)}
}
