package geometry

import (
	"image"
	"math"
	"testing"
)

var allKinds = []Kind{Rectangle, Losange, Hexagon, Triangle}

// naturalRadius is the characteristic radius with zero margin.
func naturalRadius(k Kind, step int) float64 {
	s := float64(step)
	switch k {
	case Rectangle:
		return s / 2
	case Losange:
		return s
	case Hexagon:
		return s * 2 / 3
	case Triangle:
		return s * 2
	}
	return 0
}

func mustNew(t *testing.T, k Kind, step, margin int) Geometry {
	t.Helper()
	g, err := New(k, step, margin)
	if err != nil {
		t.Fatalf("New(%v, %d, %d) failed: %v", k, step, margin, err)
	}
	return g
}

// signedArea returns twice the signed area of a ring (shoelace formula).
func signedArea(pts []image.Point) int {
	sum := 0
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

func TestNew_InvalidParameters(t *testing.T) {
	tests := []struct {
		name         string
		kind         Kind
		step, margin int
	}{
		{"zero step", Rectangle, 0, 0},
		{"negative step", Hexagon, -4, 0},
		{"negative margin", Losange, 10, -1},
		{"unknown kind", Kind(42), 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.kind, tt.step, tt.margin); err == nil {
				t.Error("New should fail")
			}
		})
	}
}

func TestStep_Positive(t *testing.T) {
	for _, k := range allKinds {
		for step := 1; step <= 64; step++ {
			g := mustNew(t, k, step, 0)
			sx, sy := g.Step()
			if sx <= 0 || sy <= 0 {
				t.Errorf("%v step %d: got (%d,%d), want both > 0", k, step, sx, sy)
			}
			if sx != step {
				t.Errorf("%v step %d: stepx = %d", k, step, sx)
			}
		}
	}
}

func TestStep_DerivedRows(t *testing.T) {
	tests := []struct {
		kind  Kind
		step  int
		stepy int
	}{
		{Rectangle, 18, 18},
		{Losange, 18, 36},
		{Hexagon, 18, 20},  // 18 * 2/3 * sqrt(3) = 20.78
		{Triangle, 18, 31}, // 18 * sqrt(3) = 31.18
		{Hexagon, 9, 10},
		{Triangle, 6, 10},
	}

	for _, tt := range tests {
		g := mustNew(t, tt.kind, tt.step, 0)
		if _, sy := g.Step(); sy != tt.stepy {
			t.Errorf("%v step %d: stepy = %d, want %d", tt.kind, tt.step, sy, tt.stepy)
		}
	}
}

func TestRadius_DecreasesWithMargin(t *testing.T) {
	for _, k := range allKinds {
		for _, step := range []int{5, 9, 10, 18} {
			natural := naturalRadius(k, step)
			prev := math.MaxInt
			for margin := 0; margin <= 3*step; margin++ {
				r := mustNew(t, k, step, margin).Radius()
				if r >= prev {
					t.Errorf("%v step %d margin %d: radius %d not below %d", k, step, margin, r, prev)
				}
				prev = r

				collapsed := float64(margin) >= natural
				if (r <= 0) != collapsed {
					t.Errorf("%v step %d margin %d: radius %d, natural %.2f", k, step, margin, r, natural)
				}
			}
		}
	}
}

func TestProperties_ConvexConsistentWinding(t *testing.T) {
	for _, k := range []Kind{Rectangle, Losange, Hexagon} {
		t.Run(k.String(), func(t *testing.T) {
			g := mustNew(t, k, 12, 1)
			want := 0
			for x := -2; x < 12; x++ {
				for y := -2; y < 12; y++ {
					pts := g.Properties(x, y).Vertices

					area := signedArea(pts)
					if area == 0 {
						t.Fatalf("cell (%d,%d): degenerate ring %v", x, y, pts)
					}
					if want == 0 {
						want = sign(area)
					}
					if sign(area) != want {
						t.Errorf("cell (%d,%d): winding %d, want %d", x, y, sign(area), want)
					}

					for i := range pts {
						a, b, c := pts[i], pts[(i+1)%len(pts)], pts[(i+2)%len(pts)]
						cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
						if sign(cross) == -want {
							t.Errorf("cell (%d,%d): ring %v not convex at %v", x, y, pts, b)
						}
					}
				}
			}
		})
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func TestProperties_VertexCounts(t *testing.T) {
	want := map[Kind]int{Rectangle: 4, Losange: 4, Hexagon: 6, Triangle: 3}
	for _, k := range allKinds {
		g := mustNew(t, k, 10, 0)
		if n := len(g.Properties(3, 4).Vertices); n != want[k] {
			t.Errorf("%v: %d vertices, want %d", k, n, want[k])
		}
	}
}

func TestRectangle_Corners(t *testing.T) {
	g := mustNew(t, Rectangle, 10, 1)
	tile := g.Properties(2, 3)

	if tile.Center != (Center{X: 20, Y: 30}) {
		t.Errorf("center: got %+v, want (20,30)", tile.Center)
	}

	want := []image.Point{{16, 34}, {16, 26}, {24, 26}, {24, 34}}
	for i, p := range want {
		if tile.Vertices[i] != p {
			t.Errorf("vertex %d: got %v, want %v", i, tile.Vertices[i], p)
		}
	}
}

func TestLosange_Vertices(t *testing.T) {
	g := mustNew(t, Losange, 10, 2)
	tile := g.Properties(1, 1)

	// odd column: 1*20 + 10
	if tile.Center != (Center{X: 10, Y: 30}) {
		t.Errorf("center: got %+v, want (10,30)", tile.Center)
	}

	want := []image.Point{{2, 30}, {10, 22}, {18, 30}, {10, 38}}
	for i, p := range want {
		if tile.Vertices[i] != p {
			t.Errorf("vertex %d: got %v, want %v", i, tile.Vertices[i], p)
		}
	}
}

func TestHexagon_Vertices(t *testing.T) {
	g := mustNew(t, Hexagon, 30, 0)
	tile := g.Properties(2, 1)

	// stepy = int(30 * 2/3 * sqrt(3)) = 34, radius 20
	if tile.Center != (Center{X: 60, Y: 34}) {
		t.Errorf("center: got %+v, want (60,34)", tile.Center)
	}

	want := []image.Point{{40, 34}, {50, 16}, {70, 16}, {80, 34}, {70, 51}, {50, 51}}
	for i, p := range want {
		if tile.Vertices[i] != p {
			t.Errorf("vertex %d: got %v, want %v", i, tile.Vertices[i], p)
		}
	}
}

func TestStagger_OddColumnsHalfRow(t *testing.T) {
	for _, k := range []Kind{Losange, Hexagon} {
		for _, step := range []int{6, 9, 18} {
			g := mustNew(t, k, step, 0)
			_, stepy := g.Step()
			for y := 0; y < 6; y++ {
				even := g.Properties(4, y).Center.Y
				odd := g.Properties(5, y).Center.Y
				if odd-even != float64(stepy)/2 {
					t.Errorf("%v step %d row %d: odd-even = %v, want %v", k, step, y, odd-even, float64(stepy)/2)
				}
				if g.Properties(6, y).Center.Y != even {
					t.Errorf("%v step %d row %d: even columns differ", k, step, y)
				}
			}
		}
	}
}

func TestRectangle_NoStagger(t *testing.T) {
	g := mustNew(t, Rectangle, 10, 0)
	for x := 0; x < 5; x++ {
		if got := g.Properties(x, 2).Center.Y; got != 20 {
			t.Errorf("column %d: center y %v, want 20", x, got)
		}
	}
}

// pointsUp reports whether a triangle has a single topmost vertex.
func pointsUp(pts []image.Point) bool {
	minY := pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < minY {
			minY = p.Y
		}
	}
	top := 0
	for _, p := range pts {
		if p.Y == minY {
			top++
		}
	}
	return top == 1
}

func TestTriangle_AlternatesWithParity(t *testing.T) {
	g := mustNew(t, Triangle, 12, 0)
	for x := -3; x < 15; x++ {
		for y := -3; y < 15; y++ {
			tile := g.Properties(x, y)
			up := pointsUp(tile.Vertices)
			wantUp := (x+y)%2 == 0
			if up != wantUp {
				t.Errorf("cell (%d,%d): up=%v, want %v (ring %v)", x, y, up, wantUp, tile.Vertices)
			}
		}
	}
}

func TestTriangle_CongruentPerParity(t *testing.T) {
	const step = 12
	g := mustNew(t, Triangle, step, 2)

	// Truncating vertices can move the apex by a pixel, so areas match to
	// within one base length.
	base := float64(2*step - 2)
	areas := map[bool][]float64{}
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			pts := g.Properties(x, y).Vertices
			a := math.Abs(float64(signedArea(pts))) / 2
			if a == 0 {
				t.Fatalf("cell (%d,%d): degenerate triangle %v", x, y, pts)
			}
			areas[(x+y)%2 == 0] = append(areas[(x+y)%2 == 0], a)
		}
	}

	for parity, list := range areas {
		ref := list[0]
		for _, a := range list {
			if math.Abs(a-ref) > base {
				t.Errorf("up=%v: area %v differs from %v", parity, a, ref)
			}
		}
	}
}

func TestTriangle_RowBand(t *testing.T) {
	g := mustNew(t, Triangle, 30, 0)
	up := g.Properties(2, 2).Vertices   // apex, bottom-left, bottom-right
	down := g.Properties(3, 2).Vertices // top-left, apex, top-right

	// Neighbors share the row band: the up triangle's apex row matches the
	// down triangle's top edge, and vice versa.
	if abs(up[0].Y-down[0].Y) > 1 {
		t.Errorf("top rows differ: up apex %d, down top %d", up[0].Y, down[0].Y)
	}
	if abs(up[1].Y-down[1].Y) > 1 {
		t.Errorf("bottom rows differ: up base %d, down apex %d", up[1].Y, down[1].Y)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestProperties_DegenerateMargin(t *testing.T) {
	for _, k := range allKinds {
		step := 10
		margin := int(math.Ceil(naturalRadius(k, step)))
		g := mustNew(t, k, step, margin)

		tile := g.Properties(3, 3)
		c := image.Point{X: int(tile.Center.X), Y: int(tile.Center.Y)}
		for _, v := range tile.Vertices {
			if v != c {
				t.Errorf("%v: vertex %v, want collapsed onto %v", k, v, c)
			}
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"rec", Rectangle},
		{"Rectangle", Rectangle},
		{"los", Losange},
		{"diamond", Losange},
		{"hex", Hexagon},
		{" tri ", Triangle},
	}

	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if err != nil {
			t.Errorf("ParseKind(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseKind("voronoi"); err == nil {
		t.Error("ParseKind should fail for unknown shape")
	}
}

func TestKind_String(t *testing.T) {
	for _, k := range allKinds {
		back, err := ParseKind(k.String())
		if err != nil || back != k {
			t.Errorf("%v does not parse back: %v, %v", k, back, err)
		}
		if g := mustNew(t, k, 8, 0); g.Kind() != k {
			t.Errorf("New(%v).Kind() = %v", k, g.Kind())
		}
	}
	if s := Kind(9).String(); s != "Kind(9)" {
		t.Errorf("unknown kind string: %q", s)
	}
}
