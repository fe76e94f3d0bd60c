// Package geometry maps lattice cell indices to mosaic tiles.
//
// A Geometry is built once per run from a grid step and a margin and is
// immutable afterwards. For any cell index (x, y) it returns the tile center
// and the ring of integer vertices to fill. Four lattices exist:
//
//   - Rectangle: square cells, no stagger.
//   - Losange: diamonds (squares rotated 45 degrees), odd columns shifted
//     down by half a row.
//   - Hexagon: flat-top hexagons in offset coordinates, odd columns shifted
//     down by half a row.
//   - Triangle: alternating up and down triangles, orientation chosen by the
//     parity of x+y.
//
// # Coordinate System
//
// Coordinates follow the image convention: (0,0) is the top-left corner, X
// grows to the right and Y grows downward. Cell (0,0) is centered on the
// origin, so the first row and column of tiles straddle the canvas border.
//
// # Margin
//
// The margin is subtracted from each variant's characteristic radius to open
// gaps between neighbors. When the margin reaches the natural radius the
// ring collapses onto the tile center; filling such a tile draws nothing.
package geometry
