// Package mosaic draws a tiling over a canvas.
//
// The Compositor walks the lattice of a geometry.Geometry column by column
// (x outer, y inner). For every cell it computes the tile, samples the
// source color at the tile center (clamped into the canvas), and hands the
// polygon and color to a Rasterizer. The Rasterizer is the only thing that
// mutates the output, so the walk itself can be tested with a recording
// Rasterizer.
//
// Tiles are drawn in iteration order; where anti-aliased edges overlap, the
// later tile wins.
//
// # Holes
//
// With holes enabled each cell is dropped with a fixed probability, leaving
// the background visible. The random source is supplied by the caller so
// runs can be reproduced with a seed.
package mosaic
