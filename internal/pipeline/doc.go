// Package pipeline wires the mosaic stages together.
//
// A run is: load the source image, crop it to the output aspect ratio,
// resize it to twice the output size, optionally blur it, composite the
// tiles of the chosen geometry, downscale to the output size and write the
// result. Render performs the in-memory part; Run adds file I/O.
//
// # Error Handling
//
// Every error from Run wraps one of ErrUsage, ErrInput or ErrOutput so the
// command can pick an exit code with errors.Is. Output files are written
// through a temporary file and renamed, so a failed run never leaves a
// partial image behind.
package pipeline
