// Package imaging provides the raster stages of the mosaic pipeline.
//
// It loads source images, turns them into working canvases, and converts the
// finished canvas back into an encoded file. Decoding, cropping, resampling
// and encoding are done with github.com/disintegration/imaging; the optional
// smoothing pass uses the box blur from github.com/anthonynsimon/bild.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - A Canvas is always anchored at (0,0), whatever the source bounds were
//
// # Working Resolution
//
// Tiles are drawn on canvases Oversample times larger than the requested
// output. Prepare produces two of them from a source image:
//
//  1. Crop the largest centered region with the output aspect ratio
//  2. Resize it to the working resolution with Catmull-Rom resampling
//  3. Optionally box blur it
//  4. Return it as the sample canvas, plus a copy scaled by the background
//     factor as the output canvas
//
// Downscale brings the output canvas back to the requested size.
//
// # Color Representation
//
// Canvas pixels are github.com/lucasb-eyer/go-colorful colors with channels
// normalized to [0,1]. Values above 1 are kept until Image clamps them. Alpha
// is not tracked; transparent source pixels become black.
//
// # Error Handling
//
// Functions return errors for:
//   - Missing, unreadable or undecodable files
//   - Target sizes that are not positive or that crop to nothing
//   - Negative filter sizes or background factors
//   - Unknown output extensions and failed writes
//
// # Thread Safety
//
// Functions are stateless and safe to call concurrently. A Canvas is not
// safe for concurrent use.
package imaging
