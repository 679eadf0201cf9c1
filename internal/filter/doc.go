// Package filter implements the pixel-processing engine: boundary policies,
// window sampling, weighted convolution, the grayscale, gradient,
// edge-detect and max-range filters, and saturating composition.
//
// Every filter reads its input without modifying it and returns a freshly
// allocated *raster.Image. Rows are processed concurrently; there is no
// shared mutable state between calls.
//
// # Windows and Boundaries
//
// A window is sampled row-major from its top-left corner. Samples take the
// low byte of each packed pixel (blue, which equals luminance on grayscale
// images). Cells outside the image are resolved by a BoundaryPolicy:
//   - Wrap: coordinates wrap around modulo width and height
//   - Stretch: coordinates clamp to the nearest edge pixel
//   - Black, White, Gray: constant 0, 255 and 128
//
// # Convolution
//
// The response of a kernel is sum(w*s) / sum(|w|), so a kernel with any
// non-zero weight never divides by zero and the magnitude of the response
// never exceeds the largest sample.
//
// # Errors
//
//   - *SizeMismatchError: sample and weight counts differ
//   - ErrZeroWeight: every weight is zero
//   - *DegenerateRangeError: max-range stretch of a uniform image
//   - *UnknownFilterError: a pipeline names a filter that does not exist
package filter
