// Package imaging moves images between files and the raster filters.
//
// It decodes image files into a shared cache, converts them to packed ARGB
// rasters, reports pixel colours, encodes filter results as base64 PNG and
// saves results into an output directory.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Formats
//
// ImageCache decodes PNG, JPEG and GIF through the standard library and
// BMP, TIFF and WebP through golang.org/x/image. Output is always PNG.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Cached images and rasters are
// shared between callers and must be treated as read-only; the filters
// always allocate a new raster for their result.
//
// # Color Representation
//
// SampleColor reports a pixel as:
//   - Hex: "#rrggbb" (alpha excluded)
//   - ARGB: packed "0xAARRGGBB"
//   - RGB / RGBA: 8-bit components
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//   - Sample: the low byte the filters read
//
// # Output Files
//
// Writer never replaces an existing file unless Overwrite is set; a refused
// write returns an error wrapping ErrExists.
package imaging
