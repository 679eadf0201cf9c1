// Package raster holds the pixel model shared by every filter.
//
// A Color is one ARGB pixel with 8 bits per channel; its packed form puts
// alpha in the highest byte and blue in the lowest. An Image is a dense
// width x height grid of packed pixels with (0,0) at the top-left corner.
//
// # Validation
//
// Building a Color from separate channels checks every channel, alpha
// included, and fails with a *ChannelRangeError. Unpacking a 32-bit value
// always succeeds because each channel is masked to a byte.
//
// # Thread Safety
//
// An Image is a plain buffer. Concurrent reads are safe; writers must own
// the region they write. The filters rely on this by giving each worker a
// disjoint band of output rows.
package raster
