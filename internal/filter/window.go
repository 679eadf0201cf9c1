package filter

import "github.com/ironsheep/image-filters-mcp/internal/raster"

// SampleWindow extracts a width x height neighbourhood whose top-left
// corner is (x, y). The result is row-major with width*height entries;
// cells outside the image are resolved by policy.
func SampleWindow(img *raster.Image, x, y, width, height int, policy BoundaryPolicy) []uint8 {
	if width <= 0 || height <= 0 {
		return []uint8{}
	}
	out := make([]uint8, width*height)
	sampleWindowInto(out, img, x, y, width, height, policy)
	return out
}

// sampleWindowInto fills dst, which must hold width*height values.
func sampleWindowInto(dst []uint8, img *raster.Image, x, y, width, height int, policy BoundaryPolicy) {
	i := 0
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			dst[i] = policy.Sample(img, x+dx, y+dy)
			i++
		}
	}
}
