package filter

import "github.com/ironsheep/image-filters-mcp/internal/raster"

// Compose adds two images channel by channel, saturating at 255.
//
// The result covers max(width) x max(height). Wherever one input does not
// reach, it contributes black. Alpha is always written as 255.
func Compose(a, b *raster.Image) *raster.Image {
	w := max(a.Width(), b.Width())
	h := max(a.Height(), b.Height())
	out := raster.New(w, h)

	forEachRow(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				ca, cb := colorOrBlack(a, x, y), colorOrBlack(b, x, y)
				out.SetColor(x, y, raster.Opaque(
					saturatingAdd(ca.R(), cb.R()),
					saturatingAdd(ca.G(), cb.G()),
					saturatingAdd(ca.B(), cb.B()),
				))
			}
		}
	})
	return out
}

func colorOrBlack(img *raster.Image, x, y int) raster.Color {
	if !img.InBounds(x, y) {
		return raster.Gray(0)
	}
	return img.Color(x, y)
}

func saturatingAdd(a, b uint8) uint8 {
	return uint8(min(255, int(a)+int(b)))
}
