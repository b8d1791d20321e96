package mask

import "image"

import "golang.org/x/image/font/sfnt"

import "github.com/fontgate/ftface/fract"

var _ Rasterizer = (*MonoRasterizer)(nil)

// A rasterizer that quantizes all mask values to fully opaque or fully
// transparent, for monochrome glyph rendering without antialiasing.
//
// Since the implementation leverages type embedding, the available
// methods are the same as the ones for [DefaultRasterizer].
type MonoRasterizer struct { DefaultRasterizer }

// Satisfies the [Rasterizer] interface.
func (self *MonoRasterizer) Rasterize(outline sfnt.Segments, origin fract.Point) (*image.Alpha, error) {
	mask, err := self.DefaultRasterizer.Rasterize(outline, origin)
	if err != nil { return mask, err }
	for i := 0; i < len(mask.Pix); i++ {
		// 128 as the threshold, same as the engine's own two-level mode
		if mask.Pix[i] < 128 {
			mask.Pix[i] = 0
		} else {
			mask.Pix[i] = 255
		}
	}
	return mask, err
}
