package mask

import "image"

import "github.com/fontgate/ftface/fract"

// Given the glyph bounds and an origin position indicating the subpixel
// positioning (only the lowest bits are taken into account), returns the
// bounding integer width and height, the normalization offset to be
// applied to keep the coordinates in the positive plane, and the final
// offset to be applied on the resulting mask to align its bounds to the
// glyph origin. Used in Rasterize() implementations.
func figureOutBounds(bounds fract.Rect, origin fract.Point) (int, int, fract.Point, image.Point) {
	floorMinX := bounds.Min.X.Floor()
	floorMinY := bounds.Min.Y.Floor()
	var maskCorrection image.Point
	maskCorrection.X = floorMinX.ToIntFloor()
	maskCorrection.Y = floorMinY.ToIntFloor()

	var normOffset fract.Point
	normOffset.X = -floorMinX + origin.X.FractShift()
	normOffset.Y = -floorMinY + origin.Y.FractShift()
	width  := (bounds.Max.X + normOffset.X).Ceil()
	height := (bounds.Max.Y + normOffset.Y).Ceil()
	return width.ToIntFloor(), height.ToIntFloor(), normOffset, maskCorrection
}
