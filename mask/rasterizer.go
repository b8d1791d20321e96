package mask

import "image"

import "golang.org/x/image/font/sfnt"

import "github.com/fontgate/ftface/fract"

// Rasterizer is an interface for 2D glyph outline rasterization to an
// alpha mask. The engine's default implementation is [DefaultRasterizer],
// with [MonoRasterizer] available for two-level output, but anyone can
// target the interface with their own rasterizer.
//
// Rasterizers can't be used concurrently and must tolerate coordinates
// out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. The outline is
	// drawn at the given fractional position (only the lowest 6 bits
	// of each coordinate are considered).
	Rasterize(sfnt.Segments, fract.Point) (*image.Alpha, error)
}

type outlineTracer interface {
	// Move to the given coordinate.
	MoveTo(fract.Point)

	// Create a segment to the given coordinate.
	LineTo(fract.Point)

	// Conic Bézier curve (also called quadratic). The first parameter
	// is the control coordinate, and the second one the final target.
	QuadTo(fract.Point, fract.Point)

	// Cubic Bézier curve. The first two parameters are the control
	// coordinates, and the third one is the final target.
	CubeTo(fract.Point, fract.Point, fract.Point)
}

// A low level function to rasterize glyph masks.
//
// Returned masks have their coordinates adjusted so the mask is drawn at
// glyph origin (0, 0) + the given fractional position. To draw at a
// specific dot, translate the mask by dot.X.Floor() and dot.Y.Floor().
//
// The returned image will be nil if the outline does not include any
// active lines or curves (e.g.: space glyphs). That's not an error.
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, origin fract.Point) (*image.Alpha, error) {
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, origin)
	}
	return nil, nil // nothing to draw
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() on the tracer, as
// corresponding, for each segment in the glyph outline.
func processOutline(tracer outlineTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(segPoint(segment, 0))
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(segPoint(segment, 0))
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(segPoint(segment, 0), segPoint(segment, 1))
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(segPoint(segment, 0), segPoint(segment, 1), segPoint(segment, 2))
		default:
			panic("unexpected segment.Op case")
		}
	}
}

func segPoint(segment sfnt.Segment, n int) fract.Point {
	return fract.Point{
		X: fract.Unit(segment.Args[n].X),
		Y: fract.Unit(segment.Args[n].Y),
	}
}
