package ftface

import "github.com/fontgate/ftface/fract"

// Metrics for a single loaded glyph outline, in 26.6 pixel units.
// The vertical axis grows downwards in the engine's coordinates, but
// bearings follow the classic font engine convention: HoriBearingY is
// positive above the baseline.
type GlyphMetrics struct {
	Width  fract.Unit // bounding box width
	Height fract.Unit // bounding box height

	HoriBearingX fract.Unit // left side bearing
	HoriBearingY fract.Unit // top side bearing, positive up
	HoriAdvance  fract.Unit // advance width for horizontal layout

	// Advance height for vertical layout. The sfnt engine exposes no
	// vertical metrics table, so this is pinned to the face's line
	// height at the active size.
	VertAdvance fract.Unit
}

// Global metrics for a face at its currently configured size, in 26.6
// pixel units. Refreshed by every successful size change on the face.
type SizeMetrics struct {
	Ascender  fract.Unit // height above the baseline, positive
	Descender fract.Unit // depth below the baseline, negative
	Height    fract.Unit // baseline-to-baseline distance

	XPpem fract.Unit // horizontal pixels per em
	YPpem fract.Unit // vertical pixels per em
}

// A rendered glyph image: one byte per pixel, row-major. A zero-sized
// bitmap (Width == 0, Rows == 0, Pix == nil) is what rendering an
// outline with nothing to draw produces, e.g. for a space glyph.
type Bitmap struct {
	Pix   []uint8 // pixel buffer, Rows*Pitch bytes
	Width int     // pixels per row
	Rows  int     // number of rows
	Pitch int     // bytes per row

	// Number of gray levels: 256 after [RenderNormal], 2 after
	// [RenderMono] (using values 0 and 255).
	NumGrays int
}
