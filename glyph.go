package ftface

import "golang.org/x/image/font/sfnt"

import "github.com/fontgate/ftface/fract"
import "github.com/fontgate/ftface/mask"

// The engine keeps a single glyph slot per face: every load overwrites
// the previous glyph's outline, metrics and bitmap in place.
type glyphSlot struct {
	face       *Face
	segments   sfnt.Segments
	metrics    GlyphMetrics
	bitmap     Bitmap
	bitmapLeft int
	bitmapTop  int
	generation uint32
}

// A Glyph is a non-owning view over the glyph slot of the [Face] that
// produced it. The slot is reused by the engine: the next
// [Face.LoadGlyph] call on the same face overwrites the data behind
// every previously returned view, with no signal other than what
// [Glyph.Stale] reports. Don't retain a Glyph past the next load, nor
// past the closing of the face it belongs to.
//
// The zero value is not usable; glyphs are obtained from
// [Face.LoadGlyph] only.
type Glyph struct {
	slot       *glyphSlot
	generation uint32
}

// Returns the metrics of the glyph currently occupying the slot, in
// 26.6 pixel units.
func (self Glyph) Metrics() GlyphMetrics {
	return self.slot.metrics
}

// Returns a view of the slot's bitmap. Only populated after a
// successful [Glyph.Render]; before that the bitmap is zero-sized.
// The returned pointer aliases engine memory: the next load or render
// on the owning face overwrites it.
func (self Glyph) Bitmap() *Bitmap {
	return &self.slot.bitmap
}

// Returns the horizontal offset, in pixels, from the glyph origin to
// the leftmost pixel of the bitmap. Only valid after [Glyph.Render].
func (self Glyph) BitmapLeft() int {
	return self.slot.bitmapLeft
}

// Returns the vertical offset, in pixels, from the baseline to the
// topmost pixel of the bitmap, positive up. Only valid after
// [Glyph.Render].
func (self Glyph) BitmapTop() int {
	return self.slot.bitmapTop
}

// Reports whether a newer [Face.LoadGlyph] call has overwritten the
// slot since this view was produced. Stale views still read the slot's
// current contents; this is the only invalidation signal.
func (self Glyph) Stale() bool {
	return self.generation != self.slot.generation
}

// Rasterizes the outline currently loaded in the slot into the slot's
// bitmap, using the given render mode. Rendering mutates the shared
// slot in place, so any other [Glyph] view over the same face observes
// the new bitmap.
//
// Outlines with nothing to draw (e.g. the space glyph) yield a
// zero-sized bitmap and no error.
func (self Glyph) Render(mode RenderMode) error {
	rasterizer, err := self.slot.face.library.rasterizerFor(mode)
	if err != nil { return err }

	alphaMask, err := mask.Rasterize(self.slot.segments, rasterizer, fract.Point{})
	if err != nil { return engineErr("Render", err) }

	if alphaMask == nil {
		// nothing to draw
		self.slot.bitmap = Bitmap{}
		self.slot.bitmapLeft = 0
		self.slot.bitmapTop = 0
		return nil
	}

	numGrays := 256
	if mode == RenderMono { numGrays = 2 }
	self.slot.bitmap = Bitmap{
		Pix:      alphaMask.Pix,
		Width:    alphaMask.Rect.Dx(),
		Rows:     alphaMask.Rect.Dy(),
		Pitch:    alphaMask.Stride,
		NumGrays: numGrays,
	}
	self.slot.bitmapLeft = alphaMask.Rect.Min.X
	self.slot.bitmapTop = -alphaMask.Rect.Min.Y
	return nil
}
