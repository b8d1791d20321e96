package ftface

import "errors"

import xfont "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/fontgate/ftface/fract"

var errNoCharSize = errors.New("invalid ppem: no character size set on the face")
var errInvalidCharSize = errors.New("invalid character size parameters")
var errFaceReleased = errors.New("face already released")

// A Face owns one opened, parsed font face and its single glyph slot.
// Faces are obtained exclusively through a [Library]'s NewFace methods
// and must not outlive the Library that created them. That lifetime
// dependency is a documented precondition, not enforced by the type.
//
// A Face holds mutable state (the active character size and the glyph
// slot), so it must not be copied nor used concurrently.
type Face struct {
	library *Library
	font    *sfnt.Font
	name    string
	buffer  sfnt.Buffer

	xScale fract.Unit // horizontal pixels per em, 26.6
	yScale fract.Unit // vertical pixels per em, 26.6
	sizeMetrics SizeMetrics

	slot   glyphSlot
	closed bool
}

// Returns the full name of the face's font, as read from its naming
// table at parse time. Fonts with a missing or broken naming table
// fail to open in the first place, so they never reach this method.
func (self *Face) Name() string { return self.name }

// Returns the number of glyphs in the face's glyph table.
func (self *Face) NumGlyphs() int { return self.font.NumGlyphs() }

// Returns the underlying engine font. Useful to combine the face with
// packages that speak sfnt directly; the usual ownership caveats apply.
func (self *Face) Font() *Font { return self.font }

// Configures the face's character size. Width and height are given in
// 1/64ths of a point, the resolutions in dots per inch. A zero width
// mirrors the height and vice versa, and the same goes for the two
// resolutions; sizes or resolutions that are zero on both axes are
// invalid parameters.
//
// The resulting pixel scale is size·dpi/72 per axis. Anamorphic scales
// (different per axis) are honored by rescaling outline coordinates
// and horizontal metrics at load time.
func (self *Face) SetCharSize(width, height fract.Unit, horzDPI, vertDPI uint32) error {
	if self.closed { return engineErr("SetCharSize", errFaceReleased) }
	if width  == 0 { width  = height }
	if height == 0 { height = width  }
	if horzDPI == 0 { horzDPI = vertDPI }
	if vertDPI == 0 { vertDPI = horzDPI }
	if width <= 0 || height <= 0 || horzDPI == 0 || vertDPI == 0 {
		return engineErr("SetCharSize", errInvalidCharSize)
	}

	xScale := width.MulDiv(int64(horzDPI), 72)
	yScale := height.MulDiv(int64(vertDPI), 72)
	if xScale <= 0 || yScale <= 0 {
		return engineErr("SetCharSize", errInvalidCharSize)
	}

	metrics, err := self.font.Metrics(&self.buffer, fixed.Int26_6(yScale), xfont.HintingNone)
	if err != nil { return engineErr("SetCharSize", err) }

	self.xScale = xScale
	self.yScale = yScale
	self.sizeMetrics = SizeMetrics{
		Ascender:  fract.Unit(metrics.Ascent),
		Descender: -fract.Unit(metrics.Descent),
		Height:    fract.Unit(metrics.Height),
		XPpem:     xScale,
		YPpem:     yScale,
	}
	return nil
}

// Convenience form of [Face.SetCharSize] for whole point sizes at
// [DefaultDPI]: equivalent to SetCharSize(0, 64*points, 0, 96).
func (self *Face) SetPointSize(points uint32) error {
	return self.SetPointSizeDPI(points, DefaultDPI)
}

// Like [Face.SetPointSize], but with an explicit resolution.
func (self *Face) SetPointSizeDPI(points, dpi uint32) error {
	return self.SetCharSize(0, fract.FromInt(int(points)), 0, dpi)
}

// Returns the size metrics reflecting the most recent successful size
// change on the face. Zero value before any size has been set.
func (self *Face) Metrics() SizeMetrics {
	return self.sizeMetrics
}

// Looks up a character code in the face's active character map and
// returns the corresponding glyph index.
//
// When the lookup yields no mapping, the returned error is a
// [*InvalidCharCodeError] carrying the offending code. Callers that
// want replacement-glyph fallbacks should match that specific type.
func (self *Face) GetCharIndex(code CharCode) (GlyphIndex, error) {
	if self.closed { return 0, engineErr("GetCharIndex", errFaceReleased) }
	index, err := self.font.GlyphIndex(&self.buffer, rune(code))
	if err != nil { return 0, engineErr("GetCharIndex", err) }
	if index == 0 { return 0, &InvalidCharCodeError{ Code: code } }
	return index, nil
}

// Loads the outline for the given glyph index into the face's single
// glyph slot and returns a [Glyph] view over it. Loading overwrites
// the slot: the data behind any previously returned view now reflects
// the new glyph.
//
// A character size must have been set beforehand. Flags modulate the
// load; see the [LoadFlag] constants.
func (self *Face) LoadGlyph(index GlyphIndex, flags LoadFlag) (Glyph, error) {
	if self.closed {
		return Glyph{}, engineErr("LoadGlyph", errFaceReleased)
	}
	if self.yScale == 0 {
		return Glyph{}, engineErr("LoadGlyph", errNoCharSize)
	}

	segments, err := self.font.LoadGlyph(&self.buffer, index, fixed.Int26_6(self.yScale), nil)
	if err != nil { return Glyph{}, engineErr("LoadGlyph", err) }

	// the engine buffer reuses its segment memory, so the slot keeps
	// its own copy (recycling the slot's previous allocation)
	self.slot.segments = append(self.slot.segments[:0], segments...)
	if self.xScale != self.yScale {
		self.rescaleSegmentsX()
	}

	metrics, err := self.glyphMetrics(index)
	if err != nil { return Glyph{}, engineErr("LoadGlyph", err) }

	self.slot.face = self
	self.slot.metrics = metrics
	self.slot.bitmap = Bitmap{}
	self.slot.bitmapLeft = 0
	self.slot.bitmapTop = 0
	self.slot.generation += 1

	glyph := Glyph{ slot: &self.slot, generation: self.slot.generation }
	if flags & LoadRender != 0 {
		mode := RenderNormal
		if flags & LoadMonochrome != 0 { mode = RenderMono }
		err := glyph.Render(mode)
		if err != nil { return Glyph{}, err }
	}
	return glyph, nil
}

// Releases the face. Release failures are traced and swallowed, never
// surfaced: there is no actionable recovery for them during cleanup.
// Using the face after Close is a caller error.
func (self *Face) Close() {
	err := self.release()
	if err != nil {
		tracer().Errorf("ftface: releasing face %q: %v", self.name, err)
	}
}

func (self *Face) release() error {
	if self.closed { return errFaceReleased }
	self.closed = true
	self.font = nil
	self.slot.segments = nil
	tracer().Debugf("ftface: released face %q", self.name)
	return nil
}

// Horizontal correction for anamorphic character sizes: outlines are
// loaded at the vertical scale, so x coordinates get multiplied by
// xScale/yScale.
func (self *Face) rescaleSegmentsX() {
	for i := range self.slot.segments {
		for n := range self.slot.segments[i].Args {
			x := fract.Unit(self.slot.segments[i].Args[n].X)
			self.slot.segments[i].Args[n].X = fixed.Int26_6(x.MulDiv(int64(self.xScale), int64(self.yScale)))
		}
	}
}

func (self *Face) glyphMetrics(index GlyphIndex) (GlyphMetrics, error) {
	advance, err := self.font.GlyphAdvance(&self.buffer, index, fixed.Int26_6(self.yScale), xfont.HintingNone)
	if err != nil { return GlyphMetrics{}, err }
	horiAdvance := fract.Unit(advance)
	if self.xScale != self.yScale {
		horiAdvance = horiAdvance.MulDiv(int64(self.xScale), int64(self.yScale))
	}

	bounds := self.slot.segments.Bounds()
	metrics := GlyphMetrics{
		HoriAdvance: horiAdvance,
		VertAdvance: self.sizeMetrics.Height,
	}
	if bounds.Min.X < bounds.Max.X && bounds.Min.Y < bounds.Max.Y {
		metrics.Width  = fract.Unit(bounds.Max.X - bounds.Min.X)
		metrics.Height = fract.Unit(bounds.Max.Y - bounds.Min.Y)
		metrics.HoriBearingX = fract.Unit(bounds.Min.X)
		metrics.HoriBearingY = -fract.Unit(bounds.Min.Y)
	}
	return metrics, nil
}
