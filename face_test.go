package ftface

import "errors"
import "testing"

import xfont "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

import "github.com/fontgate/ftface/fract"

func TestSetCharSizeEquivalence(t *testing.T) {
	lib, face := newTestFace(t)
	defer lib.Close()
	defer face.Close()

	err := face.SetPointSizeDPI(12, 96)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	convenience := face.Metrics()

	// the convenience form is a pure unit conversion: 12pt == 768 units,
	// zero width mirrors the height, zero horzDPI mirrors vertDPI
	err = face.SetCharSize(0, 768, 0, 96)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	explicit := face.Metrics()

	if convenience != explicit {
		t.Fatalf("expected identical metrics, got %v vs %v", convenience, explicit)
	}

	err = face.SetCharSize(768, 768, 96, 96)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if face.Metrics() != explicit {
		t.Fatal("expected zero-mirroring to match fully explicit parameters")
	}

	// 12pt at 96dpi is 16px
	if got := explicit.YPpem.ToFloat64(); got != 16.0 {
		t.Fatalf("expected 16px ppem, got %f", got)
	}
	if explicit.XPpem != explicit.YPpem {
		t.Fatal("expected symmetric scales")
	}
}

func TestSetCharSizeInvalid(t *testing.T) {
	lib, face := newTestFace(t)
	defer lib.Close()
	defer face.Close()

	var engineFailure *Error
	err := face.SetCharSize(0, 0, 0, 96)
	if !errors.As(err, &engineFailure) {
		t.Fatalf("expected *Error for zero size, got '%v'", err)
	}
	err = face.SetCharSize(0, 768, 0, 0)
	if !errors.As(err, &engineFailure) {
		t.Fatalf("expected *Error for zero resolution, got '%v'", err)
	}
	err = face.SetCharSize(0, -768, 0, 96)
	if !errors.As(err, &engineFailure) {
		t.Fatalf("expected *Error for negative size, got '%v'", err)
	}
}

func TestSizeMetrics(t *testing.T) {
	lib, face := newSizedTestFace(t)
	defer lib.Close()
	defer face.Close()

	metrics := face.Metrics()
	if metrics.Ascender <= 0 { t.Fatalf("expected positive ascender, got %d", metrics.Ascender) }
	if metrics.Descender >= 0 { t.Fatalf("expected negative descender, got %d", metrics.Descender) }
	if metrics.Height <= 0 { t.Fatalf("expected positive line height, got %d", metrics.Height) }
	if metrics.Height < metrics.Ascender - metrics.Descender {
		t.Fatal("expected line height to cover ascender plus descender")
	}
}

func TestGetCharIndex(t *testing.T) {
	lib, face := newSizedTestFace(t)
	defer lib.Close()
	defer face.Close()

	index := mustCharIndex(t, face, 'A')
	if index == 0 { t.Fatal("expected a positive glyph index for 'A'") }
}

func TestGetCharIndexInvalid(t *testing.T) {
	lib, face := newSizedTestFace(t)
	defer lib.Close()
	defer face.Close()

	// Go Regular has no CJK coverage
	code := CharCode('漢')
	_, err := face.GetCharIndex(code)
	if err == nil { t.Fatal("expected error for unmapped character") }

	var invalidCode *InvalidCharCodeError
	if !errors.As(err, &invalidCode) {
		t.Fatalf("expected *InvalidCharCodeError, got '%v'", err)
	}
	if invalidCode.Code != code {
		t.Fatalf("expected error to carry code %d, got %d", code, invalidCode.Code)
	}
}

func TestLoadGlyphWithoutSize(t *testing.T) {
	lib, face := newTestFace(t)
	defer lib.Close()
	defer face.Close()

	index := mustCharIndex(t, face, 'A')
	_, err := face.LoadGlyph(index, LoadDefault)
	if err == nil { t.Fatal("expected error when no size is set") }
	var engineFailure *Error
	if !errors.As(err, &engineFailure) {
		t.Fatalf("expected *Error, got '%v'", err)
	}
}

func TestLoadGlyphBadIndex(t *testing.T) {
	lib, face := newSizedTestFace(t)
	defer lib.Close()
	defer face.Close()

	badIndex := GlyphIndex(face.NumGlyphs() + 1)
	_, err := face.LoadGlyph(badIndex, LoadDefault)
	if err == nil { t.Fatal("expected error for out-of-range glyph index") }
	var engineFailure *Error
	if !errors.As(err, &engineFailure) {
		t.Fatalf("expected *Error, got '%v'", err)
	}
}

func TestGlyphMetricsScenario(t *testing.T) {
	lib, face := newSizedTestFace(t)
	defer lib.Close()
	defer face.Close()

	index := mustCharIndex(t, face, 'A')
	glyph, err := face.LoadGlyph(index, LoadDefault)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }

	metrics := glyph.Metrics()
	if metrics.HoriAdvance <= 0 { t.Fatal("expected positive advance") }
	if metrics.Width <= 0 || metrics.Height <= 0 {
		t.Fatalf("expected positive glyph box, got %dx%d", metrics.Width, metrics.Height)
	}
	if metrics.HoriBearingY <= 0 {
		t.Fatalf("expected 'A' to rise above the baseline, got bearing %d", metrics.HoriBearingY)
	}

	// the adapter must report exactly the engine's advance for the
	// same scale (12pt at 96dpi is 16px)
	reference, err := face.Font().GlyphAdvance(&face.buffer, index, fixed.I(16), xfont.HintingNone)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if metrics.HoriAdvance != fract.Unit(reference) {
		t.Fatalf("expected advance %d, got %d", reference, metrics.HoriAdvance)
	}
}

func TestAnamorphicCharSize(t *testing.T) {
	lib, face := newSizedTestFace(t)
	defer lib.Close()
	defer face.Close()

	index := mustCharIndex(t, face, 'A')

	err := face.SetCharSize(768, 768, 96, 96)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	glyph, err := face.LoadGlyph(index, LoadDefault)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	square := glyph.Metrics()
	squareSize := face.Metrics()

	// half the width at the same height: horizontal values halve,
	// vertical values stay identical
	err = face.SetCharSize(384, 768, 96, 96)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	anamorphicSize := face.Metrics()
	if anamorphicSize.YPpem != squareSize.YPpem {
		t.Fatalf("expected same vertical ppem, got %d vs %d", anamorphicSize.YPpem, squareSize.YPpem)
	}
	if anamorphicSize.XPpem != squareSize.XPpem/2 {
		t.Fatalf("expected halved horizontal ppem, got %d", anamorphicSize.XPpem)
	}
	if anamorphicSize.Ascender != squareSize.Ascender || anamorphicSize.Height != squareSize.Height {
		t.Fatal("expected vertical metrics to be unaffected by the horizontal scale")
	}

	glyph, err = face.LoadGlyph(index, LoadDefault)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	anamorphic := glyph.Metrics()
	if anamorphic.Height != square.Height {
		t.Fatalf("expected same glyph height, got %d vs %d", anamorphic.Height, square.Height)
	}
	assertHalved(t, "advance", square.HoriAdvance, anamorphic.HoriAdvance)
	assertHalved(t, "width", square.Width, anamorphic.Width)

	err = glyph.Render(RenderNormal)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if glyph.Bitmap().Width <= 0 || glyph.Bitmap().Rows <= 0 {
		t.Fatalf("expected non-empty bitmap, got %dx%d", glyph.Bitmap().Width, glyph.Bitmap().Rows)
	}
}

// Checks that halved is reference/2 within one unit of rounding slack
// per rescaled coordinate.
func assertHalved(t *testing.T, what string, reference, halved fract.Unit) {
	t.Helper()
	diff := halved*2 - reference
	if diff < -2 || diff > 2 {
		t.Fatalf("expected halved %s, got %d from %d", what, halved, reference)
	}
}

func TestFaceClose(t *testing.T) {
	lib, face := newTestFace(t)
	defer lib.Close()
	face.Close()
	face.Close() // double close is swallowed, not a panic
}

func TestFaceUseAfterClose(t *testing.T) {
	lib, face := newSizedTestFace(t)
	defer lib.Close()

	index := mustCharIndex(t, face, 'A')
	face.Close()

	var engineFailure *Error
	_, err := face.GetCharIndex('A')
	if !errors.As(err, &engineFailure) {
		t.Fatalf("expected *Error from GetCharIndex on closed face, got '%v'", err)
	}
	_, err = face.LoadGlyph(index, LoadDefault)
	if !errors.As(err, &engineFailure) {
		t.Fatalf("expected *Error from LoadGlyph on closed face, got '%v'", err)
	}
	err = face.SetPointSize(12)
	if !errors.As(err, &engineFailure) {
		t.Fatalf("expected *Error from SetCharSize on closed face, got '%v'", err)
	}
}
