package ftface

import "testing"

import "golang.org/x/image/font/gofont/goregular"

// Tests use Go Regular as the fixture font: it ships embedded with
// x/image, so no external font files are needed.

func newTestFace(t *testing.T) (*Library, *Face) {
	t.Helper()
	lib, err := NewLibrary()
	if err != nil { t.Fatalf("NewLibrary failed: %s", err.Error()) }
	face, err := lib.NewFaceFromBytes(goregular.TTF, 0)
	if err != nil { t.Fatalf("NewFaceFromBytes failed: %s", err.Error()) }
	return lib, face
}

func newSizedTestFace(t *testing.T) (*Library, *Face) {
	t.Helper()
	lib, face := newTestFace(t)
	err := face.SetPointSize(12) // 16px at the default 96dpi
	if err != nil { t.Fatalf("SetPointSize failed: %s", err.Error()) }
	return lib, face
}

func mustCharIndex(t *testing.T, face *Face, code CharCode) GlyphIndex {
	t.Helper()
	index, err := face.GetCharIndex(code)
	if err != nil { t.Fatalf("GetCharIndex(%d) failed: %s", code, err.Error()) }
	return index
}
