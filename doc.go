// ftface is a small package that wraps the Go font engine stack
// (golang.org/x/image/font/sfnt and friends) behind a strict
// resource-ownership protocol in the style of classic font engines:
// a [Library] is the engine instance and the exclusive factory for
// [Face] values, a Face owns one parsed font face and its single
// glyph slot, and a [Glyph] is a non-owning view over that slot.
//
// Common usage looks like this:
//   lib, err := ftface.NewLibrary()
//   if err != nil { ... }
//   defer lib.Close()
//
//   face, err := lib.NewFace("path/to/font.ttf", 0)
//   if err != nil { ... }
//   defer face.Close()
//
//   err = face.SetPointSize(12) // 12pt at 96dpi
//   if err != nil { ... }
//
//   index, err := face.GetCharIndex('A')
//   if err != nil { ... } // *InvalidCharCodeError if unmapped
//
//   glyph, err := face.LoadGlyph(index, ftface.LoadDefault)
//   if err != nil { ... }
//   err = glyph.Render(ftface.RenderNormal)
//
// All metric values use the 26.6 fixed point units of the
// [github.com/fontgate/ftface/fract] package (1 unit = 1/64).
//
// Nothing here is safe for concurrent use: confine each Library and
// everything derived from it to a single goroutine, or serialize all
// access externally. No operation blocks; every call delegates to the
// engine synchronously.
package ftface
