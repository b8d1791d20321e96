// mask contains the rasterization half of the font engine boundary:
// converting glyph outlines into alpha masks. The results preserve
// the glyph origin in their bounds, with y = 0 at the baseline,
// negative y above it and positive y below.
//
// Most users don't need to deal with this package directly; glyph
// rendering through a Face already drives it internally.
package mask
