package ftface

import "golang.org/x/image/font/sfnt"

// An alias for sfnt.Font so you don't need to import sfnt yourself
// when working with ftface.
type Font = sfnt.Font

// Glyph indices identify glyphs within a specific face's internal glyph
// table. They are obtained from a [CharCode] through [Face.GetCharIndex]
// and are only meaningful relative to the face that produced them.
type GlyphIndex = sfnt.GlyphIndex

// A character code identifies a character in the input encoding accepted
// by a face's character map, most commonly a Unicode code point. Rune
// literals convert directly.
type CharCode uint32

// The resolution assumed by [Face.SetPointSize] when no explicit
// dots-per-inch value is given.
const DefaultDPI = 96

// Load flags modulate [Face.LoadGlyph].
type LoadFlag uint8

const (
	// Load the glyph outline and compute its metrics, nothing else.
	LoadDefault LoadFlag = 0

	// Accepted for compatibility with other font engines. The sfnt
	// engine never applies hinting, so this flag changes nothing.
	LoadNoHinting LoadFlag = 1 << 0

	// Render the glyph right after loading it, as if [Glyph.Render]
	// had been called with [RenderNormal].
	LoadRender LoadFlag = 1 << 1

	// Combined with [LoadRender], render with [RenderMono] instead.
	LoadMonochrome LoadFlag = 1 << 2
)

// Render modes modulate [Glyph.Render].
type RenderMode uint8

const (
	// 8-bit antialiased rendering, the default.
	RenderNormal RenderMode = iota

	// Two-level rendering: every pixel fully opaque or fully
	// transparent.
	RenderMono
)
