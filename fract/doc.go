// fract is a small package to operate with the 26.6 fixed point values
// used by font engines for glyph metrics and outlines. One [Unit] is
// 1/64th: var pixels fract.Unit = 64 stores exactly one pixel, while
// 96 stores 1.5 pixels.
//
// The representation is compatible with [fixed.Int26_6], so values can
// be casted directly when talking to golang.org/x/image packages.
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
package fract
