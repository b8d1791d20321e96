// font contains the parsing half of the font engine boundary, plus a few
// helpers to query font properties.
//
// Parsing is collection-aware: .ttc and .otc files bundle multiple faces,
// and every parsing function takes a face index to select one. For plain
// .ttf and .otf files the only valid face index is zero.
//
// Most users don't need to deal with this package directly; opening faces
// through a Library already drives it internally.
package font
