package fract

import "image"

// A pair of [Point] values defining a rectangular region. Like
// [image.Rectangle], the Max point is not included in the rectangle.
// The behavior for malformed rectangles is undefined.
type Rect struct {
	Min Point
	Max Point
}

// Creates a rect from a set of four units.
func UnitsToRect(minX, minY, maxX, maxY Unit) Rect {
	return Rect{
		Min: Point{ X: minX, Y: minY },
		Max: Point{ X: maxX, Y: maxY },
	}
}

// Creates a rect from a pair of points.
func PointsToRect(min, max Point) Rect {
	return Rect{ Min: min, Max: max }
}

// Returns the rect coordinates as a set of four ints. The returned
// ints are guaranteed to contain the original rect.
func (self Rect) ToInts() (minX, minY, maxX, maxY int) {
	return self.Min.X.ToIntFloor(), self.Min.Y.ToIntFloor(), self.Max.X.ToIntCeil(), self.Max.Y.ToIntCeil()
}

// Converts the rect coordinates to ints and returns them as an
// [image.Rectangle] stdlib value.
func (self Rect) ImageRect() image.Rectangle {
	minX, minY, maxX, maxY := self.ToInts()
	return image.Rect(minX, minY, maxX, maxY)
}

// Returns the width of the rect.
func (self Rect) Width() Unit {
	return self.Max.X - self.Min.X
}

// Returns the height of the rect.
func (self Rect) Height() Unit {
	return self.Max.Y - self.Min.Y
}

// Returns whether the rect is empty.
func (self Rect) Empty() bool {
	return self.Min.X >= self.Max.X || self.Min.Y >= self.Max.Y
}

// Returns a textual representation of the rect.
func (self Rect) String() string {
	return self.Min.String() + "-" + self.Max.String()
}
