package world

// Rect is an axis-aligned room rectangle used during generation.
// The interior (exclusive of the X1/Y1/X2/Y2 border lines) is carved to
// floor; the border stays wall so adjacent rooms keep a perimeter.
type Rect struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// NewRect creates a rect from a top-left corner and dimensions
func NewRect(x, y, width, height int) Rect {
	return Rect{X1: x, Y1: y, X2: x + width, Y2: y + height}
}

// Center returns the center position of the rect
func (r Rect) Center() Position {
	return Position{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Width returns the rect width
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the rect height
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// Intersects returns true if the two rects overlap
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 && r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// IntersectsWithGap returns true if the two rects overlap or come within
// gap tiles of each other. Placed rooms use gap 1 so no two rooms share
// a wall line.
func (r Rect) IntersectsWithGap(other Rect, gap int) bool {
	grown := Rect{X1: r.X1 - gap, Y1: r.Y1 - gap, X2: r.X2 + gap, Y2: r.Y2 + gap}
	return grown.Intersects(other)
}

// Contains returns true if the position lies inside the rect interior
func (r Rect) Contains(p Position) bool {
	return p.X > r.X1 && p.X < r.X2 && p.Y > r.Y1 && p.Y < r.Y2
}
