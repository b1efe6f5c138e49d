package world

// Position is an integer 2D coordinate on the map grid
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pos is shorthand for constructing a Position
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position offset by (dx, dy)
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DistanceSquared returns the squared Euclidean distance to other.
// Visibility uses squared distances throughout so the disc test stays
// in integer arithmetic.
func (p Position) DistanceSquared(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// ManhattanDistance returns the Manhattan distance to other
func (p Position) ManhattanDistance(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
