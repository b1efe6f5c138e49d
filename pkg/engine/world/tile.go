// Package world provides generic 2D tile-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// TileKind identifies the terrain of a single tile.
type TileKind int

// Tile kinds
const (
	TileWall TileKind = iota
	TileFloor
	TileDoor
	TileStairsDown
	TileStairsUp
	TileChest
	TileExit
)

// String returns the string representation of a tile kind
func (k TileKind) String() string {
	switch k {
	case TileWall:
		return "Wall"
	case TileFloor:
		return "Floor"
	case TileDoor:
		return "Door"
	case TileStairsDown:
		return "StairsDown"
	case TileStairsUp:
		return "StairsUp"
	case TileChest:
		return "Chest"
	case TileExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Walkable returns true if the player can stand on this kind of tile
func (k TileKind) Walkable() bool {
	switch k {
	case TileFloor, TileDoor, TileStairsDown, TileStairsUp, TileChest, TileExit:
		return true
	default:
		return false
	}
}

// Symbol returns the map glyph for this tile kind
func (k TileKind) Symbol() rune {
	switch k {
	case TileWall:
		return '#'
	case TileFloor:
		return '.'
	case TileDoor:
		return '+'
	case TileStairsDown:
		return '>'
	case TileStairsUp:
		return '<'
	case TileChest:
		return 'C'
	case TileExit:
		return 'E'
	default:
		return '?'
	}
}

// Tile is a single map tile. Explored is monotonic for the lifetime of a
// level: once set it is never cleared. Visible is recomputed from scratch
// on every visibility pass.
type Tile struct {
	Kind     TileKind `json:"kind"`
	Explored bool     `json:"explored"`
	Visible  bool     `json:"visible"`
}

// NewTile creates a tile of the given kind, unexplored and not visible
func NewTile(kind TileKind) Tile {
	return Tile{Kind: kind}
}
