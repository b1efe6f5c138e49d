package world

// Dungeon represents one generated map with encapsulated tile storage.
// Dimensions are fixed at generation time. Tiles are addressed (x, y)
// with (0, 0) at the top-left.
type Dungeon struct {
	tiles  [][]Tile
	width  int
	height int

	rooms      []Rect
	stairsUp   *Position
	stairsDown *Position
	exit       *Position
	spawn      Position
}

// NewDungeon creates a dungeon of the given dimensions filled with wall tiles
func NewDungeon(width, height int) *Dungeon {
	if width <= 0 || height <= 0 {
		panic("Dungeon dimensions must be positive")
	}

	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = NewTile(TileWall)
		}
	}

	return &Dungeon{
		tiles:  tiles,
		width:  width,
		height: height,
	}
}

// Width returns the map width in tiles
func (d *Dungeon) Width() int {
	return d.width
}

// Height returns the map height in tiles
func (d *Dungeon) Height() int {
	return d.height
}

// Rooms returns the rooms placed by the generator
func (d *Dungeon) Rooms() []Rect {
	return d.rooms
}

// AddRoom records a placed room
func (d *Dungeon) AddRoom(r Rect) {
	d.rooms = append(d.rooms, r)
}

// Spawn returns the player spawn position
func (d *Dungeon) Spawn() Position {
	return d.spawn
}

// SetSpawn sets the player spawn position
func (d *Dungeon) SetSpawn(p Position) {
	d.spawn = p
}

// StairsUp returns the stairs-up position, or nil if the level has none
func (d *Dungeon) StairsUp() *Position {
	return d.stairsUp
}

// StairsDown returns the stairs-down position, or nil on a final level
func (d *Dungeon) StairsDown() *Position {
	return d.stairsDown
}

// Exit returns the exit position, or nil on a non-final level
func (d *Dungeon) Exit() *Position {
	return d.exit
}

// SetStairsUp places stairs up at p. Returns false if out of bounds.
func (d *Dungeon) SetStairsUp(p Position) bool {
	if !d.InBounds(p.X, p.Y) {
		return false
	}
	d.tiles[p.Y][p.X] = NewTile(TileStairsUp)
	d.stairsUp = &p
	return true
}

// SetStairsDown places stairs down at p. Returns false if out of bounds.
func (d *Dungeon) SetStairsDown(p Position) bool {
	if !d.InBounds(p.X, p.Y) {
		return false
	}
	d.tiles[p.Y][p.X] = NewTile(TileStairsDown)
	d.stairsDown = &p
	return true
}

// SetExit places the dungeon exit at p. Returns false if out of bounds.
func (d *Dungeon) SetExit(p Position) bool {
	if !d.InBounds(p.X, p.Y) {
		return false
	}
	d.tiles[p.Y][p.X] = NewTile(TileExit)
	d.exit = &p
	return true
}

// InBounds checks if an x/y position is within map bounds
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.width && y >= 0 && y < d.height
}

// InInterior checks if a position is within the carvable area
// (not on the perimeter). This keeps a 1-tile wall border around the map.
func (d *Dungeon) InInterior(x, y int) bool {
	return x >= 1 && x < d.width-1 && y >= 1 && y < d.height-1
}

// TileAt returns a pointer to the tile at (x, y), or nil if out of bounds
func (d *Dungeon) TileAt(x, y int) *Tile {
	if !d.InBounds(x, y) {
		return nil
	}
	return &d.tiles[y][x]
}

// KindAt returns the tile kind at (x, y); out-of-bounds reads as wall
func (d *Dungeon) KindAt(x, y int) TileKind {
	if !d.InBounds(x, y) {
		return TileWall
	}
	return d.tiles[y][x].Kind
}

// SetKind sets the tile kind at (x, y). Returns false if out of bounds.
func (d *Dungeon) SetKind(x, y int, kind TileKind) bool {
	if !d.InBounds(x, y) {
		return false
	}
	d.tiles[y][x].Kind = kind
	return true
}

// IsWalkable checks if the tile at p is in bounds and walkable terrain
func (d *Dungeon) IsWalkable(p Position) bool {
	return d.InBounds(p.X, p.Y) && d.tiles[p.Y][p.X].Kind.Walkable()
}

// CarveRoom carves the interior of a room rect to floor
func (d *Dungeon) CarveRoom(r Rect) {
	for y := r.Y1 + 1; y < r.Y2; y++ {
		for x := r.X1 + 1; x < r.X2; x++ {
			if d.InInterior(x, y) {
				d.tiles[y][x] = NewTile(TileFloor)
			}
		}
	}
}

// CarveHTunnel carves a horizontal corridor at row y from x1 to x2 inclusive
func (d *Dungeon) CarveHTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if d.InInterior(x, y) && d.tiles[y][x].Kind == TileWall {
			d.tiles[y][x] = NewTile(TileFloor)
		}
	}
}

// CarveVTunnel carves a vertical corridor at column x from y1 to y2 inclusive
func (d *Dungeon) CarveVTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if d.InInterior(x, y) && d.tiles[y][x].Kind == TileWall {
			d.tiles[y][x] = NewTile(TileFloor)
		}
	}
}

// ForEachTile iterates over all tiles, calling fn for each
func (d *Dungeon) ForEachTile(fn func(x, y int, tile *Tile)) {
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			fn(x, y, &d.tiles[y][x])
		}
	}
}

// Neighbors4 returns the in-bounds cardinal neighbors of p
func (d *Dungeon) Neighbors4(p Position) []Position {
	candidates := [4]Position{
		{X: p.X, Y: p.Y - 1},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
	}
	neighbors := make([]Position, 0, 4)
	for _, c := range candidates {
		if d.InBounds(c.X, c.Y) {
			neighbors = append(neighbors, c)
		}
	}
	return neighbors
}

// Validate checks the dungeon for common issues and returns an error
// description, or empty string if valid
func (d *Dungeon) Validate() string {
	if d.width <= 0 || d.height <= 0 {
		return "Dungeon has invalid dimensions"
	}

	if len(d.rooms) == 0 {
		return "Dungeon has no rooms"
	}

	if !d.IsWalkable(d.spawn) {
		return "Spawn tile is not walkable"
	}

	if d.stairsDown == nil && d.exit == nil {
		return "Dungeon has neither stairs down nor an exit"
	}

	return ""
}
