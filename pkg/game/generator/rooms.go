package generator

import (
	"math/rand"

	"gloomdelve/pkg/engine/world"
	"gloomdelve/pkg/game/config"
)

// RoomsGenerator carves non-overlapping rectangular rooms connected by
// L-shaped corridors. Connectivity is a side effect of always tunnelling
// to the previous room, not a post-hoc graph check: every room is
// reachable from the first by construction.
type RoomsGenerator struct {
	Profile config.Profile
}

// NewRoomsGenerator creates a generator tuned by the given profile
func NewRoomsGenerator(p config.Profile) *RoomsGenerator {
	return &RoomsGenerator{Profile: p}
}

// Name returns the name of this generator
func (g *RoomsGenerator) Name() string {
	return "Rooms and Corridors"
}

// roomGap is the minimum wall thickness kept between two placed rooms
const roomGap = 1

// Generate creates a new dungeon map.
//
// Placement runs for at most Profile.RoomAttempts tries; partial success
// is a valid outcome. A map with fewer rooms than the difficulty asked
// for is returned as-is rather than retrying unboundedly.
func (g *RoomsGenerator) Generate(depth, difficulty int, final bool, rng *rand.Rand) (*world.Dungeon, Stats) {
	p := g.Profile
	d := world.NewDungeon(p.MapWidth, p.MapHeight)

	var stats Stats
	maxRooms := p.MaxRoomsFor(difficulty)

	for stats.RoomAttempts = 0; stats.RoomAttempts < p.RoomAttempts; stats.RoomAttempts++ {
		if stats.RoomsPlaced >= maxRooms {
			break
		}

		w := p.MinRoomSize + rng.Intn(p.MaxRoomSize-p.MinRoomSize+1)
		h := p.MinRoomSize + rng.Intn(p.MaxRoomSize-p.MinRoomSize+1)
		x := 1 + rng.Intn(p.MapWidth-w-2)
		y := 1 + rng.Intn(p.MapHeight-h-2)

		room := world.NewRect(x, y, w, h)

		overlaps := false
		for _, other := range d.Rooms() {
			if room.IntersectsWithGap(other, roomGap) {
				overlaps = true
				break
			}
		}
		if overlaps {
			stats.RoomsRejected++
			continue
		}

		d.CarveRoom(room)

		if prev := d.Rooms(); len(prev) > 0 {
			connectRooms(d, prev[len(prev)-1], room, rng)
		}

		d.AddRoom(room)
		stats.RoomsPlaced++
	}

	// Degraded outcome floor: a level is usable with a single room.
	if len(d.Rooms()) == 0 {
		fallback := world.NewRect(1, 1, p.MinRoomSize+1, p.MinRoomSize+1)
		d.CarveRoom(fallback)
		d.AddRoom(fallback)
		stats.RoomsPlaced++
	}

	stats.DoorsPlaced = placeDoors(d)
	placeLandmarks(d, depth, final)

	if msg := d.Validate(); msg != "" {
		panic("generated invalid dungeon: " + msg)
	}

	return d, stats
}

// connectRooms carves an L-shaped corridor between two room centers,
// horizontal-first or vertical-first at random
func connectRooms(d *world.Dungeon, a, b world.Rect, rng *rand.Rand) {
	ac := a.Center()
	bc := b.Center()

	if rng.Intn(2) == 0 {
		d.CarveHTunnel(ac.X, bc.X, ac.Y)
		d.CarveVTunnel(ac.Y, bc.Y, bc.X)
	} else {
		d.CarveVTunnel(ac.Y, bc.Y, ac.X)
		d.CarveHTunnel(ac.X, bc.X, bc.Y)
	}
}

// placeDoors converts corridor breaches on room borders into doors.
// A border tile that a corridor carved to floor is exactly a room
// entrance; doors stay walkable so connectivity is unchanged.
func placeDoors(d *world.Dungeon) int {
	placed := 0
	for _, room := range d.Rooms() {
		for x := room.X1; x <= room.X2; x++ {
			placed += doorAt(d, x, room.Y1) + doorAt(d, x, room.Y2)
		}
		for y := room.Y1 + 1; y < room.Y2; y++ {
			placed += doorAt(d, room.X1, y) + doorAt(d, room.X2, y)
		}
	}
	return placed
}

func doorAt(d *world.Dungeon, x, y int) int {
	if d.KindAt(x, y) != world.TileFloor {
		return 0
	}
	d.SetKind(x, y, world.TileDoor)
	return 1
}

// placeLandmarks sets the spawn, stairs and exit. The spawn is the
// first room's center; the way down sits in the last room placed, which
// the corridor chain keeps the farthest by construction order. On a
// single-room map the way down shifts off the spawn tile.
func placeLandmarks(d *world.Dungeon, depth int, final bool) {
	rooms := d.Rooms()
	first := rooms[0]
	last := rooms[len(rooms)-1]

	d.SetSpawn(first.Center())

	down := last.Center()
	if down == d.Spawn() {
		down = floorBeside(d, down, d.Spawn())
	}
	if final {
		d.SetExit(down)
	} else {
		d.SetStairsDown(down)
	}

	if depth > 1 {
		// Next to the spawn, never on it or the way down.
		d.SetStairsUp(floorBeside(d, first.Center(), down))
	}
}

// floorBeside returns a floor tile cardinally adjacent to from that is
// not taken. Falls back to from itself when the room is too cramped to
// offer one.
func floorBeside(d *world.Dungeon, from, taken world.Position) world.Position {
	for _, next := range d.Neighbors4(from) {
		if next != taken && d.KindAt(next.X, next.Y) == world.TileFloor {
			return next
		}
	}
	return from
}
