// Package generator produces dungeon maps from a tuning profile.
package generator

import (
	"math/rand"

	"gloomdelve/pkg/engine/world"
)

// Stats records how much bounded work a generation run actually did.
// Tests assert against these counters to prove the hard iteration
// ceilings were honored.
type Stats struct {
	RoomAttempts  int // placement tries consumed, <= profile.RoomAttempts
	RoomsPlaced   int
	RoomsRejected int // tries rejected for overlap
	DoorsPlaced   int
}

// MapGenerator is an interface for map generation algorithms
type MapGenerator interface {
	// Generate builds a map for the given dungeon depth. Deterministic
	// for a fixed rng seed. Never fails: exhausted placement budgets
	// degrade to a smaller map, and the result always has a walkable
	// path from spawn to the stairs down (or exit, when final is set).
	Generate(depth, difficulty int, final bool, rng *rand.Rand) (*world.Dungeon, Stats)
	Name() string
}
