// Package depths gives each dungeon depth a stratum identity. The
// identity drives flavor text and enemy scaling hints; the player
// discovers the bottom by reaching it.
package depths

import (
	"github.com/leonelquinteros/gotext"
)

// Stratum is the geological layer type of a depth.
type Stratum int

const (
	Cellars    Stratum = iota // Worked stone, the old keep's storage
	Crypts                    // Burial halls
	Warrens                   // Collapsed tunnels, goblin nests
	Caverns                   // Natural caves
	Deeps                     // The sunless dark
)

// strataCount is the number of stratum types (for cycling).
const strataCount = 5

// StratumFor returns the stratum for the given depth (1-based).
// Strata cycle so every depth has an identity even on long runs.
func StratumFor(depth int) Stratum {
	if depth <= 0 {
		return Cellars
	}
	return Stratum((depth - 1) % strataCount)
}

// Name returns the translated display name of the stratum
func (s Stratum) Name() string {
	switch s {
	case Crypts:
		return gotext.Get("The Crypts")
	case Warrens:
		return gotext.Get("The Warrens")
	case Caverns:
		return gotext.Get("The Caverns")
	case Deeps:
		return gotext.Get("The Deeps")
	default:
		return gotext.Get("The Cellars")
	}
}

// ArrivalText returns the translated flavor line shown on first
// entering a depth of this stratum
func (s Stratum) ArrivalText() string {
	switch s {
	case Crypts:
		return gotext.Get("Dust and old bones. Something shifted in the dark.")
	case Warrens:
		return gotext.Get("The tunnels narrow. You hear skittering ahead.")
	case Caverns:
		return gotext.Get("Water drips from stone that no mason cut.")
	case Deeps:
		return gotext.Get("The air is cold and utterly still down here.")
	default:
		return gotext.Get("Broken crates and empty racks line the walls.")
	}
}
