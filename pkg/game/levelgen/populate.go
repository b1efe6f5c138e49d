// Package levelgen places enemies, chests and loose items into a
// generated map under bounded retry budgets.
package levelgen

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"gloomdelve/pkg/engine/world"
	"gloomdelve/pkg/game/config"
	"gloomdelve/pkg/game/entities"
	"gloomdelve/pkg/game/state"
)

// PlacementStats records how much bounded placement work a populate run
// did. Tests assert the attempt counters against the profile caps.
type PlacementStats struct {
	EnemiesRequested int
	EnemiesPlaced    int
	ChestsPlaced     int
	ItemsPlaced      int
	Skipped          int // entities abandoned after exhausting their attempt budget
	Attempts         int // total random positions tried
}

// chestChance and looseItemChance are per-room spawn probabilities
const (
	chestChance     = 0.5
	looseItemChance = 0.2
)

// Populate fills a level with enemies, chests and loose items. The
// first room is the player's and stays empty.
//
// Every entity gets at most profile.PlacementAttempts random positions;
// an entity whose budget runs out is skipped, never retried unboundedly.
// A crowded room producing fewer entities than requested is a normal
// outcome, not an error.
func Populate(lvl *state.Level, profile config.Profile, difficulty int, rng *rand.Rand) PlacementStats {
	var stats PlacementStats

	blocked := blockedPositions(lvl)
	rooms := lvl.Map.Rooms()

	for i := 1; i < len(rooms); i++ {
		room := rooms[i]

		placeEnemies(lvl, room, profile, difficulty, rng, blocked, &stats)

		if rng.Float64() < chestChance {
			placeChest(lvl, room, profile, rng, blocked, &stats)
		}
		if rng.Float64() < looseItemChance {
			placeLooseItem(lvl, room, profile, rng, blocked, &stats)
		}
	}

	return stats
}

// blockedPositions seeds the occupancy set with every tile no entity
// may take: spawn, stairs and exit.
func blockedPositions(lvl *state.Level) mapset.Set[world.Position] {
	blocked := mapset.New[world.Position]()
	blocked.Put(lvl.Map.Spawn())
	if p := lvl.Map.StairsUp(); p != nil {
		blocked.Put(*p)
	}
	if p := lvl.Map.StairsDown(); p != nil {
		blocked.Put(*p)
	}
	if p := lvl.Map.Exit(); p != nil {
		blocked.Put(*p)
	}
	return blocked
}

// enemyBudget returns how many enemies a room should get: scales with
// room area and difficulty, hard-capped per room by the profile.
func enemyBudget(room world.Rect, profile config.Profile, difficulty int) int {
	area := room.Width() * room.Height()
	n := area * difficulty / 100
	if n < 1 {
		n = 1
	}
	if n > profile.MaxEnemiesPerRoom {
		n = profile.MaxEnemiesPerRoom
	}
	return n
}

func placeEnemies(lvl *state.Level, room world.Rect, profile config.Profile, difficulty int,
	rng *rand.Rand, blocked mapset.Set[world.Position], stats *PlacementStats) {
	budget := enemyBudget(room, profile, difficulty)
	stats.EnemiesRequested += budget

	for n := 0; n < budget; n++ {
		pos, ok := findSpot(lvl, room, profile.PlacementAttempts, rng, blocked, stats)
		if !ok {
			// Budget exhausted: skip this and the room's remaining
			// enemies, the room is too crowded for more.
			stats.Skipped += budget - n
			return
		}
		lvl.Enemies[pos] = entities.GenerateEnemy(lvl.Depth, difficulty, rng)
		blocked.Put(pos)
		stats.EnemiesPlaced++
	}
}

func placeChest(lvl *state.Level, room world.Rect, profile config.Profile,
	rng *rand.Rand, blocked mapset.Set[world.Position], stats *PlacementStats) {
	pos, ok := findSpot(lvl, room, profile.PlacementAttempts, rng, blocked, stats)
	if !ok {
		stats.Skipped++
		return
	}
	lvl.Map.SetKind(pos.X, pos.Y, world.TileChest)
	lvl.Items[pos] = entities.GenerateChestItem(lvl.Depth, rng)
	blocked.Put(pos)
	stats.ChestsPlaced++
}

func placeLooseItem(lvl *state.Level, room world.Rect, profile config.Profile,
	rng *rand.Rand, blocked mapset.Set[world.Position], stats *PlacementStats) {
	pos, ok := findSpot(lvl, room, profile.PlacementAttempts, rng, blocked, stats)
	if !ok {
		stats.Skipped++
		return
	}
	lvl.Items[pos] = entities.GenerateItem(lvl.Depth, rng)
	blocked.Put(pos)
	stats.ItemsPlaced++
}

// findSpot tries up to maxAttempts random interior positions in the
// room and returns the first free floor tile. ok is false when the
// budget is exhausted; callers skip the entity and continue.
func findSpot(lvl *state.Level, room world.Rect, maxAttempts int, rng *rand.Rand,
	blocked mapset.Set[world.Position], stats *PlacementStats) (world.Position, bool) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		stats.Attempts++

		x := room.X1 + 1 + rng.Intn(room.Width()-1)
		y := room.Y1 + 1 + rng.Intn(room.Height()-1)
		pos := world.Pos(x, y)

		if lvl.Map.KindAt(x, y) != world.TileFloor {
			continue
		}
		if blocked.Has(pos) || lvl.Occupied(pos) {
			continue
		}
		return pos, true
	}
	return world.Position{}, false
}
