package gameplay

import (
	"gloomdelve/pkg/engine/world"
	"gloomdelve/pkg/game/state"
)

// InteractResult reports what an interact command found
type InteractResult int

// Interact results
const (
	InteractNothing InteractResult = iota
	InteractPickedUp
	InteractLooted
	InteractEmptyChest
	InteractInventoryFull
)

// TryInteract picks up whatever is within reach. The player's own tile
// is checked first, then the four cardinal neighbors; the first tile
// with a loose item or a chest wins. An opened chest becomes floor
// even when it turns out to be empty.
func TryInteract(g *state.Game) InteractResult {
	lvl := g.CurrentLevel()
	if lvl == nil || g.Phase != state.PhaseReady {
		return InteractNothing
	}

	// Item underfoot takes priority over anything adjacent.
	if item := lvl.ItemAt(lvl.PlayerPos); item != nil {
		if !g.AddItem(item) {
			logMessage(g, "Your pack is too full for the ITEM{%s}.", item.Name)
			return InteractInventoryFull
		}
		lvl.RemoveItemAt(lvl.PlayerPos)
		announceLoot(g, item)
		return InteractPickedUp
	}

	for _, adj := range neighborOffsets {
		pos := lvl.PlayerPos.Add(adj.X, adj.Y)
		if !lvl.Map.InBounds(pos.X, pos.Y) {
			continue
		}

		if lvl.Map.KindAt(pos.X, pos.Y) == world.TileChest {
			return openChest(g, lvl, pos)
		}

		if item := lvl.ItemAt(pos); item != nil {
			if !g.AddItem(item) {
				logMessage(g, "Your pack is too full for the ITEM{%s}.", item.Name)
				return InteractInventoryFull
			}
			lvl.RemoveItemAt(pos)
			announceLoot(g, item)
			return InteractPickedUp
		}
	}

	logMessage(g, "There is nothing here to take.")
	return InteractNothing
}

// neighborOffsets is the cardinal search order for TryInteract
var neighborOffsets = []world.Position{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// openChest loots an adjacent chest. The chest tile becomes floor on
// every outcome; loot that does not fit in the inventory is left lying
// on the floor tile.
func openChest(g *state.Game, lvl *state.Level, pos world.Position) InteractResult {
	item := lvl.ItemAt(pos)

	lvl.Map.SetKind(pos.X, pos.Y, world.TileFloor)

	if item == nil {
		logMessage(g, "The chest is empty.")
		return InteractEmptyChest
	}

	if !g.AddItem(item) {
		logMessage(g, "The chest holds a ITEM{%s}, but your pack is full.", item.Name)
		return InteractInventoryFull
	}

	lvl.RemoveItemAt(pos)
	announceLoot(g, item)
	return InteractLooted
}
