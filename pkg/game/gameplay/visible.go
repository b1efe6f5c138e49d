package gameplay

import (
	"gloomdelve/pkg/engine/world"
	"gloomdelve/pkg/game/state"
)

// ForEachVisibleTile walks every currently lit tile of the current
// level in row-major order. Renderers use it to paint the bright layer
// without reaching into the visibility arrays themselves.
func ForEachVisibleTile(g *state.Game, fn func(pos world.Position, kind world.TileKind)) {
	lvl := g.CurrentLevel()
	if lvl == nil {
		return
	}

	lvl.Map.ForEachTile(func(x, y int, tile *world.Tile) {
		if tile.Visible {
			fn(world.Pos(x, y), tile.Kind)
		}
	})
}
