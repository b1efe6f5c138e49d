package renderer

import (
	"strings"

	"gloomdelve/pkg/engine/world"
	"gloomdelve/pkg/game/entities"
	"gloomdelve/pkg/game/state"
)

// RenderCell returns the glyph for one map position under the fog of
// war. Lit tiles draw entities over terrain in full color; remembered
// tiles draw dimmed terrain only, so nothing moving leaks through the
// fog; unexplored tiles stay blank.
func RenderCell(g *state.Game, pos world.Position) string {
	lvl := g.CurrentLevel()
	if lvl == nil {
		return IconUnknown
	}

	tile := lvl.Map.TileAt(pos.X, pos.Y)
	if tile == nil || !tile.Explored {
		return IconUnknown
	}

	if pos == lvl.PlayerPos {
		return ColorPlayer.Sprint(PlayerIcon)
	}

	if !tile.Visible {
		return ColorSubtle.Sprint(string(tile.Kind.Symbol()))
	}

	if enemy := lvl.EnemyAt(pos); enemy != nil {
		return ColorEnemy.Sprint(strings.ToLower(enemy.Name[0:1]))
	}

	if tile.Kind != world.TileChest {
		if item := lvl.ItemAt(pos); item != nil {
			if item.Kind == entities.ItemGold {
				return ColorGold.Sprint(IconGold)
			}
			return ColorItem.Sprint(IconItem)
		}
	}

	return litTileGlyph(tile.Kind)
}

func litTileGlyph(kind world.TileKind) string {
	switch kind {
	case world.TileWall:
		return ColorWall.Sprint(IconWall)
	case world.TileDoor:
		return ColorSubtle.Sprint(IconDoor)
	case world.TileStairsDown:
		return ColorStairs.Sprint(IconStairsDn)
	case world.TileStairsUp:
		return ColorStairs.Sprint(IconStairsUp)
	case world.TileChest:
		return ColorGold.Sprint(IconChest)
	case world.TileExit:
		return ColorTitle.Sprint(IconExit)
	default:
		return ColorFloor.Sprint(IconFloor)
	}
}
