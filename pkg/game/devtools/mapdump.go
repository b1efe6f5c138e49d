// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"

	"gloomdelve/pkg/engine/world"
	"gloomdelve/pkg/game/gameplay"
	"gloomdelve/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// tileSymbol returns the single-character symbol for a map position.
// If revealedOnly is true, unexplored tiles render as '#'.
func tileSymbol(lvl *state.Level, x, y int, revealedOnly bool) rune {
	tile := lvl.Map.TileAt(x, y)
	if tile == nil {
		return '#'
	}
	if revealedOnly && !tile.Explored {
		return '#'
	}

	pos := world.Pos(x, y)
	switch {
	case lvl.EnemyAt(pos) != nil:
		return 'x'
	case tile.Kind != world.TileChest && lvl.ItemAt(pos) != nil:
		return '?'
	default:
		return tile.Kind.Symbol()
	}
}

// writeMapGrid writes one rendering of the level to f
func writeMapGrid(f *os.File, lvl *state.Level, revealedOnly bool) {
	for y := 0; y < lvl.Map.Height(); y++ {
		for x := 0; x < lvl.Map.Width(); x++ {
			if lvl.PlayerPos == world.Pos(x, y) {
				fmt.Fprint(f, "@")
				continue
			}
			fmt.Fprintf(f, "%c", tileSymbol(lvl, x, y, revealedOnly))
		}
		fmt.Fprintln(f)
	}
}

// writeLitGrid writes only the tiles currently in the player's light,
// everything else blanked to '#'
func writeLitGrid(f *os.File, g *state.Game, lvl *state.Level) {
	rows := make([][]rune, lvl.Map.Height())
	for y := range rows {
		rows[y] = make([]rune, lvl.Map.Width())
		for x := range rows[y] {
			rows[y][x] = '#'
		}
	}

	gameplay.ForEachVisibleTile(g, func(pos world.Position, kind world.TileKind) {
		rows[pos.Y][pos.X] = kind.Symbol()
	})
	rows[lvl.PlayerPos.Y][lvl.PlayerPos.X] = '@'

	for _, row := range rows {
		fmt.Fprintln(f, string(row))
	}
}

// DumpMapToFile writes a debug dump of the current level to map.txt:
// metadata, a legend, the currently lit tiles, the map as the player
// has explored it, and the fully revealed map with entity counts.
func DumpMapToFile(g *state.Game) (string, error) {
	lvl := g.CurrentLevel()
	if lvl == nil {
		return "", fmt.Errorf("no level to dump")
	}

	f, err := os.Create(mapDumpFilename)
	if err != nil {
		return "", fmt.Errorf("creating map dump: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "Gloomdelve map dump\n")
	fmt.Fprintf(f, "seed: %d\n", g.Seed)
	fmt.Fprintf(f, "depth: %d/%d\n", g.Depth, g.TotalDepths())
	fmt.Fprintf(f, "size: %dx%d\n", lvl.Map.Width(), lvl.Map.Height())
	fmt.Fprintf(f, "rooms: %d  enemies: %d  items: %d\n",
		len(lvl.Map.Rooms()), len(lvl.Enemies), len(lvl.Items))
	fmt.Fprintf(f, "legend: @ player, x enemy, ? item, # wall, . floor, + door, > down, < up, C chest, E exit\n")

	fmt.Fprintf(f, "\n-- lit --\n")
	writeLitGrid(f, g, lvl)

	fmt.Fprintf(f, "\n-- explored --\n")
	writeMapGrid(f, lvl, true)

	fmt.Fprintf(f, "\n-- full --\n")
	writeMapGrid(f, lvl, false)

	return mapDumpFilename, nil
}
