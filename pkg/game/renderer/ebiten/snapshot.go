package ebiten

import (
	gookit "github.com/gookit/color"

	"gloomdelve/pkg/engine/world"
	"gloomdelve/pkg/game/state"
)

// captureSnapshot copies everything Draw needs out of the live
// session. The viewport window is resolved here so Draw only walks a
// fixed grid.
func (e *EbitenRenderer) captureSnapshot(g *state.Game) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	lvl := g.CurrentLevel()
	if lvl == nil {
		e.snapshot.valid = false
		return
	}

	vp := g.Profile.Viewport()
	startX, startY := vp.Camera(lvl.PlayerPos, lvl.Map.Width(), lvl.Map.Height())

	cells := make([][]cellState, vp.Height)
	for row := 0; row < vp.Height; row++ {
		cells[row] = make([]cellState, vp.Width)
		for col := 0; col < vp.Width; col++ {
			pos := world.Pos(startX+col, startY+row)
			cells[row][col] = captureCell(lvl, pos)
		}
	}

	e.snapshot = renderSnapshot{
		valid:       true,
		depth:       g.Depth,
		totalDepths: g.TotalDepths(),
		phase:       g.Phase,
		cells:       cells,
		playerCol:   lvl.PlayerPos.X - startX,
		playerRow:   lvl.PlayerPos.Y - startY,
		health:      g.Player.Health,
		maxHealth:   g.Player.MaxHealth,
		level:       g.Player.Level,
		exp:         g.Player.Experience,
		gold:        g.Gold,
	}

	for _, item := range g.Inventory {
		e.snapshot.inventory = append(e.snapshot.inventory, item.Name)
	}

	// Messages carry terminal color codes from the markup layer; the
	// GUI draws them as plain text.
	for _, msg := range g.Messages {
		e.snapshot.messages = append(e.snapshot.messages, gookit.ClearCode(msg))
	}
}

// captureCell resolves one map position to its drawable state
func captureCell(lvl *state.Level, pos world.Position) cellState {
	tile := lvl.Map.TileAt(pos.X, pos.Y)
	if tile == nil || !tile.Explored {
		return cellState{}
	}

	cs := cellState{
		explored: true,
		visible:  tile.Visible,
		glyph:    tile.Kind.Symbol(),
		fill:     tileFill(tile.Kind),
	}

	// Entities only show on lit tiles so nothing moves under the fog.
	if tile.Visible {
		if enemy := lvl.EnemyAt(pos); enemy != nil {
			cs.glyph = rune(enemy.Name[0] | 0x20)
			cs.fill = colorEnemy
		} else if tile.Kind != world.TileChest {
			if item := lvl.ItemAt(pos); item != nil {
				cs.glyph = '?'
				cs.fill = colorItem
			}
		}
	}

	return cs
}
