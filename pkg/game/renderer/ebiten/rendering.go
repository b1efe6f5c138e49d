package ebiten

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gloomdelve/pkg/engine/world"
	"gloomdelve/pkg/game/state"
)

var (
	colorBackground = color.RGBA{R: 12, G: 12, B: 16, A: 255}
	colorWall       = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	colorFloor      = color.RGBA{R: 30, G: 30, B: 38, A: 255}
	colorDoor       = color.RGBA{R: 120, G: 90, B: 40, A: 255}
	colorStairs     = color.RGBA{R: 60, G: 140, B: 160, A: 255}
	colorChest      = color.RGBA{R: 180, G: 150, B: 40, A: 255}
	colorExit       = color.RGBA{R: 90, G: 200, B: 220, A: 255}
	colorPlayer     = color.RGBA{R: 80, G: 200, B: 90, A: 255}
	colorEnemy      = color.RGBA{R: 200, G: 60, B: 60, A: 255}
	colorItem       = color.RGBA{R: 90, G: 190, B: 90, A: 255}
)

func tileFill(kind world.TileKind) color.Color {
	switch kind {
	case world.TileWall:
		return colorWall
	case world.TileDoor:
		return colorDoor
	case world.TileStairsDown, world.TileStairsUp:
		return colorStairs
	case world.TileChest:
		return colorChest
	case world.TileExit:
		return colorExit
	default:
		return colorFloor
	}
}

// dimmed halves a color for remembered-but-unlit tiles
func dimmed(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.RGBA{
		R: uint8(r >> 9),
		G: uint8(g >> 9),
		B: uint8(b >> 9),
		A: 255,
	}
}

// Draw renders the captured snapshot to the screen
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.Lock()
	snap := e.snapshot
	e.snapshotMutex.Unlock()

	if !snap.valid {
		ebitenutil.DebugPrintAt(screen, "Generating...", 16, 16)
		return
	}

	ts := e.tileSize
	mapTop := 24

	for row, line := range snap.cells {
		for col, cs := range line {
			if !cs.explored {
				continue
			}

			fill := cs.fill
			if !cs.visible {
				fill = dimmed(fill)
			}
			x := col * ts
			y := mapTop + row*ts
			vector.DrawFilledRect(screen, float32(x), float32(y),
				float32(ts-1), float32(ts-1), fill, false)

			if cs.visible && cs.glyph != '.' && cs.glyph != '#' {
				ebitenutil.DebugPrintAt(screen, string(cs.glyph), x+ts/3, y+ts/4)
			}
		}
	}

	// Player marker on top of the map layer.
	px := snap.playerCol * ts
	py := mapTop + snap.playerRow*ts
	vector.DrawFilledRect(screen, float32(px), float32(py),
		float32(ts-1), float32(ts-1), colorPlayer, false)
	ebitenutil.DebugPrintAt(screen, "@", px+ts/3, py+ts/4)

	e.drawStatus(screen, snap, mapTop+len(snap.cells)*ts+8)
}

// drawStatus paints the vitals line, inventory and message log below
// the map
func (e *EbitenRenderer) drawStatus(screen *ebiten.Image, snap renderSnapshot, top int) {
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Depth %d/%d   HP %d/%d   Lvl %d (%d exp)   Gold %d",
			snap.depth, snap.totalDepths, snap.health, snap.maxHealth,
			snap.level, snap.exp, snap.gold),
		0, 0)

	pack := "(empty)"
	if len(snap.inventory) > 0 {
		pack = strings.Join(snap.inventory, ", ")
	}
	ebitenutil.DebugPrintAt(screen, "Pack: "+pack, 8, top)

	for i, msg := range snap.messages {
		ebitenutil.DebugPrintAt(screen, msg, 8, top+16+i*14)
	}

	switch snap.phase {
	case state.PhaseCombat:
		ebitenutil.DebugPrintAt(screen, "[1] attack  [2] potion  [f] flee", 8, top+16+len(snap.messages)*14+8)
	case state.PhaseGameOver:
		ebitenutil.DebugPrintAt(screen, "You have fallen. Press Q to quit.", 8, top+16+len(snap.messages)*14+8)
	case state.PhaseVictory:
		ebitenutil.DebugPrintAt(screen, "You escaped Gloomdelve!", 8, top+16+len(snap.messages)*14+8)
	}
}
