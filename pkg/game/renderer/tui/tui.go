// Package tui renders the game to a plain terminal.
package tui

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	"gloomdelve/pkg/engine/terminal"
	"gloomdelve/pkg/engine/world"
	"gloomdelve/pkg/game/depths"
	"gloomdelve/pkg/game/renderer"
	"gloomdelve/pkg/game/state"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct{}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	renderer.InitColors()
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	renderer.Clear()
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	t.Clear()

	renderer.ColorAction.Printf("%s %d / %d  ", gotext.Get("Depth"), g.Depth, g.TotalDepths())
	renderer.ColorSubtle.Printf("%s\n\n", depths.StratumFor(g.Depth).Name())

	t.printMap(g)
	t.printStatusBar(g)
	t.printMessagesPane(g)

	switch g.Phase {
	case state.PhaseCombat:
		renderer.PrintString("\nACTION{1} attack  ACTION{2} potion  ACTION{f} flee\n> ")
	case state.PhaseGameOver:
		fmt.Println()
		fmt.Println(renderer.ColorDenied.Sprint(gotext.Get("You have fallen. Press q to quit.")))
		fmt.Print("> ")
	case state.PhaseVictory:
		fmt.Println()
		fmt.Println(renderer.ColorTitle.Sprint(gotext.Get("You escaped! Press q to quit.")))
		fmt.Print("> ")
	default:
		fmt.Print("\n> ")
	}
}

// printMap paints the viewport window centered on the player. The
// camera clamps at the map edges so the window never shows
// out-of-bounds tiles.
func (t *TUIRenderer) printMap(g *state.Game) {
	lvl := g.CurrentLevel()
	if lvl == nil {
		return
	}

	vp := g.Profile.Viewport()
	startX, startY := vp.Camera(lvl.PlayerPos, lvl.Map.Width(), lvl.Map.Height())
	indent := strings.Repeat(" ", terminal.CenterIndent(vp.Width))

	for row := 0; row < vp.Height; row++ {
		fmt.Print(indent)
		for col := 0; col < vp.Width; col++ {
			fmt.Print(renderer.RenderCell(g, world.Pos(startX+col, startY+row)))
		}
		fmt.Println()
	}
	fmt.Println()
}

// printStatusBar renders the player's vitals and inventory
func (t *TUIRenderer) printStatusBar(g *state.Game) {
	p := g.Player

	hpStyle := renderer.ColorItem
	if p.Health <= p.MaxHealth/4 {
		hpStyle = renderer.ColorDenied
	}

	fmt.Printf("%s %s  %s %s  %s %s\n",
		renderer.ColorSubtle.Sprint("HP:"),
		hpStyle.Sprintf("%d/%d", p.Health, p.MaxHealth),
		renderer.ColorSubtle.Sprint("Lvl:"),
		renderer.ColorAction.Sprintf("%d (%d exp)", p.Level, p.Experience),
		renderer.ColorSubtle.Sprint("Gold:"),
		renderer.ColorGold.Sprintf("%d", g.Gold),
	)

	fmt.Print(renderer.ColorSubtle.Sprint("Pack: "))
	if len(g.Inventory) == 0 {
		fmt.Println(renderer.ColorSubtle.Sprint("(empty)"))
	} else {
		names := make([]string, 0, len(g.Inventory))
		for _, item := range g.Inventory {
			names = append(names, renderer.ColorItem.Sprint(item.Name))
		}
		fmt.Println(strings.Join(names, renderer.ColorSubtle.Sprint(", ")))
	}
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *state.Game) {
	width := terminal.Width()

	label := " Messages "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}

	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", width-sideLen-len(label))

	fmt.Println()
	fmt.Println(renderer.ColorSubtle.Sprint(leftDashes + label + rightDashes))

	if len(g.Messages) == 0 {
		fmt.Println(renderer.ColorSubtle.Sprint("  (no messages)"))
	} else {
		for _, msg := range g.Messages {
			fmt.Printf("  %s\n", msg)
		}
	}

	fmt.Println(renderer.ColorSubtle.Sprint(strings.Repeat("─", width)))
}
