// Package menu provides the terminal menus shown outside of play.
package menu

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	engineinput "gloomdelve/pkg/engine/input"
	"gloomdelve/pkg/game/renderer"
)

// Option is one selectable menu entry
type Option struct {
	Label string
	Help  string
}

// Run displays a titled option list and blocks until the player picks
// one. Returns the chosen index, or -1 when the player backs out.
func Run(title string, options []Option) int {
	selected := 0

	for {
		renderer.Clear()
		fmt.Println(renderer.ColorTitle.Sprint(title))
		fmt.Println()

		for i, opt := range options {
			if i == selected {
				fmt.Println(renderer.ColorAction.Sprint("  > " + opt.Label))
			} else {
				fmt.Println("    " + opt.Label)
			}
		}

		fmt.Println()
		if options[selected].Help != "" {
			fmt.Println(renderer.ColorSubtle.Sprint("  " + options[selected].Help))
		}
		fmt.Println(renderer.ColorSubtle.Sprint("  " + gotext.Get("arrows move, enter picks, q backs out")))

		switch engineinput.ReadIntent().Action {
		case engineinput.ActionMoveNorth:
			selected--
			if selected < 0 {
				selected = len(options) - 1
			}
		case engineinput.ActionMoveSouth:
			selected++
			if selected >= len(options) {
				selected = 0
			}
		case engineinput.ActionInteract:
			return selected
		case engineinput.ActionQuit:
			return -1
		}
	}
}
