package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"gloomdelve/pkg/engine/input"
	"gloomdelve/pkg/game/config"
	"gloomdelve/pkg/game/devtools"
	"gloomdelve/pkg/game/gameplay"
	"gloomdelve/pkg/game/menu"
	"gloomdelve/pkg/game/renderer"
	ebitenrenderer "gloomdelve/pkg/game/renderer/ebiten"
	"gloomdelve/pkg/game/renderer/tui"
	"gloomdelve/pkg/game/save"
	"gloomdelve/pkg/game/state"
)

func main() {
	profileName := flag.String("profile", "", "tuning profile: desktop or compact (empty shows the menu)")
	difficulty := flag.Int("difficulty", 3, "difficulty from 1 upwards")
	seed := flag.Int64("seed", 0, "dungeon seed (0 uses the clock)")
	gui := flag.Bool("gui", false, "render in a window instead of the terminal")
	loadPath := flag.String("load", "", "resume the run saved at this path")
	savePath := flag.String("save", "gloomdelve.json", "path used when saving mid-run")
	dumpMap := flag.Bool("dumpmap", false, "write the generated map to a text file and exit (for level design)")
	flag.Parse()

	renderer.InitColors()

	g, err := buildOrLoad(*profileName, *difficulty, *seed, *loadPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if g == nil {
		return
	}

	if *dumpMap {
		path, err := devtools.DumpMapToFile(g)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println("map written to " + path)
		return
	}

	if *gui {
		e := ebitenrenderer.New()
		renderer.SetRenderer(e)
		if err := e.Run(g); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	t := tui.New()
	renderer.SetRenderer(t)
	t.Init()

	runTerminal(g, *savePath)
}

// buildOrLoad resolves the session from flags, falling back to the main
// menu when no profile was named. Returns (nil, nil) when the player
// quits from the menu.
func buildOrLoad(profileName string, difficulty int, seed int64, loadPath string) (*state.Game, error) {
	if loadPath != "" {
		g, err := save.Read(loadPath)
		if err != nil {
			return nil, fmt.Errorf("resume %s: %w", loadPath, err)
		}
		return g, nil
	}

	if profileName == "" {
		setup, ok := menu.ChooseSetup()
		if !ok {
			fmt.Println(gotext.Get("The dark keeps."))
			return nil, nil
		}
		profileName = setup.ProfileName
		difficulty = setup.Difficulty
	}

	profile, err := config.ByName(profileName)
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return gameplay.BuildGame(profile, difficulty, seed)
}

// runTerminal is the blocking render-read-apply loop for the TUI. One
// keypress is one turn; the frame after each intent reflects the whole
// turn including enemy movement.
func runTerminal(g *state.Game, savePath string) {
	for {
		renderer.RenderFrame(g)

		if g.Phase == state.PhaseGameOver || g.Phase == state.PhaseVictory {
			waitForQuit()
			return
		}

		intent := input.ReadIntent()

		switch intent.Action {
		case input.ActionQuit:
			fmt.Println(gotext.Get("The dark keeps."))
			return
		case input.ActionSave:
			if err := save.Write(g, savePath); err != nil {
				g.AddMessage(renderer.FormatString("Save failed: %v", err))
			} else {
				g.AddMessage(renderer.FormatString("Saved to ACTION{%s}", savePath))
			}
		default:
			gameplay.ProcessIntent(g, intent)
		}
	}
}

// waitForQuit holds the final frame on screen until the player
// acknowledges it
func waitForQuit() {
	for {
		switch input.ReadIntent().Action {
		case input.ActionQuit, input.ActionInteract:
			return
		}
	}
}
