package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	engineinput "gloomdelve/pkg/engine/input"
	"gloomdelve/pkg/game/gameplay"
	"gloomdelve/pkg/game/renderer"
	"gloomdelve/pkg/game/state"
)

const (
	defaultTileSize = 24
	minTileSize     = 8
	maxTileSize     = 48
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  960,
		windowHeight: 720,
		tileSize:     defaultTileSize,
	}
}

// Init initializes the Ebiten renderer
func (e *EbitenRenderer) Init() {
	renderer.InitColors()
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Gloomdelve")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Clear is a no-op: Ebiten clears the screen every frame in Draw
func (e *EbitenRenderer) Clear() {}

// RenderFrame stores the session and captures a draw snapshot
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.gameMutex.Lock()
	e.game = g
	e.gameMutex.Unlock()

	e.captureSnapshot(g)
}

// Run starts the Ebiten game loop and blocks until the window closes
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.Init()
	e.RenderFrame(g)
	return ebiten.RunGame(e)
}

// Update handles input and advances the session one turn per keypress
func (e *EbitenRenderer) Update() error {
	e.gameMutex.Lock()
	g := e.game
	e.gameMutex.Unlock()

	if g == nil {
		return nil
	}

	intent, zoom := e.pollIntent()

	if zoom != 0 {
		e.tileSize += zoom * 4
		if e.tileSize < minTileSize {
			e.tileSize = minTileSize
		}
		if e.tileSize > maxTileSize {
			e.tileSize = maxTileSize
		}
		e.captureSnapshot(g)
		return nil
	}

	if intent.Action == engineinput.ActionQuit {
		return ebiten.Termination
	}

	if intent.Action != engineinput.ActionNone {
		gameplay.ProcessIntent(g, intent)
		e.captureSnapshot(g)
	}

	return nil
}

// Layout returns the game's logical screen size
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
