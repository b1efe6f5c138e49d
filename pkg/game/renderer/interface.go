package renderer

import (
	"gloomdelve/pkg/game/state"
)

// Renderer defines the interface for rendering backends.
// Implementations include the TUI (terminal) and Ebiten (GUI).
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// RenderFrame renders a complete game frame: the viewport, the
	// status bar and the message log.
	RenderFrame(g *state.Game)

	// Clear clears the display
	Clear()
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// RenderFrame renders a complete game frame with the current renderer
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}
