// Package ebiten provides an Ebiten-based 2D graphical renderer for
// Gloomdelve.
package ebiten

import (
	"image/color"
	"sync"

	"gloomdelve/pkg/game/state"
)

// cellState is one viewport tile captured for drawing
type cellState struct {
	glyph    rune
	fill     color.Color
	visible  bool
	explored bool
}

// renderSnapshot holds a consistent copy of the state the Draw call
// needs. Update captures it under lock after game logic runs, so Draw
// never reads the live session and never sees a half-applied turn.
type renderSnapshot struct {
	valid bool

	depth       int
	totalDepths int
	phase       state.Phase

	cells     [][]cellState
	playerRow int
	playerCol int

	health    int
	maxHealth int
	level     int
	exp       int
	gold      int

	inventory []string
	messages  []string
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	windowWidth  int
	windowHeight int

	// Tile size in pixels, adjustable with +/-.
	tileSize int

	game      *state.Game
	gameMutex sync.Mutex

	snapshot      renderSnapshot
	snapshotMutex sync.Mutex
}
