package world

import (
	"fmt"
	"math"
)

// Viewport declares how many tiles around the player a renderer will
// draw per frame, and the visibility radius that must cover them.
//
// The radius and the window dimensions are coupled: every tile of the
// Width×Height window centered on the player must lie inside the disc
// the visibility pass sweeps, or renderers read visibility state that
// was never computed this turn. Validate enforces this at configuration
// time so the mismatch can never reach a render loop.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Radius int `json:"radius"`
}

// MinInscribingRadius returns the smallest visibility radius whose disc
// contains every tile of a width×height window centered on the player.
// The farthest window tile from the center is the corner at offset
// (width/2, height/2), so the radius must reach it.
func MinInscribingRadius(width, height int) int {
	maxDx := width / 2
	maxDy := height / 2
	r := int(math.Ceil(math.Sqrt(float64(maxDx*maxDx + maxDy*maxDy))))
	// Guard against float rounding just under the true root.
	for r*r < maxDx*maxDx+maxDy*maxDy {
		r++
	}
	return r
}

// Validate checks the viewport/visibility coupling invariant. It returns
// an error if the window is not fully inscribed in the visibility disc.
// Callers must reject the configuration eagerly rather than letting the
// mismatch surface as stale rendering or a hang at runtime.
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("viewport dimensions must be positive, got %dx%d", v.Width, v.Height)
	}
	if v.Radius <= 0 {
		return fmt.Errorf("visibility radius must be positive, got %d", v.Radius)
	}

	min := MinInscribingRadius(v.Width, v.Height)
	if v.Radius < min {
		return fmt.Errorf("visibility radius %d cannot cover a %dx%d viewport: need at least %d",
			v.Radius, v.Width, v.Height, min)
	}

	return nil
}

// Covers returns true if the tile at p is inside the viewport window
// centered on the player
func (v Viewport) Covers(player, p Position) bool {
	camX, camY := v.TopLeft(player)
	return p.X >= camX && p.X < camX+v.Width && p.Y >= camY && p.Y < camY+v.Height
}

// TopLeft returns the world coordinate of the window's top-left corner
// when centered on the player (unclamped)
func (v Viewport) TopLeft(player Position) (int, int) {
	return player.X - v.Width/2, player.Y - v.Height/2
}

// Camera returns the window's top-left corner centered on the player and
// clamped to the map edges, so the window never reads out of bounds on
// maps larger than the window
func (v Viewport) Camera(player Position, mapWidth, mapHeight int) (int, int) {
	camX, camY := v.TopLeft(player)

	if camX < 0 {
		camX = 0
	}
	if camY < 0 {
		camY = 0
	}
	if camX+v.Width > mapWidth {
		camX = mapWidth - v.Width
		if camX < 0 {
			camX = 0
		}
	}
	if camY+v.Height > mapHeight {
		camY = mapHeight - v.Height
		if camY < 0 {
			camY = 0
		}
	}

	return camX, camY
}
