// Package config holds the runtime tuning profile for a render target.
// The original builds picked map sizes and radii with build-time platform
// switches; here a caller chooses a preset at startup and Validate checks
// the viewport/visibility coupling once, eagerly.
package config

import (
	"fmt"

	"gloomdelve/pkg/engine/world"
)

// Profile bundles every resource bound the core honors: map dimensions,
// visibility radius, viewport window size, and the generation caps that
// keep worst-case single-threaded work bounded on constrained targets.
type Profile struct {
	Name string `json:"name"`

	MapWidth  int `json:"mapWidth"`
	MapHeight int `json:"mapHeight"`

	ViewportWidth    int `json:"viewportWidth"`
	ViewportHeight   int `json:"viewportHeight"`
	VisibilityRadius int `json:"visibilityRadius"`

	// Room generation caps. MaxRooms is a hard ceiling regardless of
	// difficulty; RoomAttempts bounds placement tries per level.
	MaxRooms     int `json:"maxRooms"`
	RoomAttempts int `json:"roomAttempts"`
	MinRoomSize  int `json:"minRoomSize"`
	MaxRoomSize  int `json:"maxRoomSize"`

	// Entity placement caps.
	MaxEnemiesPerRoom int `json:"maxEnemiesPerRoom"`
	PlacementAttempts int `json:"placementAttempts"`
}

// Desktop is the default profile for terminal and GUI targets.
func Desktop() Profile {
	return Profile{
		Name:              "desktop",
		MapWidth:          80,
		MapHeight:         45,
		ViewportWidth:     21,
		ViewportHeight:    9,
		VisibilityRadius:  12,
		MaxRooms:          25,
		RoomAttempts:      100,
		MinRoomSize:       5,
		MaxRoomSize:       12,
		MaxEnemiesPerRoom: 5,
		PlacementAttempts: 20,
	}
}

// Compact is the profile for constrained render targets: smaller maps,
// fewer rooms and entities, so a full turn of sequential work stays
// cheap on a single UI thread.
func Compact() Profile {
	return Profile{
		Name:              "compact",
		MapWidth:          40,
		MapHeight:         30,
		ViewportWidth:     15,
		ViewportHeight:    7,
		VisibilityRadius:  9,
		MaxRooms:          8,
		RoomAttempts:      30,
		MinRoomSize:       5,
		MaxRoomSize:       7,
		MaxEnemiesPerRoom: 2,
		PlacementAttempts: 20,
	}
}

// ByName returns the preset with the given name
func ByName(name string) (Profile, error) {
	switch name {
	case "desktop":
		return Desktop(), nil
	case "compact":
		return Compact(), nil
	default:
		return Profile{}, fmt.Errorf("unknown profile %q (want desktop or compact)", name)
	}
}

// Viewport returns the profile's viewport policy
func (p Profile) Viewport() world.Viewport {
	return world.Viewport{
		Width:  p.ViewportWidth,
		Height: p.ViewportHeight,
		Radius: p.VisibilityRadius,
	}
}

// MaxRoomsFor returns the room budget for a difficulty: more rooms at
// higher difficulty, never above the profile ceiling.
func (p Profile) MaxRoomsFor(difficulty int) int {
	if difficulty < 1 {
		difficulty = 1
	}
	n := 6 + difficulty*2
	if n > p.MaxRooms {
		n = p.MaxRooms
	}
	return n
}

// Validate checks the profile once at startup. A profile whose viewport
// is not inscribed in the visibility disc, or whose caps make generation
// impossible, is rejected with an error rather than discovered as a
// runtime hang.
func (p Profile) Validate() error {
	if p.MapWidth <= 0 || p.MapHeight <= 0 {
		return fmt.Errorf("profile %s: map dimensions must be positive, got %dx%d",
			p.Name, p.MapWidth, p.MapHeight)
	}

	if err := p.Viewport().Validate(); err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}

	if p.ViewportWidth > p.MapWidth || p.ViewportHeight > p.MapHeight {
		return fmt.Errorf("profile %s: viewport %dx%d exceeds map %dx%d",
			p.Name, p.ViewportWidth, p.ViewportHeight, p.MapWidth, p.MapHeight)
	}

	if p.MinRoomSize < 3 {
		return fmt.Errorf("profile %s: minimum room size %d leaves no interior", p.Name, p.MinRoomSize)
	}
	if p.MaxRoomSize < p.MinRoomSize {
		return fmt.Errorf("profile %s: max room size %d below min %d",
			p.Name, p.MaxRoomSize, p.MinRoomSize)
	}
	if p.MaxRoomSize+3 > p.MapWidth || p.MaxRoomSize+3 > p.MapHeight {
		return fmt.Errorf("profile %s: max room size %d does not fit a %dx%d map",
			p.Name, p.MaxRoomSize, p.MapWidth, p.MapHeight)
	}

	if p.MaxRooms < 1 || p.RoomAttempts < 1 {
		return fmt.Errorf("profile %s: room caps must be at least 1", p.Name)
	}
	if p.PlacementAttempts < 1 {
		return fmt.Errorf("profile %s: placement attempts must be at least 1", p.Name)
	}
	if p.MaxEnemiesPerRoom < 0 {
		return fmt.Errorf("profile %s: max enemies per room cannot be negative", p.Name)
	}

	return nil
}
