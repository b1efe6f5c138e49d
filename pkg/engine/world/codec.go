package world

import (
	"encoding/json"
	"errors"
)

// dungeonJSON is the wire form of a Dungeon. The struct keeps its tile
// storage private, so persistence goes through this mirror.
type dungeonJSON struct {
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Tiles      [][]Tile  `json:"tiles"`
	Rooms      []Rect    `json:"rooms"`
	StairsUp   *Position `json:"stairsUp,omitempty"`
	StairsDown *Position `json:"stairsDown,omitempty"`
	Exit       *Position `json:"exit,omitempty"`
	Spawn      Position  `json:"spawn"`
}

// MarshalJSON encodes the dungeon including its tile grid
func (d *Dungeon) MarshalJSON() ([]byte, error) {
	return json.Marshal(dungeonJSON{
		Width:      d.width,
		Height:     d.height,
		Tiles:      d.tiles,
		Rooms:      d.rooms,
		StairsUp:   d.stairsUp,
		StairsDown: d.stairsDown,
		Exit:       d.exit,
		Spawn:      d.spawn,
	})
}

// UnmarshalJSON decodes a dungeon, rejecting grids whose tile storage
// does not match the declared dimensions
func (d *Dungeon) UnmarshalJSON(data []byte) error {
	var wire dungeonJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	if wire.Width <= 0 || wire.Height <= 0 {
		return errors.New("dungeon dimensions must be positive")
	}
	if len(wire.Tiles) != wire.Height {
		return errors.New("dungeon tile rows do not match height")
	}
	for _, row := range wire.Tiles {
		if len(row) != wire.Width {
			return errors.New("dungeon tile row does not match width")
		}
	}

	d.width = wire.Width
	d.height = wire.Height
	d.tiles = wire.Tiles
	d.rooms = wire.Rooms
	d.stairsUp = wire.StairsUp
	d.stairsDown = wire.StairsDown
	d.exit = wire.Exit
	d.spawn = wire.Spawn
	return nil
}
