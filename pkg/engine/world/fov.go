package world

import "errors"

// Visibility holds the per-level visibility arrays that mirror the
// per-tile flags. Visible is rebuilt on every pass; Revealed only ever
// gains tiles for the lifetime of a level.
type Visibility struct {
	Visible  [][]bool `json:"visible"`
	Revealed [][]bool `json:"revealed"`
}

// CheckShape verifies both arrays cover exactly a width×height map.
// A mismatched shape would otherwise surface as an index panic on the
// first visibility pass.
func (v *Visibility) CheckShape(width, height int) error {
	if len(v.Visible) != height || len(v.Revealed) != height {
		return errors.New("visibility rows do not match map height")
	}
	for y := 0; y < height; y++ {
		if len(v.Visible[y]) != width || len(v.Revealed[y]) != width {
			return errors.New("visibility row does not match map width")
		}
	}
	return nil
}

// NewVisibility creates visibility arrays for a width×height map
func NewVisibility(width, height int) *Visibility {
	visible := make([][]bool, height)
	revealed := make([][]bool, height)
	for y := 0; y < height; y++ {
		visible[y] = make([]bool, width)
		revealed[y] = make([]bool, width)
	}
	return &Visibility{Visible: visible, Revealed: revealed}
}

// UpdateVisibility recomputes which tiles are visible from center within
// a Euclidean radius, mutating the per-tile flags and the level arrays.
//
// The pass is two unconditional full sweeps: first every tile's Visible
// flag is cleared, then every tile within the radius disc is marked
// visible and explored. Both sweeps always run to completion; a pass
// that returns early mid-sweep leaves tiles in an inconsistent state
// that renderers then draw. Any computation budget is enforced ahead of
// time by capping radius and map size in configuration, never by
// cutting a pass short.
func UpdateVisibility(d *Dungeon, vis *Visibility, center Position, radius int) {
	d.ForEachTile(func(x, y int, tile *Tile) {
		tile.Visible = false
		vis.Visible[y][x] = false
	})

	rr := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > rr {
				continue
			}

			x := center.X + dx
			y := center.Y + dy
			tile := d.TileAt(x, y)
			if tile == nil {
				continue
			}

			tile.Visible = true
			tile.Explored = true
			vis.Visible[y][x] = true
			vis.Revealed[y][x] = true
		}
	}
}
