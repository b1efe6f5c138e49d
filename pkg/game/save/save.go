// Package save persists a run to disk and restores it.
package save

import (
	"encoding/json"
	"fmt"
	"os"

	"gloomdelve/pkg/engine/world"
	"gloomdelve/pkg/game/config"
	"gloomdelve/pkg/game/entities"
	"gloomdelve/pkg/game/state"
)

// FormatVersion guards against loading saves from incompatible builds
const FormatVersion = 1

// enemyRecord flattens a position-keyed enemy for JSON, which cannot
// key maps by struct
type enemyRecord struct {
	Pos   world.Position  `json:"pos"`
	Enemy *entities.Enemy `json:"enemy"`
}

type itemRecord struct {
	Pos  world.Position `json:"pos"`
	Item *entities.Item `json:"item"`
}

type levelRecord struct {
	Depth     int               `json:"depth"`
	Map       *world.Dungeon    `json:"map"`
	Vis       *world.Visibility `json:"vis"`
	PlayerPos world.Position    `json:"playerPos"`
	Enemies   []enemyRecord     `json:"enemies"`
	Items     []itemRecord      `json:"items"`
}

type fileFormat struct {
	Version    int               `json:"version"`
	Profile    config.Profile    `json:"profile"`
	Difficulty int               `json:"difficulty"`
	Seed       int64             `json:"seed"`
	Depth      int               `json:"depth"`
	Player     *entities.Player  `json:"player"`
	Inventory  []*entities.Item  `json:"inventory"`
	Gold       int               `json:"gold"`
	Levels     []levelRecord     `json:"levels"`
}

// Write serializes the session to path. A run saved mid-combat resumes
// out of combat; the fight restarts on the next bump.
func Write(g *state.Game, path string) error {
	out := fileFormat{
		Version:    FormatVersion,
		Profile:    g.Profile,
		Difficulty: g.Difficulty,
		Seed:       g.Seed,
		Depth:      g.Depth,
		Player:     g.Player,
		Inventory:  g.Inventory,
		Gold:       g.Gold,
	}

	for _, lvl := range g.Levels {
		rec := levelRecord{
			Depth:     lvl.Depth,
			Map:       lvl.Map,
			Vis:       lvl.Vis,
			PlayerPos: lvl.PlayerPos,
		}
		for pos, enemy := range lvl.Enemies {
			rec.Enemies = append(rec.Enemies, enemyRecord{Pos: pos, Enemy: enemy})
		}
		for pos, item := range lvl.Items {
			rec.Items = append(rec.Items, itemRecord{Pos: pos, Item: item})
		}
		out.Levels = append(out.Levels, rec)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding save: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing save: %w", err)
	}
	return nil
}

// Read restores a session from path. The random stream restarts from
// the stored seed, so a reloaded run stays reproducible but does not
// resume the exact roll sequence.
func Read(path string) (*state.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading save: %w", err)
	}

	var in fileFormat
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("decoding save: %w", err)
	}

	if in.Version != FormatVersion {
		return nil, fmt.Errorf("save format version %d, want %d", in.Version, FormatVersion)
	}
	if err := in.Profile.Validate(); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	if in.Player == nil {
		return nil, fmt.Errorf("save has no player")
	}
	if in.Depth < 1 || in.Depth > len(in.Levels) {
		return nil, fmt.Errorf("save depth %d outside its %d levels", in.Depth, len(in.Levels))
	}

	g := state.NewGame(in.Profile, in.Difficulty, in.Seed)
	g.Depth = in.Depth
	g.Player = in.Player
	g.Inventory = in.Inventory
	g.Gold = in.Gold

	for _, rec := range in.Levels {
		if rec.Map == nil {
			return nil, fmt.Errorf("save level %d has no map", rec.Depth)
		}

		lvl := state.NewLevel(rec.Depth, rec.Map)
		lvl.PlayerPos = rec.PlayerPos
		if rec.Vis != nil {
			if err := rec.Vis.CheckShape(rec.Map.Width(), rec.Map.Height()); err != nil {
				return nil, fmt.Errorf("save level %d: %w", rec.Depth, err)
			}
			lvl.Vis = rec.Vis
		}
		for _, e := range rec.Enemies {
			lvl.Enemies[e.Pos] = e.Enemy
		}
		for _, it := range rec.Items {
			lvl.Items[it.Pos] = it.Item
		}
		g.Levels = append(g.Levels, lvl)
	}

	return g, nil
}
