package save

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gloomdelve/pkg/game/config"
	"gloomdelve/pkg/game/entities"
	"gloomdelve/pkg/game/gameplay"
	"gloomdelve/pkg/game/state"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	g, err := gameplay.BuildGame(config.Compact(), 4, 99)
	if err != nil {
		t.Fatal(err)
	}

	g.Gold = 77
	g.Player.Experience = 45
	g.Inventory = append(g.Inventory, &entities.Item{Kind: entities.ItemPotion, Name: "Healing Potion", Power: 10})
	gameplay.Descend(g)

	path := filepath.Join(t.TempDir(), "run.json")
	if err := Write(g, path); err != nil {
		t.Fatal(err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}

	if got.Depth != g.Depth {
		t.Errorf("depth %d, want %d", got.Depth, g.Depth)
	}
	if got.Gold != 77 {
		t.Errorf("gold %d, want 77", got.Gold)
	}
	if got.Player.Experience != 45 {
		t.Errorf("experience %d, want 45", got.Player.Experience)
	}
	if len(got.Inventory) != 1 || got.Inventory[0].Name != "Healing Potion" {
		t.Errorf("inventory %v, want the saved potion", got.Inventory)
	}
	if got.Difficulty != g.Difficulty || got.Seed != g.Seed {
		t.Error("difficulty or seed lost in the round trip")
	}
	if got.Phase != state.PhaseReady {
		t.Errorf("restored phase %v, want %v", got.Phase, state.PhaseReady)
	}

	if len(got.Levels) != len(g.Levels) {
		t.Fatalf("restored %d levels, want %d", len(got.Levels), len(g.Levels))
	}
	for i, lvl := range g.Levels {
		restored := got.Levels[i]
		if restored.PlayerPos != lvl.PlayerPos {
			t.Errorf("level %d: position %v, want %v", i+1, restored.PlayerPos, lvl.PlayerPos)
		}
		if restored.Map.Width() != lvl.Map.Width() || restored.Map.Height() != lvl.Map.Height() {
			t.Errorf("level %d: map dimensions changed", i+1)
		}
		if len(restored.Enemies) != len(lvl.Enemies) {
			t.Errorf("level %d: %d enemies, want %d", i+1, len(restored.Enemies), len(lvl.Enemies))
		}
		if len(restored.Items) != len(lvl.Items) {
			t.Errorf("level %d: %d items, want %d", i+1, len(restored.Items), len(lvl.Items))
		}

		for y := 0; y < lvl.Map.Height(); y++ {
			for x := 0; x < lvl.Map.Width(); x++ {
				if restored.Map.KindAt(x, y) != lvl.Map.KindAt(x, y) {
					t.Fatalf("level %d: tile (%d, %d) changed kind", i+1, x, y)
				}
				if restored.Vis.Revealed[y][x] != lvl.Vis.Revealed[y][x] {
					t.Fatalf("level %d: revealed flag at (%d, %d) changed", i+1, x, y)
				}
			}
		}
	}
}

func TestRead_RejectsWrongVersion(t *testing.T) {
	g, err := gameplay.BuildGame(config.Compact(), 1, 5)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "run.json")
	if err := Write(g, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	data = bytes.Replace(data, []byte(`"version": 1`), []byte(`"version": 99`), 1)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Read(path); err == nil {
		t.Error("a future format version should be rejected")
	}
}

func TestRead_RejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	if err := os.WriteFile(path, []byte("not a save"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Read(path); err == nil {
		t.Error("garbage input should be rejected")
	}
}

func TestRead_RejectsDepthOutsideLevels(t *testing.T) {
	g, err := gameplay.BuildGame(config.Compact(), 1, 5)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "run.json")
	if err := Write(g, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	data = bytes.Replace(data, []byte(`"depth": 1`), []byte(`"depth": 4`), 1)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Read(path); err == nil {
		t.Error("a depth past the stored levels should be rejected")
	}
}

func TestRead_RejectsMismatchedVisibility(t *testing.T) {
	g, err := gameplay.BuildGame(config.Compact(), 1, 5)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "run.json")
	if err := Write(g, path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var in fileFormat
	if err := json.Unmarshal(data, &in); err != nil {
		t.Fatal(err)
	}
	in.Levels[0].Vis.Visible = [][]bool{{false}}
	in.Levels[0].Vis.Revealed = [][]bool{{false}}
	data, err = json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Read(path); err == nil {
		t.Error("visibility arrays smaller than the map should be rejected")
	}
}

func TestRead_MissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("a missing file should be an error")
	}
}
