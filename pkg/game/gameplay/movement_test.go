package gameplay

import (
	"testing"

	"gloomdelve/pkg/engine/world"
	"gloomdelve/pkg/game/config"
	"gloomdelve/pkg/game/entities"
	"gloomdelve/pkg/game/state"
)

// carvedGame builds a session around a single hand-carved room so
// tests can place entities at known positions.
func carvedGame(seed int64) *state.Game {
	g := state.NewGame(config.Desktop(), 3, seed)

	d := world.NewDungeon(20, 12)
	d.CarveRoom(world.NewRect(1, 1, 17, 9))
	d.SetSpawn(world.Pos(8, 5))

	lvl := state.NewLevel(1, d)
	g.Levels = append(g.Levels, lvl)
	refreshVisibility(g, lvl)
	return g
}

func TestMovePlayer_WallBlocks(t *testing.T) {
	g := carvedGame(1)
	lvl := g.CurrentLevel()
	lvl.PlayerPos = world.Pos(2, 2)

	if got := MovePlayer(g, -1, 0); got != MoveBlocked {
		t.Fatalf("moving into a wall: got %v, want %v", got, MoveBlocked)
	}
	if lvl.PlayerPos != world.Pos(2, 2) {
		t.Errorf("blocked move changed position to %v", lvl.PlayerPos)
	}
}

func TestMovePlayer_StepRecomputesVisibility(t *testing.T) {
	g := carvedGame(1)
	lvl := g.CurrentLevel()

	target := lvl.PlayerPos.Add(1, 0)
	if got := MovePlayer(g, 1, 0); got != MoveStepped {
		t.Fatalf("open floor step: got %v, want %v", got, MoveStepped)
	}
	if lvl.PlayerPos != target {
		t.Fatalf("player at %v, want %v", lvl.PlayerPos, target)
	}
	if !lvl.Vis.Visible[target.Y][target.X] {
		t.Error("tile under the player is not visible after a step")
	}
}

func TestMovePlayer_EnemyBumpStartsCombatWithoutMoving(t *testing.T) {
	g := carvedGame(1)
	lvl := g.CurrentLevel()

	start := lvl.PlayerPos
	target := start.Add(1, 0)
	lvl.Enemies[target] = entities.GenerateEnemy(1, 1, g.Rng())

	// A combat turn must not run a visibility sweep; poison the flag
	// under the player and check it survives the bump.
	lvl.Vis.Visible[start.Y][start.X] = false

	if got := MovePlayer(g, 1, 0); got != MoveCombat {
		t.Fatalf("bumping an enemy: got %v, want %v", got, MoveCombat)
	}
	if lvl.PlayerPos != start {
		t.Errorf("bump moved the player to %v", lvl.PlayerPos)
	}
	if g.Phase != state.PhaseCombat {
		t.Errorf("phase is %v, want %v", g.Phase, state.PhaseCombat)
	}
	if g.CombatPos == nil || *g.CombatPos != target {
		t.Errorf("combat position is %v, want %v", g.CombatPos, target)
	}
	if lvl.Vis.Visible[start.Y][start.X] {
		t.Error("bump recomputed visibility")
	}
}

func TestMovePlayer_IgnoredOutsideReadyPhase(t *testing.T) {
	g := carvedGame(1)
	g.Phase = state.PhaseCombat

	start := g.CurrentLevel().PlayerPos
	if got := MovePlayer(g, 1, 0); got != MoveBlocked {
		t.Fatalf("move during combat: got %v, want %v", got, MoveBlocked)
	}
	if g.CurrentLevel().PlayerPos != start {
		t.Error("move during combat changed the player position")
	}
}

func TestMovePlayer_ChestAutoLoots(t *testing.T) {
	g := carvedGame(1)
	lvl := g.CurrentLevel()

	target := lvl.PlayerPos.Add(1, 0)
	lvl.Map.SetKind(target.X, target.Y, world.TileChest)
	lvl.Items[target] = &entities.Item{Kind: entities.ItemWeapon, Name: "Mace", Power: 7}

	if got := MovePlayer(g, 1, 0); got != MoveStepped {
		t.Fatalf("stepping onto a chest: got %v, want %v", got, MoveStepped)
	}
	if kind := lvl.Map.KindAt(target.X, target.Y); kind != world.TileFloor {
		t.Errorf("opened chest tile is %v, want %v", kind, world.TileFloor)
	}
	if g.Player.WeaponPower != 7 {
		t.Errorf("weapon power %d, want 7 after auto-equip", g.Player.WeaponPower)
	}
	if lvl.ItemAt(target) != nil {
		t.Error("looted item still on the floor")
	}
}

func TestMovePlayer_ChestWithFullPackLeavesItem(t *testing.T) {
	g := carvedGame(1)
	lvl := g.CurrentLevel()

	for i := 0; i < state.InventoryCap; i++ {
		g.Inventory = append(g.Inventory, &entities.Item{Kind: entities.ItemPotion, Name: "Healing Potion", Power: 10})
	}

	target := lvl.PlayerPos.Add(1, 0)
	lvl.Map.SetKind(target.X, target.Y, world.TileChest)
	lvl.Items[target] = &entities.Item{Kind: entities.ItemPotion, Name: "Greater Healing Potion", Power: 30}

	MovePlayer(g, 1, 0)

	if kind := lvl.Map.KindAt(target.X, target.Y); kind != world.TileFloor {
		t.Errorf("chest tile is %v, want %v even with a full pack", kind, world.TileFloor)
	}
	if lvl.ItemAt(target) == nil {
		t.Error("rejected loot should stay on the floor tile")
	}
	if len(g.Inventory) != state.InventoryCap {
		t.Errorf("inventory grew past the cap: %d items", len(g.Inventory))
	}
}

func TestMovePlayer_StairsDownDescends(t *testing.T) {
	g := carvedGame(7)
	lvl := g.CurrentLevel()

	target := lvl.PlayerPos.Add(1, 0)
	lvl.Map.SetKind(target.X, target.Y, world.TileStairsDown)

	if got := MovePlayer(g, 1, 0); got != MoveDescended {
		t.Fatalf("stepping onto stairs down: got %v, want %v", got, MoveDescended)
	}
	if g.Depth != 2 {
		t.Fatalf("depth %d, want 2", g.Depth)
	}
	if len(g.Levels) != 2 {
		t.Fatalf("have %d levels, want 2", len(g.Levels))
	}
	if lvl.PlayerPos != target {
		t.Errorf("departure level marks the player at %v, want the stairs at %v", lvl.PlayerPos, target)
	}
}

func TestMovePlayer_StairsUpSealedAtDepthOne(t *testing.T) {
	g := carvedGame(1)
	lvl := g.CurrentLevel()

	start := lvl.PlayerPos
	target := start.Add(1, 0)
	lvl.Map.SetKind(target.X, target.Y, world.TileStairsUp)

	if got := MovePlayer(g, 1, 0); got != MoveBlocked {
		t.Fatalf("stairs up at depth 1: got %v, want %v", got, MoveBlocked)
	}
	if lvl.PlayerPos != start {
		t.Errorf("sealed stairs moved the player to %v", lvl.PlayerPos)
	}
}

func TestMovePlayer_ExitWins(t *testing.T) {
	g := carvedGame(1)
	lvl := g.CurrentLevel()

	target := lvl.PlayerPos.Add(1, 0)
	lvl.Map.SetKind(target.X, target.Y, world.TileExit)

	if got := MovePlayer(g, 1, 0); got != MoveEscaped {
		t.Fatalf("stepping onto the exit: got %v, want %v", got, MoveEscaped)
	}
	if g.Phase != state.PhaseVictory {
		t.Errorf("phase is %v, want %v", g.Phase, state.PhaseVictory)
	}
	if !lvl.Vis.Visible[target.Y][target.X] {
		t.Error("final frame should be swept before victory")
	}
}

func TestWanderEnemies_StaysLegal(t *testing.T) {
	g := carvedGame(99)
	lvl := g.CurrentLevel()

	// Landmarks ringing the enemy at (4,4) must stay enemy-free.
	lvl.Map.SetKind(4, 3, world.TileStairsDown)
	lvl.Map.SetKind(3, 4, world.TileStairsUp)
	lvl.Map.SetKind(5, 4, world.TileExit)
	lvl.Map.SetKind(4, 5, world.TileChest)

	lvl.Enemies[world.Pos(4, 4)] = entities.GenerateEnemy(1, 1, g.Rng())
	lvl.Enemies[world.Pos(12, 3)] = entities.GenerateEnemy(1, 1, g.Rng())
	lvl.Enemies[world.Pos(15, 8)] = entities.GenerateEnemy(1, 1, g.Rng())

	for turn := 0; turn < 50; turn++ {
		wanderEnemies(g, lvl)

		if len(lvl.Enemies) != 3 {
			t.Fatalf("turn %d: enemy count changed to %d", turn, len(lvl.Enemies))
		}
		for pos := range lvl.Enemies {
			if !lvl.Map.IsWalkable(pos) {
				t.Fatalf("turn %d: enemy wandered onto non-walkable %v", turn, pos)
			}
			if pos == lvl.PlayerPos {
				t.Fatalf("turn %d: enemy wandered onto the player", turn)
			}
			switch lvl.Map.KindAt(pos.X, pos.Y) {
			case world.TileStairsUp, world.TileStairsDown, world.TileExit, world.TileChest:
				t.Fatalf("turn %d: enemy wandered onto a landmark at %v", turn, pos)
			}
		}
	}
}
