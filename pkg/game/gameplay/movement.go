// Package gameplay provides core game logic for player movement,
// combat and interactions.
package gameplay

import (
	"gloomdelve/pkg/engine/world"
	"gloomdelve/pkg/game/entities"
	"gloomdelve/pkg/game/renderer"
	"gloomdelve/pkg/game/state"
)

// MoveOutcome reports what a movement attempt did to the session
type MoveOutcome int

// Movement outcomes
const (
	MoveBlocked MoveOutcome = iota
	MoveStepped
	MoveCombat
	MoveDescended
	MoveAscended
	MoveEscaped
)

// String returns the string representation of an outcome
func (o MoveOutcome) String() string {
	switch o {
	case MoveBlocked:
		return "Blocked"
	case MoveStepped:
		return "Stepped"
	case MoveCombat:
		return "Combat"
	case MoveDescended:
		return "Descended"
	case MoveAscended:
		return "Ascended"
	case MoveEscaped:
		return "Escaped"
	default:
		return "Unknown"
	}
}

// MovePlayer attempts to step the player by (dx, dy) on the current
// level. Bumping an enemy starts combat without moving; the visibility
// sweep runs only after the position actually changed, so a blocked or
// combat turn leaves the previous frame's tiles untouched.
func MovePlayer(g *state.Game, dx, dy int) MoveOutcome {
	lvl := g.CurrentLevel()
	if lvl == nil || g.Phase != state.PhaseReady {
		return MoveBlocked
	}

	target := lvl.PlayerPos.Add(dx, dy)
	if !lvl.Map.IsWalkable(target) {
		return MoveBlocked
	}

	if enemy := lvl.EnemyAt(target); enemy != nil {
		g.Phase = state.PhaseCombat
		g.CombatPos = &target
		logMessage(g, "A ENEMY{%s} blocks your way!", enemy.Name)
		return MoveCombat
	}

	switch lvl.Map.KindAt(target.X, target.Y) {
	case world.TileStairsDown:
		lvl.PlayerPos = target
		Descend(g)
		return MoveDescended
	case world.TileStairsUp:
		if lvl.Depth == 1 {
			logMessage(g, "The way back to the surface is sealed.")
			return MoveBlocked
		}
		lvl.PlayerPos = target
		Ascend(g)
		return MoveAscended
	case world.TileExit:
		lvl.PlayerPos = target
		refreshVisibility(g, lvl)
		g.Phase = state.PhaseVictory
		logMessage(g, "You step into the light. You have escaped Gloomdelve!")
		return MoveEscaped
	case world.TileChest:
		lvl.PlayerPos = target
		lootChest(g, lvl, target)
	default:
		lvl.PlayerPos = target
		if item := lvl.ItemAt(target); item != nil {
			pickUp(g, lvl, target)
		}
	}

	refreshVisibility(g, lvl)
	wanderEnemies(g, lvl)
	return MoveStepped
}

// refreshVisibility recomputes the fog of war around the player
func refreshVisibility(g *state.Game, lvl *state.Level) {
	world.UpdateVisibility(lvl.Map, lvl.Vis, lvl.PlayerPos, g.Profile.VisibilityRadius)
}

// wanderEnemies gives every enemy on the level a 50% chance to shuffle
// one tile in a random direction. Enemies never step onto each other,
// the player, a non-walkable tile, or a landmark tile.
func wanderEnemies(g *state.Game, lvl *state.Level) {
	rng := g.Rng()

	positions := make([]world.Position, 0, len(lvl.Enemies))
	for pos := range lvl.Enemies {
		positions = append(positions, pos)
	}

	for _, pos := range positions {
		if rng.Float64() >= 0.5 {
			continue
		}

		next := pos.Add(rng.Intn(3)-1, rng.Intn(3)-1)
		if next == pos || next == lvl.PlayerPos {
			continue
		}
		if !lvl.Map.IsWalkable(next) {
			continue
		}
		if !plainFloor(lvl.Map.KindAt(next.X, next.Y)) {
			continue
		}
		if lvl.Occupied(next) {
			continue
		}

		enemy := lvl.Enemies[pos]
		delete(lvl.Enemies, pos)
		lvl.Enemies[next] = enemy
	}
}

// plainFloor reports whether a tile kind is open ground for a wandering
// enemy. Chests, stairs and the exit stay clear so the player never has
// to fight to reach one.
func plainFloor(kind world.TileKind) bool {
	switch kind {
	case world.TileChest, world.TileStairsUp, world.TileStairsDown, world.TileExit:
		return false
	}
	return true
}

// lootChest opens the chest the player just stepped onto. The chest
// tile becomes floor whether or not the loot fit in the inventory; a
// rejected item is left on the floor tile instead.
func lootChest(g *state.Game, lvl *state.Level, pos world.Position) {
	item := lvl.ItemAt(pos)

	lvl.Map.SetKind(pos.X, pos.Y, world.TileFloor)

	if item == nil {
		logMessage(g, "The chest is empty.")
		return
	}

	if !g.AddItem(item) {
		logMessage(g, "The chest holds a ITEM{%s}, but your pack is full.", item.Name)
		return
	}
	lvl.RemoveItemAt(pos)
	announceLoot(g, item)
}

// pickUp grabs the loose item under the player
func pickUp(g *state.Game, lvl *state.Level, pos world.Position) {
	item := lvl.ItemAt(pos)
	if item == nil {
		return
	}
	if !g.AddItem(item) {
		logMessage(g, "Your pack is too full for the ITEM{%s}.", item.Name)
		return
	}
	lvl.RemoveItemAt(pos)
	announceLoot(g, item)
}

// announceLoot logs the pickup and auto-equips upgrades
func announceLoot(g *state.Game, item *entities.Item) {
	if item.Kind == entities.ItemGold {
		logMessage(g, "You pocket GOLD{%s}.", item.Name)
		return
	}
	if g.Player.EquipIfBetter(item) {
		logMessage(g, "You equip the ITEM{%s}.", item.Name)
		return
	}
	logMessage(g, "You pick up a ITEM{%s}.", item.Name)
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(renderer.FormatString(msg, a...))
}
