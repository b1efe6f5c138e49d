// Package state holds the session state for a Gloomdelve run.
package state

import (
	"math/rand"

	"gloomdelve/pkg/engine/world"
	"gloomdelve/pkg/game/config"
	"gloomdelve/pkg/game/entities"
)

// Phase is the session's coarse state machine. Level lifecycle
// transitions (generate, validate move, recompute visibility) all happen
// inside PhaseReady turns; the other phases gate input handling.
type Phase int

// Session phases
const (
	PhaseReady Phase = iota
	PhaseCombat
	PhaseGameOver
	PhaseVictory
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhaseCombat:
		return "Combat"
	case PhaseGameOver:
		return "GameOver"
	case PhaseVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// InventoryCap is the number of item slots the player carries.
// Equipment management is a collaborator concern; the cap exists so
// chest and pickup flows can report a full inventory.
const InventoryCap = 10

// Game represents one dungeon run: the tuning profile, every level
// visited so far, the player's carried items and the message backlog.
// All randomness flows through the session rng so runs are reproducible
// from the seed with no hidden process-wide state.
type Game struct {
	Profile    config.Profile
	Difficulty int
	Seed       int64

	Depth  int // current depth, 1-based
	Levels []*Level

	Player    *entities.Player
	Inventory []*entities.Item
	Gold      int

	Phase     Phase
	CombatPos *world.Position // set while PhaseCombat, nil otherwise

	Messages []string

	rng *rand.Rand
}

// NewGame creates a session with no levels generated yet
func NewGame(profile config.Profile, difficulty int, seed int64) *Game {
	if difficulty < 1 {
		difficulty = 1
	}
	return &Game{
		Profile:    profile,
		Difficulty: difficulty,
		Seed:       seed,
		Depth:      1,
		Player:     entities.NewPlayer("Adventurer"),
		Phase:      PhaseReady,
		Messages:   make([]string, 0),
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Rng returns the session's random source
func (g *Game) Rng() *rand.Rand {
	return g.rng
}

// CurrentLevel returns the level for the current depth, or nil if it
// has not been generated yet
func (g *Game) CurrentLevel() *Level {
	if g.Depth < 1 || g.Depth > len(g.Levels) {
		return nil
	}
	return g.Levels[g.Depth-1]
}

// TotalDepths returns how many levels this run has; the last one gets
// an exit instead of stairs down
func (g *Game) TotalDepths() int {
	n := 3 + g.Difficulty/5
	if n > 8 {
		n = 8
	}
	return n
}

// AddMessage adds a message to the session's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// AddItem places an item in the player's inventory. Gold never takes a
// slot. Returns false when the inventory is full.
func (g *Game) AddItem(item *entities.Item) bool {
	if item.Kind == entities.ItemGold {
		g.Gold += item.Power
		return true
	}
	if len(g.Inventory) >= InventoryCap {
		return false
	}
	g.Inventory = append(g.Inventory, item)
	return true
}
