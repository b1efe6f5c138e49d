package state

import (
	"gloomdelve/pkg/engine/world"
	"gloomdelve/pkg/game/entities"
)

// Level owns one generated map, its entity tables, the player position
// and the two visibility arrays. It is created when a depth is first
// entered and kept so ascending restores it intact.
type Level struct {
	Depth     int                                `json:"depth"`
	Map       *world.Dungeon                     `json:"map"`
	Vis       *world.Visibility                  `json:"vis"`
	Enemies   map[world.Position]*entities.Enemy `json:"-"`
	Items     map[world.Position]*entities.Item  `json:"-"`
	PlayerPos world.Position                     `json:"playerPos"`
}

// NewLevel creates an empty level around a generated map
func NewLevel(depth int, m *world.Dungeon) *Level {
	return &Level{
		Depth:     depth,
		Map:       m,
		Vis:       world.NewVisibility(m.Width(), m.Height()),
		Enemies:   make(map[world.Position]*entities.Enemy),
		Items:     make(map[world.Position]*entities.Item),
		PlayerPos: m.Spawn(),
	}
}

// EnemyAt returns the enemy at p, or nil
func (l *Level) EnemyAt(p world.Position) *entities.Enemy {
	return l.Enemies[p]
}

// ItemAt returns the item at p, or nil
func (l *Level) ItemAt(p world.Position) *entities.Item {
	return l.Items[p]
}

// RemoveEnemyAt removes and returns the enemy at p, or nil
func (l *Level) RemoveEnemyAt(p world.Position) *entities.Enemy {
	e := l.Enemies[p]
	delete(l.Enemies, p)
	return e
}

// RemoveItemAt removes and returns the item at p, or nil
func (l *Level) RemoveItemAt(p world.Position) *entities.Item {
	it := l.Items[p]
	delete(l.Items, p)
	return it
}

// Occupied reports whether any entity or the player holds the tile at p
func (l *Level) Occupied(p world.Position) bool {
	if p == l.PlayerPos {
		return true
	}
	if _, ok := l.Enemies[p]; ok {
		return true
	}
	_, ok := l.Items[p]
	return ok
}
