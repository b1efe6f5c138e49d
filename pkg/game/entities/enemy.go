// Package entities provides the enemy and item types that populate a level.
package entities

import (
	"math/rand"
)

// EnemyKind identifies an enemy roster entry
type EnemyKind int

// Enemy kinds, roughly ordered by the depth they start appearing at
const (
	EnemyGoblin EnemyKind = iota
	EnemySkeleton
	EnemySlime
	EnemyOrc
	EnemyGhost
	EnemyDrake
	EnemyTroll
	EnemyGolem
	EnemyDarkMage
)

// String returns the display name of the enemy kind
func (k EnemyKind) String() string {
	switch k {
	case EnemyGoblin:
		return "Goblin"
	case EnemySkeleton:
		return "Skeleton"
	case EnemySlime:
		return "Slime"
	case EnemyOrc:
		return "Orc"
	case EnemyGhost:
		return "Ghost"
	case EnemyDrake:
		return "Drake"
	case EnemyTroll:
		return "Troll"
	case EnemyGolem:
		return "Golem"
	case EnemyDarkMage:
		return "Dark Mage"
	default:
		return "Unknown"
	}
}

// minDepth is the first dungeon depth each kind can appear at
func (k EnemyKind) minDepth() int {
	switch k {
	case EnemyGoblin, EnemySkeleton, EnemySlime:
		return 1
	case EnemyOrc, EnemyGhost:
		return 2
	case EnemyDrake, EnemyTroll:
		return 4
	case EnemyGolem:
		return 6
	case EnemyDarkMage:
		return 8
	default:
		return 1
	}
}

// baseStats returns health, attack and defense at depth 1
func (k EnemyKind) baseStats() (health, attack, defense int) {
	switch k {
	case EnemyGoblin:
		return 12, 3, 1
	case EnemySkeleton:
		return 14, 4, 2
	case EnemySlime:
		return 18, 2, 0
	case EnemyOrc:
		return 22, 5, 2
	case EnemyGhost:
		return 16, 6, 3
	case EnemyDrake:
		return 30, 8, 4
	case EnemyTroll:
		return 40, 7, 3
	case EnemyGolem:
		return 55, 9, 6
	case EnemyDarkMage:
		return 35, 12, 4
	default:
		return 10, 2, 0
	}
}

// Enemy is one placed enemy with its combat stats. Combat resolution is
// a collaborator concern; the level core only owns placement and stats.
type Enemy struct {
	Kind      EnemyKind `json:"kind"`
	Name      string    `json:"name"`
	Health    int       `json:"health"`
	MaxHealth int       `json:"maxHealth"`
	Attack    int       `json:"attack"`
	Defense   int       `json:"defense"`
	ExpReward int       `json:"expReward"`
}

// GenerateEnemy rolls an enemy appropriate for the given depth and
// difficulty, scaling stats with both
func GenerateEnemy(depth, difficulty int, rng *rand.Rand) *Enemy {
	if depth < 1 {
		depth = 1
	}
	if difficulty < 1 {
		difficulty = 1
	}

	// Collect the kinds eligible at this depth.
	var pool []EnemyKind
	for k := EnemyGoblin; k <= EnemyDarkMage; k++ {
		if k.minDepth() <= depth {
			pool = append(pool, k)
		}
	}

	kind := pool[rng.Intn(len(pool))]
	health, attack, defense := kind.baseStats()

	scale := depth + difficulty - 2
	health += scale * 4
	attack += scale
	defense += scale / 2

	return &Enemy{
		Kind:      kind,
		Name:      kind.String(),
		Health:    health,
		MaxHealth: health,
		Attack:    attack,
		Defense:   defense,
		ExpReward: 20 + scale*10,
	}
}

// TakeDamage applies an incoming hit after defense and returns the
// damage actually taken. A hit always deals at least 1.
func (e *Enemy) TakeDamage(amount int) int {
	taken := amount - e.Defense
	if taken < 1 {
		taken = 1
	}
	e.Health -= taken
	return taken
}

// IsAlive returns true while the enemy has health left
func (e *Enemy) IsAlive() bool {
	return e.Health > 0
}

// GoldReward rolls the gold dropped on defeat
func (e *Enemy) GoldReward(rng *rand.Rand) int {
	return e.ExpReward/4 + rng.Intn(e.ExpReward/2+1)
}
