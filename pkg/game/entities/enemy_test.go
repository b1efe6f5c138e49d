package entities

import (
	"math/rand"
	"testing"
)

func TestGenerateEnemy_RespectsDepthRoster(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		e := GenerateEnemy(1, 1, rng)
		if e.Kind.minDepth() > 1 {
			t.Fatalf("depth 1 rolled a %s, which starts at depth %d", e.Name, e.Kind.minDepth())
		}
	}
}

func TestGenerateEnemy_ScalesWithDepth(t *testing.T) {
	shallow := GenerateEnemy(1, 1, rand.New(rand.NewSource(3)))
	deep := GenerateEnemy(8, 1, rand.New(rand.NewSource(3)))

	if deep.MaxHealth <= shallow.MaxHealth {
		t.Errorf("depth 8 enemy has %d health, shallower one has %d", deep.MaxHealth, shallow.MaxHealth)
	}
	if deep.ExpReward <= shallow.ExpReward {
		t.Errorf("depth 8 reward %d not above depth 1 reward %d", deep.ExpReward, shallow.ExpReward)
	}
}

func TestEnemy_TakeDamageFloor(t *testing.T) {
	e := &Enemy{Kind: EnemyGolem, Name: "Golem", Health: 55, MaxHealth: 55, Defense: 6}

	if taken := e.TakeDamage(3); taken != 1 {
		t.Errorf("underpowered hit dealt %d, want the floor of 1", taken)
	}
	if e.Health != 54 {
		t.Errorf("health %d, want 54", e.Health)
	}
	if !e.IsAlive() {
		t.Error("enemy should survive a scratch")
	}

	e.TakeDamage(100)
	if e.IsAlive() {
		t.Error("enemy should be dead")
	}
}

func TestEnemy_GoldRewardBounds(t *testing.T) {
	e := &Enemy{Kind: EnemyOrc, Name: "Orc", ExpReward: 40}
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 50; i++ {
		gold := e.GoldReward(rng)
		if gold < 10 || gold > 30 {
			t.Fatalf("gold %d outside [10, 30]", gold)
		}
	}
}
