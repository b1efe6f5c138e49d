package gameplay

import (
	"gloomdelve/pkg/game/entities"
	"gloomdelve/pkg/game/state"
)

// CombatAction is one player decision during a combat turn
type CombatAction int

// Combat actions
const (
	CombatAttack CombatAction = iota
	CombatUsePotion
	CombatFlee
)

// fleeChance is the probability an escape attempt succeeds
const fleeChance = 0.4

// ResolveCombatTurn runs one exchange of the fight at g.CombatPos.
// Attacking lets the enemy counter if it survives; fleeing grants the
// enemy a free hit on failure. The phase returns to ready when the
// fight ends and becomes game over if the player falls.
func ResolveCombatTurn(g *state.Game, action CombatAction) {
	if g.Phase != state.PhaseCombat || g.CombatPos == nil {
		return
	}

	lvl := g.CurrentLevel()
	enemy := lvl.EnemyAt(*g.CombatPos)
	if enemy == nil {
		endCombat(g)
		return
	}

	switch action {
	case CombatAttack:
		dealt := enemy.TakeDamage(g.Player.AttackDamage())
		logMessage(g, "You hit the ENEMY{%s} for ACTION{%d} damage!", enemy.Name, dealt)

		if !enemy.IsAlive() {
			defeatEnemy(g, enemy)
			return
		}
		counterAttack(g, enemy, "The ENEMY{%s} hits you for ACTION{%d} damage!")

	case CombatUsePotion:
		if !UsePotion(g) {
			logMessage(g, "You have no potions left!")
			return
		}
		counterAttack(g, enemy, "The ENEMY{%s} hits you for ACTION{%d} damage!")

	case CombatFlee:
		if g.Rng().Float64() < fleeChance {
			logMessage(g, "You slip away from the ENEMY{%s}.", enemy.Name)
			endCombat(g)
			return
		}
		logMessage(g, "You fail to escape!")
		counterAttack(g, enemy, "The ENEMY{%s} strikes you as you turn, for ACTION{%d} damage!")
	}
}

// counterAttack lets the enemy strike back, ending the run if the
// player falls. format needs verbs for the enemy name and the damage.
func counterAttack(g *state.Game, enemy *entities.Enemy, format string) {
	taken := g.Player.TakeDamage(enemy.Attack)
	logMessage(g, format, enemy.Name, taken)

	if !g.Player.IsAlive() {
		g.Phase = state.PhaseGameOver
		g.CombatPos = nil
		logMessage(g, "You were slain by the ENEMY{%s}...", enemy.Name)
	}
}

// defeatEnemy awards loot and experience and ends the fight
func defeatEnemy(g *state.Game, enemy *entities.Enemy) {
	lvl := g.CurrentLevel()
	lvl.RemoveEnemyAt(*g.CombatPos)

	gold := enemy.GoldReward(g.Rng())
	g.Gold += gold
	logMessage(g, "You defeated the ENEMY{%s}! GOLD{%d gold}, ACTION{%d} exp.",
		enemy.Name, gold, enemy.ExpReward)

	if g.Player.GainExperience(enemy.ExpReward) {
		logMessage(g, "You reach level ACTION{%d}!", g.Player.Level)
	}

	endCombat(g)
}

// endCombat returns the session to the ready phase
func endCombat(g *state.Game) {
	g.Phase = state.PhaseReady
	g.CombatPos = nil
}

// UsePotion drinks the first potion in the inventory. Returns false
// when the player carries none.
func UsePotion(g *state.Game) bool {
	for i, item := range g.Inventory {
		if item.Kind != entities.ItemPotion {
			continue
		}
		g.Player.Heal(item.Power)
		g.Inventory = append(g.Inventory[:i], g.Inventory[i+1:]...)
		logMessage(g, "You drink the ITEM{%s} and recover ACTION{%d} health.", item.Name, item.Power)
		return true
	}
	return false
}
