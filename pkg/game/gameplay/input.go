package gameplay

import (
	engineinput "gloomdelve/pkg/engine/input"
	"gloomdelve/pkg/game/state"
)

// ProcessIntent applies one player intent to the session. Which
// intents are live depends on the phase: combat swallows movement,
// and a finished run ignores everything.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	switch g.Phase {
	case state.PhaseCombat:
		processCombatIntent(g, intent)
	case state.PhaseReady:
		processReadyIntent(g, intent)
	}
}

func processCombatIntent(g *state.Game, intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionAttack:
		ResolveCombatTurn(g, CombatAttack)
	case engineinput.ActionUsePotion:
		ResolveCombatTurn(g, CombatUsePotion)
	case engineinput.ActionFlee:
		ResolveCombatTurn(g, CombatFlee)
	case engineinput.ActionHelp:
		logMessage(g, "Fight: ACTION{1} attack, ACTION{2} potion, ACTION{f} flee.")
	}
}

func processReadyIntent(g *state.Game, intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionMoveNorth:
		MovePlayer(g, 0, -1)
	case engineinput.ActionMoveSouth:
		MovePlayer(g, 0, 1)
	case engineinput.ActionMoveWest:
		MovePlayer(g, -1, 0)
	case engineinput.ActionMoveEast:
		MovePlayer(g, 1, 0)
	case engineinput.ActionInteract:
		TryInteract(g)
	case engineinput.ActionUsePotion:
		if !UsePotion(g) {
			logMessage(g, "You have no potions left!")
		}
	case engineinput.ActionInventory:
		describePack(g)
	case engineinput.ActionHelp:
		logMessage(g, "Move with ACTION{arrows}, ACTION{e} take, ACTION{p} potion, ACTION{i} pack, ACTION{q} quit.")
	}
}

// describePack logs the carried items and equipped power
func describePack(g *state.Game) {
	if len(g.Inventory) == 0 {
		logMessage(g, "Your pack is empty.")
	} else {
		logMessage(g, "You carry ACTION{%d} of %d items.", len(g.Inventory), state.InventoryCap)
	}
	logMessage(g, "Weapon ACTION{%d}, armor ACTION{%d}, GOLD{%d gold}.",
		g.Player.WeaponPower, g.Player.ArmorPower, g.Gold)
}
