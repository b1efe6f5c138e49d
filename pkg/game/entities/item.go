package entities

import (
	"fmt"
	"math/rand"
)

// ItemKind identifies an item category
type ItemKind int

// Item kinds
const (
	ItemPotion ItemKind = iota
	ItemWeapon
	ItemArmor
	ItemGold
)

// String returns the display name of the item kind
func (k ItemKind) String() string {
	switch k {
	case ItemPotion:
		return "Potion"
	case ItemWeapon:
		return "Weapon"
	case ItemArmor:
		return "Armor"
	case ItemGold:
		return "Gold"
	default:
		return "Unknown"
	}
}

// Item is a collectible item placed on the floor or inside a chest.
// Power is the single stat collaborators care about: healing for
// potions, attack bonus for weapons, defense bonus for armor, amount
// for gold.
type Item struct {
	Kind  ItemKind `json:"kind"`
	Name  string   `json:"name"`
	Power int      `json:"power"`
}

var weaponNames = []string{"Dagger", "Short Sword", "Mace", "War Axe", "Longsword"}
var armorNames = []string{"Leather Vest", "Chain Shirt", "Scale Mail", "Breastplate"}

// GenerateItem rolls a random loose item for the given depth
func GenerateItem(depth int, rng *rand.Rand) *Item {
	if depth < 1 {
		depth = 1
	}

	switch rng.Intn(4) {
	case 0:
		return &Item{Kind: ItemPotion, Name: "Healing Potion", Power: 10 + depth*5}
	case 1:
		name := weaponNames[rng.Intn(len(weaponNames))]
		return &Item{Kind: ItemWeapon, Name: name, Power: 1 + depth + rng.Intn(3)}
	case 2:
		name := armorNames[rng.Intn(len(armorNames))]
		return &Item{Kind: ItemArmor, Name: name, Power: 1 + depth/2 + rng.Intn(2)}
	default:
		amount := 5 + rng.Intn(10*depth)
		return &Item{Kind: ItemGold, Name: fmt.Sprintf("%d Gold", amount), Power: amount}
	}
}

// GenerateChestItem rolls a chest item: always equipment or a strong
// potion, never loose gold, so chests feel worth opening
func GenerateChestItem(depth int, rng *rand.Rand) *Item {
	if depth < 1 {
		depth = 1
	}

	switch rng.Intn(3) {
	case 0:
		return &Item{Kind: ItemPotion, Name: "Greater Healing Potion", Power: 25 + depth*5}
	case 1:
		name := weaponNames[rng.Intn(len(weaponNames))]
		return &Item{Kind: ItemWeapon, Name: fmt.Sprintf("Fine %s", name), Power: 3 + depth + rng.Intn(3)}
	default:
		name := armorNames[rng.Intn(len(armorNames))]
		return &Item{Kind: ItemArmor, Name: fmt.Sprintf("Fine %s", name), Power: 2 + depth/2 + rng.Intn(3)}
	}
}
