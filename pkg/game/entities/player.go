package entities

// Player holds the adventurer's stats for one run. Equipment
// contributes through WeaponPower and ArmorPower, which track the best
// weapon and armor picked up so far.
type Player struct {
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Experience int    `json:"experience"`
	Health     int    `json:"health"`
	MaxHealth  int    `json:"maxHealth"`

	BaseAttack  int `json:"baseAttack"`
	BaseDefense int `json:"baseDefense"`
	WeaponPower int `json:"weaponPower"`
	ArmorPower  int `json:"armorPower"`
}

// NewPlayer creates a level 1 adventurer with bare fists
func NewPlayer(name string) *Player {
	return &Player{
		Name:        name,
		Level:       1,
		Health:      30,
		MaxHealth:   30,
		BaseAttack:  5,
		BaseDefense: 1,
	}
}

// AttackDamage returns the damage the player deals per strike
func (p *Player) AttackDamage() int {
	weapon := p.WeaponPower
	if weapon < 1 {
		weapon = 1
	}
	return p.BaseAttack + weapon
}

// Defense returns the player's damage reduction
func (p *Player) Defense() int {
	return p.BaseDefense + p.ArmorPower
}

// TakeDamage applies an incoming hit after defense and returns the
// damage actually taken. A hit always deals at least 1.
func (p *Player) TakeDamage(amount int) int {
	taken := amount - p.Defense()
	if taken < 1 {
		taken = 1
	}
	p.Health -= taken
	return taken
}

// Heal restores health up to the maximum
func (p *Player) Heal(amount int) {
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// IsAlive returns true while the player has health left
func (p *Player) IsAlive() bool {
	return p.Health > 0
}

// GainExperience adds exp and returns true when it caused a level up.
// The threshold to the next level is the current level times 100.
func (p *Player) GainExperience(exp int) bool {
	p.Experience += exp
	if p.Experience < p.Level*100 {
		return false
	}
	p.levelUp()
	return true
}

func (p *Player) levelUp() {
	p.Level++
	p.MaxHealth += 5
	p.BaseAttack++
	if p.Level%2 == 0 {
		p.BaseDefense++
	}
	// Level ups restore the player to full health.
	p.Health = p.MaxHealth
}

// EquipIfBetter raises the matching equipment slot when the item
// outclasses what is worn. Returns true when the item was equipped.
func (p *Player) EquipIfBetter(item *Item) bool {
	switch item.Kind {
	case ItemWeapon:
		if item.Power > p.WeaponPower {
			p.WeaponPower = item.Power
			return true
		}
	case ItemArmor:
		if item.Power > p.ArmorPower {
			p.ArmorPower = item.Power
			return true
		}
	}
	return false
}
