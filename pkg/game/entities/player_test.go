package entities

import "testing"

func TestPlayer_TakeDamageFloor(t *testing.T) {
	p := NewPlayer("Test")
	p.ArmorPower = 10

	if taken := p.TakeDamage(3); taken != 1 {
		t.Errorf("heavily armored hit dealt %d, want the floor of 1", taken)
	}
	if p.Health != p.MaxHealth-1 {
		t.Errorf("health %d, want %d", p.Health, p.MaxHealth-1)
	}
}

func TestPlayer_AttackDamageBareFists(t *testing.T) {
	p := NewPlayer("Test")

	// No weapon still counts as 1, never 0.
	if got := p.AttackDamage(); got != p.BaseAttack+1 {
		t.Errorf("bare-fisted damage %d, want %d", got, p.BaseAttack+1)
	}
}

func TestPlayer_GainExperienceThreshold(t *testing.T) {
	p := NewPlayer("Test")
	p.Health = 5

	if p.GainExperience(99) {
		t.Fatal("99 exp should not reach the level 1 threshold of 100")
	}
	if p.Level != 1 {
		t.Fatalf("level %d, want 1", p.Level)
	}

	if !p.GainExperience(1) {
		t.Fatal("crossing 100 exp should level up")
	}
	if p.Level != 2 {
		t.Errorf("level %d, want 2", p.Level)
	}
	if p.MaxHealth != 35 {
		t.Errorf("max health %d, want 35", p.MaxHealth)
	}
	if p.Health != p.MaxHealth {
		t.Errorf("level up should fully heal, have %d/%d", p.Health, p.MaxHealth)
	}
	if p.BaseDefense != 2 {
		t.Errorf("defense %d, want 2 at an even level", p.BaseDefense)
	}
}

func TestPlayer_HealCapsAtMax(t *testing.T) {
	p := NewPlayer("Test")
	p.Health = 25

	p.Heal(100)
	if p.Health != p.MaxHealth {
		t.Errorf("health %d, want %d", p.Health, p.MaxHealth)
	}
}

func TestPlayer_EquipIfBetter(t *testing.T) {
	p := NewPlayer("Test")

	if !p.EquipIfBetter(&Item{Kind: ItemWeapon, Name: "Dagger", Power: 2}) {
		t.Error("first weapon should always equip")
	}
	if p.EquipIfBetter(&Item{Kind: ItemWeapon, Name: "Dagger", Power: 2}) {
		t.Error("an equal weapon should not equip")
	}
	if !p.EquipIfBetter(&Item{Kind: ItemWeapon, Name: "Longsword", Power: 6}) {
		t.Error("a stronger weapon should equip")
	}
	if p.WeaponPower != 6 {
		t.Errorf("weapon power %d, want 6", p.WeaponPower)
	}

	if p.EquipIfBetter(&Item{Kind: ItemPotion, Name: "Healing Potion", Power: 10}) {
		t.Error("a potion is not equipment")
	}
}
