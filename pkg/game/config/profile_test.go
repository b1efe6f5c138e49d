package config

import (
	"testing"

	"gloomdelve/pkg/engine/world"
)

func TestPresetsValidate(t *testing.T) {
	for _, p := range []Profile{Desktop(), Compact()} {
		if err := p.Validate(); err != nil {
			t.Errorf("preset %s failed validation: %v", p.Name, err)
		}
	}
}

func TestValidate_RejectsViewportVisibilityMismatch(t *testing.T) {
	// The documented incident: a 40x25 window with a radius-5 disc
	// (~78 tiles) leaves most rendered tiles with stale visibility.
	p := Desktop()
	p.ViewportWidth = 40
	p.ViewportHeight = 25
	p.VisibilityRadius = 5
	if err := p.Validate(); err == nil {
		t.Error("Validate() accepted a viewport larger than the visibility disc")
	}

	// Fixing the radius to the derived minimum makes it acceptable.
	p.VisibilityRadius = world.MinInscribingRadius(40, 25)
	p.MapWidth, p.MapHeight = 80, 45
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() rejected the derived minimum radius: %v", err)
	}
}

func TestValidate_RejectsBrokenCaps(t *testing.T) {
	p := Desktop()
	p.MinRoomSize = 2
	if err := p.Validate(); err == nil {
		t.Error("Validate() accepted a room size with no interior")
	}

	p = Desktop()
	p.MaxRoomSize = 60
	p.MapHeight = 30
	if err := p.Validate(); err == nil {
		t.Error("Validate() accepted rooms larger than the map")
	}

	p = Desktop()
	p.RoomAttempts = 0
	if err := p.Validate(); err == nil {
		t.Error("Validate() accepted zero room attempts")
	}
}

func TestMaxRoomsFor(t *testing.T) {
	p := Desktop()
	if got := p.MaxRoomsFor(1); got != 8 {
		t.Errorf("MaxRoomsFor(1) = %d, want 8", got)
	}
	if got := p.MaxRoomsFor(0); got != 8 {
		t.Errorf("MaxRoomsFor(0) = %d, want 8 (difficulty floors at 1)", got)
	}
	// The ceiling binds at high difficulty.
	if got := p.MaxRoomsFor(100); got != p.MaxRooms {
		t.Errorf("MaxRoomsFor(100) = %d, want ceiling %d", got, p.MaxRooms)
	}
}

func TestByName(t *testing.T) {
	if _, err := ByName("desktop"); err != nil {
		t.Errorf("ByName(desktop): %v", err)
	}
	if _, err := ByName("spaceship"); err == nil {
		t.Error("ByName(spaceship) should fail")
	}
}
