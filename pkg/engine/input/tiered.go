package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Combat
	ActionAttack
	ActionFlee

	// Items
	ActionInteract
	ActionUsePotion

	// Meta / UI
	ActionInventory
	ActionHelp
	ActionSave
	ActionQuit
	ActionZoomIn
	ActionZoomOut
)

// Intent is the 4th-layer, high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "KeyW", "arrow_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after deduplication.
// For this turn-based game each RawInput arrives already debounced by
// the underlying libraries (Ebiten, terminal raw mode), but the
// distinct type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, Vim, WASD)
	"arrow_up":    ActionMoveNorth,
	"k":           ActionMoveNorth,
	"w":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"j":           ActionMoveSouth,
	"s":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"h":           ActionMoveWest,
	"a":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"l":           ActionMoveEast,
	"d":           ActionMoveEast,

	// Combat
	"1": ActionAttack,
	" ": ActionAttack,
	"f": ActionFlee,

	// Items
	"e":     ActionInteract,
	"g":     ActionInteract,
	"enter": ActionInteract,
	"p":     ActionUsePotion,
	"2":     ActionUsePotion,

	// Meta
	"i":      ActionInventory,
	"?":      ActionHelp,
	"S":      ActionSave,
	"q":      ActionQuit,
	"escape": ActionQuit,

	// Zoom (GUI only)
	"=": ActionZoomIn,
	"+": ActionZoomIn,
	"-": ActionZoomOut,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to
// a debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionAttack:
		return "Attack"
	case ActionFlee:
		return "Flee"
	case ActionInteract:
		return "Interact"
	case ActionUsePotion:
		return "Use Potion"
	case ActionInventory:
		return "Inventory"
	case ActionHelp:
		return "Help"
	case ActionSave:
		return "Save"
	case ActionQuit:
		return "Quit"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
