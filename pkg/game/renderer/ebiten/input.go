package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "gloomdelve/pkg/engine/input"
)

// keyCodes maps Ebiten keys to the raw input codes the binding layer
// understands. Codes ride through the same tiers as terminal input so
// both frontends share one set of bindings.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyK:          "k",
	ebiten.KeyJ:          "j",
	ebiten.KeyH:          "h",
	ebiten.KeyL:          "l",
	ebiten.KeyW:          "w",
	ebiten.KeyS:          "s",
	ebiten.KeyA:          "a",
	ebiten.KeyD:          "d",
	ebiten.KeyDigit1:     "1",
	ebiten.KeySpace:      " ",
	ebiten.KeyDigit2:     "2",
	ebiten.KeyF:          "f",
	ebiten.KeyE:          "e",
	ebiten.KeyG:          "g",
	ebiten.KeyP:          "p",
	ebiten.KeyI:          "i",
	ebiten.KeyQ:          "q",
	ebiten.KeyEscape:     "escape",
}

// pollIntent checks for a fresh keypress and maps it to an intent.
// zoom is -1/+1 when a zoom key fired; zoom keys bypass the binding
// layer because they belong to the window, not the game.
func (e *EbitenRenderer) pollIntent() (engineinput.Intent, int) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		return engineinput.Intent{}, 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		return engineinput.Intent{}, -1
	}

	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			raw := engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code}
			return engineinput.MapToIntent(engineinput.NewDebouncedInput(raw)), 0
		}
	}

	return engineinput.Intent{}, 0
}
