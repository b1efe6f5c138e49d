package menu

import (
	"github.com/leonelquinteros/gotext"
)

// Setup holds the choices collected before a session starts.
type Setup struct {
	ProfileName string
	Difficulty  int
}

// ChooseSetup walks the player through the main menu. The second
// return value is false when the player quits instead of starting.
func ChooseSetup() (Setup, bool) {
	for {
		choice := Run(gotext.Get("Gloomdelve"), []Option{
			{Label: gotext.Get("Descend (desktop)"), Help: gotext.Get("Full-size dungeons for a roomy terminal")},
			{Label: gotext.Get("Descend (compact)"), Help: gotext.Get("Smaller dungeons for cramped windows")},
			{Label: gotext.Get("Quit"), Help: ""},
		})

		var profile string
		switch choice {
		case 0:
			profile = "desktop"
		case 1:
			profile = "compact"
		default:
			return Setup{}, false
		}

		difficulty, ok := chooseDifficulty()
		if !ok {
			continue
		}

		return Setup{ProfileName: profile, Difficulty: difficulty}, true
	}
}

func chooseDifficulty() (int, bool) {
	choice := Run(gotext.Get("How deep does your nerve go?"), []Option{
		{Label: gotext.Get("Wary"), Help: gotext.Get("Sparse foes, gentle start")},
		{Label: gotext.Get("Steady"), Help: gotext.Get("The intended descent")},
		{Label: gotext.Get("Reckless"), Help: gotext.Get("Crowded halls from the first stratum")},
	})

	switch choice {
	case 0:
		return 1, true
	case 1:
		return 3, true
	case 2:
		return 6, true
	}
	return 0, false
}
