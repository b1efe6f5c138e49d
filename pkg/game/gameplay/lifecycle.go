package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"gloomdelve/pkg/game/config"
	"gloomdelve/pkg/game/depths"
	"gloomdelve/pkg/game/generator"
	"gloomdelve/pkg/game/levelgen"
	"gloomdelve/pkg/game/state"
)

// BuildGame creates a session and generates the first level. The
// profile is validated before any tiles are carved, and the first
// visibility sweep always runs so no frame ever renders from an
// unswept map.
func BuildGame(profile config.Profile, difficulty int, seed int64) (*state.Game, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	g := state.NewGame(profile, difficulty, seed)

	lvl := generateLevel(g, 1)
	g.Levels = append(g.Levels, lvl)
	refreshVisibility(g, lvl)

	logMessage(g, "%s", gotext.Get("You descend into Gloomdelve. Find the exit."))
	logMessage(g, "%s", depths.StratumFor(1).ArrivalText())
	return g, nil
}

// generateLevel carves and populates the dungeon for one depth
func generateLevel(g *state.Game, depth int) *state.Level {
	gen := generator.NewRoomsGenerator(g.Profile)
	final := depth == g.TotalDepths()

	d, _ := gen.Generate(depth, g.Difficulty, final, g.Rng())
	lvl := state.NewLevel(depth, d)
	levelgen.Populate(lvl, g.Profile, g.Difficulty, g.Rng())
	return lvl
}

// Descend moves the session one depth down, generating the level on
// first visit. A revisited level keeps its layout, entities and the
// explored map; the player resumes at the position they left from.
func Descend(g *state.Game) {
	g.Depth++

	firstVisit := g.Depth > len(g.Levels)
	if firstVisit {
		lvl := generateLevel(g, g.Depth)
		g.Levels = append(g.Levels, lvl)
	}

	lvl := g.CurrentLevel()
	refreshVisibility(g, lvl)

	stratum := depths.StratumFor(g.Depth)
	logMessage(g, "You descend to depth ACTION{%d}: %s", g.Depth, stratum.Name())
	if firstVisit {
		logMessage(g, "%s", stratum.ArrivalText())
	}
}

// Ascend moves the session one depth up. The shallower level always
// exists; the player resumes at the stairs they left from.
func Ascend(g *state.Game) {
	if g.Depth <= 1 {
		return
	}
	g.Depth--

	lvl := g.CurrentLevel()
	refreshVisibility(g, lvl)
	logMessage(g, "You climb back to depth ACTION{%d}.", g.Depth)
}
