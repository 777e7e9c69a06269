package life

import "life-ca/internal/core"

// Pattern names an initial grid layout.
type Pattern string

const (
	// PatternCheckerboard makes (x, y) alive iff x+y is odd.
	PatternCheckerboard Pattern = "checkerboard"
	PatternEmpty        Pattern = "empty"
	// PatternRandom fills cells from the seeded RNG.
	PatternRandom Pattern = "random"
)

// Patterns lists the accepted pattern names.
func Patterns() []Pattern {
	return []Pattern{PatternCheckerboard, PatternEmpty, PatternRandom}
}

// ParsePattern resolves a pattern name.
func ParsePattern(name string) (Pattern, bool) {
	for _, p := range Patterns() {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

// Fill writes the pattern into g. The seed only affects PatternRandom.
func (p Pattern) Fill(g *core.Grid, seed int64) {
	switch p {
	case PatternEmpty:
		g.Clear()
	case PatternRandom:
		core.NewRNG(seed).FillStates(g.Cells())
	default:
		cells := g.Cells()
		for y := 0; y < g.H; y++ {
			for x := 0; x < g.W; x++ {
				state := core.Empty
				if (x+y)%2 == 1 {
					state = core.Alive
				}
				cells[y*g.W+x] = uint8(state)
			}
		}
	}
}
