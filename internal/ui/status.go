package ui

import (
	"strings"

	"life-ca/internal/core"
)

// StatusLine formats the run mode plus generation and population, when the
// snapshot carries them.
func StatusLine(mode core.RunMode, snap core.ParameterSnapshot) string {
	parts := []string{mode.String()}
	if p, ok := snap.Lookup("generation"); ok {
		parts = append(parts, "gen "+p.Value)
	}
	if p, ok := snap.Lookup("population"); ok {
		parts = append(parts, "pop "+p.Value)
	}
	return strings.Join(parts, "  ")
}
