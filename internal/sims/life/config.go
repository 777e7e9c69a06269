package life

import "strconv"

// Config controls the Life grid and its initial contents.
type Config struct {
	Width    int
	Height   int
	CellSize float64

	Pattern Pattern
	Seed    int64
	Counter string
}

// DefaultConfig returns the standard 100x100 checkerboard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    100,
		Height:   100,
		CellSize: 32,
		Pattern:  PatternCheckerboard,
		Seed:     42,
		Counter:  CounterDirect,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		if p, ok := ParsePattern(v); ok {
			c.Pattern = p
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["counter"]; ok {
		switch v {
		case CounterDirect, CounterFFT:
			c.Counter = v
		}
	}
	return c
}
