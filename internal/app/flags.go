package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Width    int
	Height   int
	CellSize float64
	Pattern  string
	Seed     int64
	Counter  string

	TPS          int
	Rate         int
	WindowWidth  int
	WindowHeight int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:          "life",
		Width:        100,
		Height:       100,
		CellSize:     32,
		Pattern:      "checkerboard",
		Seed:         42,
		Counter:      "direct",
		TPS:          60,
		Rate:         30,
		WindowWidth:  800,
		WindowHeight: 800,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.CellSize, "cell", c.CellSize, "cell size in world units")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: checkerboard, empty or random")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.StringVar(&c.Counter, "counter", c.Counter, "neighbor counter: direct or fft")
	fs.IntVar(&c.TPS, "tps", c.TPS, "input/render ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second while running")
	fs.IntVar(&c.WindowWidth, "width", c.WindowWidth, "window width in pixels")
	fs.IntVar(&c.WindowHeight, "height", c.WindowHeight, "window height in pixels")
}

// SimOptions returns the sim factory configuration map.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":         strconv.Itoa(c.Width),
		"h":         strconv.Itoa(c.Height),
		"cell_size": strconv.FormatFloat(c.CellSize, 'f', -1, 64),
		"pattern":   c.Pattern,
		"seed":      strconv.FormatInt(c.Seed, 10),
		"counter":   c.Counter,
	}
}
