package life

import "life-ca/internal/core"

func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.grid.W),
				core.IntParam("h", "Height", l.grid.H),
				core.FloatParam("cell_size", "Cell size", l.mapper.CellSize),
				core.StringParam("pattern", "Pattern", string(l.cfg.Pattern)),
				core.StringParam("counter", "Counter", l.cfg.Counter),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", l.generation),
				core.IntParam("population", "Population", l.Population()),
			},
		},
	}}
}
