package life

import (
	"strconv"

	"conway-stamps/pkg/core"
)

// Parameters reports the board's size and progress for HUD display.
func (g *Grid) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("cols", "Columns", g.cur.W),
				intParam("rows", "Rows", g.cur.H),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				intParam("generation", "Generation", g.generation),
				intParam("population", "Population", g.Population()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
