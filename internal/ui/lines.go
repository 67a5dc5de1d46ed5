package ui

import (
	"fmt"
	"strconv"

	"conway-stamps/pkg/core"
)

// Lines flattens a parameter snapshot into the text rows shown on the HUD.
// A non-empty status is appended as the last row.
func Lines(snap core.ParameterSnapshot, status string) []string {
	var lines []string
	for i, group := range snap.Groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, formatValue(p)))
		}
	}
	if status != "" {
		lines = append(lines, "", status)
	}
	return lines
}

func formatValue(p core.Parameter) string {
	if p.Type != core.ParamTypeBool {
		return p.Value
	}
	if on, err := strconv.ParseBool(p.Value); err == nil && on {
		return "yes"
	}
	return "no"
}
