package ui

import "conway-stamps/pkg/core"

// PreviewMask marks cells on a size.W×size.H row-major mask, reusing mask when
// it has the right length. Cells outside the grid are ignored.
func PreviewMask(size core.Size, cells []core.Position, mask []bool) []bool {
	total := size.W * size.H
	if len(mask) != total {
		mask = make([]bool, total)
	} else {
		for i := range mask {
			mask[i] = false
		}
	}
	for _, p := range cells {
		if p.Row < 0 || p.Row >= size.H || p.Col < 0 || p.Col >= size.W {
			continue
		}
		mask[p.Row*size.W+p.Col] = true
	}
	return mask
}
