package nuchart

// Chart geometry. Each nuclide occupies a CellSize square on a grid whose
// pitch is CellSize + CellGap; higher Z renders toward the top of the
// canvas (chemistry convention), so the vertical axis is inverted.

// grid maps (Z, N) to canvas coordinates for one rendering pass.
type grid struct {
	cell   float64 // side of one nuclide square
	gap    float64 // margin between squares
	minZ   int
	maxZ   int
	minN   int
	maxN   int
	width  float64
	height float64
}

func newGrid(o *ChartOptions, minZ, maxZ, minN, maxN int) grid {
	g := grid{
		cell: o.CellSize,
		gap:  o.CellGap,
		minZ: minZ,
		maxZ: maxZ,
		minN: minN,
		maxN: maxN,
	}
	g.width = float64(maxN-minN+2)*g.pitch() + g.gap
	g.height = float64(maxZ-minZ+2)*g.pitch() + g.gap
	return g
}

// pitch is the grid spacing: one cell plus its margin.
func (g grid) pitch() float64 { return g.cell + g.gap }

// cellOrigin returns the top-left corner of the square for (Z, N).
func (g grid) cellOrigin(z, n int) (x, y float64) {
	x = float64(n-g.minN+1)*g.pitch() + g.gap
	y = g.height - float64(z-g.minZ+2)*g.pitch()
	return x, y
}
