package nuchart

import (
	"fmt"
	"io"
	"strconv"
)

// MagicNumbers are the proton and neutron shell closures annotated on the
// chart when ChartOptions.ShowMagic is set.
var MagicNumbers = []int{2, 8, 20, 28, 50, 82, 126}

// ChartOptions configures chart rendering. The zero value is not useful;
// start from DefaultChartOptions. The defaults reproduce the historical
// chart geometry (30px cells on a 32px pitch).
type ChartOptions struct {
	// ShowNames draws the element+mass label in each cell.
	ShowNames bool
	// ShowHalfLives draws the half-life as a second text line for
	// unstable, classified nuclides.
	ShowHalfLives bool
	// ShowMagic draws double lines bracketing the magic proton and
	// neutron numbers.
	ShowMagic bool
	// ShowNumbers draws N and Z axis numbers next to the first occupied
	// cell of every even row and column.
	ShowNumbers bool

	// ZMin, ZMax, NMin, NMax clip the chart to a (Z, N) window. The
	// canvas is sized from the nuclides actually present inside it.
	ZMin, ZMax int
	NMin, NMax int

	// CellSize is the side of one nuclide square; CellGap the margin
	// between squares. Fonts and label offsets scale with CellSize.
	CellSize float64
	CellGap  float64
}

// DefaultChartOptions returns the historical chart configuration.
func DefaultChartOptions() *ChartOptions {
	return &ChartOptions{
		ShowNames:     true,
		ShowHalfLives: true,
		ZMin:          0,
		ZMax:          120,
		NMin:          0,
		NMax:          180,
		CellSize:      30,
		CellGap:       2,
	}
}

func (o *ChartOptions) validate() error {
	if o.ZMin > o.ZMax {
		return fmt.Errorf("invalid Z range [%d, %d]", o.ZMin, o.ZMax)
	}
	if o.NMin > o.NMax {
		return fmt.Errorf("invalid N range [%d, %d]", o.NMin, o.NMax)
	}
	if o.CellSize <= 0 || o.CellGap < 0 {
		return fmt.Errorf("invalid cell geometry: size %g, gap %g", o.CellSize, o.CellGap)
	}
	return nil
}

// scale relates the configured cell size to the historical 30px cell that
// the font sizes and label offsets were designed for.
func (o *ChartOptions) scale() float64 { return o.CellSize / 30.0 }

// Historical label metrics, in pixels at CellSize 30.
const (
	fontName     = 7.0  // element+mass label
	fontNameWide = 6.0  // parenthesized numeric placeholder
	fontHalfLife = 5.0  // half-life line
	fontAxis     = 10.5 // axis numbers
)

// WriteChart renders the populated table as an SVG chart of nuclides.
// Output is deterministic: the same table and options produce
// byte-identical documents.
func WriteChart(w io.Writer, t *Table, o *ChartOptions) error {
	if o == nil {
		o = DefaultChartOptions()
	}
	visible, g, err := chartLayout(t, o)
	if err != nil {
		return err
	}
	doc := newSVGDocument(g.width, g.height)

	// Magic-number spans and cell occupancy are tracked while drawing.
	nMagic := map[int][2]int{}
	zMagic := map[int][2]int{}
	occupied := map[cellKey]bool{}

	for _, n := range visible {
		occupied[cellKey{n.Z, n.N}] = true
		trackMagic(nMagic, n.N, n.Z)
		trackMagic(zMagic, n.Z, n.N)
		drawNuclide(doc, g, o, n)
	}

	if o.ShowMagic {
		drawMagicLines(doc, g, nMagic, zMagic)
	}
	if o.ShowNumbers {
		drawAxisNumbers(doc, g, o, occupied)
	}

	return writeSVG(w, doc)
}

// chartLayout collects the nuclides inside the configured window, in
// Z-then-N order, and sizes the grid to the extents they actually cover.
func chartLayout(t *Table, o *ChartOptions) ([]*Nuclide, grid, error) {
	if err := o.validate(); err != nil {
		return nil, grid{}, err
	}
	var visible []*Nuclide
	minZ, maxZ := o.ZMax, o.ZMin
	minN, maxN := o.NMax, o.NMin
	for _, n := range t.Nuclides() {
		if n.Z < o.ZMin || n.Z > o.ZMax || n.N < o.NMin || n.N > o.NMax {
			continue
		}
		visible = append(visible, n)
		if n.Z < minZ {
			minZ = n.Z
		}
		if n.Z > maxZ {
			maxZ = n.Z
		}
		if n.N < minN {
			minN = n.N
		}
		if n.N > maxN {
			maxN = n.N
		}
	}
	if len(visible) == 0 {
		return nil, grid{}, fmt.Errorf("no nuclides inside Z [%d, %d], N [%d, %d]", o.ZMin, o.ZMax, o.NMin, o.NMax)
	}
	return visible, newGrid(o, minZ, maxZ, minN, maxN), nil
}

// trackMagic widens the occupied span recorded for a magic row or column.
func trackMagic(spans map[int][2]int, along, across int) {
	magic := false
	for _, m := range MagicNumbers {
		if along == m {
			magic = true
			break
		}
	}
	if !magic {
		return
	}
	if s, ok := spans[along]; ok {
		if across < s[0] {
			s[0] = across
		}
		if across > s[1] {
			s[1] = across
		}
		spans[along] = s
	} else {
		spans[along] = [2]int{across, across}
	}
}

func drawNuclide(doc *svgDocument, g grid, o *ChartOptions, n *Nuclide) {
	x, y := g.cellOrigin(n.Z, n.N)
	s := o.scale()

	fill := decayFill(n.Mode)
	style := fmt.Sprintf("stroke:%s;stroke-width:0.5;fill:%s", colorCellStroke, fill)
	if fill == "" {
		// Neutron emitters, particle-unstable and unclassified entries
		// mark the chart boundary: outline only.
		style = fmt.Sprintf("stroke:%s;stroke-width:0.5;fill:none;stroke-dasharray:2,2", colorCellStroke)
	}
	doc.cells.addRect(svgRect{
		ID:     n.String(),
		X:      coord(x),
		Y:      coord(y),
		Width:  coord(g.cell),
		Height: coord(g.cell),
		Style:  style,
	})

	sec, ter := decayTriangles(n)
	if sec != nil {
		doc.overlays.addPolygon(trianglePolygon(g, x, y, n.String()+"-1", sec))
	}
	if ter != nil {
		doc.overlays.addPolygon(trianglePolygon(g, x, y, n.String()+"-2", ter))
	}

	if o.ShowNames {
		label := n.Element + strconv.Itoa(n.A)
		size, dx := fontName*s, 4.0*s
		style := fmt.Sprintf("font-size:%spx", coord(size))
		if n.Element[0] == '(' {
			// Numeric placeholder labels are digit-heavy and narrower
			// per character than letter symbols.
			size, dx = fontNameWide*s, 2.0*s
			style = fmt.Sprintf("font-size:%spx", coord(size))
		} else if n.Mode == DecayStable {
			style += ";fill:" + colorTextBright
		}
		doc.labels.addText(svgText{
			X:       coord(x + 12.0*s - dx*float64(len(label))),
			Y:       coord(y + 10.0*s),
			Style:   style,
			Content: label,
		})
	}

	if o.ShowHalfLives && n.Mode != DecayStable && n.Mode != DecayUnbound && n.Mode != DecayUnknown {
		text := displayText(n.HalfLife)
		style := fmt.Sprintf("font-size:%spx", coord(fontHalfLife*s))
		doc.labels.addText(svgText{
			X:       coord(x + 12.0*s - s*float64(len(text))),
			Y:       coord(y + 25.0*s),
			Style:   style,
			Content: text,
		})
	}
}

// triangle describes a secondary or tertiary decay overlay: a large
// triangle covers half the cell, a small one the near corner.
type triangle struct {
	color  string
	large  bool
	corner string // "lt", "rt" or "rb"
}

// decayTriangles selects the secondary and tertiary decay overlays from
// the branch list. A large triangle marks a secondary branching above 5%
// on an unstable nuclide; everything else, including branches with an
// unknown ratio, gets a small one. A tertiary overlay only appears next
// to a large secondary, or next to a small secondary on a stable cell.
func decayTriangles(n *Nuclide) (sec, ter *triangle) {
	if len(n.Branches) < 2 {
		return nil, nil
	}
	primary := decayFill(n.Mode)

	for _, b := range n.Branches[1:] {
		if IsClusterEmission(b.Mode) {
			sec = &triangle{color: colorCluster, corner: "rt"}
			break
		}
		c := branchFill(b.Mode)
		if c == "" {
			continue
		}
		sec = &triangle{color: c}
		if v, ok := b.Percent(); ok && v > 5.0 && n.Mode != DecayStable {
			sec.large = true
		}
		sec.corner = triangleCorner(c, primary, "")
		break
	}
	if sec == nil {
		return nil, nil
	}

	if len(n.Branches) > 2 && (sec.large || n.Mode == DecayStable) {
		for _, b := range n.Branches[2:] {
			if IsClusterEmission(b.Mode) {
				ter = &triangle{color: colorCluster, corner: "rt"}
				break
			}
			c := branchFill(b.Mode)
			if c == "" {
				continue
			}
			ter = &triangle{color: c, corner: triangleCorner(c, primary, sec.color)}
			break
		}
	}
	return sec, ter
}

// triangleCorner picks the cell corner for an overlay. Alpha overlays sit
// upper-left; beta-plus does too unless an alpha or proton overlay would
// collide there; the default is lower-right.
func triangleCorner(color, primary, secondary string) string {
	switch {
	case color == colorAlpha:
		return "lt"
	case color == colorBetaPlus && primary != colorAlpha && primary != colorProton && secondary != colorAlpha:
		return "lt"
	}
	return "rb"
}

func trianglePolygon(g grid, x, y float64, id string, tr *triangle) svgPolygon {
	const inset = 0.25
	c := g.cell
	var points string
	if tr.large {
		switch tr.corner {
		case "lt":
			points = polygonPoints(x+inset, y+c-inset, x+inset, y+inset, x+c-inset, y+inset)
		default: // rb
			points = polygonPoints(x+inset, y+c-inset, x+c-inset, y+inset, x+c-inset, y+c-inset)
		}
	} else {
		switch tr.corner {
		case "lt":
			points = polygonPoints(x+inset, y+c/3, x+inset, y+inset, x+c/3, y+inset)
		case "rt":
			points = polygonPoints(x+2*c/3, y+inset, x+c-inset, y+inset, x+c-inset, y+c/3)
		default: // rb
			points = polygonPoints(x+2*c/3, y+c-inset, x+c-inset, y+c-inset, x+c-inset, y+2*c/3)
		}
	}
	return svgPolygon{
		ID:     id,
		Points: points,
		Style:  fmt.Sprintf("stroke:%s;stroke-width:0;stroke-linejoin:bevel;fill:%s", colorCellStroke, tr.color),
	}
}

// drawMagicLines brackets every magic proton row and neutron column with
// a pair of lines spanning its occupied extent.
func drawMagicLines(doc *svgDocument, g grid, nMagic, zMagic map[int][2]int) {
	lineStyle := fmt.Sprintf("stroke:%s;stroke-width:1", colorCellStroke)
	for _, m := range MagicNumbers {
		if span, ok := nMagic[m]; ok {
			x := float64(m-g.minN+1)*g.pitch() + g.gap/2
			y1 := g.height - float64(span[1]-g.minZ+2)*g.pitch() - g.gap/2
			y2 := g.height - float64(span[0]-g.minZ+1)*g.pitch() - g.gap/2
			doc.rules.addLine(svgLine{
				ID: fmt.Sprintf("magic-n%d-a", m), Style: lineStyle,
				X1: coord(x), Y1: coord(y1), X2: coord(x), Y2: coord(y2),
			})
			doc.rules.addLine(svgLine{
				ID: fmt.Sprintf("magic-n%d-b", m), Style: lineStyle,
				X1: coord(x + g.pitch()), Y1: coord(y1), X2: coord(x + g.pitch()), Y2: coord(y2),
			})
		}
		if span, ok := zMagic[m]; ok {
			x1 := float64(span[0]-g.minN+1)*g.pitch() + g.gap/2
			x2 := float64(span[1]-g.minN+2)*g.pitch() + g.gap/2
			y := g.height - float64(m-g.minZ+2)*g.pitch() - g.gap/2
			doc.rules.addLine(svgLine{
				ID: fmt.Sprintf("magic-z%d-a", m), Style: lineStyle,
				X1: coord(x1), Y1: coord(y), X2: coord(x2), Y2: coord(y),
			})
			doc.rules.addLine(svgLine{
				ID: fmt.Sprintf("magic-z%d-b", m), Style: lineStyle,
				X1: coord(x1), Y1: coord(y + g.pitch()), X2: coord(x2), Y2: coord(y + g.pitch()),
			})
		}
	}
}

// drawAxisNumbers labels every even N column and Z row next to its first
// occupied cell, so the numbers hug the charted region.
func drawAxisNumbers(doc *svgDocument, g grid, o *ChartOptions, occupied map[cellKey]bool) {
	s := o.scale()
	size := fontAxis * s

	for n := g.minN + 1; n <= g.maxN; n++ {
		if n%2 != 0 {
			continue
		}
		zFirst, ok := firstOccupied(occupied, g.minZ, g.maxZ, func(z int) cellKey { return cellKey{z, n} })
		if !ok {
			continue
		}
		x := float64(n-g.minN+1)*g.pitch() + g.gap + g.cell/2
		y := g.height - float64(zFirst-g.minZ+1)*g.pitch() + g.gap + 1.25*size
		doc.labels.addText(axisNumber(x, y, size, n))
	}

	for z := g.minZ + 1; z <= g.maxZ; z++ {
		if z%2 != 0 {
			continue
		}
		nFirst, ok := firstOccupied(occupied, g.minN, g.maxN, func(n int) cellKey { return cellKey{z, n} })
		if !ok {
			continue
		}
		x := float64(nFirst-g.minN)*g.pitch() + g.cell/2 + 3*g.gap
		y := g.height - float64(z-g.minZ+2)*g.pitch() + g.cell/2 + 2*g.gap
		doc.labels.addText(axisNumber(x, y, size, z))
	}
}

func firstOccupied(occupied map[cellKey]bool, lo, hi int, key func(int) cellKey) (int, bool) {
	for i := lo; i <= hi; i++ {
		if occupied[key(i)] {
			return i, true
		}
	}
	return 0, false
}

func axisNumber(x, y, size float64, value int) svgText {
	return svgText{
		Anchor:  "middle",
		Family:  "sans",
		Style:   fmt.Sprintf("font-size:%spx;fill:%s", coord(size), colorCellStroke),
		X:       coord(x),
		Y:       coord(y),
		Content: strconv.Itoa(value),
	}
}
