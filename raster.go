package nuchart

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ChartImage renders the chart as a raster image with the same layout and
// palette as WriteChart. Intended as a quick preview; labels use a fixed
// bitmap face, so small cell sizes drop them rather than overflowing.
func ChartImage(t *Table, o *ChartOptions) (image.Image, error) {
	if o == nil {
		o = DefaultChartOptions()
	}
	visible, g, err := chartLayout(t, o)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, int(g.width)+1, int(g.height)+1))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	labelFits := o.CellSize >= float64(face.Advance*4)

	for _, n := range visible {
		x, y := g.cellOrigin(n.Z, n.N)
		r := image.Rect(int(x), int(y), int(x+g.cell), int(y+g.cell))

		if fill := decayFill(n.Mode); fill != "" {
			draw.Draw(img, r, &image.Uniform{parseHexColor(fill)}, image.Point{}, draw.Src)
			strokeRect(img, r, parseHexColor(colorCellStroke), false)
		} else {
			strokeRect(img, r, parseHexColor(colorCellStroke), true)
		}

		if o.ShowNames && labelFits {
			label := n.Element + strconv.Itoa(n.A)
			ink := color.RGBA{A: 255}
			if n.Mode == DecayStable {
				ink = parseHexColor(colorTextBright)
			}
			drawCenteredString(img, face, r, label, ink)
		}
	}
	return img, nil
}

// strokeRect draws a one-pixel rectangle outline; dashed alternates two
// pixels on, two off, matching the SVG boundary style.
func strokeRect(img *image.RGBA, r image.Rectangle, c color.RGBA, dashed bool) {
	on := func(i int) bool { return !dashed || i%4 < 2 }
	for i, x := 0, r.Min.X; x < r.Max.X; i, x = i+1, x+1 {
		if on(i) {
			img.SetRGBA(x, r.Min.Y, c)
			img.SetRGBA(x, r.Max.Y-1, c)
		}
	}
	for i, y := 0, r.Min.Y; y < r.Max.Y; i, y = i+1, y+1 {
		if on(i) {
			img.SetRGBA(r.Min.X, y, c)
			img.SetRGBA(r.Max.X-1, y, c)
		}
	}
}

func drawCenteredString(img *image.RGBA, face font.Face, r image.Rectangle, s string, ink color.RGBA) {
	width := font.MeasureString(face, s)
	metrics := face.Metrics()
	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{ink},
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(r.Min.X+r.Dx()/2) - width/2,
			Y: fixed.I(r.Min.Y+r.Dy()/2) + metrics.Ascent/2,
		},
	}
	d.DrawString(s)
}
