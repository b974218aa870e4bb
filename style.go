package nuchart

import (
	"image/color"
	"strings"
)

// Karlsruhe-style decay-mode palette. Neutron emission, particle-unstable
// and unclassified nuclides are drawn as unfilled dashed outlines instead
// of a solid fill, marking the boundary of the known chart.
const (
	colorStable    = "#000000"
	colorBetaMinus = "#62aeff"
	colorBetaPlus  = "#ff7e75"
	colorAlpha     = "#fffe49"
	colorFission   = "#5cbc57"
	colorProton    = "#ffa425"
	colorCluster   = "#a564cc"

	colorCellStroke = "#000000"
	colorTextBright = "#ffffff"
)

// decayFill returns the fill color for a primary decay mode, or "" for
// the dashed-outline modes.
func decayFill(m DecayMode) string {
	switch m {
	case DecayStable:
		return colorStable
	case DecayBetaMinus:
		return colorBetaMinus
	case DecayBetaPlus:
		return colorBetaPlus
	case DecayAlpha:
		return colorAlpha
	case DecayFission:
		return colorFission
	case DecayProton, DecayTwoProton:
		// Single and two-proton emission share one color.
		return colorProton
	}
	return ""
}

// branchFill returns the fill color for a secondary or tertiary branch
// token, or "" when the token has no chart color.
func branchFill(mode string) string {
	switch stripSpaces(mode) {
	case isotopicallyStable:
		return colorStable
	case "B-":
		return colorBetaMinus
	case "B+", "EC":
		return colorBetaPlus
	case "A":
		return colorAlpha
	case "SF":
		return colorFission
	case "p", "2p":
		return colorProton
	}
	if IsClusterEmission(mode) {
		return colorCluster
	}
	return ""
}

// parseHexColor converts "#rrggbb" to an opaque RGBA value. Falls back to
// black on malformed input.
func parseHexColor(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{
		R: hexByte(s[0:2]),
		G: hexByte(s[2:4]),
		B: hexByte(s[4:6]),
		A: 255,
	}
}

func hexByte(s string) uint8 {
	var v uint8
	for i := 0; i < len(s); i++ {
		c := s[i]
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= c - '0'
		case c >= 'a' && c <= 'f':
			v |= c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v |= c - 'A' + 10
		}
	}
	return v
}
