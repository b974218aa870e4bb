package nuchart

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVG namespace constants.
const (
	svgNamespace = "http://www.w3.org/2000/svg"
	svgVersion   = "1.1"
	svgDoctype   = `<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">` + "\n"
)

// The chart is built on four ordered layers so later elements paint over
// earlier ones: cells, decay overlays, magic-number rules, text.
type svgDocument struct {
	width  float64
	height float64

	cells    *svgLayer
	overlays *svgLayer
	rules    *svgLayer
	labels   *svgLayer
}

func newSVGDocument(width, height float64) *svgDocument {
	return &svgDocument{
		width:    width,
		height:   height,
		cells:    &svgLayer{ID: "cells"},
		overlays: &svgLayer{ID: "overlays"},
		rules:    &svgLayer{ID: "rules"},
		labels:   &svgLayer{ID: "labels"},
	}
}

type svgLayer struct {
	ID       string       `xml:"id,attr"`
	Fill     string       `xml:"fill,attr"`
	Rects    []svgRect    `xml:"rect"`
	Polygons []svgPolygon `xml:"polygon"`
	Lines    []svgLine    `xml:"line"`
	Texts    []svgText    `xml:"text"`
}

func (l *svgLayer) addRect(r svgRect)       { l.Rects = append(l.Rects, r) }
func (l *svgLayer) addPolygon(p svgPolygon) { l.Polygons = append(l.Polygons, p) }
func (l *svgLayer) addLine(n svgLine)       { l.Lines = append(l.Lines, n) }
func (l *svgLayer) addText(t svgText)       { l.Texts = append(l.Texts, t) }

type svgRect struct {
	ID     string `xml:"id,attr,omitempty"`
	Style  string `xml:"style,attr"`
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
}

type svgPolygon struct {
	ID     string `xml:"id,attr,omitempty"`
	Style  string `xml:"style,attr"`
	Points string `xml:"points,attr"`
}

type svgLine struct {
	ID    string `xml:"id,attr,omitempty"`
	Style string `xml:"style,attr"`
	X1    string `xml:"x1,attr"`
	Y1    string `xml:"y1,attr"`
	X2    string `xml:"x2,attr"`
	Y2    string `xml:"y2,attr"`
}

type svgText struct {
	Anchor  string `xml:"text-anchor,attr,omitempty"`
	Family  string `xml:"font-family,attr,omitempty"`
	Style   string `xml:"style,attr"`
	X       string `xml:"x,attr"`
	Y       string `xml:"y,attr"`
	Content string `xml:",chardata"`
}

type xmlSVGRoot struct {
	XMLName xml.Name    `xml:"svg"`
	Xmlns   string      `xml:"xmlns,attr"`
	Version string      `xml:"version,attr"`
	Width   string      `xml:"width,attr"`
	Height  string      `xml:"height,attr"`
	Layers  []*svgLayer `xml:"g"`
}

// writeSVG encodes the document with stable two-space indentation.
func writeSVG(w io.Writer, doc *svgDocument) error {
	root := xmlSVGRoot{
		Xmlns:   svgNamespace,
		Version: svgVersion,
		Width:   coord(doc.width),
		Height:  coord(doc.height),
		Layers:  []*svgLayer{doc.cells, doc.overlays, doc.rules, doc.labels},
	}
	for _, l := range root.Layers {
		l.Fill = "none"
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	if _, err := io.WriteString(w, svgDoctype); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encoding svg: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// coord formats a canvas coordinate or length with no trailing zeros.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func polygonPoints(xys ...float64) string {
	var b strings.Builder
	for i := 0; i < len(xys); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(coord(xys[i]))
		b.WriteByte(',')
		b.WriteString(coord(xys[i+1]))
	}
	return b.String()
}

// displayText converts the markup-safe half-life form back to plain text
// for the encoder, which escapes character data itself.
func displayText(s string) string {
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	return s
}
