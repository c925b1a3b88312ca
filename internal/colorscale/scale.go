// Package colorscale maps temperatures onto a diverging red-yellow-blue
// palette. The domain is given reversed, (warmest, coolest), so warm values
// land on the red end and cool values on the blue end, with a neutral
// midpoint between them.
package colorscale

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// NoData is the sentinel color for cells without records. Absent values are
// never interpolated.
const NoData = lipgloss.Color("#3b4252")

// rdYlBu holds the ColorBrewer 11-class RdYlBu anchors, warm to cool.
var rdYlBu = []string{
	"#a50026", "#d73027", "#f46d43", "#fdae61", "#fee090", "#ffffbf",
	"#e0f3f8", "#abd9e9", "#74add1", "#4575b4", "#313695",
}

// Diverging interpolates across the RdYlBu ramp over a fixed temperature
// domain. The zero value is not usable; construct with NewDiverging.
type Diverging struct {
	warmest float64
	coolest float64
	anchors []colorful.Color
}

// NewDiverging builds a scale over the reversed domain [warmest, coolest].
// Bounds are fixed for the scale's lifetime.
func NewDiverging(warmest, coolest float64) Diverging {
	anchors := make([]colorful.Color, len(rdYlBu))
	for i, hex := range rdYlBu {
		// Anchors are compile-time constants; Hex only fails on bad syntax.
		c, _ := colorful.Hex(hex)
		anchors[i] = c
	}
	return Diverging{warmest: warmest, coolest: coolest, anchors: anchors}
}

// ColorFor maps a temperature to a terminal color. Values outside the domain
// clamp to the nearest endpoint.
func (s Diverging) ColorFor(temperature float64) lipgloss.Color {
	u := s.position(temperature)

	segments := len(s.anchors) - 1
	pos := u * float64(segments)
	i := int(pos)
	if i >= segments {
		i = segments - 1
	}
	frac := pos - float64(i)

	c := s.anchors[i].BlendLuv(s.anchors[i+1], frac).Clamped()
	return lipgloss.Color(c.Hex())
}

// Stops samples n evenly spaced colors across the domain, warm end first.
// Used for the legend.
func (s Diverging) Stops(n int) []lipgloss.Color {
	if n < 2 {
		n = 2
	}
	stops := make([]lipgloss.Color, n)
	for i := range stops {
		t := s.warmest + (s.coolest-s.warmest)*float64(i)/float64(n-1)
		stops[i] = s.ColorFor(t)
	}
	return stops
}

// Domain returns the scale's (warmest, coolest) endpoints.
func (s Diverging) Domain() (warmest, coolest float64) {
	return s.warmest, s.coolest
}

// Contrast picks black or white text for a hex background color, whichever
// reads better by perceived luminance.
func Contrast(background lipgloss.Color) lipgloss.Color {
	c, err := colorful.Hex(string(background))
	if err != nil {
		return lipgloss.Color("#ffffff")
	}
	if _, _, l := c.Hsl(); l > 0.55 {
		return lipgloss.Color("#1c1c1c")
	}
	return lipgloss.Color("#ffffff")
}

// position normalizes a temperature to [0, 1]: 0 at the warmest endpoint,
// 1 at the coolest. Monotonic in the domain direction; a degenerate domain
// (warmest == coolest) pins everything to the neutral midpoint.
func (s Diverging) position(temperature float64) float64 {
	if s.warmest == s.coolest {
		return 0.5
	}
	u := (s.warmest - temperature) / (s.warmest - s.coolest)
	if u < 0 {
		return 0
	}
	if u > 1 {
		return 1
	}
	return u
}
