package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/couchcryptid/temp-matrix/internal/view"
)

const sparklineWidth = 31

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// renderSparkline draws points already normalized to the unit square as a run
// of block glyphs. Points bucket by X; gaps repeat the last seen level so a
// sparse month still reads as a line.
func renderSparkline(points []view.Point, width int, style lipgloss.Style) string {
	if len(points) == 0 || width < 1 {
		return ""
	}

	sums := make([]float64, width)
	counts := make([]int, width)
	for _, p := range points {
		i := int(math.Round(p.X * float64(width-1)))
		if i < 0 {
			i = 0
		}
		if i >= width {
			i = width - 1
		}
		sums[i] += p.Y
		counts[i]++
	}

	var b strings.Builder
	last := 0.0
	seen := false
	for i := range sums {
		y := last
		if counts[i] > 0 {
			y = sums[i] / float64(counts[i])
			last = y
			seen = true
		} else if !seen {
			b.WriteRune(' ')
			continue
		}
		idx := int(math.Round(y * float64(len(sparkBlocks)-1)))
		b.WriteRune(sparkBlocks[idx])
	}

	return style.Render(b.String())
}
