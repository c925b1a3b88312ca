package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/couchcryptid/temp-matrix/internal/colorscale"
	"github.com/couchcryptid/temp-matrix/internal/domain"
	"github.com/couchcryptid/temp-matrix/internal/view"
)

const cellWidth = 5

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 2)
	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	monthAbbr = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

func (m Model) View() string {
	if m.loadErr != nil {
		return errorStyle.Render(fmt.Sprintf("Could not load daily records.\n\n%v", m.loadErr)) + "\n"
	}
	if m.data == nil {
		return subtleStyle.Render("loading daily records...") + "\n"
	}

	var b strings.Builder

	years := m.data.Years()
	b.WriteString(titleStyle.Render(fmt.Sprintf("Temperature matrix %d to %d", years[0], years[len(years)-1])))
	b.WriteString(subtleStyle.Render("  showing " + strings.ToLower(m.mode.Label())))
	b.WriteString("\n\n")

	b.WriteString(m.viewGrid())
	b.WriteString("\n")
	b.WriteString(m.viewLegend())
	b.WriteString("\n")

	if panel := m.viewDetail(); panel != "" {
		b.WriteString(panel)
		b.WriteString("\n")
	}

	b.WriteString(subtleStyle.Render("arrows move   t/enter toggle view   q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewGrid() string {
	var b strings.Builder

	b.WriteString("      ")
	for _, name := range monthAbbr {
		b.WriteString(subtleStyle.Render(fmt.Sprintf("%-*s", cellWidth, name)))
	}
	b.WriteString("\n")

	focused, hasFocus := m.nav.Focused()
	for _, year := range m.data.Years() {
		b.WriteString(fmt.Sprintf("%d  ", year))
		for month := 1; month <= 12; month++ {
			key := domain.MonthKey{Year: year, Month: time.Month(month)}
			cell := m.proj.Cell(m.mode, key)
			isFocused := hasFocus && key == focused
			b.WriteString(renderCell(cell, isFocused))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderCell(cell view.CellProjection, focused bool) string {
	text := "  ·  "
	if cell.Exists {
		text = fmt.Sprintf("%*.0f ", cellWidth-1, cell.Value)
	}

	style := lipgloss.NewStyle().
		Background(cell.Color).
		Foreground(colorscale.Contrast(cell.Color))
	if focused {
		style = style.Reverse(true).Bold(true)
	}
	return style.Render(text)
}

func (m Model) viewLegend() string {
	scale := m.proj.Scale()
	warmest, coolest := scale.Domain()

	var blocks strings.Builder
	for _, stop := range scale.Stops(24) {
		blocks.WriteString(lipgloss.NewStyle().Foreground(stop).Render("█"))
	}

	return fmt.Sprintf("%s %s %s",
		subtleStyle.Render(fmt.Sprintf("%.0f°", warmest)),
		blocks.String(),
		subtleStyle.Render(fmt.Sprintf("%.0f°", coolest)),
	)
}

// viewDetail renders the focused cell's statistics panel with both sparkline
// series on the cell's shared vertical scale.
func (m Model) viewDetail() string {
	key, ok := m.nav.Focused()
	if !ok {
		return ""
	}

	cell := m.proj.Cell(m.mode, key)
	if !cell.Exists {
		return detailStyle.Render(cell.Label)
	}

	var b strings.Builder
	b.WriteString(cell.Detail)
	b.WriteString("\n")
	b.WriteString("high " + renderSparkline(cell.SparkMax, sparklineWidth, lipgloss.NewStyle().Foreground(lipgloss.Color("203"))))
	b.WriteString("\n")
	b.WriteString("low  " + renderSparkline(cell.SparkMin, sparklineWidth, lipgloss.NewStyle().Foreground(lipgloss.Color("75"))))

	return detailStyle.Render(b.String())
}
