package view

import (
	"time"

	"github.com/couchcryptid/temp-matrix/internal/domain"
)

// Direction is a focus movement on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// GridNav tracks which cell holds input focus on a years x 12 grid. At most
// one cell is focused. Moves clamp at the grid edges; there is no wraparound.
type GridNav struct {
	years   []int
	row     int
	col     int
	focused bool
}

// NewGridNav creates an unfocused navigator over the given year rows.
func NewGridNav(years []int) *GridNav {
	return &GridNav{years: years}
}

// Move shifts focus one cell in the given direction. The first move focuses
// the origin cell instead of shifting.
func (g *GridNav) Move(d Direction) {
	if len(g.years) == 0 {
		return
	}
	if !g.focused {
		g.focused = true
		return
	}

	switch d {
	case DirUp:
		if g.row > 0 {
			g.row--
		}
	case DirDown:
		if g.row < len(g.years)-1 {
			g.row++
		}
	case DirLeft:
		if g.col > 0 {
			g.col--
		}
	case DirRight:
		if g.col < 11 {
			g.col++
		}
	}
}

// Focused returns the focused cell's key, or ok false before the first move.
func (g *GridNav) Focused() (domain.MonthKey, bool) {
	if !g.focused {
		return domain.MonthKey{}, false
	}
	return domain.MonthKey{Year: g.years[g.row], Month: time.Month(g.col + 1)}, true
}
