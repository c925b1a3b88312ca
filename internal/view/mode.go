// Package view derives per-cell view models from an immutable dataset. Every
// function here is pure in (dataset, mode, key), which keeps the grid logic
// testable without a rendering surface.
package view

// Mode selects which temperature series the grid displays.
type Mode int

const (
	// ShowMax displays each cell's warmest daily high. Initial mode.
	ShowMax Mode = iota
	// ShowMin displays each cell's coldest daily low.
	ShowMin
)

// Toggle flips the mode unconditionally. There is no third state.
func (m Mode) Toggle() Mode {
	if m == ShowMax {
		return ShowMin
	}
	return ShowMax
}

// Label is the user-facing name of the displayed series.
func (m Mode) Label() string {
	if m == ShowMax {
		return "Daily highs"
	}
	return "Daily lows"
}

func (m Mode) String() string {
	if m == ShowMax {
		return "max"
	}
	return "min"
}
