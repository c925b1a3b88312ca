package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/couchcryptid/temp-matrix/internal/colorscale"
	"github.com/couchcryptid/temp-matrix/internal/dataset"
	"github.com/couchcryptid/temp-matrix/internal/domain"
)

// Point is one sparkline sample in the unit square: X is the day's position
// within the month, Y the value's position within the cell's combined extent.
type Point struct {
	X float64
	Y float64
}

// CellProjection is everything a renderer needs to draw one grid cell. It is
// a value: renderers never reach back into the dataset.
type CellProjection struct {
	Exists bool
	Value  float64
	Color  lipgloss.Color
	Label  string

	// SparkMax and SparkMin share one vertical scale per cell, so the two
	// lines' relative shape stays comparable.
	SparkMax []Point
	SparkMin []Point

	Detail string
}

// Projector turns (mode, key) into a CellProjection. The color scale's domain
// is fixed at construction from the dataset and never recomputed on toggle.
type Projector struct {
	data  *dataset.Dataset
	scale colorscale.Diverging
}

// NewProjector builds a projector over a loaded dataset.
func NewProjector(data *dataset.Dataset) *Projector {
	warmest, coolest := data.ColorDomain()
	return &Projector{
		data:  data,
		scale: colorscale.NewDiverging(warmest, coolest),
	}
}

// Scale exposes the projector's color scale for legend rendering.
func (p *Projector) Scale() colorscale.Diverging {
	return p.scale
}

// Cell projects one grid cell under the given mode. Cells without records
// project Exists false and the sentinel color; their value is meaningless and
// never colored through the scale.
func (p *Projector) Cell(mode Mode, key domain.MonthKey) CellProjection {
	days := p.data.Daily(key)
	if len(days) == 0 {
		return CellProjection{
			Color: colorscale.NoData,
			Label: fmt.Sprintf("%s %d: no data", key.Month.String()[:3], key.Year),
		}
	}

	value, lo, hi := seriesExtremes(days, mode)
	sparkMax, sparkMin := sparklines(days)

	agg, _ := p.data.Monthly(key)

	return CellProjection{
		Exists:   true,
		Value:    value,
		Color:    p.scale.ColorFor(value),
		Label:    cellLabel(key, mode, value),
		SparkMax: sparkMax,
		SparkMin: sparkMin,
		Detail:   detailText(key, mode, value, lo, hi, agg),
	}
}

// seriesExtremes returns the display value (extremal daily value for the
// mode's series, not the monthly mean) plus the min and max of that series.
func seriesExtremes(days []domain.DailyRecord, mode Mode) (value, lo, hi float64) {
	pick := func(r domain.DailyRecord) float64 {
		if mode == ShowMax {
			return r.MaxTemperature
		}
		return r.MinTemperature
	}

	lo = pick(days[0])
	hi = lo
	for _, r := range days[1:] {
		v := pick(r)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if mode == ShowMax {
		return hi, lo, hi
	}
	return lo, lo, hi
}

// sparklines builds both point series. X spans the calendar month; Y spans
// the combined extent of both series, never a per-series extent.
func sparklines(days []domain.DailyRecord) (sparkMax, sparkMin []Point) {
	lo := days[0].MinTemperature
	hi := days[0].MaxTemperature
	for _, r := range days {
		if r.MinTemperature < lo {
			lo = r.MinTemperature
		}
		if r.MaxTemperature > hi {
			hi = r.MaxTemperature
		}
	}

	first := days[0]
	daysInMonth := time.Date(first.Year, first.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	normX := func(day int) float64 {
		if daysInMonth <= 1 {
			return 0
		}
		return float64(day-1) / float64(daysInMonth-1)
	}
	normY := func(v float64) float64 {
		if hi == lo {
			return 0.5
		}
		return (v - lo) / (hi - lo)
	}

	sparkMax = make([]Point, len(days))
	sparkMin = make([]Point, len(days))
	for i, r := range days {
		sparkMax[i] = Point{X: normX(r.Day), Y: normY(r.MaxTemperature)}
		sparkMin[i] = Point{X: normX(r.Day), Y: normY(r.MinTemperature)}
	}
	return sparkMax, sparkMin
}

func cellLabel(key domain.MonthKey, mode Mode, value float64) string {
	word := "warmest day"
	if mode == ShowMin {
		word = "coldest day"
	}
	return fmt.Sprintf("%s %d: %s %.1f°", key.Month.String()[:3], key.Year, word, value)
}

func detailText(key domain.MonthKey, mode Mode, value, lo, hi float64, agg domain.MonthlyAggregate) string {
	mean := agg.MaxTemperatureMean
	if mode == ShowMin {
		mean = agg.MinTemperatureMean
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d, %s\n", key.Month, key.Year, mode.Label())
	fmt.Fprintf(&b, "Extreme: %.1f°\n", value)
	fmt.Fprintf(&b, "Range: %.1f° to %.1f°\n", lo, hi)
	fmt.Fprintf(&b, "Mean: %.1f°\n", mean)
	fmt.Fprintf(&b, "Days: %d", agg.RecordCount)
	return b.String()
}
