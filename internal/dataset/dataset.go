package dataset

import (
	"sort"
	"time"

	"github.com/couchcryptid/temp-matrix/internal/domain"
)

// Dataset is the immutable result of one load: both lookup structures, the
// color domain, and load bookkeeping. Nothing here mutates after Load
// returns, so the whole value is safe to share with every rendering pass.
type Dataset struct {
	years   []int
	monthly map[domain.MonthKey]domain.MonthlyAggregate
	daily   map[domain.MonthKey][]domain.DailyRecord

	warmest float64
	coolest float64

	RecordCount  int
	RejectedRows int
	LoadedAt     time.Time
}

// Years returns the configured year range in ascending order, one entry per
// grid row. Years without records still get a row; their cells render as
// absent.
func (d *Dataset) Years() []int {
	return d.years
}

// Monthly looks up the aggregate for a cell. The second return is false when
// the cell has no records, a valid and expected state.
func (d *Dataset) Monthly(key domain.MonthKey) (domain.MonthlyAggregate, bool) {
	agg, ok := d.monthly[key]
	return agg, ok
}

// Daily returns the cell's records sorted ascending by day, or nil when the
// cell has none.
func (d *Dataset) Daily(key domain.MonthKey) []domain.DailyRecord {
	return d.daily[key]
}

// ColorDomain returns the (warmest, coolest) endpoints observed across ALL
// filtered daily values, both temperature fields. Computed once at load and
// never again: toggling changes which field is projected, not the scale.
func (d *Dataset) ColorDomain() (warmest, coolest float64) {
	return d.warmest, d.coolest
}

// buildIndexes constructs both lookups from the filtered record set. Both are
// keyed over the same set, so a key present in one is present in the other.
func buildIndexes(records []domain.DailyRecord) (map[domain.MonthKey]domain.MonthlyAggregate, map[domain.MonthKey][]domain.DailyRecord) {
	monthly := make(map[domain.MonthKey]domain.MonthlyAggregate)
	for _, agg := range domain.AggregateMonthly(records) {
		monthly[agg.Key] = agg
	}

	daily := make(map[domain.MonthKey][]domain.DailyRecord, len(monthly))
	for _, r := range records {
		daily[r.Key()] = append(daily[r.Key()], r)
	}
	for _, days := range daily {
		sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	}

	return monthly, daily
}

// observedExtent scans every daily value, max and min fields alike, for the
// global extremes. A single unusually hot or cold day therefore shifts every
// cell's color intensity.
func observedExtent(records []domain.DailyRecord) (warmest, coolest float64) {
	warmest = records[0].MaxTemperature
	coolest = records[0].MinTemperature
	for _, r := range records {
		if r.MaxTemperature > warmest {
			warmest = r.MaxTemperature
		}
		if r.MinTemperature < coolest {
			coolest = r.MinTemperature
		}
	}
	return warmest, coolest
}

func yearRange(y0, y1 int) []int {
	years := make([]int, 0, y1-y0+1)
	for y := y0; y <= y1; y++ {
		years = append(years, y)
	}
	return years
}
