package domain

import (
	"fmt"
	"time"
)

// DailyRecord is one day's observed temperature extremes. Immutable once
// parsed; held for the lifetime of the view.
type DailyRecord struct {
	Date           time.Time
	Year           int
	Month          time.Month
	Day            int
	MaxTemperature float64
	MinTemperature float64
}

// MonthKey identifies one (year, month) grid cell. All lookups are keyed by
// it; no two aggregates share a key.
type MonthKey struct {
	Year  int
	Month time.Month
}

// Key returns the record's grid cell identity.
func (r DailyRecord) Key() MonthKey {
	return MonthKey{Year: r.Year, Month: r.Month}
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// MonthlyAggregate is the per-cell rollup of every DailyRecord sharing a
// MonthKey. RecordCount is always >= 1: keys with no records have no
// aggregate at all.
type MonthlyAggregate struct {
	Key                MonthKey
	MaxTemperatureMean float64
	MinTemperatureMean float64
	RecordCount        int
}
