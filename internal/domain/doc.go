// Package domain models daily temperature records and their monthly rollups.
//
// # Data Source
//
// Records come from a columnar daily-weather CSV covering roughly a decade of
// observations. Each row carries a calendar date and that day's maximum and
// minimum temperature. The file is header-addressed: columns are located by
// name, not position, so extra columns (precipitation, wind, conditions) are
// ignored rather than rejected.
//
// Required columns:
//
//	date             calendar date, "2006-01-02" style; single-digit month
//	                 and day are accepted ("2008-1-2")
//	max_temperature  locale-independent decimal, degrees
//	min_temperature  locale-independent decimal, degrees
//
// # Validation
//
// Rows with an unparseable date, a non-numeric temperature, or an inverted
// max/min pair are rejected outright with [ErrMalformedRow]. The loader counts
// and logs rejections; it never coerces a bad field to zero, since a silent
// zero would render as a plausible cold day in the grid.
//
// # Aggregation
//
// Records group by [MonthKey], the (year, month) cell identity of the grid.
// A key has a [MonthlyAggregate] iff at least one record contributed to it;
// empty months are absent from every lookup, never zero-valued. Means are
// plain arithmetic means over the key's records.
package domain
