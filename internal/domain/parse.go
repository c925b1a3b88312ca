package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Required CSV column names. Lookup is by header name, so column order and
// extra columns do not matter.
const (
	ColumnDate = "date"
	ColumnMax  = "max_temperature"
	ColumnMin  = "min_temperature"
)

// dateLayout accepts both zero-padded and single-digit month/day.
const dateLayout = "2006-1-2"

// ErrMalformedRow marks a row rejected during parsing. Callers branch on it
// with errors.Is to distinguish bad rows from I/O failures.
var ErrMalformedRow = errors.New("malformed row")

// Row is one raw CSV data row addressed by column name.
type Row map[string]string

// ParseRow converts a raw CSV row into a DailyRecord. Every field is
// validated; any defect yields an error wrapping ErrMalformedRow and the
// row contributes nothing downstream.
func ParseRow(row Row) (DailyRecord, error) {
	dateStr := strings.TrimSpace(row[ColumnDate])
	if dateStr == "" {
		return DailyRecord{}, fmt.Errorf("%w: missing date", ErrMalformedRow)
	}
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return DailyRecord{}, fmt.Errorf("%w: bad date %q", ErrMalformedRow, dateStr)
	}

	maxT, err := parseTemperature(row[ColumnMax])
	if err != nil {
		return DailyRecord{}, fmt.Errorf("%w: %s %v", ErrMalformedRow, ColumnMax, err)
	}
	minT, err := parseTemperature(row[ColumnMin])
	if err != nil {
		return DailyRecord{}, fmt.Errorf("%w: %s %v", ErrMalformedRow, ColumnMin, err)
	}
	if minT > maxT {
		return DailyRecord{}, fmt.Errorf("%w: min %.1f exceeds max %.1f", ErrMalformedRow, minT, maxT)
	}

	return DailyRecord{
		Date:           date,
		Year:           date.Year(),
		Month:          date.Month(),
		Day:            date.Day(),
		MaxTemperature: maxT,
		MinTemperature: minT,
	}, nil
}

// parseTemperature parses a locale-independent decimal. Empty strings, NaN,
// and infinities are all rejected: none of them can be colored or averaged.
func parseTemperature(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("missing value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad value %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return v, nil
}
