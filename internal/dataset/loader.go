package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/temp-matrix/internal/domain"
	"github.com/couchcryptid/temp-matrix/internal/observability"
)

// ErrNoRecords means the file parsed but nothing survived the year filter.
// The grid would be entirely empty, so the load is treated as failed.
var ErrNoRecords = errors.New("no records in configured year range")

// Loader reads a daily-weather CSV and builds a Dataset. It runs exactly once
// per session; there is no reload path.
type Loader struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewLoader creates a Loader with the given observability.
func NewLoader(logger *slog.Logger, metrics *observability.Metrics) *Loader {
	return &Loader{logger: logger, metrics: metrics}
}

// Load reads path, rejects malformed rows, filters to the inclusive year
// range, and builds both lookups plus the color domain. Malformed rows are
// counted and logged, never coerced.
func (l *Loader) Load(path string, yearStart, yearEnd int) (*Dataset, error) {
	start := clock.Now()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	records, rejected, err := l.readRecords(f)
	if err != nil {
		return nil, err
	}

	filtered := domain.FilterByYearRange(records, yearStart, yearEnd)
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w [%d, %d]", ErrNoRecords, yearStart, yearEnd)
	}

	monthly, daily := buildIndexes(filtered)
	warmest, coolest := observedExtent(filtered)

	d := &Dataset{
		years:        yearRange(yearStart, yearEnd),
		monthly:      monthly,
		daily:        daily,
		warmest:      warmest,
		coolest:      coolest,
		RecordCount:  len(filtered),
		RejectedRows: rejected,
		LoadedAt:     clock.Now(),
	}

	l.metrics.RecordsLoaded.Add(float64(len(filtered)))
	l.metrics.DatasetLoaded.Set(1)
	l.metrics.LoadDuration.Observe(clock.Since(start).Seconds())

	l.logger.Info("dataset loaded",
		"file", path,
		"records", len(filtered),
		"rejected_rows", rejected,
		"cells", len(monthly),
		"warmest", warmest,
		"coolest", coolest,
	)

	return d, nil
}

// readRecords parses every data row, dropping malformed ones. Returns the
// accepted records and the rejected-row count.
func (l *Loader) readRecords(r io.Reader) ([]domain.DailyRecord, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are handled per-row

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		colIdx[h] = i
	}
	for _, col := range []string{domain.ColumnDate, domain.ColumnMax, domain.ColumnMin} {
		if _, ok := colIdx[col]; !ok {
			return nil, 0, fmt.Errorf("missing required column %q", col)
		}
	}

	var records []domain.DailyRecord
	rejected := 0
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read row: %w", err)
		}
		line++

		rec, err := domain.ParseRow(rowByName(row, colIdx))
		if err != nil {
			rejected++
			l.metrics.RowsRejected.Inc()
			l.logger.Warn("rejecting malformed row", "line", line, "error", err)
			continue
		}
		records = append(records, rec)
	}

	return records, rejected, nil
}

func rowByName(row []string, colIdx map[string]int) domain.Row {
	out := make(domain.Row, len(colIdx))
	for name, i := range colIdx {
		if i < len(row) {
			out[name] = row[i]
		}
	}
	return out
}
