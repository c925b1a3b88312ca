// Command datacheck audits a daily-weather CSV before viewing: it runs the
// same loader as the UI and reports rejected rows, per-year cell coverage,
// and the observed temperature extent.
//
// Usage:
//
//	go run ./cmd/datacheck -file data/daily_weather.csv -start-year 2008 -end-year 2017
//
// Exit status is 1 when the file cannot be loaded at all, 2 when it loads but
// contains malformed rows.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/couchcryptid/temp-matrix/internal/dataset"
	"github.com/couchcryptid/temp-matrix/internal/domain"
	"github.com/couchcryptid/temp-matrix/internal/observability"
)

func main() {
	file := flag.String("file", "data/daily_weather.csv", "CSV file to audit")
	startYear := flag.Int("start-year", 2008, "first year of the grid")
	endYear := flag.Int("end-year", 2017, "last year of the grid")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	loader := dataset.NewLoader(logger, observability.NewMetrics())

	d, err := loader.Load(*file, *startYear, *endYear)
	if err != nil {
		fmt.Fprintf(os.Stderr, "datacheck: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("file:           %s\n", *file)
	fmt.Printf("records:        %d\n", d.RecordCount)
	fmt.Printf("rejected rows:  %d\n", d.RejectedRows)

	warmest, coolest := d.ColorDomain()
	fmt.Printf("observed range: %.1f° to %.1f°\n", coolest, warmest)

	fmt.Println("coverage (months with data per year):")
	for _, year := range d.Years() {
		covered := 0
		for month := time.January; month <= time.December; month++ {
			if _, ok := d.Monthly(domain.MonthKey{Year: year, Month: month}); ok {
				covered++
			}
		}
		marker := ""
		if covered < 12 {
			marker = "  <- gaps"
		}
		fmt.Printf("  %d: %2d/12%s\n", year, covered, marker)
	}

	if d.RejectedRows > 0 {
		fmt.Fprintf(os.Stderr, "datacheck: %d malformed rows (see warnings above)\n", d.RejectedRows)
		os.Exit(2)
	}
}
