// Command genfixture writes a deterministic synthetic decade of daily weather
// records as CSV, for demos and manual testing of the viewer.
//
// Usage:
//
//	go run ./cmd/genfixture -out data/daily_weather.csv -start-year 2008 -end-year 2017
//
// The -malformed flag injects that many bad rows, spread through the file, to
// exercise the loader's rejection path.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/couchcryptid/temp-matrix/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "data/daily_weather.csv", "output CSV path")
	startYear := flag.Int("start-year", 2008, "first year to generate")
	endYear := flag.Int("end-year", 2017, "last year to generate")
	seed := flag.Int64("seed", 1, "PRNG seed; same seed, same file")
	malformed := flag.Int("malformed", 0, "number of malformed rows to inject")
	flag.Parse()

	if *startYear > *endYear {
		return fmt.Errorf("start-year %d exceeds end-year %d", *startYear, *endYear)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{domain.ColumnDate, domain.ColumnMax, domain.ColumnMin}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	rows := 0

	first := time.Date(*startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(*endYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		maxT, minT := synthesize(rng, d)
		row := []string{
			d.Format("2006-01-02"),
			strconv.FormatFloat(maxT, 'f', 1, 64),
			strconv.FormatFloat(minT, 'f', 1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
		rows++
	}

	for i := 0; i < *malformed; i++ {
		bad := [][]string{
			{"not-a-date", "12.0", "4.0"},
			{first.AddDate(0, 0, i).Format("2006-01-02"), "oops", "4.0"},
			{first.AddDate(0, 0, i).Format("2006-01-02"), "3.0", "9.0"},
		}[i%3]
		if err := w.Write(bad); err != nil {
			return fmt.Errorf("write malformed row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	log.Printf("wrote %s: %d daily rows, %d malformed", *out, rows, *malformed)
	return nil
}

// synthesize produces a plausible mid-latitude day: a seasonal sine with
// gaussian noise for the high, and a low several degrees under it.
func synthesize(rng *rand.Rand, d time.Time) (maxT, minT float64) {
	phase := 2 * math.Pi * float64(d.YearDay()) / 365.25
	seasonal := 17 - 13*math.Cos(phase)

	maxT = seasonal + rng.NormFloat64()*3.2
	spread := 7 + math.Abs(rng.NormFloat64())*2.5
	minT = maxT - spread

	return math.Round(maxT*10) / 10, math.Round(minT*10) / 10
}
