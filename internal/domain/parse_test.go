package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow(t *testing.T) {
	t.Run("well-formed row", func(t *testing.T) {
		rec, err := ParseRow(Row{
			ColumnDate: "2012-07-04",
			ColumnMax:  "33.9",
			ColumnMin:  "17.2",
		})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2012, time.July, 4, 0, 0, 0, 0, time.UTC), rec.Date)
		assert.Equal(t, 2012, rec.Year)
		assert.Equal(t, time.July, rec.Month)
		assert.Equal(t, 4, rec.Day)
		assert.Equal(t, 33.9, rec.MaxTemperature)
		assert.Equal(t, 17.2, rec.MinTemperature)
	})

	t.Run("single-digit month and day", func(t *testing.T) {
		rec, err := ParseRow(Row{
			ColumnDate: "2008-1-2",
			ColumnMax:  "5",
			ColumnMin:  "-3",
		})

		require.NoError(t, err)
		assert.Equal(t, 2008, rec.Year)
		assert.Equal(t, time.January, rec.Month)
		assert.Equal(t, 2, rec.Day)
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		rec, err := ParseRow(Row{
			ColumnDate: " 2010-03-15 ",
			ColumnMax:  " 12.5",
			ColumnMin:  "4.0 ",
		})

		require.NoError(t, err)
		assert.Equal(t, 12.5, rec.MaxTemperature)
		assert.Equal(t, 4.0, rec.MinTemperature)
	})

	t.Run("negative temperatures", func(t *testing.T) {
		rec, err := ParseRow(Row{
			ColumnDate: "2014-01-20",
			ColumnMax:  "-2.1",
			ColumnMin:  "-11.7",
		})

		require.NoError(t, err)
		assert.Equal(t, -2.1, rec.MaxTemperature)
		assert.Equal(t, -11.7, rec.MinTemperature)
	})

	t.Run("missing date", func(t *testing.T) {
		_, err := ParseRow(Row{ColumnMax: "10", ColumnMin: "2"})
		assert.ErrorIs(t, err, ErrMalformedRow)
	})

	t.Run("unparseable date", func(t *testing.T) {
		_, err := ParseRow(Row{ColumnDate: "July 4 2012", ColumnMax: "10", ColumnMin: "2"})
		assert.ErrorIs(t, err, ErrMalformedRow)
	})

	t.Run("non-numeric max", func(t *testing.T) {
		_, err := ParseRow(Row{ColumnDate: "2012-07-04", ColumnMax: "n/a", ColumnMin: "2"})
		assert.ErrorIs(t, err, ErrMalformedRow)
	})

	t.Run("empty min", func(t *testing.T) {
		_, err := ParseRow(Row{ColumnDate: "2012-07-04", ColumnMax: "10", ColumnMin: ""})
		assert.ErrorIs(t, err, ErrMalformedRow)
	})

	t.Run("non-finite value", func(t *testing.T) {
		_, err := ParseRow(Row{ColumnDate: "2012-07-04", ColumnMax: "NaN", ColumnMin: "2"})
		assert.ErrorIs(t, err, ErrMalformedRow)
	})

	t.Run("inverted extremes", func(t *testing.T) {
		_, err := ParseRow(Row{ColumnDate: "2012-07-04", ColumnMax: "3", ColumnMin: "9"})
		assert.ErrorIs(t, err, ErrMalformedRow)
	})
}
