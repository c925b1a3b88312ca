package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int, maxT, minT float64) DailyRecord {
	return DailyRecord{
		Date:           time.Date(year, month, d, 0, 0, 0, 0, time.UTC),
		Year:           year,
		Month:          month,
		Day:            d,
		MaxTemperature: maxT,
		MinTemperature: minT,
	}
}

func TestFilterByYearRange(t *testing.T) {
	records := []DailyRecord{
		day(2007, time.December, 31, 5, 0),
		day(2008, time.January, 1, 6, 1),
		day(2012, time.June, 15, 25, 14),
		day(2017, time.December, 31, 7, 2),
		day(2018, time.January, 1, 8, 3),
	}

	got := FilterByYearRange(records, 2008, 2017)

	require.Len(t, got, 3)
	for _, r := range got {
		assert.GreaterOrEqual(t, r.Year, 2008)
		assert.LessOrEqual(t, r.Year, 2017)
	}
}

func TestFilterByYearRange_Empty(t *testing.T) {
	assert.Empty(t, FilterByYearRange(nil, 2008, 2017))
	assert.Empty(t, FilterByYearRange([]DailyRecord{day(2000, time.May, 1, 10, 5)}, 2008, 2017))
}

func TestAggregateMonthly(t *testing.T) {
	t.Run("one aggregate per distinct key", func(t *testing.T) {
		records := []DailyRecord{
			day(2010, time.January, 1, 10, 2),
			day(2010, time.January, 2, 14, 5),
			day(2010, time.January, 3, 8, 1),
			day(2010, time.February, 1, 12, 4),
			day(2011, time.January, 1, 9, 0),
		}

		aggs := AggregateMonthly(records)
		require.Len(t, aggs, 3)

		byKey := make(map[MonthKey]MonthlyAggregate, len(aggs))
		for _, a := range aggs {
			_, dup := byKey[a.Key]
			require.False(t, dup, "duplicate aggregate for %s", a.Key)
			byKey[a.Key] = a
		}

		jan := byKey[MonthKey{Year: 2010, Month: time.January}]
		assert.Equal(t, 3, jan.RecordCount)
		assert.InDelta(t, (10.0+14+8)/3, jan.MaxTemperatureMean, 1e-9)
		assert.InDelta(t, (2.0+5+1)/3, jan.MinTemperatureMean, 1e-9)

		feb := byKey[MonthKey{Year: 2010, Month: time.February}]
		assert.Equal(t, 1, feb.RecordCount)
		assert.Equal(t, 12.0, feb.MaxTemperatureMean)
		assert.Equal(t, 4.0, feb.MinTemperatureMean)
	})

	t.Run("no records, no aggregates", func(t *testing.T) {
		assert.Empty(t, AggregateMonthly(nil))
	})

	t.Run("filtered-out keys never appear", func(t *testing.T) {
		records := FilterByYearRange([]DailyRecord{
			day(2005, time.March, 10, 15, 6),
			day(2012, time.March, 10, 16, 7),
		}, 2008, 2017)

		aggs := AggregateMonthly(records)
		require.Len(t, aggs, 1)
		assert.Equal(t, MonthKey{Year: 2012, Month: time.March}, aggs[0].Key)
	})
}

func TestMonthKeyString(t *testing.T) {
	assert.Equal(t, "2010-01", MonthKey{Year: 2010, Month: time.January}.String())
	assert.Equal(t, "2017-12", MonthKey{Year: 2017, Month: time.December}.String())
}
