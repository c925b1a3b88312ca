package domain

// FilterByYearRange returns the records whose year falls inside the inclusive
// range [y0, y1]. Input order is preserved.
func FilterByYearRange(records []DailyRecord, y0, y1 int) []DailyRecord {
	out := make([]DailyRecord, 0, len(records))
	for _, r := range records {
		if r.Year >= y0 && r.Year <= y1 {
			out = append(out, r)
		}
	}
	return out
}

// AggregateMonthly produces one MonthlyAggregate per distinct (year, month)
// present in records. A mean over zero records is never computed: keys without
// records simply do not appear. Output order is unspecified; consumers re-key
// by MonthKey.
func AggregateMonthly(records []DailyRecord) []MonthlyAggregate {
	type acc struct {
		sumMax float64
		sumMin float64
		n      int
	}

	byKey := make(map[MonthKey]*acc)
	for _, r := range records {
		a, ok := byKey[r.Key()]
		if !ok {
			a = &acc{}
			byKey[r.Key()] = a
		}
		a.sumMax += r.MaxTemperature
		a.sumMin += r.MinTemperature
		a.n++
	}

	out := make([]MonthlyAggregate, 0, len(byKey))
	for key, a := range byKey {
		out = append(out, MonthlyAggregate{
			Key:                key,
			MaxTemperatureMean: a.sumMax / float64(a.n),
			MinTemperatureMean: a.sumMin / float64(a.n),
			RecordCount:        a.n,
		})
	}
	return out
}
