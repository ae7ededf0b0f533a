package payroll

import "time"

// InclusiveDays returns the number of calendar days in [start, end],
// comparing at midnight. end before start yields a non-positive value;
// callers validate the range first.
func InclusiveDays(start, end time.Time) int {
	a := midnight(start)
	b := midnight(end)
	return int(b.Sub(a).Hours()/24) + 1
}

// WorkingDays counts the days in [start, end] that are not Saturday or
// Sunday.
func WorkingDays(start, end time.Time) int {
	count := 0
	last := midnight(end)
	for d := midnight(start); !d.After(last); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay pushes a period bound to 23:59:59.999999999 so rows stored with
// a time component on the final day still fall inside the range.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
