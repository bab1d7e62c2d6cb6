package datemath

import "time"

// AddDays steps t by n calendar days, keeping the wall-clock time.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// SubDays is AddDays(t, -n).
func SubDays(t time.Time, n int) time.Time {
	return AddDays(t, -n)
}

// AddMonths steps t by n calendar months. The day of month is clamped to
// the last day of the target month, so Jan 31 + 1 month is the last day
// of February.
func AddMonths(t time.Time, n int) time.Time {
	if n == 0 {
		return t
	}
	y, m, d := t.Date()
	target := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := daysIn(target.Year(), target.Month()); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// SubMonths is AddMonths(t, -n).
func SubMonths(t time.Time, n int) time.Time {
	return AddMonths(t, -n)
}

// AddYears steps t by n years. Feb 29 lands on Feb 28 in common years.
func AddYears(t time.Time, n int) time.Time {
	return AddMonths(t, n*12)
}

// SubYears is AddYears(t, -n).
func SubYears(t time.Time, n int) time.Time {
	return AddYears(t, -n)
}

// IsWeekend reports whether t falls on Saturday or Sunday in its own location.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
