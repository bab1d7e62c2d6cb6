package datemath

import (
	"time"

	"cloud.google.com/go/civil"
)

// Duration is an interval decomposed into calendar components.
type Duration struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// DifferenceInDays returns the number of whole days between later and
// earlier. A trailing partial day is not counted, and the result is
// truncated toward zero. Days are counted on the calendar so a DST shift
// inside the range does not change the result.
func DifferenceInDays(later, earlier time.Time) int {
	sign := compareWall(later, earlier)
	if sign == 0 {
		return 0
	}
	diff := abs(civil.DateOf(later).DaysSince(civil.DateOf(earlier)))
	back := AddDays(later, -sign*diff)
	if compareWall(back, earlier) == -sign {
		diff--
	}
	return sign * diff
}

// DifferenceInMonths returns the number of whole months between later and
// earlier, truncated toward zero.
func DifferenceInMonths(later, earlier time.Time) int {
	sign := later.Compare(earlier)
	if sign == 0 {
		return 0
	}
	diff := abs(calendarMonths(later, earlier))
	if diff == 0 {
		return 0
	}
	if AddMonths(earlier, sign*diff).Compare(later) == sign {
		diff--
	}
	return sign * diff
}

// IntervalToDuration decomposes [start, end] into years, months, days and
// clock components. When end precedes start every component is negative.
func IntervalToDuration(start, end time.Time) Duration {
	sign := 1
	if end.Before(start) {
		start, end = end, start
		sign = -1
	}

	total := DifferenceInMonths(end, start)
	cursor := AddMonths(start, total)
	days := DifferenceInDays(end, cursor)
	cursor = AddDays(cursor, days)

	rem := end.Sub(cursor)
	if rem < 0 {
		rem = 0
	}
	hours := int(rem / time.Hour)
	rem -= time.Duration(hours) * time.Hour
	minutes := int(rem / time.Minute)
	rem -= time.Duration(minutes) * time.Minute

	return Duration{
		Years:   sign * (total / 12),
		Months:  sign * (total % 12),
		Days:    sign * days,
		Hours:   sign * hours,
		Minutes: sign * minutes,
		Seconds: sign * int(rem/time.Second),
	}
}

func calendarMonths(later, earlier time.Time) int {
	ly, lm, _ := later.Date()
	ey, em, _ := earlier.Date()
	return (ly-ey)*12 + int(lm) - int(em)
}

// compareWall compares the wall-clock readings of a and b.
func compareWall(a, b time.Time) int {
	ca, cb := civil.DateTimeOf(a), civil.DateTimeOf(b)
	switch {
	case ca.Before(cb):
		return -1
	case ca.After(cb):
		return 1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
