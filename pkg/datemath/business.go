package datemath

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/teambition/rrule-go"
)

var weekdays = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}

// BusinessDaysBetween counts Monday-to-Friday days between two dates.
//
// When end is after start it counts the days strictly after start up to
// and including end. When end is before start it counts the days from
// end up to but excluding start and returns the count negated. Clock
// times are ignored.
func BusinessDaysBetween(start, end time.Time) (int, error) {
	from, to := civil.DateOf(start), civil.DateOf(end)

	sign := 1
	switch {
	case from == to:
		return 0, nil
	case to.Before(from):
		sign = -1
		from, to = to.AddDays(-1), from.AddDays(-1)
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   from.AddDays(1).In(time.UTC),
		Until:     to.In(time.UTC),
		Byweekday: weekdays,
	})
	if err != nil {
		return 0, fmt.Errorf("datemath.BusinessDaysBetween: %w", err)
	}

	count := 0
	next := r.Iterator()
	for _, ok := next(); ok; _, ok = next() {
		count++
	}
	return sign * count, nil
}
