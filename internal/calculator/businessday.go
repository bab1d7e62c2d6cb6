package calculator

import (
	"time"

	"date-mathematics/pkg/datemath"
)

// ShiftBusinessDays moves origin by magnitude business days in the given
// direction. It steps one calendar day at a time and counts a step only
// when it lands on a weekday; the origin itself is never counted.
// A magnitude of zero or less returns origin unchanged.
func ShiftBusinessDays(origin time.Time, magnitude int, direction Direction) time.Time {
	step := direction.Sign()
	result := origin
	for count := 0; count < magnitude; {
		result = datemath.AddDays(result, step)
		if !datemath.IsWeekend(result) {
			count++
		}
	}
	return result
}
