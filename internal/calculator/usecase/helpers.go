package usecase

import (
	"time"

	"date-mathematics/pkg/datemath"
)

// formatResult renders t as "<date> <hh:mm AM|PM>". Unknown date formats
// fall back to the configured default.
func (uc *implUseCase) formatResult(t time.Time, dateFormat string) (string, error) {
	if !datemath.IsSupportedFormat(dateFormat) {
		dateFormat = uc.defaultFormat
	}
	d, err := datemath.Format(t, dateFormat)
	if err != nil {
		return "", err
	}
	clock, err := datemath.Format(t, datemath.ClockFormat)
	if err != nil {
		return "", err
	}
	return d + " " + clock, nil
}
