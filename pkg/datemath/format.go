package datemath

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultDateFormat is used when no or an unknown format is requested.
	DefaultDateFormat = "yyyy-MM-dd"

	// ClockFormat is the fixed 12-hour clock appended to shifted dates.
	ClockFormat = "hh:mm a"
)

// DateFormats lists the selectable output date formats in display order.
var DateFormats = []string{
	"yyyy-MM-dd",
	"dd-MM-yyyy",
	"MM-dd-yyyy",
	"dd-MMM-yyyy",
	"dd/MM/yyyy",
	"MM/dd/yyyy",
	"yyyy/MM/dd",
}

var tokenLayouts = map[string]string{
	"yyyy": "2006",
	"yy":   "06",
	"MMMM": "January",
	"MMM":  "Jan",
	"MM":   "01",
	"M":    "1",
	"dd":   "02",
	"d":    "2",
	"HH":   "15",
	"hh":   "03",
	"h":    "3",
	"mm":   "04",
	"ss":   "05",
	"a":    "PM",
}

// IsSupportedFormat reports whether f is one of DateFormats.
func IsSupportedFormat(f string) bool {
	for _, known := range DateFormats {
		if known == f {
			return true
		}
	}
	return false
}

// Layout converts a pattern written with date tokens (yyyy, MM, dd, hh,
// mm, a, ...) into a Go time layout. Runs of letters must be a known
// token; everything else is copied literally.
func Layout(pattern string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if !isLetter(c) {
			b.WriteByte(c)
			i++
			continue
		}
		j := i
		for j < len(pattern) && pattern[j] == c {
			j++
		}
		layout, ok := tokenLayouts[pattern[i:j]]
		if !ok {
			return "", fmt.Errorf("%w %q in %q", ErrUnsupportedToken, pattern[i:j], pattern)
		}
		b.WriteString(layout)
		i = j
	}
	return b.String(), nil
}

// Format renders t with a token pattern.
func Format(t time.Time, pattern string) (string, error) {
	layout, err := Layout(pattern)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
