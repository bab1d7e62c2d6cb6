package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses integer or decimal text. Decimals are truncated
// toward zero. Empty, non-numeric and non-finite input is rejected.
func ParseAmount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrNonNumericAmount
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNonNumericAmount, s)
	}
	f = math.Trunc(f)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%w: %q", ErrAmountOutOfRange, s)
	}
	return int(f), nil
}
