package datemath

import "errors"

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTime      = errors.New("invalid time")
	ErrInvalidTimezone  = errors.New("invalid timezone")
	ErrUnsupportedToken = errors.New("unsupported format token")
)
