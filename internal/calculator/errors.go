package calculator

import (
	"errors"

	"date-mathematics/pkg/datemath"
)

var (
	ErrMissingStartDate  = errors.New("start date is required")
	ErrMissingEndDate    = errors.New("end date is required")
	ErrNonNumericAmount  = errors.New("amount must be numeric")
	ErrAmountOutOfRange  = errors.New("amount is out of range")
	ErrUnknownUnit       = errors.New("unknown unit")
	ErrUnknownDirection  = errors.New("unknown direction")
	ErrUnknownAction     = errors.New("unknown action")
	ErrUnknownMode       = errors.New("unknown mode")
	ErrInvalidDate       = datemath.ErrInvalidDate
	ErrInvalidTime       = datemath.ErrInvalidTime
	ErrUnsupportedFormat = datemath.ErrUnsupportedToken
)
