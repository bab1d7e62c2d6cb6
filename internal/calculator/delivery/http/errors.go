package http

import (
	"errors"

	"date-mathematics/internal/calculator"
	pkgErrors "date-mathematics/pkg/errors"
)

var (
	errWrongBody         = pkgErrors.NewHTTPError(110000, "wrong body")
	errMissingStartDate  = pkgErrors.NewHTTPError(110001, calculator.ErrMissingStartDate.Error())
	errMissingEndDate    = pkgErrors.NewHTTPError(110002, calculator.ErrMissingEndDate.Error())
	errNonNumericAmount  = pkgErrors.NewHTTPError(110003, calculator.ErrNonNumericAmount.Error())
	errAmountOutOfRange  = pkgErrors.NewHTTPError(110004, calculator.ErrAmountOutOfRange.Error())
	errInvalidDate       = pkgErrors.NewHTTPError(110005, "start_date and end_date must be YYYY-MM-DD")
	errInvalidTime       = pkgErrors.NewHTTPError(110006, "start_time must be HH:MM or HH:MM:SS")
	errUnknownUnit       = pkgErrors.NewHTTPError(110007, calculator.ErrUnknownUnit.Error())
	errUnknownDirection  = pkgErrors.NewHTTPError(110008, calculator.ErrUnknownDirection.Error())
	errUnknownAction     = pkgErrors.NewHTTPError(110009, calculator.ErrUnknownAction.Error())
	errUnsupportedFormat = pkgErrors.NewHTTPError(110010, calculator.ErrUnsupportedFormat.Error())
	errUnknownMode       = pkgErrors.NewHTTPError(110011, calculator.ErrUnknownMode.Error())
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Unknown errors become a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calculator.ErrMissingStartDate):
		return errMissingStartDate
	case errors.Is(err, calculator.ErrMissingEndDate):
		return errMissingEndDate
	case errors.Is(err, calculator.ErrNonNumericAmount):
		return errNonNumericAmount
	case errors.Is(err, calculator.ErrAmountOutOfRange):
		return errAmountOutOfRange
	case errors.Is(err, calculator.ErrInvalidDate):
		return errInvalidDate
	case errors.Is(err, calculator.ErrInvalidTime):
		return errInvalidTime
	case errors.Is(err, calculator.ErrUnknownUnit):
		return errUnknownUnit
	case errors.Is(err, calculator.ErrUnknownDirection):
		return errUnknownDirection
	case errors.Is(err, calculator.ErrUnknownAction):
		return errUnknownAction
	case errors.Is(err, calculator.ErrUnsupportedFormat):
		return errUnsupportedFormat
	case errors.Is(err, calculator.ErrUnknownMode):
		return errUnknownMode
	}
	return pkgErrors.ErrInternalServerError
}
