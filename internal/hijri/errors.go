package hijri

import (
	"errors"
	"fmt"

	"github.com/helmy2/go-hijri-picker/internal/config"
)

// ErrInvalidDate is matched (errors.Is) by every rejection a Provider reports.
var ErrInvalidDate = errors.New(config.ErrInvalidDate)

// InvalidDateError describes a (year, month, day) triple a Provider refused to build.
type InvalidDateError struct {
	Year   int
	Month  int
	Day    int
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf(config.FormatInvalidDate, config.ErrInvalidDate, e.Year, e.Month, e.Day, e.Reason)
}

// Unwrap exposes ErrInvalidDate so callers can use errors.Is.
func (e *InvalidDateError) Unwrap() error {
	return ErrInvalidDate
}

func invalidDate(year, month, day int, reason string) error {
	return &InvalidDateError{Year: year, Month: month, Day: day, Reason: reason}
}
