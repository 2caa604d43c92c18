package hijri

import (
	"fmt"

	"github.com/helmy2/go-hijri-picker/internal/config"
)

// YearMonth is a (year, month) pair, the unit of a displayed calendar page.
type YearMonth struct {
	Year  int
	Month int
}

// Epoch is page 0 of the infinite page sequence: 1 Muharram 1 AH.
var Epoch = YearMonth{Year: 1, Month: 1}

// Valid reports whether the month lies in [1, 12]. The year is unbounded.
func (ym YearMonth) Valid() bool {
	return ym.Month >= 1 && ym.Month <= config.MonthsPerYear
}

// AddMonths is shorthand for PlusMonths(ym, delta).
func (ym YearMonth) AddMonths(delta int) YearMonth {
	return PlusMonths(ym, delta)
}

func (ym YearMonth) String() string {
	return fmt.Sprintf(config.FormatYearMonth, ym.Year, ym.Month)
}

// MonthsDifference returns the number of months from start to end.
// MonthsDifference(a, b) == -MonthsDifference(b, a).
func MonthsDifference(start, end YearMonth) int {
	return (end.Year-start.Year)*config.MonthsPerYear + (end.Month - start.Month)
}

// PlusMonths shifts start by delta months in either direction.
// Floor division keeps the month in [1, 12] for negative totals.
func PlusMonths(start YearMonth, delta int) YearMonth {
	total := (start.Year-1)*config.MonthsPerYear + (start.Month - 1) + delta
	return YearMonth{
		Year:  floorDiv(total, config.MonthsPerYear) + 1,
		Month: floorMod(total, config.MonthsPerYear) + 1,
	}
}

// PageOf returns the page index of ym relative to Epoch.
func PageOf(ym YearMonth) int {
	return MonthsDifference(Epoch, ym)
}

// YearMonthAt returns the month shown on the given page.
func YearMonthAt(page int) YearMonth {
	return PlusMonths(Epoch, page)
}

func floorDiv[T ~int | ~int64](a, b T) T {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod[T ~int | ~int64](a, b T) T {
	return a - floorDiv(a, b)*b
}
