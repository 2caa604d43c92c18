package hijri

import (
	"time"

	ummalqura "github.com/hablullah/go-hijri"
	"github.com/helmy2/go-hijri-picker/internal/config"
)

// UmmAlQura is the Umm al-Qura calendar of Saudi Arabia, read from its
// published lunation table. Years config.UmmAlQuraMinYear through
// config.UmmAlQuraMaxYear are covered.
// It is immutable after construction and safe for concurrent use.
type UmmAlQura struct {
	options
}

// NewUmmAlQura builds an Umm al-Qura calendar provider.
func NewUmmAlQura(opts ...Option) *UmmAlQura {
	return &UmmAlQura{options: newOptions(opts)}
}

// SupportedYears returns the years covered by the lunation table.
func (u *UmmAlQura) SupportedYears() (minYear, maxYear int) {
	return config.UmmAlQuraMinYear, config.UmmAlQuraMaxYear
}

// Of validates and resolves a date.
func (u *UmmAlQura) Of(year, month, day int) (Date, error) {
	if reason := u.rejectYearMonth(year, month); reason != "" {
		return Date{}, invalidDate(year, month, day, reason)
	}
	first, length := u.month(year, month)
	if day < 1 || day > length {
		return Date{}, invalidDate(year, month, day, config.ReasonDayRange)
	}
	return newDate(year, month, day, length, first+int64(day-1)), nil
}

// LengthOfMonth returns 29 or 30.
func (u *UmmAlQura) LengthOfMonth(year, month int) (int, error) {
	if reason := u.rejectYearMonth(year, month); reason != "" {
		return 0, invalidDate(year, month, 0, reason)
	}
	_, length := u.month(year, month)
	return length, nil
}

// Now returns today's date in the provider's zone, clamped to the table.
func (u *UmmAlQura) Now() Date {
	return now(u, u.options)
}

// FromEpochDay resolves the Hijri date of a day counted from 1970-01-01.
func (u *UmmAlQura) FromEpochDay(epochDay int64) (Date, error) {
	uq, err := ummalqura.CreateUmmAlQuraDate(time.Unix(epochDay*secondsPerDay, 0).UTC())
	if err != nil {
		return Date{}, invalidDate(0, 0, 0, config.ReasonTableRange)
	}
	year, month, day := int(uq.Year), int(uq.Month), int(uq.Day)
	_, length := u.month(year, month)
	return newDate(year, month, day, length, epochDay), nil
}

func (u *UmmAlQura) rejectYearMonth(year, month int) string {
	if month < 1 || month > config.MonthsPerYear {
		return config.ReasonMonthRange
	}
	if year < config.UmmAlQuraMinYear || year > config.UmmAlQuraMaxYear {
		return config.ReasonYearRange
	}
	return ""
}

// month returns the epoch day of the 1st and the length of a checked
// (year, month). The table also holds the start of the month after the
// last covered one.
func (u *UmmAlQura) month(year, month int) (first int64, length int) {
	first = u.firstDay(YearMonth{Year: year, Month: month})
	next := u.firstDay(PlusMonths(YearMonth{Year: year, Month: month}, 1))
	return first, int(next - first)
}

func (u *UmmAlQura) firstDay(ym YearMonth) int64 {
	g := ummalqura.UmmAlQuraDate{Year: int64(ym.Year), Month: int64(ym.Month), Day: 1}.ToGregorian()
	return time.Date(g.Year(), g.Month(), g.Day(), 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}
