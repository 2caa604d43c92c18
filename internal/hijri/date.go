package hijri

import (
	"cmp"
	"fmt"
	"time"

	"github.com/helmy2/go-hijri-picker/internal/config"
)

// Date is an immutable Hijri calendar date resolved by a Provider.
//
// Identity is the (year, month, day) triple. The weekday, month length and
// absolute day are facts reported by the provider when the date was built.
// The zero Date is not a valid date.
type Date struct {
	year        int
	month       int
	day         int
	weekday     int
	monthLength int
	epochDay    int64
}

func newDate(year, month, day, monthLength int, epochDay int64) Date {
	return Date{
		year:        year,
		month:       month,
		day:         day,
		weekday:     int(floorMod(epochDay+unixEpochJDN, daysPerWeek)) + 1,
		monthLength: monthLength,
		epochDay:    epochDay,
	}
}

// DateKey is the comparable identity of a Date, usable as a map key.
type DateKey struct {
	Year  int
	Month int
	Day   int
}

func (d Date) Year() int  { return d.year }
func (d Date) Month() int { return d.month }
func (d Date) Day() int   { return d.day }

// Weekday returns the ISO-8601 day of week (1=Monday .. 7=Sunday).
func (d Date) Weekday() int { return d.weekday }

// LengthOfMonth returns the number of days (29 or 30) in the date's month.
func (d Date) LengthOfMonth() int { return d.monthLength }

// EpochDay returns the number of days since 1970-01-01.
func (d Date) EpochDay() int64 { return d.epochDay }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.month == 0 }

// YearMonth returns the month the date belongs to.
func (d Date) YearMonth() YearMonth {
	return YearMonth{Year: d.year, Month: d.month}
}

// Key returns the identity of the date.
func (d Date) Key() DateKey {
	return DateKey{Year: d.year, Month: d.month, Day: d.day}
}

// Equal reports whether both dates share year, month and day.
func (d Date) Equal(other Date) bool {
	return d.Key() == other.Key()
}

// Compare orders dates chronologically by (year, month, day).
func (d Date) Compare(other Date) int {
	if c := cmp.Compare(d.year, other.year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.month, other.month); c != 0 {
		return c
	}
	return cmp.Compare(d.day, other.day)
}

// Time returns midnight of the equivalent Gregorian day in loc.
func (d Date) Time(loc *time.Location) time.Time {
	y, m, day := time.Unix(d.epochDay*secondsPerDay, 0).UTC().Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc)
}

func (d Date) String() string {
	return fmt.Sprintf(config.FormatDateString, d.year, d.month, d.day)
}
