package hijri

import (
	"fmt"

	"github.com/helmy2/go-hijri-picker/internal/config"
)

const (
	cycleYears     = 30
	cycleLeapYears = 11
	cycleDays      = cycleYears*commonYearDays + cycleLeapYears
	commonYearDays = 354
	secondsPerDay  = 24 * 60 * 60
	daysPerWeek    = 7

	// islamicEpochJDN is the Julian Day Number of 1 Muharram 1 AH (civil epoch).
	islamicEpochJDN = 1948440
	// unixEpochJDN is the Julian Day Number of 1970-01-01.
	unixEpochJDN = 2440588
)

// LeapPattern selects which years of the 30-year cycle carry a 30th day in
// Dhu al-Hijjah.
type LeapPattern int

const (
	// LeapPatternBase16 uses years 2, 5, 7, 10, 13, 16, 18, 21, 24, 26 and 29.
	LeapPatternBase16 LeapPattern = iota
	// LeapPatternBase15 uses year 15 instead of 16 (the "Kuwaiti" variant).
	LeapPatternBase15
)

// ParseLeapPattern maps the year that distinguishes a pattern (15 or 16)
// to the pattern.
func ParseLeapPattern(year int) (LeapPattern, error) {
	switch year {
	case config.LeapPatternFlag16:
		return LeapPatternBase16, nil
	case config.LeapPatternFlag15:
		return LeapPatternBase15, nil
	}
	return LeapPatternBase16, fmt.Errorf("%s: %d", config.ErrLeapPattern, year)
}

func (p LeapPattern) positions() []int {
	if p == LeapPatternBase15 {
		return []int{2, 5, 7, 10, 13, 15, 18, 21, 24, 26, 29}
	}
	return []int{2, 5, 7, 10, 13, 16, 18, 21, 24, 26, 29}
}

// Tabular is the arithmetical (tabular) Islamic calendar.
// It is immutable after construction and safe for concurrent use.
type Tabular struct {
	options

	leap [cycleYears + 1]bool
	// leapsBefore[k] counts leap years among cycle positions 1..k.
	leapsBefore [cycleYears + 1]int
}

// NewTabular builds a tabular Hijri calendar provider.
func NewTabular(opts ...Option) *Tabular {
	t := &Tabular{options: newOptions(opts)}

	for _, pos := range t.pattern.positions() {
		t.leap[pos] = true
	}
	for k := 1; k <= cycleYears; k++ {
		t.leapsBefore[k] = t.leapsBefore[k-1]
		if t.leap[k] {
			t.leapsBefore[k]++
		}
	}
	return t
}

// SupportedYears returns config.MinHijriYear and config.MaxHijriYear.
func (t *Tabular) SupportedYears() (minYear, maxYear int) {
	return config.MinHijriYear, config.MaxHijriYear
}

// IsLeapYear reports whether the year has 355 days.
func (t *Tabular) IsLeapYear(year int) bool {
	return t.leap[floorMod(year-1, cycleYears)+1]
}

// Of validates and resolves a date.
func (t *Tabular) Of(year, month, day int) (Date, error) {
	if reason := t.rejectYearMonth(year, month); reason != "" {
		return Date{}, invalidDate(year, month, day, reason)
	}
	length := t.monthLength(year, month)
	if day < 1 || day > length {
		return Date{}, invalidDate(year, month, day, config.ReasonDayRange)
	}
	return t.build(year, month, day, length), nil
}

// LengthOfMonth returns 29 or 30.
func (t *Tabular) LengthOfMonth(year, month int) (int, error) {
	if reason := t.rejectYearMonth(year, month); reason != "" {
		return 0, invalidDate(year, month, 0, reason)
	}
	return t.monthLength(year, month), nil
}

// Now returns today's date in the provider's zone, clamped to the
// supported years.
func (t *Tabular) Now() Date {
	return now(t, t.options)
}

// FromEpochDay resolves the Hijri date of a day counted from 1970-01-01.
func (t *Tabular) FromEpochDay(epochDay int64) (Date, error) {
	// Zero-based day index counted from 1 Muharram 1 AH.
	index := epochDay + unixEpochJDN - islamicEpochJDN

	cycles := floorDiv(index, cycleDays)
	rem := int(index - cycles*cycleDays)

	year := int(cycles)*cycleYears + 1
	for pos := 1; pos <= cycleYears; pos++ {
		length := commonYearDays
		if t.leap[pos] {
			length++
		}
		if rem < length {
			break
		}
		rem -= length
		year++
	}

	month := 1
	for ; month < config.MonthsPerYear; month++ {
		length := t.monthLength(year, month)
		if rem < length {
			break
		}
		rem -= length
	}
	day := rem + 1

	if year < config.MinHijriYear || year > config.MaxHijriYear {
		return Date{}, invalidDate(year, month, day, config.ReasonYearRange)
	}
	return t.build(year, month, day, t.monthLength(year, month)), nil
}

// rejectYearMonth returns the rejection reason, or "" when the pair is supported.
func (t *Tabular) rejectYearMonth(year, month int) string {
	if month < 1 || month > config.MonthsPerYear {
		return config.ReasonMonthRange
	}
	if year < config.MinHijriYear || year > config.MaxHijriYear {
		return config.ReasonYearRange
	}
	return ""
}

// monthLength assumes a checked (year, month).
func (t *Tabular) monthLength(year, month int) int {
	if month%2 == 1 || (month == config.MonthsPerYear && t.IsLeapYear(year)) {
		return 30
	}
	return 29
}

func (t *Tabular) build(year, month, day, length int) Date {
	return newDate(year, month, day, length, t.julianDay(year, month, day)-unixEpochJDN)
}

func (t *Tabular) julianDay(year, month, day int) int64 {
	prior := year - 1
	daysBeforeYear := int64(prior)*commonYearDays +
		int64(floorDiv(prior, cycleYears))*cycleLeapYears +
		int64(t.leapsBefore[floorMod(prior, cycleYears)])
	daysBeforeMonth := int64(29*(month-1) + month/2)
	return islamicEpochJDN - 1 + daysBeforeYear + daysBeforeMonth + int64(day)
}
