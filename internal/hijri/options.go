package hijri

import (
	"log/slog"
	"time"

	"github.com/helmy2/go-hijri-picker/internal/config"
)

type options struct {
	pattern LeapPattern
	clock   Clock
	loc     *time.Location
}

// Option configures a provider.
type Option func(*options)

// WithLeapPattern selects the leap-year pattern of a Tabular provider
// (default LeapPatternBase16). Other providers ignore it.
func WithLeapPattern(p LeapPattern) Option {
	return func(o *options) { o.pattern = p }
}

// WithClock injects the clock used by Now.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLocation sets the zone in which Now decides the current day.
func WithLocation(loc *time.Location) Option {
	return func(o *options) { o.loc = loc }
}

func newOptions(opts []Option) options {
	o := options{
		pattern: LeapPatternBase16,
		clock:   RealClock{},
		loc:     time.Local,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type boundedProvider interface {
	Provider
	Bounded
}

// now resolves the clock's day with p. A day outside the supported years
// is clamped to the first or last day p can build.
func now(p boundedProvider, o options) Date {
	y, m, d := o.clock.Now().In(o.loc).Date()
	epochDay := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay

	date, err := p.FromEpochDay(epochDay)
	if err == nil {
		return date
	}

	minYear, maxYear := p.SupportedYears()
	clamped, _ := p.Of(minYear, 1, 1)
	if epochDay > clamped.EpochDay() {
		length, _ := p.LengthOfMonth(maxYear, config.MonthsPerYear)
		clamped, _ = p.Of(maxYear, config.MonthsPerYear, length)
	}

	slog.Warn(config.ErrNowOutOfRange,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyEpochDay, epochDay,
		config.LogKeyDate, clamped.String(),
		config.LogKeyError, err,
	)
	return clamped
}
