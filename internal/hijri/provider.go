package hijri

import "github.com/helmy2/go-hijri-picker/internal/config"

// Provider is the calendar engine behind every Date.
//
// It owns the authoritative mapping between Hijri (year, month, day) triples
// and absolute days. Everything else in the picker (paging, grids, state)
// depends only on this interface.
type Provider interface {
	// Of validates and resolves a date. Rejections are *InvalidDateError.
	Of(year, month, day int) (Date, error)

	// Now returns today's date according to the provider's clock and zone.
	Now() Date

	// LengthOfMonth returns 29 or 30 for a supported (year, month).
	LengthOfMonth(year, month int) (int, error)

	// FromEpochDay resolves the Hijri date of a day counted from 1970-01-01.
	FromEpochDay(day int64) (Date, error)
}

// Bounded is implemented by providers that cover fewer years than
// config.MinHijriYear through config.MaxHijriYear.
type Bounded interface {
	SupportedYears() (minYear, maxYear int)
}

// SupportedYears returns the years p can resolve.
func SupportedYears(p Provider) (minYear, maxYear int) {
	if b, ok := p.(Bounded); ok {
		return b.SupportedYears()
	}
	return config.MinHijriYear, config.MaxHijriYear
}
