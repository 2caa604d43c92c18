// Package cli holds the command-line options shared by the desktop and
// terminal binaries.
package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/helmy2/go-hijri-picker/internal/format"
	"github.com/helmy2/go-hijri-picker/internal/hijri"
	"github.com/helmy2/go-hijri-picker/internal/picker"
	"golang.org/x/text/language"
)

// Options are the parsed command-line flags.
type Options struct {
	Version     bool
	Debug       bool
	Locale      string
	YearMin     int
	YearMax     int
	LeapPattern int
	Serve       bool
	Port        string
}

// Register binds the common flags to fs. withServer adds -serve and -port.
func Register(fs *flag.FlagSet, withServer bool) *Options {
	o := &Options{}
	fs.BoolVar(&o.Version, config.FlagVersion, false, config.FlagDescVersion)
	fs.BoolVar(&o.Debug, config.FlagDebug, false, config.FlagDescDebug)
	fs.StringVar(&o.Locale, config.FlagLocale, config.DefaultLanguage, config.FlagDescLocale)
	fs.IntVar(&o.YearMin, config.FlagYearMin, 0, config.FlagDescYearMin)
	fs.IntVar(&o.YearMax, config.FlagYearMax, 0, config.FlagDescYearMax)
	fs.IntVar(&o.LeapPattern, config.FlagLeapPattern, config.LeapPatternUmmAlQura, config.FlagDescLeapPattern)
	if withServer {
		fs.BoolVar(&o.Serve, config.FlagServe, false, config.FlagDescServe)
		fs.StringVar(&o.Port, config.FlagPort, config.DefaultPort, config.FlagDescPort)
	}
	return o
}

// Provider builds the calendar selected by -leap-pattern: Umm al-Qura when
// unset, else the tabular calendar with that pattern.
func (o *Options) Provider() (hijri.Provider, error) {
	if o.LeapPattern == config.LeapPatternUmmAlQura {
		return hijri.NewUmmAlQura(), nil
	}
	pattern, err := hijri.ParseLeapPattern(o.LeapPattern)
	if err != nil {
		return nil, err
	}
	return hijri.NewTabular(hijri.WithLeapPattern(pattern)), nil
}

// Tag resolves -locale.
func (o *Options) Tag() language.Tag {
	return format.ParseLocale(o.Locale)
}

// YearRange returns the range set by -year-min and -year-max, or nil when
// neither is set. Setting only one of them is an error.
func (o *Options) YearRange() (*picker.YearRange, error) {
	if o.YearMin == 0 && o.YearMax == 0 {
		return nil, nil
	}
	if o.YearMin == 0 || o.YearMax == 0 {
		return nil, errors.New(config.ErrYearRangeHalf)
	}
	if o.YearMax < o.YearMin {
		return nil, fmt.Errorf("%s: %d > %d", config.ErrInvalidYearRange, o.YearMin, o.YearMax)
	}
	return &picker.YearRange{Min: o.YearMin, Max: o.YearMax}, nil
}

// StateOptions converts the flags into picker options.
func (o *Options) StateOptions() ([]picker.Option, error) {
	opts := []picker.Option{picker.WithLocale(o.Tag())}

	r, err := o.YearRange()
	if err != nil {
		return nil, err
	}
	if r != nil {
		opts = append(opts, picker.WithYearRange(r.Min, r.Max))
	}
	return opts, nil
}
