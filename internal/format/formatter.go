package format

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/helmy2/go-hijri-picker/internal/hijri"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Strings holds the localized picker texts.
type Strings struct {
	Title           string
	HeadlineDefault string
	NextMonth       string
	PreviousMonth   string
	ChangeYear      string
	Confirm         string
	Dismiss         string
	WindowTitle     string
	OpenPicker      string
	NoDate          string
	Language        string
	FeedCalendar    string
}

// Formatter renders Hijri dates, numbers and names for a locale.
// It is safe for concurrent use.
type Formatter struct {
	bundle    *i18n.Bundle
	languages []language.Tag

	mu         sync.RWMutex
	localizers map[string]*i18n.Localizer
}

// New loads the embedded locales and returns a ready Formatter.
func New() (*Formatter, error) {
	bundle, langs, err := LoadBundle()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrFormatterInit, err)
	}
	return NewWithBundle(bundle, langs), nil
}

// NewWithBundle wraps an existing bundle. A nil bundle makes every lookup
// use the built-in English fallbacks.
func NewWithBundle(bundle *i18n.Bundle, langs []language.Tag) *Formatter {
	return &Formatter{
		bundle:     bundle,
		languages:  langs,
		localizers: make(map[string]*i18n.Localizer),
	}
}

// Languages lists the locales that have a translation file.
func (f *Formatter) Languages() []language.Tag {
	return append([]language.Tag(nil), f.languages...)
}

// FormatNumber renders n with the locale's digits. Arabic locales use
// Arabic-Indic digits, every other locale ASCII.
func (f *Formatter) FormatNumber(n int, tag language.Tag) string {
	return localizeDigits(strconv.Itoa(n), tag)
}

// FormatHeadlineDate renders the selected date shown above the calendar:
// "d MMMM" for Arabic, "E, MMM d" otherwise.
func (f *Formatter) FormatHeadlineDate(d hijri.Date, tag language.Tag) string {
	if IsArabic(tag) {
		return f.FormatDate(d, config.PatternHeadlineArabic, tag)
	}
	return f.FormatDate(d, config.PatternHeadline, tag)
}

// FormatMonthYear renders a month title such as "Ramadan 1447".
func (f *Formatter) FormatMonthYear(d hijri.Date, tag language.Tag) string {
	return f.FormatDate(d, config.PatternMonthYear, tag)
}

// NarrowWeekdayNames returns the seven narrow weekday names starting with
// Saturday, matching the grid's columns.
func (f *Formatter) NarrowWeekdayNames(tag language.Tag) []string {
	names := make([]string, config.DaysPerWeek)
	for col := range names {
		// Column 0 is Saturday, index 6 in the Sunday-first tables.
		idx := (col + config.DaysPerWeek - 1) % config.DaysPerWeek
		names[col] = f.message(tag,
			fmt.Sprintf(config.FormatTKeyWeekdayNarrow, config.WeekdayKeySuffixes[idx]),
			config.FallbackWeekdayNarrow[idx])
	}
	return names
}

// MonthName returns the full name of a month in [1, 12].
func (f *Formatter) MonthName(month int, tag language.Tag) string {
	if month < 1 || month > config.MonthsPerYear {
		return f.FormatNumber(month, tag)
	}
	return f.message(tag, fmt.Sprintf(config.FormatTKeyMonth, month), config.FallbackMonthNames[month-1])
}

// ShortMonthName returns the abbreviated name of a month in [1, 12].
func (f *Formatter) ShortMonthName(month int, tag language.Tag) string {
	if month < 1 || month > config.MonthsPerYear {
		return f.FormatNumber(month, tag)
	}
	return f.message(tag, fmt.Sprintf(config.FormatTKeyMonthShort, month), config.FallbackMonthShortNames[month-1])
}

// WeekdayName returns the full name of an ISO weekday (1=Monday .. 7=Sunday).
func (f *Formatter) WeekdayName(isoWeekday int, tag language.Tag) string {
	idx := isoWeekday % config.DaysPerWeek
	return f.message(tag,
		fmt.Sprintf(config.FormatTKeyWeekdayLong, config.WeekdayKeySuffixes[idx]),
		config.FallbackWeekdayLong[idx])
}

// ShortWeekdayName returns the abbreviated name of an ISO weekday.
func (f *Formatter) ShortWeekdayName(isoWeekday int, tag language.Tag) string {
	idx := isoWeekday % config.DaysPerWeek
	return f.message(tag,
		fmt.Sprintf(config.FormatTKeyWeekdayShort, config.WeekdayKeySuffixes[idx]),
		config.FallbackWeekdayShort[idx])
}

// Strings returns the picker texts for the locale.
func (f *Formatter) Strings(tag language.Tag) Strings {
	return Strings{
		Title:           f.message(tag, config.TKeyTitle, config.FallbackTitle),
		HeadlineDefault: f.message(tag, config.TKeyHeadlineDefault, config.FallbackHeadlineDefault),
		NextMonth:       f.message(tag, config.TKeyNextMonth, config.FallbackNextMonth),
		PreviousMonth:   f.message(tag, config.TKeyPreviousMonth, config.FallbackPreviousMonth),
		ChangeYear:      f.message(tag, config.TKeyChangeYear, config.FallbackChangeYear),
		Confirm:         f.message(tag, config.TKeyConfirm, config.FallbackConfirm),
		Dismiss:         f.message(tag, config.TKeyDismiss, config.FallbackDismiss),
		WindowTitle:     f.message(tag, config.TKeyWinTitle, config.FallbackWinTitle),
		OpenPicker:      f.message(tag, config.TKeyOpenPicker, config.FallbackOpenPicker),
		NoDate:          f.message(tag, config.TKeyNoDate, config.FallbackNoDate),
		Language:        f.message(tag, config.TKeyLblLanguage, config.FallbackLanguage),
		FeedCalendar:    f.message(tag, config.TKeyFeedCalName, config.FallbackFeedCalName),
	}
}

func (f *Formatter) localizer(tag language.Tag) *i18n.Localizer {
	key := tag.String()

	f.mu.RLock()
	loc, ok := f.localizers[key]
	f.mu.RUnlock()
	if ok {
		return loc
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if loc, ok = f.localizers[key]; !ok {
		loc = i18n.NewLocalizer(f.bundle, key)
		f.localizers[key] = loc
	}
	return loc
}

// message resolves a translation, falling back to the built-in English text.
func (f *Formatter) message(tag language.Tag, id, fallback string) string {
	if f.bundle == nil {
		return fallback
	}
	msg, err := f.localizer(tag).Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if err != nil {
		slog.Debug(config.ErrFormatFallback,
			config.LogKeyComponent, config.CompFormat,
			config.LogKeyLang, tag.String(),
			config.LogKeyKey, id,
			config.LogKeyError, err,
		)
	}
	if msg == "" {
		return fallback
	}
	return msg
}
