package format

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/helmy2/go-hijri-picker/internal/config"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ParseLocale turns a BCP 47 string into a tag. Unknown or empty input
// yields English.
func ParseLocale(s string) language.Tag {
	if strings.TrimSpace(s) == "" {
		return language.English
	}
	tag, err := language.Parse(s)
	if err != nil {
		slog.Warn(config.ErrLocaleParse,
			config.LogKeyComponent, config.CompFormat,
			config.LogKeyValue, s,
			config.LogKeyError, err,
		)
		return language.English
	}
	return tag
}

// IsArabic reports whether the tag's base language is Arabic, whatever the region.
func IsArabic(tag language.Tag) bool {
	base, _ := tag.Base()
	return base.String() == config.LangArabic
}

// LanguageName returns the name of the language in that language,
// e.g. "العربية" for ar.
func LanguageName(tag language.Tag) string {
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return tag.String()
}

// localizeDigits substitutes ASCII digits with the locale's digit glyphs.
// Every other rune, including '-', passes through.
func localizeDigits(s string, tag language.Tag) string {
	if !IsArabic(tag) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return '٠' + (r - '0')
		}
		return r
	}, s)
}

// IsDigit reports whether r is an ASCII or Arabic-Indic digit.
func IsDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= '٠' && r <= '٩')
}

// ParseNumber parses a decimal integer written with either digit set.
func ParseNumber(s string) (int, error) {
	ascii := strings.Map(func(r rune) rune {
		if r >= '٠' && r <= '٩' {
			return '0' + (r - '٠')
		}
		return r
	}, strings.TrimSpace(s))
	return strconv.Atoi(ascii)
}
