package format

import (
	"fmt"
	"strings"

	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/helmy2/go-hijri-picker/internal/hijri"
	"golang.org/x/text/language"
)

const quote = '\''

// FormatDate renders d with a CLDR-style pattern.
//
// Supported fields:
//
//	y, yyyy  year        yy  two-digit year
//	M        month       MM  zero-padded month
//	MMM      short name  MMMM full month name
//	d        day         dd  zero-padded day
//	E..EEE   short weekday, EEEE full weekday
//
// Text between single quotes is copied verbatim and '' emits a quote, both
// inside and outside quoted text. Any other character is a literal.
func (f *Formatter) FormatDate(d hijri.Date, pattern string, tag language.Tag) string {
	var b strings.Builder
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		r := runes[i]

		if r == quote {
			if i+1 < len(runes) && runes[i+1] == quote {
				b.WriteRune(quote)
				i += 2
				continue
			}
			i = literal(&b, runes, i+1)
			continue
		}

		if !isField(r) {
			b.WriteRune(r)
			i++
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}
		b.WriteString(f.field(d, r, n, tag))
		i += n
	}
	return b.String()
}

// literal copies a quoted run starting after its opening quote and returns
// the index past the closing one. Inside the run '' is a quote.
func literal(b *strings.Builder, runes []rune, i int) int {
	for i < len(runes) {
		if runes[i] != quote {
			b.WriteRune(runes[i])
			i++
			continue
		}
		if i+1 < len(runes) && runes[i+1] == quote {
			b.WriteRune(quote)
			i += 2
			continue
		}
		return i + 1
	}
	return i
}

func isField(r rune) bool {
	return r == 'y' || r == 'M' || r == 'd' || r == 'E'
}

func (f *Formatter) field(d hijri.Date, letter rune, width int, tag language.Tag) string {
	switch letter {
	case 'y':
		if width == 2 {
			return f.padded(d.Year()%100, tag)
		}
		return f.FormatNumber(d.Year(), tag)
	case 'M':
		switch {
		case width >= 4:
			return f.MonthName(d.Month(), tag)
		case width == 3:
			return f.ShortMonthName(d.Month(), tag)
		case width == 2:
			return f.padded(d.Month(), tag)
		}
		return f.FormatNumber(d.Month(), tag)
	case 'd':
		if width >= 2 {
			return f.padded(d.Day(), tag)
		}
		return f.FormatNumber(d.Day(), tag)
	case 'E':
		if width >= 4 {
			return f.WeekdayName(d.Weekday(), tag)
		}
		return f.ShortWeekdayName(d.Weekday(), tag)
	}
	return ""
}

func (f *Formatter) padded(n int, tag language.Tag) string {
	return localizeDigits(fmt.Sprintf(config.FormatTwoDigits, n), tag)
}
