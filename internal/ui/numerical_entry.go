package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/helmy2/go-hijri-picker/internal/format"
)

// NumericalEntry is an Entry that only accepts digits, ASCII or Arabic-Indic.
// It is used to jump to a year.
type NumericalEntry struct {
	widget.Entry
}

// NewNumericalEntry creates a new instance of NumericalEntry.
func NewNumericalEntry() *NumericalEntry {
	entry := &NumericalEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune filters keystrokes. Pasted text is only checked by Value.
func (e *NumericalEntry) TypedRune(r rune) {
	if format.IsDigit(r) {
		e.Entry.TypedRune(r)
	}
}

// Keyboard requests the numeric keypad on mobile devices.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

// Value parses the text, accepting both digit sets.
func (e *NumericalEntry) Value() (int, error) {
	return format.ParseNumber(e.Text)
}
