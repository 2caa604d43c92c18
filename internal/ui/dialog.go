package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/helmy2/go-hijri-picker/internal/format"
	"github.com/helmy2/go-hijri-picker/internal/hijri"
	"github.com/helmy2/go-hijri-picker/internal/picker"
)

// NewPickerDialog wraps a DatePicker in a confirm/dismiss dialog. onConfirm
// runs when the user confirms while a date is selected.
func NewPickerDialog(parent fyne.Window, s *picker.State, f *format.Formatter, colors Colors, onConfirm func(hijri.Date)) (*dialog.ConfirmDialog, *DatePicker) {
	str := f.Strings(s.Locale())
	dp := NewDatePicker(s, f, colors)

	d := dialog.NewCustomConfirm("", str.Confirm, str.Dismiss, dp, func(ok bool) {
		dp.Detach()

		selected, has := s.Selected()
		if !ok || !has {
			slog.Debug(config.MsgPickerClosed, config.LogKeyComponent, config.CompUI)
			return
		}

		slog.Info(config.MsgDateConfirmed,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyDate, selected.String(),
		)
		if onConfirm != nil {
			onConfirm(selected)
		}
	}, parent)

	return d, dp
}

// ShowPickerDialog creates and shows the picker dialog.
func ShowPickerDialog(parent fyne.Window, s *picker.State, f *format.Formatter, colors Colors, onConfirm func(hijri.Date)) *dialog.ConfirmDialog {
	d, _ := NewPickerDialog(parent, s, f, colors, onConfirm)
	d.Show()
	return d
}
