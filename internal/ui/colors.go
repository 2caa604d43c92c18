package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Colors holds the colour roles used by the picker.
type Colors struct {
	Title                 color.Color
	Headline              color.Color
	SelectedDayContainer  color.Color
	OnSelectedDay         color.Color
	TodayBorder           color.Color
	DayContent            color.Color
	TodayContent          color.Color
	SelectedYearContainer color.Color
	OnSelectedYear        color.Color
	YearContent           color.Color
}

// DefaultColors derives the roles from a theme.
func DefaultColors(th fyne.Theme, v fyne.ThemeVariant) Colors {
	fg := th.Color(theme.ColorNameForeground, v)
	primary := th.Color(theme.ColorNamePrimary, v)
	onPrimary := th.Color(theme.ColorNameForegroundOnPrimary, v)

	return Colors{
		Title:                 th.Color(theme.ColorNamePlaceHolder, v),
		Headline:              fg,
		SelectedDayContainer:  primary,
		OnSelectedDay:         onPrimary,
		TodayBorder:           primary,
		DayContent:            fg,
		TodayContent:          primary,
		SelectedYearContainer: primary,
		OnSelectedYear:        onPrimary,
		YearContent:           fg,
	}
}

// CurrentColors uses the running app's theme and variant.
func CurrentColors() Colors {
	return DefaultColors(theme.Current(), fyne.CurrentApp().Settings().ThemeVariant())
}
