package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/helmy2/go-hijri-picker/internal/feed"
	"github.com/helmy2/go-hijri-picker/internal/format"
	"github.com/helmy2/go-hijri-picker/internal/hijri"
	"github.com/helmy2/go-hijri-picker/internal/picker"
	"github.com/helmy2/go-hijri-picker/internal/server"
	"golang.org/x/text/language"
)

// PickerApp is the desktop sample: a window showing the confirmed date,
// a button opening the picker and a language selector.
type PickerApp struct {
	App       fyne.App
	Window    fyne.Window
	Ctx       context.Context
	Provider  hijri.Provider
	Formatter *format.Formatter
	Clock     hijri.Clock

	// Server is optional. When set, Run serves the feed and month API.
	Server *server.CalendarServer

	Locale    language.Tag
	YearRange *picker.YearRange

	selected    hijri.Date
	hasSelected bool

	dateLabel  *widget.Label
	langLabel  *widget.Label
	openButton *widget.Button
	langSelect *widget.Select
	langByName map[string]language.Tag
}

// NewPickerApp constructs the application and wires dependencies.
func NewPickerApp(a fyne.App, ctx context.Context, p hijri.Provider, f *format.Formatter, srv *server.CalendarServer) *PickerApp {
	return &PickerApp{
		App:       a,
		Ctx:       ctx,
		Provider:  p,
		Formatter: f,
		Clock:     hijri.RealClock{},
		Server:    srv,
		Locale:    language.English,
	}
}

// Run launches the optional background services and the main UI loop.
func (app *PickerApp) Run() {
	if app.Server != nil {
		go func() {
			if err := app.Server.Start(app.Ctx); err != nil {
				slog.Error(config.ErrServerStartup,
					config.LogKeyError, err,
					config.LogKeyComponent, config.CompUI)
			}
		}()

		w := &feed.Worker{
			Generator: &feed.Generator{
				Provider:  app.Provider,
				Formatter: app.Formatter,
				Clock:     app.Clock,
				Locale:    app.Locale,
			},
			Publisher: app.Server,
			Window:    feed.DefaultWindow(),
			Interval:  config.FeedRefreshInterval,
		}
		go w.Run(app.Ctx)
	}

	app.BuildMainWindow()
	app.Window.ShowAndRun()
}

// BuildMainWindow creates the main window once and returns it.
func (app *PickerApp) BuildMainWindow() fyne.Window {
	if app.Window != nil {
		return app.Window
	}

	app.Window = app.App.NewWindow("")
	app.Window.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))

	app.dateLabel = widget.NewLabel("")
	app.dateLabel.Alignment = fyne.TextAlignCenter
	app.dateLabel.TextStyle = fyne.TextStyle{Bold: true}

	app.openButton = widget.NewButton("", func() { app.OpenPicker() })
	app.openButton.Importance = widget.HighImportance

	app.langByName = make(map[string]language.Tag)
	var names []string
	for _, tag := range app.Formatter.Languages() {
		name := format.LanguageName(tag)
		app.langByName[name] = tag
		names = append(names, name)
	}
	app.langSelect = widget.NewSelect(names, func(name string) {
		if tag, ok := app.langByName[name]; ok {
			app.SetLocale(tag)
		}
	})
	app.langLabel = widget.NewLabel("")

	app.Window.SetContent(container.NewPadded(container.NewVBox(
		app.dateLabel,
		app.openButton,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, app.langLabel, nil, app.langSelect),
	)))

	app.langSelect.SetSelected(format.LanguageName(app.Locale))
	app.refreshTexts()
	return app.Window
}

// SetLocale switches the language of the window and of pickers opened next.
func (app *PickerApp) SetLocale(tag language.Tag) {
	if tag == app.Locale {
		return
	}
	app.Locale = tag

	slog.Info(config.MsgLocaleChanged,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyLang, tag.String())

	app.refreshTexts()
}

// OpenPicker shows the picker dialog, preselecting the last confirmed date.
func (app *PickerApp) OpenPicker() *dialog.ConfirmDialog {
	opts := []picker.Option{picker.WithLocale(app.Locale)}
	if app.hasSelected {
		opts = append(opts, picker.WithInitialDate(app.selected))
	}
	if app.YearRange != nil {
		opts = append(opts, picker.WithYearRange(app.YearRange.Min, app.YearRange.Max))
	}

	s, err := picker.NewState(app.Provider, opts...)
	if err != nil {
		slog.Error(config.ErrInvalidYearRange,
			config.LogKeyError, err,
			config.LogKeyComponent, config.CompUI)
		dialog.ShowError(err, app.Window)
		return nil
	}

	slog.Debug(config.MsgPickerOpened,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyLang, app.Locale.String())

	return ShowPickerDialog(app.Window, s, app.Formatter, CurrentColors(), app.confirm)
}

// Confirmed returns the last date confirmed in the picker.
func (app *PickerApp) Confirmed() (hijri.Date, bool) {
	return app.selected, app.hasSelected
}

func (app *PickerApp) confirm(d hijri.Date) {
	app.selected = d
	app.hasSelected = true
	app.refreshTexts()
}

func (app *PickerApp) refreshTexts() {
	if app.Window == nil {
		return
	}
	str := app.Formatter.Strings(app.Locale)

	app.Window.SetTitle(str.WindowTitle)
	app.openButton.SetText(str.OpenPicker)
	app.langLabel.SetText(str.Language)

	if app.hasSelected {
		app.dateLabel.SetText(app.Formatter.FormatDate(app.selected, config.PatternFeedSummary, app.Locale))
	} else {
		app.dateLabel.SetText(str.NoDate)
	}
}
