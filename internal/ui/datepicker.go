package ui

import (
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/helmy2/go-hijri-picker/internal/format"
	"github.com/helmy2/go-hijri-picker/internal/picker"
)

// DatePicker renders a picker.State: headline, month header, and either the
// Saturday-first day grid or the year grid. It redraws on every state event.
type DatePicker struct {
	widget.BaseWidget

	state     *picker.State
	formatter *format.Formatter
	colors    Colors
	grids     *picker.GridCache

	title    *canvas.Text
	headline *canvas.Text
	monthBtn *widget.Button
	prevBtn  *widget.Button
	nextBtn  *widget.Button
	body     *fyne.Container
	content  *fyne.Container

	weekdays  []*canvas.Text
	dayCells  []*cell // Indexed by day - 1.
	yearCells []*cell
	yearEntry *NumericalEntry
	yearList  *container.Scroll

	unsubscribe func()
}

// NewDatePicker builds the widget and subscribes it to s.
func NewDatePicker(s *picker.State, f *format.Formatter, colors Colors) *DatePicker {
	p := &DatePicker{
		state:     s,
		formatter: f,
		colors:    colors,
		grids:     picker.NewGridCache(s.Provider(), config.GridCacheSize),
	}
	p.ExtendBaseWidget(p)

	p.title = canvas.NewText("", colors.Title)
	p.title.TextSize = theme.CaptionTextSize()

	p.headline = canvas.NewText("", colors.Headline)
	p.headline.TextSize = theme.TextHeadingSize()

	p.monthBtn = widget.NewButton("", s.ToggleMode)
	p.monthBtn.Importance = widget.LowImportance
	p.prevBtn = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), s.PreviousMonth)
	p.nextBtn = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), s.NextMonth)

	p.body = container.NewStack()
	header := container.NewBorder(nil, nil, p.monthBtn, container.NewHBox(p.prevBtn, p.nextBtn))
	p.content = container.NewVBox(p.title, p.headline, widget.NewSeparator(), header, p.body)

	p.unsubscribe = s.Subscribe(func(picker.Event) { p.render() })
	p.render()
	return p
}

// CreateRenderer implements fyne.Widget.
func (p *DatePicker) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}

// Detach stops listening to the state.
func (p *DatePicker) Detach() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

func (p *DatePicker) render() {
	tag := p.state.Locale()
	str := p.formatter.Strings(tag)

	p.title.Text = str.Title
	p.title.Refresh()

	if d, ok := p.state.Selected(); ok {
		p.headline.Text = p.formatter.FormatHeadlineDate(d, tag)
	} else {
		p.headline.Text = str.HeadlineDefault
	}
	p.headline.Refresh()

	ym := p.state.Displayed()
	monthTitle := ym.String()
	if first, err := p.state.Provider().Of(ym.Year, ym.Month, 1); err == nil {
		monthTitle = p.formatter.FormatMonthYear(first, tag)
	}

	if p.state.Mode() == picker.ModeYear {
		p.monthBtn.SetText(monthTitle + config.SymbolDropUp)
		p.prevBtn.Hide()
		p.nextBtn.Hide()
		p.body.Objects = []fyne.CanvasObject{p.yearView(str)}
	} else {
		p.monthBtn.SetText(monthTitle + config.SymbolDropDown)
		p.prevBtn.Show()
		p.nextBtn.Show()
		p.body.Objects = []fyne.CanvasObject{p.monthView()}
	}
	p.body.Refresh()
}

func (p *DatePicker) monthView() fyne.CanvasObject {
	tag := p.state.Locale()

	p.weekdays = p.weekdays[:0]
	header := container.NewGridWithColumns(config.GridColumns)
	for _, name := range p.formatter.NarrowWeekdayNames(tag) {
		t := canvas.NewText(name, p.colors.DayContent)
		t.Alignment = fyne.TextAlignCenter
		t.TextStyle = fyne.TextStyle{Bold: true}
		p.weekdays = append(p.weekdays, t)
		header.Add(t)
	}

	p.dayCells = p.dayCells[:0]
	cells, err := p.state.GridFrom(p.grids)
	if err != nil {
		slog.Error(config.ErrGridBuild,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err,
		)
		return container.NewVBox(header, widget.NewLabel(err.Error()))
	}

	grid := container.NewGridWithColumns(config.GridColumns)
	size := fyne.NewSquareSize(config.DayCellSize)
	for _, c := range cells {
		if c.Empty {
			spacer := canvas.NewRectangle(color.Transparent)
			spacer.SetMinSize(size)
			grid.Add(spacer)
			continue
		}

		d := c.Date
		dc := newCell(p.formatter.FormatNumber(d.Day(), tag), p.dayStyle(c), size, func() {
			p.state.SelectDay(d)
		})
		p.dayCells = append(p.dayCells, dc)
		grid.Add(dc)
	}
	return container.NewVBox(header, grid)
}

func (p *DatePicker) dayStyle(c picker.Cell) cellStyle {
	switch {
	case c.Selected:
		return cellStyle{fill: p.colors.SelectedDayContainer, text: p.colors.OnSelectedDay}
	case c.Today:
		return cellStyle{stroke: p.colors.TodayBorder, text: p.colors.TodayContent}
	}
	return cellStyle{text: p.colors.DayContent}
}

func (p *DatePicker) yearView(str format.Strings) fyne.CanvasObject {
	tag := p.state.Locale()
	current := p.state.Displayed().Year
	r := p.state.YearRange()

	p.yearEntry = NewNumericalEntry()
	p.yearEntry.SetPlaceHolder(str.ChangeYear)
	p.yearEntry.OnSubmitted = func(string) {
		year, err := p.yearEntry.Value()
		if err != nil || !r.Contains(year) {
			return
		}
		p.selectYear(year)
	}

	p.yearCells = p.yearCells[:0]
	grid := container.NewGridWithColumns(config.YearGridColumns)
	size := fyne.NewSize(config.PickerWidth/config.YearGridColumns, config.YearCellHeight)
	for _, year := range p.state.Years() {
		style := cellStyle{text: p.colors.YearContent}
		if year == current {
			style = cellStyle{fill: p.colors.SelectedYearContainer, text: p.colors.OnSelectedYear}
		}
		yc := newCell(p.formatter.FormatNumber(year, tag), style, size, func() { p.selectYear(year) })
		p.yearCells = append(p.yearCells, yc)
		grid.Add(yc)
	}

	p.yearList = container.NewVScroll(grid)
	p.yearList.SetMinSize(fyne.NewSize(config.PickerWidth, config.YearGridHeight))

	// Scroll so the displayed year's row is visible.
	row := p.state.YearIndex() / config.YearGridColumns
	p.yearList.Offset = fyne.NewPos(0, float32(row)*(config.YearCellHeight+theme.Padding()))

	return container.NewBorder(p.yearEntry, nil, nil, nil, p.yearList)
}

func (p *DatePicker) selectYear(year int) {
	if err := p.state.SelectYear(year); err != nil {
		slog.Error(config.ErrYearSelect,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyYear, year,
			config.LogKeyError, err,
		)
	}
}
