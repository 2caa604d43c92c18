package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/helmy2/go-hijri-picker/internal/picker"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting || m.hasConfirmed {
		return ""
	}

	tag := m.state.Locale()
	str := m.formatter.Strings(tag)

	headline := str.HeadlineDefault
	if d, ok := m.state.Selected(); ok {
		headline = m.formatter.FormatHeadlineDate(d, tag)
	}

	var body string
	if m.state.Mode() == picker.ModeYear {
		body = m.yearView()
	} else {
		body = m.monthView()
	}

	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(str.Title),
		m.theme.Headline.Render(headline),
		"",
		m.theme.Header.Render(m.monthTitle()),
		body,
		"",
		m.help.View(m.keys),
	))
}

func (m Model) monthTitle() string {
	ym := m.state.Displayed()
	title := ym.String()
	if first, err := m.state.Provider().Of(ym.Year, ym.Month, 1); err == nil {
		title = m.formatter.FormatMonthYear(first, m.state.Locale())
	}
	if m.state.Mode() == picker.ModeYear {
		return title + config.SymbolDropUp
	}
	return config.TermNavPrev + " " + title + " " + config.TermNavNext
}

func (m Model) monthView() string {
	tag := m.state.Locale()
	cell := lipgloss.NewStyle().Width(config.TermCellWidth).Align(lipgloss.Right)

	var b strings.Builder
	for _, name := range m.formatter.NarrowWeekdayNames(tag) {
		b.WriteString(cell.Inherit(m.theme.Weekday).Render(name))
	}

	cells, err := m.state.GridFrom(m.grids)
	if err != nil {
		b.WriteString("\n")
		b.WriteString(m.theme.Dim.Render(err.Error()))
		return b.String()
	}

	for _, week := range picker.Weeks(cells) {
		b.WriteString("\n")
		for _, c := range week {
			b.WriteString(cell.Render(m.dayLabel(c)))
		}
	}
	return b.String()
}

func (m Model) dayLabel(c picker.Cell) string {
	if c.Empty {
		return ""
	}
	label := m.formatter.FormatNumber(c.Date.Day(), m.state.Locale())
	switch {
	case c.Date.Key() == m.cursor.Key():
		return m.theme.Cursor.Render(label)
	case c.Selected:
		return m.theme.Selected.Render(label)
	case c.Today:
		return m.theme.Today.Render(label)
	}
	return m.theme.Day.Render(label)
}

// yearView shows config.YearGridVisibleRows rows of years around the cursor.
func (m Model) yearView() string {
	tag := m.state.Locale()
	years := m.state.Years()
	current := m.state.Displayed().Year
	cell := lipgloss.NewStyle().Width(config.TermYearCellWidth).Align(lipgloss.Center)

	if len(years) == 0 {
		return ""
	}

	cursorRow := (m.yearCursor - years[0]) / config.YearGridColumns
	firstRow := max(cursorRow-config.YearGridVisibleRows/2, 0)
	start := firstRow * config.YearGridColumns
	end := min(start+config.YearGridVisibleRows*config.YearGridColumns, len(years))

	var b strings.Builder
	b.WriteString(m.yearInput.View())
	for i, year := range years[start:end] {
		if i%config.YearGridColumns == 0 {
			b.WriteString("\n")
		}

		label := m.formatter.FormatNumber(year, tag)
		switch {
		case year == m.yearCursor:
			label = m.theme.Cursor.Render(label)
		case year == current:
			label = m.theme.SelectedYear.Render(label)
		default:
			label = m.theme.Year.Render(label)
		}
		b.WriteString(cell.Render(label))
	}
	return b.String()
}
