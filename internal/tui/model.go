// Package tui is a terminal front-end for picker.State built on Bubble Tea.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/helmy2/go-hijri-picker/internal/format"
	"github.com/helmy2/go-hijri-picker/internal/hijri"
	"github.com/helmy2/go-hijri-picker/internal/picker"
)

// Model drives a picker.State from the keyboard. In month mode the arrow
// keys move a day cursor; in year mode they move a year cursor and digits
// typed jump to a year.
type Model struct {
	state     *picker.State
	formatter *format.Formatter
	grids     *picker.GridCache
	theme     Theme
	keys      keyMap
	help      help.Model
	yearInput textinput.Model

	cursor     hijri.Date
	yearCursor int

	confirmed    hijri.Date
	hasConfirmed bool
	quitting     bool
}

// New creates a terminal picker over s.
func New(s *picker.State, f *format.Formatter) Model {
	input := textinput.New()
	input.Prompt = config.TermYearPrompt
	input.CharLimit = config.TermYearInputLimit
	input.Placeholder = f.Strings(s.Locale()).ChangeYear

	m := Model{
		state:     s,
		formatter: f,
		grids:     picker.NewGridCache(s.Provider(), config.GridCacheSize),
		theme:     DefaultTheme(),
		keys:      newKeyMap(f.Strings(s.Locale()).Confirm),
		help:      help.New(),
		yearInput: input,
	}
	m.cursor = m.initialCursor()
	m.yearCursor = s.Displayed().Year
	return m
}

// WithTheme replaces the styles.
func (m Model) WithTheme(t Theme) Model {
	m.theme = t
	return m
}

// Result returns the confirmed date. ok is false when the user quit.
func (m Model) Result() (d hijri.Date, ok bool) {
	return m.confirmed, m.hasConfirmed
}

// Cursor returns the focused day of month mode.
func (m Model) Cursor() hijri.Date { return m.cursor }

// YearCursor returns the focused year of year mode.
func (m Model) YearCursor() int { return m.yearCursor }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Confirm) {
			return m.confirm()
		}
		if key.Matches(msg, m.keys.Year) {
			m.toggleMode()
			return m, nil
		}
		if m.state.Mode() == picker.ModeYear {
			return m.updateYear(msg)
		}
		return m.updateMonth(msg)
	}
	return m, nil
}

func (m Model) updateMonth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-config.DaysPerWeek)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(config.DaysPerWeek)
	case key.Matches(msg, m.keys.Next):
		m.state.NextMonth()
		m.cursor = m.clampCursor(m.cursor.Day())
	case key.Matches(msg, m.keys.Prev):
		m.state.PreviousMonth()
		m.cursor = m.clampCursor(m.cursor.Day())
	case key.Matches(msg, m.keys.Select):
		if !m.cursor.IsZero() {
			m.state.SelectDay(m.cursor)
		}
	}
	return m, nil
}

func (m Model) updateYear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := m.state.YearRange()

	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveYear(-1, r)
	case key.Matches(msg, m.keys.Right):
		m.moveYear(1, r)
	case key.Matches(msg, m.keys.Up):
		m.moveYear(-config.YearGridColumns, r)
	case key.Matches(msg, m.keys.Down):
		m.moveYear(config.YearGridColumns, r)
	case key.Matches(msg, m.keys.Select):
		year := m.yearCursor
		if typed := m.yearInput.Value(); typed != "" {
			n, err := format.ParseNumber(typed)
			m.yearInput.Reset()
			if err != nil || !r.Contains(n) {
				return m, nil
			}
			year = n
		}
		m.selectYear(year)
	default:
		if msg.Type == tea.KeyBackspace || (msg.Type == tea.KeyRunes && allDigits(msg.Runes)) {
			var cmd tea.Cmd
			m.yearInput, cmd = m.yearInput.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) confirm() (tea.Model, tea.Cmd) {
	d, ok := m.state.Selected()
	if !ok {
		return m, nil
	}
	m.confirmed = d
	m.hasConfirmed = true

	slog.Info(config.MsgDateConfirmed,
		config.LogKeyComponent, config.CompTUI,
		config.LogKeyDate, d.String(),
	)
	return m, tea.Quit
}

func (m *Model) toggleMode() {
	m.state.ToggleMode()
	if m.state.Mode() == picker.ModeYear {
		m.yearCursor = m.state.Displayed().Year
		m.yearInput.Reset()
		m.yearInput.Focus()
	} else {
		m.yearInput.Blur()
	}
}

func (m *Model) selectYear(year int) {
	if err := m.state.SelectYear(year); err != nil {
		slog.Error(config.ErrYearSelect,
			config.LogKeyComponent, config.CompTUI,
			config.LogKeyYear, year,
			config.LogKeyError, err,
		)
		return
	}
	m.yearInput.Blur()
	if d, ok := m.state.Selected(); ok {
		m.cursor = d
	}
}

// moveCursor shifts the day cursor, following it into adjacent months.
func (m *Model) moveCursor(days int) {
	if m.cursor.IsZero() {
		return
	}
	next, err := m.state.Provider().FromEpochDay(m.cursor.EpochDay() + int64(days))
	if err != nil {
		return
	}
	m.cursor = next
	m.state.SetPage(hijri.PageOf(next.YearMonth()))
}

func (m *Model) moveYear(delta int, r picker.YearRange) {
	if next := m.yearCursor + delta; r.Contains(next) {
		m.yearCursor = next
	}
}

// initialCursor focuses the selection, else today when it is displayed,
// else the first of the displayed month.
func (m Model) initialCursor() hijri.Date {
	if d, ok := m.state.Selected(); ok {
		return d
	}
	if now := m.state.Provider().Now(); now.YearMonth() == m.state.Displayed() {
		return now
	}
	return m.clampCursor(1)
}

// clampCursor returns day of the displayed month, clamped to its length.
func (m Model) clampCursor(day int) hijri.Date {
	ym := m.state.Displayed()
	length, err := m.state.Provider().LengthOfMonth(ym.Year, ym.Month)
	if err != nil {
		return hijri.Date{}
	}
	d, err := m.state.Provider().Of(ym.Year, ym.Month, min(max(day, 1), length))
	if err != nil {
		return hijri.Date{}
	}
	return d
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if !format.IsDigit(r) {
			return false
		}
	}
	return len(runes) > 0
}
