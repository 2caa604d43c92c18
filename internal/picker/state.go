package picker

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/helmy2/go-hijri-picker/internal/hijri"
	"golang.org/x/text/language"
)

// ViewMode is what the picker body shows.
type ViewMode int

const (
	ModeMonth ViewMode = iota
	ModeYear
)

func (m ViewMode) String() string {
	if m == ModeYear {
		return "year"
	}
	return "month"
}

// Event tells listeners which transition happened.
type Event int

const (
	EventDaySelected Event = iota + 1
	EventYearSelected
	EventModeToggled
	EventMonthChanged
)

// YearRange is an inclusive range of years offered by the year grid.
type YearRange struct {
	Min int
	Max int
}

// Contains reports whether year lies within the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// Len returns the number of years in the range.
func (r YearRange) Len() int {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min + 1
}

type listener struct {
	id int
	fn func(Event)
}

// State is the picker state machine: selected date, displayed month and
// view mode. Fields change only through its transition methods.
// A State is owned by one UI surface and is not safe for concurrent use.
type State struct {
	provider  hijri.Provider
	locale    language.Tag
	yearRange *YearRange

	selected    hijri.Date
	hasSelected bool
	displayed   hijri.YearMonth
	mode        ViewMode

	listeners []listener
	nextID    int
}

// Option configures a State.
type Option func(*State) error

// WithInitialDate preselects d and displays its month.
func WithInitialDate(d hijri.Date) Option {
	return func(s *State) error {
		if d.IsZero() {
			return nil
		}
		s.selected = d
		s.hasSelected = true
		return nil
	}
}

// WithLocale sets the locale renderers should use.
func WithLocale(tag language.Tag) Option {
	return func(s *State) error {
		s.locale = tag
		return nil
	}
}

// WithYearRange fixes the years offered by the year grid.
func WithYearRange(minYear, maxYear int) Option {
	return func(s *State) error {
		if maxYear < minYear {
			return fmt.Errorf("%s: %d > %d", config.ErrInvalidYearRange, minYear, maxYear)
		}
		s.yearRange = &YearRange{Min: minYear, Max: maxYear}
		return nil
	}
}

// NewState creates a picker in month mode. Without an initial date the
// provider's current month is displayed and nothing is selected.
func NewState(p hijri.Provider, opts ...Option) (*State, error) {
	s := &State{
		provider: p,
		locale:   language.English,
		mode:     ModeMonth,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.hasSelected {
		s.displayed = s.selected.YearMonth()
	} else if now := p.Now(); !now.IsZero() {
		s.displayed = now.YearMonth()
	} else {
		minYear, _ := hijri.SupportedYears(p)
		s.displayed = hijri.YearMonth{Year: minYear, Month: 1}
	}

	slog.Debug(config.MsgStateCreated,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyYear, s.displayed.Year,
		config.LogKeyMonth, s.displayed.Month,
		config.LogKeyLang, s.locale.String(),
	)
	return s, nil
}

// Selected returns the selected date, if any.
func (s *State) Selected() (hijri.Date, bool) {
	return s.selected, s.hasSelected
}

// Displayed returns the month currently shown.
func (s *State) Displayed() hijri.YearMonth { return s.displayed }

// Mode returns the current view mode.
func (s *State) Mode() ViewMode { return s.mode }

// Locale returns the locale the picker renders with.
func (s *State) Locale() language.Tag { return s.locale }

// Provider returns the calendar the state resolves dates with.
func (s *State) Provider() hijri.Provider { return s.provider }

// YearRange returns the configured range, or the displayed year plus or
// minus config.DefaultYearSpan limited to the provider's years.
func (s *State) YearRange() YearRange {
	if s.yearRange != nil {
		return *s.yearRange
	}
	minYear, maxYear := hijri.SupportedYears(s.provider)
	return YearRange{
		Min: max(s.displayed.Year-config.DefaultYearSpan, minYear),
		Max: min(s.displayed.Year+config.DefaultYearSpan, maxYear),
	}
}

// Years lists the years of YearRange in ascending order.
func (s *State) Years() []int {
	r := s.YearRange()
	years := make([]int, 0, r.Len())
	for y := r.Min; y <= r.Max; y++ {
		years = append(years, y)
	}
	return years
}

// YearIndex returns the position of the displayed year in Years, or 0 when
// it falls outside the range.
func (s *State) YearIndex() int {
	r := s.YearRange()
	if !r.Contains(s.displayed.Year) {
		return 0
	}
	return s.displayed.Year - r.Min
}

// Page returns the page index of the displayed month.
func (s *State) Page() int {
	return hijri.PageOf(s.displayed)
}

// SelectDay selects d and displays its month. The mode is unchanged.
func (s *State) SelectDay(d hijri.Date) {
	s.selected = d
	s.hasSelected = true
	s.displayed = d.YearMonth()

	slog.Debug(config.MsgDaySelected,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyDate, d.String(),
	)
	s.notify(EventDaySelected)
}

// SelectYear moves the selection to the same month of year, keeping the
// selected day (or day 1) clamped to the month's length, and returns to
// month mode. On error the state is left untouched.
func (s *State) SelectYear(year int) error {
	month := s.displayed.Month

	day := 1
	if s.hasSelected {
		day = s.selected.Day()
	}

	length, err := s.provider.LengthOfMonth(year, month)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrYearSelect, err)
	}
	if day > length {
		slog.Debug(config.MsgDayClamped,
			config.LogKeyComponent, config.CompPicker,
			config.LogKeyDay, day,
			config.LogKeyCount, length,
		)
		day = length
	}

	d, err := s.provider.Of(year, month, day)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrYearSelect, err)
	}

	s.selected = d
	s.hasSelected = true
	s.displayed = d.YearMonth()
	s.mode = ModeMonth

	slog.Debug(config.MsgYearSelected,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyYear, year,
		config.LogKeyDate, d.String(),
	)
	s.notify(EventYearSelected)
	return nil
}

// ToggleMode flips between month and year mode.
func (s *State) ToggleMode() {
	if s.mode == ModeMonth {
		s.mode = ModeYear
	} else {
		s.mode = ModeMonth
	}

	slog.Debug(config.MsgModeToggled,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyMode, s.mode.String(),
	)
	s.notify(EventModeToggled)
}

// NextMonth displays the following month.
func (s *State) NextMonth() {
	s.setDisplayed(hijri.PlusMonths(s.displayed, 1))
}

// PreviousMonth displays the preceding month.
func (s *State) PreviousMonth() {
	s.setDisplayed(hijri.PlusMonths(s.displayed, -1))
}

// SetDisplayed shows ym without touching the selection or the mode.
func (s *State) SetDisplayed(ym hijri.YearMonth) error {
	if !ym.Valid() {
		return fmt.Errorf("%s: %w", config.ErrInvalidYearMonth, errors.New(ym.String()))
	}
	s.setDisplayed(ym)
	return nil
}

// SetPage shows the month of a page index, as reported by a paging UI.
func (s *State) SetPage(page int) {
	s.setDisplayed(hijri.YearMonthAt(page))
}

func (s *State) setDisplayed(ym hijri.YearMonth) {
	if ym == s.displayed {
		return
	}
	s.displayed = ym

	slog.Debug(config.MsgMonthChanged,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyYear, ym.Year,
		config.LogKeyMonth, ym.Month,
	)
	s.notify(EventMonthChanged)
}

// Grid returns the displayed month's cells with Selected and Today set.
func (s *State) Grid() ([]Cell, error) {
	cells, err := MonthCells(s.provider, s.displayed.Year, s.displayed.Month)
	if err != nil {
		return nil, err
	}
	s.mark(cells)
	return cells, nil
}

// GridFrom is Grid served through a cache.
func (s *State) GridFrom(cache *GridCache) ([]Cell, error) {
	cells, err := cache.Cells(s.displayed)
	if err != nil {
		return nil, err
	}
	s.mark(cells)
	return cells, nil
}

func (s *State) mark(cells []Cell) {
	today := s.provider.Now().Key()
	for i := range cells {
		if cells[i].Empty {
			continue
		}
		key := cells[i].Date.Key()
		cells[i].Selected = s.hasSelected && key == s.selected.Key()
		cells[i].Today = key == today
	}
}

// Subscribe registers fn to be called after every transition. The returned
// function removes it.
func (s *State) Subscribe(fn func(Event)) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *State) notify(e Event) {
	for _, l := range append([]listener(nil), s.listeners...) {
		l.fn(e)
	}
}
