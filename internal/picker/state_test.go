package picker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/helmy2/go-hijri-picker/internal/hijri"
	"github.com/helmy2/go-hijri-picker/internal/picker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newState(t *testing.T, opts ...picker.Option) *picker.State {
	t.Helper()
	s, err := picker.NewState(newProvider(), opts...)
	require.NoError(t, err)
	return s
}

func TestNewState_NoInitialDate(t *testing.T) {
	s := newState(t)

	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Equal(t, hijri.YearMonth{Year: 1447, Month: 9}, s.Displayed(), "Displays the current month")
	assert.Equal(t, picker.ModeMonth, s.Mode())
	assert.Equal(t, "en", s.Locale().String())
	assert.Equal(t, picker.YearRange{Min: 1397, Max: 1497}, s.YearRange())
}

func TestNewState_InitialDate(t *testing.T) {
	initial := mustDate(t, 1447, 9, 10)
	s := newState(t, picker.WithInitialDate(initial), picker.WithLocale(language.MustParse("ar")))

	selected, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, initial, selected)
	assert.Equal(t, hijri.YearMonth{Year: 1447, Month: 9}, s.Displayed())
	assert.Equal(t, "ar", s.Locale().String())
}

func TestNewState_InvalidYearRange(t *testing.T) {
	_, err := picker.NewState(newProvider(), picker.WithYearRange(1500, 1400))
	assert.Error(t, err)
}

func TestSelectDay(t *testing.T) {
	s := newState(t, picker.WithYearRange(1400, 1500))
	s.ToggleMode()

	d := mustDate(t, 1447, 10, 5)
	s.SelectDay(d)

	selected, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, d, selected)
	assert.Equal(t, hijri.YearMonth{Year: 1447, Month: 10}, s.Displayed())
	assert.Equal(t, picker.ModeYear, s.Mode(), "Selecting a day does not change the mode")
}

func TestSelectYear(t *testing.T) {
	tests := []struct {
		name    string
		initial hijri.DateKey
		year    int
		want    hijri.DateKey
	}{
		{"Day 30 clamped in a common year", hijri.DateKey{Year: 1447, Month: 12, Day: 30}, 1448, hijri.DateKey{Year: 1448, Month: 12, Day: 29}},
		{"Day kept when the month is long enough", hijri.DateKey{Year: 1446, Month: 12, Day: 29}, 1445, hijri.DateKey{Year: 1445, Month: 12, Day: 29}},
		{"Day 30 of a 30-day month", hijri.DateKey{Year: 1447, Month: 9, Day: 30}, 1448, hijri.DateKey{Year: 1448, Month: 9, Day: 30}},
		{"Backwards", hijri.DateKey{Year: 1447, Month: 2, Day: 15}, 1400, hijri.DateKey{Year: 1400, Month: 2, Day: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := mustDate(t, tt.initial.Year, tt.initial.Month, tt.initial.Day)
			s := newState(t, picker.WithInitialDate(initial), picker.WithYearRange(1400, 1500))
			s.ToggleMode()

			require.NoError(t, s.SelectYear(tt.year))

			selected, ok := s.Selected()
			require.True(t, ok)
			assert.Equal(t, tt.want, selected.Key())
			assert.Equal(t, hijri.YearMonth{Year: tt.want.Year, Month: tt.want.Month}, s.Displayed())
			assert.Equal(t, picker.ModeMonth, s.Mode())
		})
	}
}

func TestSelectYear_NoSelectionUsesDayOne(t *testing.T) {
	s := newState(t, picker.WithYearRange(1400, 1500))
	require.NoError(t, s.SetDisplayed(hijri.YearMonth{Year: 1447, Month: 9}))
	s.ToggleMode()

	require.NoError(t, s.SelectYear(1448))

	selected, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, hijri.DateKey{Year: 1448, Month: 9, Day: 1}, selected.Key())
	assert.Equal(t, picker.ModeMonth, s.Mode())
}

func TestSelectYear_ErrorLeavesStateUntouched(t *testing.T) {
	initial := mustDate(t, 1447, 9, 10)
	s := newState(t, picker.WithInitialDate(initial))
	s.ToggleMode()

	events := 0
	s.Subscribe(func(picker.Event) { events++ })

	err := s.SelectYear(10000)
	require.Error(t, err)
	assert.ErrorIs(t, err, hijri.ErrInvalidDate)

	selected, _ := s.Selected()
	assert.Equal(t, initial, selected)
	assert.Equal(t, hijri.YearMonth{Year: 1447, Month: 9}, s.Displayed())
	assert.Equal(t, picker.ModeYear, s.Mode())
	assert.Zero(t, events)
}

func TestSelectYear_ProviderFailure(t *testing.T) {
	backendErr := errors.New("backend unavailable")

	p := new(MockProvider)
	p.On("Now").Return(mustDate(t, 1447, 9, 1))
	p.On("LengthOfMonth", 1448, 9).Return(0, backendErr)

	s, err := picker.NewState(p)
	require.NoError(t, err)

	assert.ErrorIs(t, s.SelectYear(1448), backendErr)
	_, ok := s.Selected()
	assert.False(t, ok)
	p.AssertExpectations(t)
}

func TestToggleMode(t *testing.T) {
	s := newState(t)
	initial := s.Displayed()

	s.ToggleMode()
	assert.Equal(t, picker.ModeYear, s.Mode())
	s.ToggleMode()
	assert.Equal(t, picker.ModeMonth, s.Mode())
	assert.Equal(t, initial, s.Displayed(), "Toggling changes nothing else")
}

func TestMonthNavigation(t *testing.T) {
	tests := []struct {
		name  string
		start hijri.YearMonth
		next  bool
		want  hijri.YearMonth
	}{
		{"Next from December rolls the year", hijri.YearMonth{Year: 1447, Month: 12}, true, hijri.YearMonth{Year: 1448, Month: 1}},
		{"Previous from January rolls the year", hijri.YearMonth{Year: 1447, Month: 1}, false, hijri.YearMonth{Year: 1446, Month: 12}},
		{"Next within a year", hijri.YearMonth{Year: 1447, Month: 5}, true, hijri.YearMonth{Year: 1447, Month: 6}},
		{"Previous within a year", hijri.YearMonth{Year: 1447, Month: 6}, false, hijri.YearMonth{Year: 1447, Month: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected := mustDate(t, 1440, 1, 1)
			s := newState(t, picker.WithInitialDate(selected))
			require.NoError(t, s.SetDisplayed(tt.start))

			if tt.next {
				s.NextMonth()
			} else {
				s.PreviousMonth()
			}

			assert.Equal(t, tt.want, s.Displayed())
			got, _ := s.Selected()
			assert.Equal(t, selected, got, "Navigation does not touch the selection")
		})
	}
}

func TestSetDisplayed(t *testing.T) {
	selected := mustDate(t, 1447, 9, 10)
	s := newState(t, picker.WithInitialDate(selected))
	s.ToggleMode()

	require.NoError(t, s.SetDisplayed(hijri.YearMonth{Year: 1450, Month: 3}))
	assert.Equal(t, hijri.YearMonth{Year: 1450, Month: 3}, s.Displayed())
	assert.Equal(t, picker.ModeYear, s.Mode())
	got, _ := s.Selected()
	assert.Equal(t, selected, got)

	assert.Error(t, s.SetDisplayed(hijri.YearMonth{Year: 1450, Month: 13}))
	assert.Equal(t, hijri.YearMonth{Year: 1450, Month: 3}, s.Displayed())
}

func TestPages(t *testing.T) {
	s := newState(t)

	page := s.Page()
	assert.Equal(t, hijri.PageOf(hijri.YearMonth{Year: 1447, Month: 9}), page)

	s.SetPage(page + 4)
	assert.Equal(t, hijri.YearMonth{Year: 1448, Month: 1}, s.Displayed())
	assert.Equal(t, page+4, s.Page())
}

func TestYears(t *testing.T) {
	s := newState(t, picker.WithYearRange(1400, 1500))

	years := s.Years()
	require.Len(t, years, 101)
	assert.Equal(t, 1400, years[0])
	assert.Equal(t, 1500, years[100])
	assert.Equal(t, 47, s.YearIndex())
	assert.Equal(t, 1447, years[s.YearIndex()])

	require.NoError(t, s.SetDisplayed(hijri.YearMonth{Year: 1600, Month: 1}))
	assert.Equal(t, 0, s.YearIndex(), "Years outside the range fall back to the first entry")
}

func TestYearRange_DefaultFollowsDisplayedYear(t *testing.T) {
	s := newState(t)

	require.NoError(t, s.SetDisplayed(hijri.YearMonth{Year: 1300, Month: 1}))
	r := s.YearRange()
	assert.Equal(t, picker.YearRange{Min: 1250, Max: 1350}, r)
	assert.Equal(t, 101, r.Len())
	assert.Len(t, s.Years(), 101)
	assert.Equal(t, 50, s.YearIndex())
}

func TestYearRange_DefaultStaysInsideProviderYears(t *testing.T) {
	p := hijri.NewUmmAlQura(hijri.WithClock(hijri.FixedClock(today)), hijri.WithLocation(time.UTC))
	s, err := picker.NewState(p)
	require.NoError(t, err)

	require.NoError(t, s.SetDisplayed(hijri.YearMonth{Year: 1470, Month: 1}))
	assert.Equal(t, picker.YearRange{Min: 1420, Max: 1500}, s.YearRange())

	require.NoError(t, s.SetDisplayed(hijri.YearMonth{Year: 1360, Month: 1}))
	assert.Equal(t, picker.YearRange{Min: 1356, Max: 1410}, s.YearRange())
}

func TestNewState_ClockOutsideCalendar(t *testing.T) {
	early := time.Date(500, 6, 1, 12, 0, 0, 0, time.UTC)

	p := hijri.NewUmmAlQura(hijri.WithClock(hijri.FixedClock(early)), hijri.WithLocation(time.UTC))
	s, err := picker.NewState(p)
	require.NoError(t, err)
	assert.Equal(t, hijri.YearMonth{Year: 1356, Month: 1}, s.Displayed())

	cells, err := s.Grid()
	require.NoError(t, err)
	assert.Len(t, cells, 42)
}

func TestNewState_ZeroNowFallsBackToFirstYear(t *testing.T) {
	p := new(MockProvider)
	p.On("Now").Return(hijri.Date{})

	s, err := picker.NewState(p)
	require.NoError(t, err)
	assert.Equal(t, hijri.YearMonth{Year: 1, Month: 1}, s.Displayed())
	assert.True(t, s.Displayed().Valid())
}

func TestGrid_MarksSelectedAndToday(t *testing.T) {
	s := newState(t, picker.WithInitialDate(mustDate(t, 1447, 9, 10)))

	cells, err := s.Grid()
	require.NoError(t, err)

	var selected, todays []int
	for _, c := range cells {
		if c.Selected {
			selected = append(selected, c.Date.Day())
		}
		if c.Today {
			todays = append(todays, c.Date.Day())
		}
	}
	assert.Equal(t, []int{10}, selected)
	assert.Equal(t, []int{1}, todays)

	cached, err := s.GridFrom(picker.NewGridCache(s.Provider(), 4))
	require.NoError(t, err)
	assert.Equal(t, cells, cached)

	s.NextMonth()
	cells, err = s.Grid()
	require.NoError(t, err)
	for _, c := range cells {
		assert.False(t, c.Selected)
		assert.False(t, c.Today)
	}
}

func TestSubscribe(t *testing.T) {
	s := newState(t, picker.WithYearRange(1400, 1500))

	var got []picker.Event
	cancel := s.Subscribe(func(e picker.Event) { got = append(got, e) })

	s.SelectDay(mustDate(t, 1447, 9, 3))
	s.ToggleMode()
	require.NoError(t, s.SelectYear(1448))
	s.NextMonth()
	require.NoError(t, s.SetDisplayed(s.Displayed()))

	assert.Equal(t, []picker.Event{
		picker.EventDaySelected,
		picker.EventModeToggled,
		picker.EventYearSelected,
		picker.EventMonthChanged,
	}, got, "Setting the same month emits nothing")

	cancel()
	s.PreviousMonth()
	assert.Len(t, got, 4)
}

func TestSubscribe_CancelOneOfMany(t *testing.T) {
	s := newState(t)

	var a, b int
	cancelA := s.Subscribe(func(picker.Event) { a++ })
	s.Subscribe(func(picker.Event) { b++ })

	s.NextMonth()
	cancelA()
	cancelA()
	s.NextMonth()

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}
