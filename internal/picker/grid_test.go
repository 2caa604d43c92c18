package picker_test

import (
	"errors"
	"testing"

	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/helmy2/go-hijri-picker/internal/hijri"
	"github.com/helmy2/go-hijri-picker/internal/picker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestColumn_SaturdayFirst(t *testing.T) {
	tests := []struct {
		name    string
		weekday int
		want    int
	}{
		{"Saturday", 6, 0},
		{"Sunday", 7, 1},
		{"Monday", 1, 2},
		{"Wednesday", 3, 4},
		{"Friday", 5, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, picker.Column(tt.weekday))
		})
	}
}

func TestMonthCells_Layout(t *testing.T) {
	p := newProvider()

	for year := 1440; year <= 1450; year++ {
		for month := 1; month <= 12; month++ {
			cells, err := picker.MonthCells(p, year, month)
			require.NoError(t, err)
			require.Len(t, cells, config.GridCells)

			length, err := p.LengthOfMonth(year, month)
			require.NoError(t, err)
			first, err := p.Of(year, month, 1)
			require.NoError(t, err)
			start := picker.Column(first.Weekday())

			for i, cell := range cells {
				inMonth := i >= start && i < start+length
				assert.Equal(t, !inMonth, cell.Empty, "%d-%02d cell %d", year, month, i)
				if inMonth {
					assert.Equal(t, i-start+1, cell.Date.Day())
					assert.Equal(t, hijri.YearMonth{Year: year, Month: month}, cell.Date.YearMonth())
					assert.Equal(t, i%7, picker.Column(cell.Date.Weekday()), "Day must sit under its weekday")
				} else {
					assert.True(t, cell.Date.IsZero())
				}
				assert.False(t, cell.Selected)
				assert.False(t, cell.Today)
			}
		}
	}
}

func TestMonthCells_KnownMonths(t *testing.T) {
	p := newProvider()

	tests := []struct {
		name        string
		year, month int
		start       int
		length      int
	}{
		{"Ramadan 1447 starts on Wednesday", 1447, 9, 4, 30},
		{"Safar 1448 starts on Friday", 1448, 2, 6, 29},
		{"Ramadan 1446 starts on Saturday", 1446, 9, 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, err := picker.MonthCells(p, tt.year, tt.month)
			require.NoError(t, err)

			nonEmpty := 0
			for _, c := range cells {
				if !c.Empty {
					nonEmpty++
				}
			}
			assert.Equal(t, tt.length, nonEmpty)
			assert.False(t, cells[tt.start].Empty)
			assert.Equal(t, 1, cells[tt.start].Date.Day())
			if tt.start > 0 {
				assert.True(t, cells[tt.start-1].Empty)
			}
		})
	}
}

func TestMonthCells_InvalidMonth(t *testing.T) {
	_, err := picker.MonthCells(newProvider(), 1447, 13)
	require.Error(t, err)
	assert.ErrorIs(t, err, hijri.ErrInvalidDate)
}

func TestMonthCells_ProviderErrorIsPropagated(t *testing.T) {
	first := mustDate(t, 1447, 9, 1)
	backendErr := errors.New("backend unavailable")

	p := new(MockProvider)
	p.On("Of", 1447, 9, 1).Return(first, nil)
	p.On("Of", 1447, 9, mock.Anything).Return(hijri.Date{}, backendErr)

	cells, err := picker.MonthCells(p, 1447, 9)
	assert.Nil(t, cells)
	assert.ErrorIs(t, err, backendErr)
	p.AssertExpectations(t)
}

func TestWeeks(t *testing.T) {
	cells, err := picker.MonthCells(newProvider(), 1447, 9)
	require.NoError(t, err)

	weeks := picker.Weeks(cells)
	require.Len(t, weeks, config.GridRows)
	for _, week := range weeks {
		assert.Len(t, week, config.GridColumns)
	}
	// 1 Ramadan 1447 is a Wednesday: Sat, Sun, Mon and Tue are blank.
	assert.True(t, weeks[0][3].Empty)
	assert.Equal(t, 1, weeks[0][4].Date.Day())
	assert.Equal(t, cells[41], weeks[5][6])

	assert.Len(t, picker.Weeks(cells[:10]), 2)
	assert.Len(t, picker.Weeks(cells[:10])[1], 3)
	assert.Empty(t, picker.Weeks(nil))
}

func TestMonthCells_UmmAlQura(t *testing.T) {
	p := hijri.NewUmmAlQura()

	// Dhu al-Hijjah 1447 has 29 days in Umm al-Qura and starts on a Monday.
	cells, err := picker.MonthCells(p, 1447, 12)
	require.NoError(t, err)
	require.Len(t, cells, config.GridCells)

	days := 0
	for _, c := range cells {
		if !c.Empty {
			days++
		}
	}
	assert.Equal(t, 29, days)
	assert.Equal(t, 1, cells[2].Date.Day())
	assert.True(t, cells[1].Empty)
}
