package hijri_test

import (
	"testing"

	"github.com/helmy2/go-hijri-picker/internal/hijri"
	"github.com/stretchr/testify/assert"
)

func TestPlusMonths(t *testing.T) {
	tests := []struct {
		name  string
		start hijri.YearMonth
		delta int
		want  hijri.YearMonth
	}{
		{"Same year", hijri.YearMonth{Year: 1447, Month: 9}, 3, hijri.YearMonth{Year: 1447, Month: 12}},
		{"Year rollover", hijri.YearMonth{Year: 1447, Month: 9}, 5, hijri.YearMonth{Year: 1448, Month: 2}},
		{"Negative delta", hijri.YearMonth{Year: 1448, Month: 2}, -3, hijri.YearMonth{Year: 1447, Month: 11}},
		{"Zero delta", hijri.YearMonth{Year: 1447, Month: 1}, 0, hijri.YearMonth{Year: 1447, Month: 1}},
		{"Back to December", hijri.YearMonth{Year: 1447, Month: 1}, -1, hijri.YearMonth{Year: 1446, Month: 12}},
		{"Several years back", hijri.YearMonth{Year: 1447, Month: 6}, -30, hijri.YearMonth{Year: 1444, Month: 12}},
		{"Before the epoch", hijri.Epoch, -1, hijri.YearMonth{Year: 0, Month: 12}},
		{"Far before the epoch", hijri.Epoch, -25, hijri.YearMonth{Year: -2, Month: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hijri.PlusMonths(tt.start, tt.delta)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid(), "Month must stay in [1,12]")
		})
	}
}

func TestMonthsDifference(t *testing.T) {
	a := hijri.YearMonth{Year: 1447, Month: 9}
	b := hijri.YearMonth{Year: 1448, Month: 2}

	assert.Equal(t, 0, hijri.MonthsDifference(a, a))
	assert.Equal(t, 5, hijri.MonthsDifference(a, b))
	assert.Equal(t, -hijri.MonthsDifference(a, b), hijri.MonthsDifference(b, a), "Difference must be antisymmetric")
}

// TestPageRoundTrip checks that every month maps to a page and back, including
// months before the epoch (negative pages).
func TestPageRoundTrip(t *testing.T) {
	for year := -3; year <= 1500; year += 7 {
		for month := 1; month <= 12; month++ {
			ym := hijri.YearMonth{Year: year, Month: month}
			page := hijri.PageOf(ym)
			assert.Equal(t, ym, hijri.YearMonthAt(page), "page %d", page)
			assert.Equal(t, ym, hijri.PlusMonths(hijri.Epoch, hijri.MonthsDifference(hijri.Epoch, ym)))
		}
	}

	assert.Equal(t, 0, hijri.PageOf(hijri.Epoch))
	assert.Equal(t, -1, hijri.PageOf(hijri.YearMonth{Year: 0, Month: 12}))
}

func TestYearMonth_AddMonthsAndString(t *testing.T) {
	ym := hijri.YearMonth{Year: 1447, Month: 12}

	assert.Equal(t, hijri.YearMonth{Year: 1448, Month: 1}, ym.AddMonths(1))
	assert.Equal(t, "1447-12", ym.String())
	assert.False(t, hijri.YearMonth{Year: 1447, Month: 13}.Valid())
	assert.False(t, hijri.YearMonth{Year: 1447, Month: 0}.Valid())
}
