package picker_test

import (
	"testing"

	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/helmy2/go-hijri-picker/internal/hijri"
	"github.com/helmy2/go-hijri-picker/internal/picker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridCache_MatchesMonthCells(t *testing.T) {
	p := newProvider()
	cache := picker.NewGridCache(p, 0)
	ym := hijri.YearMonth{Year: 1447, Month: 9}

	want, err := picker.MonthCells(p, ym.Year, ym.Month)
	require.NoError(t, err)

	for range 3 {
		got, err := cache.Cells(ym)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 1, cache.Len())
}

func TestGridCache_EvictsOldest(t *testing.T) {
	cache := picker.NewGridCache(newProvider(), 2)

	for _, m := range []int{1, 2, 3} {
		_, err := cache.Cells(hijri.YearMonth{Year: 1447, Month: m})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, cache.Len())
}

func TestGridCache_ReturnsCopies(t *testing.T) {
	cache := picker.NewGridCache(newProvider(), config.GridCacheSize)
	ym := hijri.YearMonth{Year: 1447, Month: 9}

	first, err := cache.Cells(ym)
	require.NoError(t, err)
	first[10].Selected = true

	second, err := cache.Cells(ym)
	require.NoError(t, err)
	assert.False(t, second[10].Selected, "Callers must not mutate cached grids")
}

func TestGridCache_DoesNotCacheErrors(t *testing.T) {
	cache := picker.NewGridCache(newProvider(), 4)

	_, err := cache.Cells(hijri.YearMonth{Year: 1447, Month: 13})
	assert.ErrorIs(t, err, hijri.ErrInvalidDate)
	assert.Equal(t, 0, cache.Len())
}
