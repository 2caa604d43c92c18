package picker

import (
	"log/slog"
	"sync"

	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/helmy2/go-hijri-picker/internal/hijri"
)

// GridCache memoises MonthCells per month. When full, the oldest entry is
// evicted. It is safe for concurrent use.
type GridCache struct {
	provider hijri.Provider
	size     int

	mu    sync.Mutex
	grids map[hijri.YearMonth][]Cell
	order []hijri.YearMonth
}

// NewGridCache returns a cache holding at most size months.
// A size below 1 uses config.GridCacheSize.
func NewGridCache(p hijri.Provider, size int) *GridCache {
	if size < 1 {
		size = config.GridCacheSize
	}
	return &GridCache{
		provider: p,
		size:     size,
		grids:    make(map[hijri.YearMonth][]Cell, size),
	}
}

// Cells returns a copy of the month's grid, computing it on a miss.
// Errors are not cached.
func (c *GridCache) Cells(ym hijri.YearMonth) ([]Cell, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cells, ok := c.grids[ym]; ok {
		slog.Debug(config.MsgGridCacheHit,
			config.LogKeyComponent, config.CompPicker,
			config.LogKeyYear, ym.Year,
			config.LogKeyMonth, ym.Month,
		)
		return append([]Cell(nil), cells...), nil
	}

	cells, err := MonthCells(c.provider, ym.Year, ym.Month)
	if err != nil {
		return nil, err
	}

	if len(c.order) >= c.size {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.grids, oldest)
	}
	c.grids[ym] = cells
	c.order = append(c.order, ym)

	return append([]Cell(nil), cells...), nil
}

// Len reports the number of cached months.
func (c *GridCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.grids)
}
