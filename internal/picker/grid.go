package picker

import (
	"fmt"

	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/helmy2/go-hijri-picker/internal/hijri"
)

// Cell is one slot of the 6x7 month grid. Empty cells carry the zero Date.
// Selected and Today are only filled by State.Grid.
type Cell struct {
	Date     hijri.Date
	Empty    bool
	Selected bool
	Today    bool
}

// Column returns the Saturday-first column (0..6) of an ISO weekday.
func Column(isoWeekday int) int {
	return (isoWeekday + 1) % config.DaysPerWeek
}

// MonthCells lays out a month on a Saturday-first grid of exactly
// config.GridCells cells: leading blanks up to the weekday of the 1st,
// the days of the month, then trailing blanks.
func MonthCells(p hijri.Provider, year, month int) ([]Cell, error) {
	first, err := p.Of(year, month, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrGridBuild, err)
	}

	cells := make([]Cell, 0, config.GridCells)
	for range Column(first.Weekday()) {
		cells = append(cells, Cell{Empty: true})
	}
	for day := 1; day <= first.LengthOfMonth(); day++ {
		d, err := p.Of(year, month, day)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrGridBuild, err)
		}
		cells = append(cells, Cell{Date: d})
	}
	for len(cells) < config.GridCells {
		cells = append(cells, Cell{Empty: true})
	}
	return cells, nil
}

// Weeks splits a month grid into config.GridRows rows of config.GridColumns
// cells. A short slice yields short or missing trailing rows.
func Weeks(cells []Cell) [][]Cell {
	rows := make([][]Cell, 0, config.GridRows)
	for start := 0; start < len(cells) && len(rows) < config.GridRows; start += config.GridColumns {
		rows = append(rows, cells[start:min(start+config.GridColumns, len(cells))])
	}
	return rows
}
