package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/helmy2/go-hijri-picker/internal/format"
	"github.com/helmy2/go-hijri-picker/internal/hijri"
)

// MonthResponse is the JSON body of the month endpoint.
type MonthResponse struct {
	Locale   string      `json:"locale"`
	Year     int         `json:"year"`
	Month    int         `json:"month"`
	Page     int         `json:"page"`
	Title    string      `json:"title"`
	Weekdays []string    `json:"weekdays"`
	Cells    []MonthCell `json:"cells"`
}

// MonthCell is one of the 42 grid slots. Empty slots only carry Empty.
type MonthCell struct {
	Empty     bool   `json:"empty"`
	Day       int    `json:"day,omitempty"`
	Label     string `json:"label,omitempty"`
	Gregorian string `json:"gregorian,omitempty"`
	Today     bool   `json:"today,omitempty"`
}

const gregorianLayout = "2006-01-02"

// handleMonthRequest renders the Saturday-first grid of a month.
func (s *CalendarServer) handleMonthRequest(w http.ResponseWriter, r *http.Request) {
	year, errY := strconv.Atoi(r.PathValue(config.PathYear))
	month, errM := strconv.Atoi(r.PathValue(config.PathMonth))
	if errY != nil || errM != nil {
		http.Error(w, config.HTTPMsgBadMonth, http.StatusBadRequest)
		return
	}

	ym := hijri.YearMonth{Year: year, Month: month}
	cells, err := s.grids.Cells(ym)
	if err != nil {
		slog.Debug(config.HTTPMsgBadMonth,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyYear, year,
			config.LogKeyMonth, month,
			config.LogKeyError, err,
		)
		http.Error(w, config.HTTPMsgBadMonth, http.StatusBadRequest)
		return
	}

	tag := format.ParseLocale(r.URL.Query().Get(config.QueryLocale))
	today := s.provider.Now().Key()

	resp := MonthResponse{
		Locale:   tag.String(),
		Year:     year,
		Month:    month,
		Page:     hijri.PageOf(ym),
		Weekdays: s.formatter.NarrowWeekdayNames(tag),
		Cells:    make([]MonthCell, 0, len(cells)),
	}

	for _, c := range cells {
		if c.Empty {
			resp.Cells = append(resp.Cells, MonthCell{Empty: true})
			continue
		}
		if resp.Title == "" {
			resp.Title = s.formatter.FormatMonthYear(c.Date, tag)
		}
		resp.Cells = append(resp.Cells, MonthCell{
			Day:       c.Date.Day(),
			Label:     s.formatter.FormatNumber(c.Date.Day(), tag),
			Gregorian: c.Date.Time(time.UTC).Format(gregorianLayout),
			Today:     c.Date.Key() == today,
		})
	}

	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderContentLanguage, tag.String())

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}
