package feed

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/helmy2/go-hijri-picker/internal/config"
	"github.com/helmy2/go-hijri-picker/internal/format"
	"github.com/helmy2/go-hijri-picker/internal/hijri"
	"golang.org/x/text/language"
)

// Window is the span of Hijri months around the current month that the
// feed covers.
type Window struct {
	Before int
	After  int
}

// DefaultWindow covers config.FeedMonthsBefore to config.FeedMonthsAfter.
func DefaultWindow() Window {
	return Window{Before: config.FeedMonthsBefore, After: config.FeedMonthsAfter}
}

// Generator renders Hijri day labels as an iCalendar feed: one all-day
// event per day, titled with the localized Hijri date.
type Generator struct {
	Provider  hijri.Provider
	Formatter *format.Formatter
	Clock     hijri.Clock // Stamps DTSTAMP.
	Locale    language.Tag
}

// Generate builds the feed for the months of w around today.
// It returns the ICS data and the number of events.
func (g *Generator) Generate(ctx context.Context, w Window) ([]byte, int, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompFeed,
		config.LogKeyLang, g.Locale.String(),
	)

	current := g.Provider.Now().YearMonth()
	first := hijri.PlusMonths(current, -w.Before)
	last := hijri.PlusMonths(current, w.After)
	log.InfoContext(ctx, config.MsgFeedStarted,
		config.LogKeyFrom, first.String(),
		config.LogKeyTo, last.String(),
	)

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, g.Formatter.Strings(g.Locale).FeedCalendar)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(g.Clock.Now().UTC())

	for i := 0; i <= hijri.MonthsDifference(first, last); i++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		ym := hijri.PlusMonths(first, i)
		events, err := g.monthEvents(ym)
		if err != nil {
			// Months outside the calendar range are skipped, the rest of the window is kept.
			log.Warn(config.ErrFeedGenerate,
				config.LogKeyYear, ym.Year,
				config.LogKeyMonth, ym.Month,
				config.LogKeyError, err,
			)
			continue
		}
		for _, e := range events {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	count := len(cal.Children)
	if count == 0 {
		return []byte(config.StubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	log.Info(config.MsgGenSuccess,
		config.LogKeyEvents, count,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), count, nil
}

func (g *Generator) monthEvents(ym hijri.YearMonth) ([]*ical.Event, error) {
	length, err := g.Provider.LengthOfMonth(ym.Year, ym.Month)
	if err != nil {
		return nil, err
	}

	events := make([]*ical.Event, 0, length)
	for day := 1; day <= length; day++ {
		d, err := g.Provider.Of(ym.Year, ym.Month, day)
		if err != nil {
			return nil, err
		}
		events = append(events, g.dayEvent(d))
	}
	return events, nil
}

func (g *Generator) dayEvent(d hijri.Date) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, UID(d))
	event.Props.SetText(config.PropSummary, g.Formatter.FormatDate(d, config.PatternFeedSummary, g.Locale))
	event.Props.SetText(config.PropCategories, config.CategoryHijri)

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(d.Time(time.UTC))
	event.Props.Set(dtStartProp)

	return event
}

// UID is the stable event identifier of a Hijri day.
func UID(d hijri.Date) string {
	return fmt.Sprintf(config.FormatFeedUID, d.Year(), d.Month(), d.Day(), config.ICalDomain)
}
