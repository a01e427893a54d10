package handler

import (
	"net/http"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-calendar/internal/calendar"
	"github.com/iliyamo/event-calendar/internal/middleware"
)

// defaultEventDuration is assumed for exported events; the upstream API
// records a start instant but no end.
const defaultEventDuration = time.Hour

// GetMonthICS exports the displayed month as an iCalendar feed, one
// VEVENT per event whose date parses. Bucketing rules match the JSON
// view: an event appears when its calendar day falls inside the month,
// and unparseable dates are silently skipped.
func (h *CalendarHandler) GetMonthICS(c echo.Context) error {
	ref := refMonth(c.QueryParam("month"))

	snap, _, err := h.load(c, middleware.Viewer(c))
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error(), "retry": true})
	}

	grid := calendar.BuildMonthGrid(ref)
	firstKey := calendar.DayKey(grid.First)
	lastKey := calendar.DayKey(grid.Last)

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//event-calendar//month export//EN")

	for _, ev := range snap.Events {
		start, perr := calendar.ParseEventDate(ev.EventDate)
		if perr != nil {
			continue
		}
		key := calendar.DayKey(start)
		if key < firstKey || key > lastKey {
			continue
		}

		ve := cal.AddEvent(ev.ID)
		ve.SetSummary(ev.Title)
		ve.SetStartAt(start)
		ve.SetEndAt(start.Add(defaultEventDuration))
		if ev.VenueName != "" {
			ve.SetLocation(ev.VenueName)
		}
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="events-`+ref.Format(monthParamLayout)+`.ics"`)
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Serialize()))
}
