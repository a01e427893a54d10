// This file defines the calendar view handler: the month grid with events
// bucketed per day and colored by the viewer's relationship to each event.
// The handler is the view boundary from the error-handling design: load
// failures become an inline JSON error with a retry affordance and never
// propagate further.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-calendar/internal/calendar"
	"github.com/iliyamo/event-calendar/internal/middleware"
	"github.com/iliyamo/event-calendar/internal/model"
	"github.com/iliyamo/event-calendar/internal/repository"
)

// monthParamLayout is the wire format of the ?month= query parameter.
const monthParamLayout = "2006-01"

// CalendarHandler serves the month view and its ICS export. It owns no
// state besides the loader; every request rebuilds the view from a fresh
// upstream snapshot.
type CalendarHandler struct {
	Loader *calendar.Loader
}

// NewCalendarHandler constructs a CalendarHandler over the given loader.
func NewCalendarHandler(loader *calendar.Loader) *CalendarHandler {
	return &CalendarHandler{Loader: loader}
}

// calendarEvent is one event inside a day cell, already classified for
// the requesting viewer.
type calendarEvent struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Time     string `json:"time,omitempty"`
	Venue    string `json:"venue,omitempty"`
	Category string `json:"category"`
	Color    string `json:"color"`
}

// calendarCell is one grid position: either blank padding before day 1 or
// a calendar day with its events.
type calendarCell struct {
	Blank  bool            `json:"blank"`
	Date   string          `json:"date,omitempty"`
	Day    int             `json:"day,omitempty"`
	Count  int             `json:"count"`
	Events []calendarEvent `json:"events,omitempty"`
}

// viewerInfo echoes who the view was rendered for.
type viewerInfo struct {
	ID        string `json:"id,omitempty"`
	Role      string `json:"role,omitempty"`
	Anonymous bool   `json:"anonymous"`
}

// calendarResponse is the full month view.
type calendarResponse struct {
	Month         string                 `json:"month"`
	Label         string                 `json:"label"`
	FirstDay      string                 `json:"first_day"`
	LastDay       string                 `json:"last_day"`
	LeadingBlanks int                    `json:"leading_blanks"`
	Cells         []calendarCell         `json:"cells"`
	Legend        []calendar.LegendEntry `json:"legend,omitempty"`
	Viewer        viewerInfo             `json:"viewer"`
	PrevMonth     string                 `json:"prev_month"`
	NextMonth     string                 `json:"next_month"`
}

// GetMonth renders the calendar for the month in ?month=YYYY-MM,
// defaulting to the current month. The viewer comes from middleware; a
// credential the upstream rejects downgrades the render to the anonymous
// view instead of failing, and any other load failure yields 502 with a
// retry hint.
func (h *CalendarHandler) GetMonth(c echo.Context) error {
	ref := refMonth(c.QueryParam("month"))

	viewer := middleware.Viewer(c)
	snap, viewer, err := h.load(c, viewer)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error(), "retry": true})
	}

	grid := calendar.BuildMonthGrid(ref)
	cells := make([]calendarCell, 0, grid.CellCount())
	for i := 0; i < grid.LeadingBlanks; i++ {
		cells = append(cells, calendarCell{Blank: true})
	}
	for _, day := range grid.Days {
		dayEvents := calendar.EventsOn(snap.Events, day)
		cell := calendarCell{
			Date:  calendar.DayKey(day),
			Day:   day.Day(),
			Count: len(dayEvents),
		}
		for _, ev := range dayEvents {
			cell.Events = append(cell.Events, viewEvent(viewer, ev, snap.Tickets))
		}
		cells = append(cells, cell)
	}

	resp := calendarResponse{
		Month:         ref.Format(monthParamLayout),
		Label:         ref.Format("January 2006"),
		FirstDay:      calendar.DayKey(grid.First),
		LastDay:       calendar.DayKey(grid.Last),
		LeadingBlanks: grid.LeadingBlanks,
		Cells:         cells,
		Legend:        calendar.LegendFor(viewer),
		Viewer:        viewerInfoFor(viewer),
		PrevMonth:     calendar.AddMonths(ref, -1).Format(monthParamLayout),
		NextMonth:     calendar.AddMonths(ref, 1).Format(monthParamLayout),
	}
	return c.JSON(http.StatusOK, resp)
}

// load runs one explicit load cycle for the viewer. An upstream 401 on
// either request means the credential is stale: the session switches to
// the anonymous identity and loads once more, so the view renders in its
// default state rather than crashing.
func (h *CalendarHandler) load(c echo.Context, viewer *model.Viewer) (calendar.Snapshot, *model.Viewer, error) {
	ctx := c.Request().Context()

	sess := calendar.NewSession(h.Loader)
	sess.SetViewer(viewer, middleware.Credential(c))
	snap, err := sess.Load(ctx)
	if err != nil && errors.Is(err, repository.ErrUnauthorized) {
		viewer = nil
		sess.SetViewer(nil, model.Credential{})
		snap, err = sess.Load(ctx)
	}
	if err != nil {
		return calendar.Snapshot{}, viewer, err
	}
	return snap, viewer, nil
}

// viewEvent projects one event into its response shape for the viewer.
// Events with an unparseable date never reach this point (bucketing drops
// them), but the time formatting still guards against it.
func viewEvent(viewer *model.Viewer, ev model.Event, tickets []model.Ticket) calendarEvent {
	cat := calendar.Classify(viewer, ev, tickets)
	out := calendarEvent{
		ID:       ev.ID,
		Title:    ev.Title,
		Venue:    ev.VenueName,
		Category: string(cat),
		Color:    cat.Color(),
	}
	if t, err := calendar.ParseEventDate(ev.EventDate); err == nil {
		out.Time = t.Format("3:04 PM")
	}
	return out
}

func viewerInfoFor(v *model.Viewer) viewerInfo {
	if v == nil {
		return viewerInfo{Anonymous: true}
	}
	return viewerInfo{ID: v.ID, Role: v.Role}
}

// refMonth parses the month query parameter, falling back to the current
// month for missing or malformed values.
func refMonth(raw string) time.Time {
	if raw != "" {
		if t, err := time.Parse(monthParamLayout, raw); err == nil {
			return t
		}
	}
	return time.Now()
}
