package calendar

import (
	"time"

	"github.com/iliyamo/event-calendar/internal/model"
)

// dayKeyLayout is the canonical calendar-day form both sides of a bucket
// comparison are normalized to. Comparing formatted day strings instead of
// raw timestamps avoids off-by-one-day placement when event timestamps
// carry offsets.
const dayKeyLayout = "2006-01-02"

// eventDateLayouts are the accepted shapes of the upstream eventDate
// string, tried in order.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DayKey normalizes a time to its canonical calendar-day string.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// ParseEventDate parses an upstream eventDate string. The error is
// per-event and never fatal to a view: callers drop unparseable events
// from buckets and counts instead of failing.
func ParseEventDate(raw string) (time.Time, error) {
	var firstErr error
	for _, layout := range eventDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// EventsOn filters events down to those whose date falls on the given
// calendar day. Events with an unparseable date are skipped. A linear
// scan per displayed day is fine: a month never exceeds 31 buckets.
func EventsOn(events []model.Event, day time.Time) []model.Event {
	key := DayKey(day)
	out := make([]model.Event, 0)
	for _, ev := range events {
		t, err := ParseEventDate(ev.EventDate)
		if err != nil {
			continue
		}
		if DayKey(t) == key {
			out = append(out, ev)
		}
	}
	return out
}
