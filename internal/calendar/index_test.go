package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-calendar/internal/model"
)

func TestEventsOn_ExactDayMatch(t *testing.T) {
	events := []model.Event{
		{ID: "E1", EventDate: "2024-03-10T18:00:00Z"},
	}

	got := EventsOn(events, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	require.Len(t, got, 1)
	assert.Equal(t, "E1", got[0].ID)

	assert.Empty(t, EventsOn(events, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)))
}

func TestEventsOn_TimeOfDayIgnored(t *testing.T) {
	events := []model.Event{
		{ID: "early", EventDate: "2024-03-10T00:00:00Z"},
		{ID: "late", EventDate: "2024-03-10T23:59:59Z"},
		{ID: "nextday", EventDate: "2024-03-11T00:00:00Z"},
	}

	got := EventsOn(events, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	require.Len(t, got, 2)
	assert.Equal(t, "early", got[0].ID)
	assert.Equal(t, "late", got[1].ID)
}

func TestEventsOn_UnparseableDateExcluded(t *testing.T) {
	events := []model.Event{
		{ID: "bad", EventDate: "next tuesday"},
		{ID: "empty", EventDate: ""},
		{ID: "good", EventDate: "2024-03-10T12:00:00Z"},
	}

	got := EventsOn(events, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	require.Len(t, got, 1)
	assert.Equal(t, "good", got[0].ID)
}

func TestEventsOn_EachEventInExactlyOneBucket(t *testing.T) {
	events := []model.Event{
		{ID: "E1", EventDate: "2024-03-01T09:00:00Z"},
		{ID: "E2", EventDate: "2024-03-15T20:30:00Z"},
		{ID: "E3", EventDate: "2024-03-31T23:00:00Z"},
		{ID: "E4", EventDate: "2024-04-01T00:00:00Z"}, // outside the month
	}

	grid := BuildMonthGrid(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	seen := map[string]int{}
	for _, day := range grid.Days {
		for _, ev := range EventsOn(events, day) {
			seen[ev.ID]++
		}
	}

	assert.Equal(t, map[string]int{"E1": 1, "E2": 1, "E3": 1}, seen)
}

func TestParseEventDate_AcceptedLayouts(t *testing.T) {
	for _, raw := range []string{
		"2024-03-10T18:00:00Z",
		"2024-03-10T18:00:00+05:30",
		"2024-03-10T18:00:00",
		"2024-03-10",
	} {
		got, err := ParseEventDate(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, "2024-03-10", DayKey(got), raw)
	}

	_, err := ParseEventDate("10/03/2024")
	assert.Error(t, err)
}
