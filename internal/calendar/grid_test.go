package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGrid_March2024(t *testing.T) {
	// 2024-03-01 is a Friday, so the grid needs five leading blanks for
	// day 1 to land in the Friday column.
	ref := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
	grid := BuildMonthGrid(ref)

	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), grid.First)
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), grid.Last)
	assert.Equal(t, 5, grid.LeadingBlanks)
	require.Len(t, grid.Days, 31)
	assert.Equal(t, 36, grid.CellCount())

	// Days ascend one at a time and stay inside the month.
	for i, day := range grid.Days {
		assert.Equal(t, i+1, day.Day())
		assert.Equal(t, time.March, day.Month())
	}
}

func TestBuildMonthGrid_LeapFebruary(t *testing.T) {
	grid := BuildMonthGrid(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 29, grid.Last.Day())
	require.Len(t, grid.Days, 29)
	// 2024-02-01 is a Thursday.
	assert.Equal(t, 4, grid.LeadingBlanks)
}

func TestBuildMonthGrid_LeadingBlanksRange(t *testing.T) {
	// Walk a year of months; the invariant must hold for all of them.
	ref := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		grid := BuildMonthGrid(ref)
		assert.GreaterOrEqual(t, grid.LeadingBlanks, 0)
		assert.LessOrEqual(t, grid.LeadingBlanks, 6)
		assert.GreaterOrEqual(t, len(grid.Days), 28)
		assert.LessOrEqual(t, len(grid.Days), 31)
		ref = AddMonths(ref, 1)
	}
}

func TestAddMonths_ClampsToShorterMonth(t *testing.T) {
	// Stepping back a month from the 31st lands on the last valid day of
	// the shorter month, not in the month after it.
	ref := time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC), AddMonths(ref, -1))

	ref = time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), AddMonths(ref, 1))

	ref = time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), AddMonths(ref, 1))
}

func TestAddMonths_PreservesDayAndClock(t *testing.T) {
	ref := time.Date(2024, time.March, 15, 9, 45, 30, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.April, 15, 9, 45, 30, 0, time.UTC), AddMonths(ref, 1))
	assert.Equal(t, time.Date(2024, time.February, 15, 9, 45, 30, 0, time.UTC), AddMonths(ref, -1))
}

func TestAddMonths_RoundTripAcrossYear(t *testing.T) {
	ref := time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC)
	next := AddMonths(ref, 1)
	assert.Equal(t, time.January, next.Month())
	assert.Equal(t, 2025, next.Year())
	assert.Equal(t, ref, AddMonths(next, -1))
}
