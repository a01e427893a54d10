// Package calendar implements the month-view core: grid geometry, the
// day-event index, role-based display classification and the concurrent
// load cycle that feeds them. Everything in this package is synchronous
// and pure except the Loader, which talks to the upstream API through
// narrow source interfaces.
package calendar

import "time"

// MonthGrid describes the geometry of one rendered month. It is derived
// from a reference date on every render and never persisted.
//
// Fields:
//  First         – first calendar day of the month (midnight).
//  Last          – last calendar day of the month (midnight).
//  Days          – every day from First to Last inclusive, ascending.
//  LeadingBlanks – number of empty padding cells before day 1 so that it
//                  lands in its weekday column. Sunday is column 0, so
//                  the value is always in [0,6].
type MonthGrid struct {
	First         time.Time
	Last          time.Time
	Days          []time.Time
	LeadingBlanks int
}

// BuildMonthGrid computes the grid for the month containing ref. Any date
// inside the target month produces the same grid. The reference date's
// location is preserved on every produced day.
func BuildMonthGrid(ref time.Time) MonthGrid {
	year, month, _ := ref.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())
	// Day zero of the next month is the last day of this one.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, ref.Location())

	days := make([]time.Time, 0, last.Day())
	for d := 1; d <= last.Day(); d++ {
		days = append(days, time.Date(year, month, d, 0, 0, 0, 0, ref.Location()))
	}

	return MonthGrid{
		First:         first,
		Last:          last,
		Days:          days,
		LeadingBlanks: int(first.Weekday()),
	}
}

// CellCount returns the total number of grid positions, padding included.
func (g MonthGrid) CellCount() int {
	return g.LeadingBlanks + len(g.Days)
}

// AddMonths steps ref forward (or backward, for negative n) by whole
// months, clamping the day-of-month when the target month is shorter.
// Stepping back one month from March 31st lands on the last day of
// February rather than spilling into March. Clock time and location are
// preserved.
func AddMonths(ref time.Time, n int) time.Time {
	year, month, day := ref.Date()
	hour, min, sec := ref.Clock()

	// Last day of the target month, computed via the day-zero trick.
	lastOfTarget := time.Date(year, month+time.Month(n)+1, 0, 0, 0, 0, 0, ref.Location()).Day()
	if day > lastOfTarget {
		day = lastOfTarget
	}
	return time.Date(year, month+time.Month(n), day, hour, min, sec, ref.Nanosecond(), ref.Location())
}
