// Package isoweek answers "which week is this" the way the weekly
// check-in schema defined it: ISO-8601 week numbers (Monday start, week
// one contains the year's first Thursday) paired with the calendar
// year, not the ISO week-year. The calendar-year pairing is part of the
// stored behavior and is kept even though it disagrees with ISO around
// new year.
package isoweek

import "time"

// Number returns the ISO-8601 week number of t.
func Number(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// Same reports whether a and b fall in the same week, comparing ISO
// week number and calendar year.
func Same(a, b time.Time) bool {
	return a.Year() == b.Year() && Number(a) == Number(b)
}
