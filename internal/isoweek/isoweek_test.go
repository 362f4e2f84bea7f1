package isoweek

import (
	"testing"
	"time"
)

func TestNumber(t *testing.T) {
	// 2026-01-01 is a Thursday, so it sits in ISO week 1.
	if got := Number(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)); got != 1 {
		t.Errorf("expected week 1, got %d", got)
	}
	// 2026-12-28 is a Monday in the year's last ISO week.
	if got := Number(time.Date(2026, 12, 28, 0, 0, 0, 0, time.UTC)); got != 53 {
		t.Errorf("expected week 53, got %d", got)
	}
}

func TestSameWithinOneWeek(t *testing.T) {
	// Monday and Sunday of the same ISO week.
	mon := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	sun := time.Date(2026, 3, 15, 23, 0, 0, 0, time.UTC)
	if !Same(mon, sun) {
		t.Error("expected Monday and Sunday of one week to match")
	}

	nextMon := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	if Same(mon, nextMon) {
		t.Error("expected adjacent weeks not to match")
	}
}

func TestSameUsesCalendarYear(t *testing.T) {
	// 2025-12-29 and 2026-01-01 share ISO week 1 of week-year 2026,
	// but their calendar years differ, so they do not match. That
	// split is the stored data's definition of a week boundary.
	dec := time.Date(2025, 12, 29, 12, 0, 0, 0, time.UTC)
	jan := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	if _, w := dec.ISOWeek(); w != 1 {
		t.Fatalf("precondition: expected ISO week 1, got %d", w)
	}
	if Same(dec, jan) {
		t.Error("expected the calendar-year split to separate the two dates")
	}
}

func TestSameWeekNumberDifferentYear(t *testing.T) {
	a := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	if Number(a) != Number(b) {
		t.Fatalf("precondition: expected equal week numbers, got %d and %d", Number(a), Number(b))
	}
	if Same(a, b) {
		t.Error("expected matching week numbers in different years not to match")
	}
}
