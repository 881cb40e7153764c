package clock_test

import (
	"testing"
	"time"

	"switchsprint/internal/platform/clock"
)

func TestDayKeyUsesTheClockZone(t *testing.T) {
	t.Parallel()
	zone := time.FixedZone("UTC+9", 9*60*60)
	late := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC).In(zone)
	if got := clock.DayKey(late); got != "2026-03-02" {
		t.Fatalf("expected local calendar day, got %s", got)
	}
}

func TestParseDayRoundTrip(t *testing.T) {
	t.Parallel()
	day, err := clock.ParseDay("2026-02-28", time.UTC)
	if err != nil {
		t.Fatalf("parse day: %v", err)
	}
	if clock.DayKey(day.AddDate(0, 0, 1)) != "2026-03-01" {
		t.Fatalf("unexpected next day for %s", day)
	}
	if _, err := clock.ParseDay("28/02/2026", nil); err == nil {
		t.Fatalf("expected malformed day to fail")
	}
}
