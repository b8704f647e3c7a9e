package repo

import (
	"testing"
	"time"
)

func TestDayRange_FixedZone(t *testing.T) {
	start, end := DayRange(testNow, kst, 0)
	wantStart := time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) || !end.Equal(wantStart.Add(24*time.Hour)) {
		t.Fatalf("today in UTC+9: got [%v, %v)", start, end)
	}
	if start.Location() != time.UTC {
		t.Fatalf("bounds must be UTC, got %v", start.Location())
	}

	start, _ = DayRange(testNow, utc, 7)
	if want := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
		t.Fatalf("D-7 in UTC: want %v, got %v", want, start)
	}
}

func TestTrailingDays_Labels(t *testing.T) {
	start, end, labels := TrailingDays(testNow, utc, 3)
	want := []string{"2026-03-08", "2026-03-09", "2026-03-10"}
	if len(labels) != len(want) {
		t.Fatalf("want %v, got %v", want, labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("label %d: want %s, got %s", i, want[i], labels[i])
		}
	}
	if !start.Equal(time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)) || !end.Equal(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected bounds [%v, %v)", start, end)
	}
}

func TestShiftArg(t *testing.T) {
	if got := shiftArg(kst, testNow); got != "+540 minutes" {
		t.Fatalf("UTC+9: got %q", got)
	}
	if got := shiftArg(utc, testNow); got != "+0 minutes" {
		t.Fatalf("UTC: got %q", got)
	}
	if got := shiftArg(time.FixedZone("x", -(3*3600 + 1800)), testNow); got != "-210 minutes" {
		t.Fatalf("UTC-3:30: got %q", got)
	}
}

func TestPercent(t *testing.T) {
	cases := []struct {
		part, whole int64
		want        float64
	}{
		{1, 3, 33.33},
		{2, 3, 66.67},
		{1, 1, 100},
		{5, 0, 0},
		{0, 7, 0},
	}
	for _, c := range cases {
		if got := percent(c.part, c.whole); got != c.want {
			t.Errorf("percent(%d, %d) = %v, want %v", c.part, c.whole, got, c.want)
		}
	}
}
