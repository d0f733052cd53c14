package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to time.Time
		want     int
	}{
		{"same month", date(2024, time.January, 15), date(2024, time.January, 31), 0},
		{"one day across boundary", date(2024, time.January, 31), date(2024, time.February, 1), 1},
		{"full year", date(2024, time.January, 15), date(2025, time.January, 15), 12},
		{"across year boundary", date(2024, time.November, 1), date(2025, time.February, 1), 3},
		{"backwards", date(2024, time.March, 1), date(2024, time.January, 20), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthDiff(tt.from, tt.to); got != tt.want {
				t.Errorf("MonthDiff(%v, %v) = %d, want %d", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestMonthDiff_Monotonic(t *testing.T) {
	start := date(2024, time.January, 15)
	prev := MonthDiff(start, start)
	for d := start; d.Before(date(2026, time.June, 1)); d = d.AddDate(0, 0, 7) {
		got := MonthDiff(start, d)
		if got < prev {
			t.Fatalf("MonthDiff decreased from %d to %d at %v", prev, got, d)
		}
		prev = got
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		d    time.Time
		n    int
		want time.Time
	}{
		{"plain", date(2024, time.January, 15), 12, date(2025, time.January, 15)},
		{"month-end clamp", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"non-leap clamp", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"clamp to 30", date(2024, time.March, 31), 1, date(2024, time.April, 30)},
		{"across year", date(2024, time.November, 30), 3, date(2025, time.February, 28)},
		{"zero months", date(2024, time.July, 4), 0, date(2024, time.July, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddMonths(tt.d, tt.n); !got.Equal(tt.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.d, tt.n, got, tt.want)
			}
		})
	}
}

func TestRemainingEMI(t *testing.T) {
	if got := RemainingEMI(12, 2); got != 10 {
		t.Errorf("RemainingEMI(12, 2) = %d, want 10", got)
	}
	if got := RemainingEMI(12, 12); got != 0 {
		t.Errorf("RemainingEMI(12, 12) = %d, want 0", got)
	}
	// overpaid schedules floor at zero instead of going negative
	if got := RemainingEMI(12, 15); got != 0 {
		t.Errorf("RemainingEMI(12, 15) = %d, want 0", got)
	}
	if got := RemainingEMI(0, 0); got != 0 {
		t.Errorf("RemainingEMI(0, 0) = %d, want 0", got)
	}
}
