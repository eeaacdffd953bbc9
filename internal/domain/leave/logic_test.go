package leave

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateDays(t *testing.T) {
	days, err := CalculateDays(day(2026, time.March, 2), day(2026, time.March, 6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 5 {
		t.Fatalf("expected 5 days, got %v", days)
	}

	days, err = CalculateDays(day(2026, time.March, 2), day(2026, time.March, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 1 {
		t.Fatalf("expected 1 day, got %v", days)
	}

	if _, err := CalculateDays(day(2026, time.March, 6), day(2026, time.March, 2)); err == nil {
		t.Fatal("expected error for inverted range")
	}
}

func TestCalculateRequestDays(t *testing.T) {
	cases := []struct {
		name      string
		start     time.Time
		end       time.Time
		startHalf bool
		endHalf   bool
		want      float64
		wantErr   bool
	}{
		{"full week", day(2026, time.March, 2), day(2026, time.March, 6), false, false, 5, false},
		{"half start", day(2026, time.March, 2), day(2026, time.March, 6), true, false, 4.5, false},
		{"half both", day(2026, time.March, 2), day(2026, time.March, 6), true, true, 4, false},
		{"single half day", day(2026, time.March, 2), day(2026, time.March, 2), true, false, 0.5, false},
		{"single day both halves", day(2026, time.March, 2), day(2026, time.March, 2), true, true, 0, true},
		{"inverted", day(2026, time.March, 6), day(2026, time.March, 2), false, false, 0, true},
	}

	for _, tc := range cases {
		got, err := CalculateRequestDays(tc.start, tc.end, tc.startHalf, tc.endHalf)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error", tc.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %v days, got %v", tc.name, tc.want, got)
		}
	}
}

func TestIsWeekend(t *testing.T) {
	if !IsWeekend(day(2026, time.August, 29)) { // Saturday
		t.Fatal("expected Saturday to be a weekend")
	}
	if !IsWeekend(day(2026, time.August, 30)) { // Sunday
		t.Fatal("expected Sunday to be a weekend")
	}
	if IsWeekend(day(2026, time.August, 31)) { // Monday
		t.Fatal("expected Monday to be a weekday")
	}
}

func TestMonthDays(t *testing.T) {
	days := MonthDays(2026, time.February)
	if len(days) != 28 {
		t.Fatalf("expected 28 days in February 2026, got %d", len(days))
	}
	if days[0].Date != "2026-02-01" || days[27].Date != "2026-02-28" {
		t.Fatalf("unexpected boundaries: %s .. %s", days[0].Date, days[27].Date)
	}

	leap := MonthDays(2028, time.February)
	if len(leap) != 29 {
		t.Fatalf("expected 29 days in February 2028, got %d", len(leap))
	}

	var weekends int
	for _, d := range days {
		if d.IsWeekend {
			weekends++
		}
	}
	if weekends != 8 {
		t.Fatalf("expected 8 weekend days in February 2026, got %d", weekends)
	}
}
