package leave

import (
	"errors"
	"time"
)

// CalculateDays returns inclusive day count between start and end.
func CalculateDays(start, end time.Time) (float64, error) {
	if end.Before(start) {
		return 0, errors.New("end date before start date")
	}
	return end.Sub(start).Hours()/24 + 1, nil
}

// CalculateRequestDays returns inclusive leave day count with optional
// half-day start/end boundaries.
func CalculateRequestDays(start, end time.Time, startHalf, endHalf bool) (float64, error) {
	days, err := CalculateDays(start, end)
	if err != nil {
		return 0, err
	}

	sameDay := start.Equal(end)
	if sameDay && startHalf && endHalf {
		return 0, errors.New("invalid half-day range")
	}

	if startHalf {
		days -= 0.5
	}
	if endHalf {
		days -= 0.5
	}
	if days <= 0 {
		return 0, errors.New("invalid half-day range")
	}
	return days, nil
}

// CalendarDay is one cell of the leave-calendar widget.
type CalendarDay struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	IsWeekend bool   `json:"isWeekend"`
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}

// MonthDays generates the calendar days for the given month, in order.
func MonthDays(year int, month time.Month) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	out := make([]CalendarDay, 0, 31)
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		out = append(out, CalendarDay{
			Date:      day.Format("2006-01-02"),
			Weekday:   day.Weekday().String(),
			IsWeekend: IsWeekend(day),
		})
	}
	return out
}
