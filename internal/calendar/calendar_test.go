package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestISOWeekBoundary(t *testing.T) {
	cases := []struct {
		in   time.Time
		year int
		week int
	}{
		{date(2024, time.December, 30), 2025, 1}, // понедельник 1-й недели 2025
		{date(2024, time.December, 31), 2025, 1},
		{date(2025, time.January, 1), 2025, 1},
		{date(2027, time.January, 1), 2026, 53}, // пятница 53-й недели 2026
		{date(2024, time.June, 5), 2024, 23},
	}
	for _, tc := range cases {
		year, week := ISOWeek(tc.in)
		if year != tc.year || week != tc.week {
			t.Fatalf("%s: ожидали (%d, %d), получили (%d, %d)", tc.in.Format("2006-01-02"), tc.year, tc.week, year, week)
		}
	}
}

func TestIsWorkday(t *testing.T) {
	if !IsWorkday(date(2024, time.June, 5)) {
		t.Fatalf("среда должна быть рабочим днём")
	}
	if IsWorkday(date(2024, time.June, 8)) {
		t.Fatalf("суббота не должна быть рабочим днём")
	}
	if IsWorkday(date(2024, time.June, 9)) {
		t.Fatalf("воскресенье не должно быть рабочим днём")
	}
}

func TestWeekStartIsMonday(t *testing.T) {
	for week := 1; week <= 52; week++ {
		start := WeekStart(week, 2025, time.UTC)
		if start.Weekday() != time.Monday {
			t.Fatalf("неделя %d: начало %s не понедельник", week, start.Format("2006-01-02"))
		}
		year, got := ISOWeek(start)
		if year != 2025 || got != week {
			t.Fatalf("неделя %d: понедельник попал в (%d, %d)", week, year, got)
		}
	}
}

func TestWeekDateRangeAlgebraicMatchesEmpirical(t *testing.T) {
	// Любая дата внутри недели должна давать тот же диапазон, что и ключ недели.
	for _, in := range []time.Time{
		date(2024, time.December, 30),
		date(2025, time.January, 1),
		date(2025, time.June, 11),
		date(2026, time.December, 31),
	} {
		year, week := ISOWeek(in)
		algebraic := WeekDateRange(week, year, time.UTC)
		empirical := WeekDateRangeOf(in)
		if algebraic != empirical {
			t.Fatalf("%s: алгебраический %q != эмпирический %q", in.Format("2006-01-02"), algebraic, empirical)
		}
	}
}

func TestWeekDateRangeFormat(t *testing.T) {
	got := WeekDateRange(1, 2025, time.UTC)
	want := "Dec 30 - Jan 5, 2025"
	if got != want {
		t.Fatalf("ожидали %q, получили %q", want, got)
	}
}

func TestFormatting(t *testing.T) {
	at := time.Date(2025, time.January, 6, 9, 30, 0, 0, time.UTC)
	if got := FormatTime(at); got != "9:30 AM" {
		t.Fatalf("FormatTime: %q", got)
	}
	if got := FormatDayName(at); got != "Monday" {
		t.Fatalf("FormatDayName: %q", got)
	}
	if got := FormatFullDate(at); got != "January 6, 2025" {
		t.Fatalf("FormatFullDate: %q", got)
	}
	if got := FormatDayHeading(at); got != "Monday, January 6" {
		t.Fatalf("FormatDayHeading: %q", got)
	}
	if got := DayKey(at); got != "2025-01-06" {
		t.Fatalf("DayKey: %q", got)
	}
}
