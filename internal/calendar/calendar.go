// Package calendar содержит чистые функции ISO-календаря и форматирования.
//
// Пара (год, неделя) везде берётся одним вызовом ISOWeek: наивное
// сочетание ISO-номера недели с календарным годом даты ломается на
// границах года (30 декабря может лежать в 1-й неделе следующего года,
// 1 января — в 52/53-й неделе предыдущего).
package calendar

import (
	"fmt"
	"time"
)

// ISOWeek возвращает ISO-8601 пару (год, неделя): неделя начинается
// с понедельника и принадлежит году, содержащему её четверг.
func ISOWeek(t time.Time) (year, week int) {
	return t.ISOWeek()
}

// IsWorkday сообщает, будний ли день (понедельник-пятница).
func IsWorkday(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return true
}

// WeekStart возвращает понедельник указанной ISO-недели.
// 4 января всегда лежит в первой ISO-неделе своего года.
func WeekStart(week, year int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	anchor := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	return WeekStartOf(anchor).AddDate(0, 0, (week-1)*7)
}

// WeekStartOf возвращает понедельник недели, содержащей t.
func WeekStartOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7
	}
	return day.AddDate(0, 0, 1-wd)
}

// WeekDateRange строит диапазон недели алгебраически, по ключу (week, year).
func WeekDateRange(week, year int, loc *time.Location) string {
	start := WeekStart(week, year, loc)
	return formatRange(start, start.AddDate(0, 0, 6))
}

// WeekDateRangeOf строит диапазон недели эмпирически, от даты внутри неё.
// Для любой заполненной недели совпадает с алгебраическим вариантом.
func WeekDateRangeOf(t time.Time) string {
	start := WeekStartOf(t)
	return formatRange(start, start.AddDate(0, 0, 6))
}

func formatRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
}

// DayKey возвращает локальную дату в виде ключа yyyy-MM-dd.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTime форматирует время в 12-часовом виде, например "9:30 AM".
func FormatTime(t time.Time) string {
	return t.Format("3:04 PM")
}

// FormatDayName возвращает полное название дня недели.
func FormatDayName(t time.Time) string {
	return t.Format("Monday")
}

// FormatFullDate возвращает дату вида "January 2, 2006".
func FormatFullDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FormatDayHeading возвращает заголовок дня вида "Monday, January 2".
func FormatDayHeading(t time.Time) string {
	return t.Format("Monday, January 2")
}

// FormatDayLabel возвращает подпись дня для промпта: "Monday, January 2, 2006".
func FormatDayLabel(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}
