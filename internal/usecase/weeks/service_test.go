package weeks

import (
	"context"
	"testing"
	"time"

	"worklog-api/internal/calendar"
	"worklog-api/internal/domain"
)

type stubRepo struct {
	activities []domain.Activity
}

func (s *stubRepo) Insert(_ context.Context, a domain.Activity) (domain.Activity, error) {
	return a, nil
}
func (s *stubRepo) Update(context.Context, string, string, string) error { return nil }
func (s *stubRepo) Delete(context.Context, string, string) error        { return nil }
func (s *stubRepo) ListByUser(_ context.Context, userID string) ([]domain.Activity, error) {
	out := make([]domain.Activity, 0)
	for _, a := range s.activities {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (s *stubRepo) ListByWeek(_ context.Context, userID string, week, year int) ([]domain.Activity, error) {
	out := make([]domain.Activity, 0)
	for _, a := range s.activities {
		y, w := calendar.ISOWeek(a.Time.UTC())
		if a.UserID == userID && w == week && y == year {
			out = append(out, a)
		}
	}
	return out, nil
}

func act(user string, at time.Time, text string) domain.Activity {
	return domain.Activity{ID: text, UserID: user, Time: at, Text: text}
}

func TestListWeeksGroupsOneWeekTogether(t *testing.T) {
	base := time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC) // понедельник
	repo := &stubRepo{activities: []domain.Activity{
		act("u1", base, "standup"),
		act("u1", base.AddDate(0, 0, 2), "review"),
		act("u1", base.AddDate(0, 0, 4), "deploy"),
	}}
	svc := NewService(repo, time.UTC)

	entries, err := svc.ListWeeks(context.Background(), "u1")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("ожидали одну неделю, получили %d", len(entries))
	}
	if len(entries[0].Entries) != 3 {
		t.Fatalf("ожидали 3 записи в неделе, получили %d", len(entries[0].Entries))
	}
}

func TestListWeeksISOYearBoundary(t *testing.T) {
	// 30 декабря 2024 — понедельник первой ISO-недели 2025 года.
	repo := &stubRepo{activities: []domain.Activity{
		act("u1", time.Date(2024, time.December, 30, 10, 0, 0, 0, time.UTC), "boundary"),
	}}
	svc := NewService(repo, time.UTC)

	entries, err := svc.ListWeeks(context.Background(), "u1")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("ожидали одну неделю, получили %d", len(entries))
	}
	if entries[0].Week != 1 || entries[0].Year != 2025 {
		t.Fatalf("ожидали ключ (1, 2025), получили (%d, %d)", entries[0].Week, entries[0].Year)
	}
}

func TestListWeeksSorted(t *testing.T) {
	repo := &stubRepo{activities: []domain.Activity{
		act("u1", time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC), "old"),
		act("u1", time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC), "new"),
		act("u1", time.Date(2024, time.December, 30, 9, 0, 0, 0, time.UTC), "w1-2025"),
	}}
	svc := NewService(repo, time.UTC)

	entries, err := svc.ListWeeksSorted(context.Background(), "u1")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("ожидали 3 недели, получили %d", len(entries))
	}
	if entries[0].Week != 2 || entries[0].Year != 2025 {
		t.Fatalf("ожидали первой неделю (2, 2025), получили (%d, %d)", entries[0].Week, entries[0].Year)
	}
	if entries[2].Year != 2024 {
		t.Fatalf("ожидали последней неделю 2024 года")
	}
}

func TestGetWeekAbsent(t *testing.T) {
	svc := NewService(&stubRepo{}, time.UTC)
	_, ok, err := svc.GetWeek(context.Background(), "u1", 7, 2025)
	if err != nil {
		t.Fatalf("пустая неделя не должна быть ошибкой: %v", err)
	}
	if ok {
		t.Fatalf("ожидали отсутствие недели")
	}
}

func TestTodayActivitiesFiltersDay(t *testing.T) {
	monday := time.Date(2025, time.January, 6, 9, 30, 0, 0, time.UTC)
	repo := &stubRepo{activities: []domain.Activity{
		act("u1", monday, "monday-1"),
		act("u1", monday.Add(3*time.Hour), "monday-2"),
		act("u1", monday.AddDate(0, 0, 1), "tuesday"),
	}}
	svc := NewService(repo, time.UTC)

	today, err := svc.TodayActivities(context.Background(), "u1", monday)
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if len(today) != 2 {
		t.Fatalf("ожидали 2 записи за понедельник, получили %d", len(today))
	}
	for _, a := range today {
		if a.Text == "tuesday" {
			t.Fatalf("запись вторника не должна попадать в понедельник")
		}
	}
}

func TestTodayActivitiesEmptyWeek(t *testing.T) {
	svc := NewService(&stubRepo{}, time.UTC)
	today, err := svc.TodayActivities(context.Background(), "u1", time.Now())
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if len(today) != 0 {
		t.Fatalf("ожидали пустой список")
	}
}

func TestByDayOrdering(t *testing.T) {
	monday := time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC)
	entry := domain.WeekEntry{Week: 2, Year: 2025, Entries: []domain.Activity{
		act("u1", monday.AddDate(0, 0, 2), "wednesday"),
		act("u1", monday, "monday-early"),
		act("u1", monday.Add(2*time.Hour), "monday-late"),
	}}
	svc := NewService(&stubRepo{}, time.UTC)

	buckets := svc.ByDay(entry)
	if len(buckets) != 2 {
		t.Fatalf("ожидали 2 дня, получили %d", len(buckets))
	}
	if buckets[0].Key != "2025-01-06" || buckets[1].Key != "2025-01-08" {
		t.Fatalf("дни должны идти по возрастанию даты: %s, %s", buckets[0].Key, buckets[1].Key)
	}
	if buckets[0].DayName != "Monday, January 6" {
		t.Fatalf("неожиданное имя дня: %q", buckets[0].DayName)
	}
	if buckets[0].Entries[0].Text != "monday-early" || buckets[0].Entries[1].Text != "monday-late" {
		t.Fatalf("внутри дня должен сохраняться хронологический порядок")
	}
}

func TestListWeeksRequiresUser(t *testing.T) {
	svc := NewService(&stubRepo{}, time.UTC)
	if _, err := svc.ListWeeks(context.Background(), ""); err != domain.ErrUnauthenticated {
		t.Fatalf("ожидали ErrUnauthenticated, получили %v", err)
	}
}
