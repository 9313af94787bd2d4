package weeks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"worklog-api/internal/calendar"
	"worklog-api/internal/domain"
)

// Service агрегирует журнал по ISO-неделям и дням.
type Service struct {
	repo domain.ActivityRepo
	loc  *time.Location
}

var _ domain.WeekProvider = (*Service)(nil)

// NewService создаёт агрегатор недель.
func NewService(repo domain.ActivityRepo, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{repo: repo, loc: loc}
}

type weekKey struct {
	year int
	week int
}

// ListWeeks группирует все записи пользователя по ключу (неделя, год).
// Порядок внутри недели хронологический, как отдал репозиторий;
// порядок самих недель — по первому появлению.
func (s *Service) ListWeeks(ctx context.Context, userID string) ([]domain.WeekEntry, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	activities, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("получение записей: %w", err)
	}

	order := make([]weekKey, 0)
	grouped := make(map[weekKey][]domain.Activity)
	for _, a := range activities {
		year, week := calendar.ISOWeek(a.Time.In(s.loc))
		key := weekKey{year: year, week: week}
		if _, ok := grouped[key]; !ok {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], a)
	}

	entries := make([]domain.WeekEntry, 0, len(order))
	for _, key := range order {
		entries = append(entries, domain.WeekEntry{Week: key.week, Year: key.year, Entries: grouped[key]})
	}
	return entries, nil
}

// ListWeeksSorted возвращает недели для истории: сначала самые свежие.
func (s *Service) ListWeeksSorted(ctx context.Context, userID string) ([]domain.WeekEntry, error) {
	entries, err := s.ListWeeks(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Year != entries[j].Year {
			return entries[i].Year > entries[j].Year
		}
		return entries[i].Week > entries[j].Week
	})
	return entries, nil
}

// GetWeek возвращает неделю по точному ключу. Отсутствие записей — не
// ошибка: вызывающий трактует false как пустую неделю.
func (s *Service) GetWeek(ctx context.Context, userID string, week, year int) (domain.WeekEntry, bool, error) {
	if userID == "" {
		return domain.WeekEntry{}, false, domain.ErrUnauthenticated
	}
	activities, err := s.repo.ListByWeek(ctx, userID, week, year)
	if err != nil {
		return domain.WeekEntry{}, false, fmt.Errorf("получение недели: %w", err)
	}
	if len(activities) == 0 {
		return domain.WeekEntry{}, false, nil
	}
	return domain.WeekEntry{Week: week, Year: year, Entries: activities}, true, nil
}

// TodayActivities возвращает записи за локальную дату date.
// Нарочно ездит за всей неделей и фильтрует: для журнала одного
// человека этого достаточно, а контракт не зависит от способа выборки.
func (s *Service) TodayActivities(ctx context.Context, userID string, date time.Time) ([]domain.Activity, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	local := date.In(s.loc)
	year, week := calendar.ISOWeek(local)
	entry, ok, err := s.GetWeek(ctx, userID, week, year)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Activity{}, nil
	}
	dayKey := calendar.DayKey(local)
	today := make([]domain.Activity, 0, len(entry.Entries))
	for _, a := range entry.Entries {
		if calendar.DayKey(a.Time.In(s.loc)) == dayKey {
			today = append(today, a)
		}
	}
	return today, nil
}

// ByDay раскладывает неделю по локальным датам, по возрастанию ключа.
// Внутри дня сохраняется хронологический порядок недели.
func (s *Service) ByDay(entry domain.WeekEntry) []domain.DayBucket {
	order := make([]string, 0)
	grouped := make(map[string]*domain.DayBucket)
	for _, a := range entry.Entries {
		local := a.Time.In(s.loc)
		key := calendar.DayKey(local)
		bucket, ok := grouped[key]
		if !ok {
			order = append(order, key)
			bucket = &domain.DayBucket{Key: key, DayName: calendar.FormatDayHeading(local)}
			grouped[key] = bucket
		}
		bucket.Entries = append(bucket.Entries, a)
	}
	sort.Strings(order)

	buckets := make([]domain.DayBucket, 0, len(order))
	for _, key := range order {
		buckets = append(buckets, *grouped[key])
	}
	return buckets
}
