package activities

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"worklog-api/internal/calendar"
	"worklog-api/internal/domain"
	"worklog-api/internal/infra/metrics"
)

// Service управляет записями журнала пользователя.
type Service struct {
	repo domain.ActivityRepo
	loc  *time.Location
	now  func() time.Time
}

// NewService создаёт сервис записей.
func NewService(repo domain.ActivityRepo, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{repo: repo, loc: loc, now: time.Now}
}

// Add сохраняет новую запись. Время по умолчанию — сейчас; ключ
// (неделя, год) считается одним совмещённым ISO-вычислением.
func (s *Service) Add(ctx context.Context, userID, text string, at time.Time) (domain.Activity, error) {
	if userID == "" {
		return domain.Activity{}, domain.ErrUnauthenticated
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.Activity{}, domain.ErrEmptyActivity
	}
	if at.IsZero() {
		at = s.now()
	}
	year, week := calendar.ISOWeek(at.In(s.loc))
	saved, err := s.repo.Insert(ctx, domain.Activity{
		UserID: userID,
		Time:   at,
		Text:   trimmed,
		Week:   week,
		Year:   year,
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("сохранение записи: %w", err)
	}
	metrics.IncActivityWritten("add")
	return saved, nil
}

// Update меняет текст записи. Чужой или несуществующий id — ErrNotFound.
func (s *Service) Update(ctx context.Context, userID, id, newText string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}
	trimmed := strings.TrimSpace(newText)
	if trimmed == "" {
		return domain.ErrEmptyActivity
	}
	if err := s.repo.Update(ctx, userID, id, trimmed); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("обновление записи: %w", err)
	}
	metrics.IncActivityWritten("update")
	return nil
}

// Delete удаляет запись пользователя. Мягкого удаления нет.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return domain.ErrUnauthenticated
	}
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("удаление записи: %w", err)
	}
	metrics.IncActivityWritten("delete")
	return nil
}
