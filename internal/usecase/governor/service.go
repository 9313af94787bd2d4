package governor

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"worklog-api/internal/calendar"
	"worklog-api/internal/domain"
	"worklog-api/internal/infra/metrics"
)

// Значения по умолчанию для защиты генеративного бэкенда.
const (
	DefaultMinInterval = time.Minute
	DefaultDailyLimit  = 3
)

// Причины отказа в domain.Decision.Reason.
const (
	ReasonCooldown   = "cooldown"
	ReasonDailyQuota = "daily_quota"
)

// Service — лимитер запросов к генеративному бэкенду: минимальный
// интервал между запросами и дневная квота. Это мягкая защита от
// случайных повторов, а не граница безопасности.
type Service struct {
	store       domain.GovernorStore
	minInterval time.Duration
	dailyLimit  int
	loc         *time.Location

	mu sync.Mutex
}

var _ domain.Governor = (*Service)(nil)

// NewService создаёт лимитер. Неположительные лимиты заменяются
// значениями по умолчанию.
func NewService(store domain.GovernorStore, minInterval time.Duration, dailyLimit int, loc *time.Location) *Service {
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}
	if dailyLimit <= 0 {
		dailyLimit = DefaultDailyLimit
	}
	if loc == nil {
		loc = time.Local
	}
	return &Service{store: store, minInterval: minInterval, dailyLimit: dailyLimit, loc: loc}
}

// Allow выполняет атомарную проверку с инкрементом: сначала пауза между
// запросами, затем сброс счётчика при смене даты, затем дневная квота.
// Мьютекс сериализует почти одновременные попытки внутри процесса.
func (s *Service) Allow(ctx context.Context, userID string, now time.Time) (domain.Decision, error) {
	if userID == "" {
		return domain.Decision{}, domain.ErrUnauthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load(ctx, userID)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("чтение состояния лимитера: %w", err)
	}

	today := calendar.DayKey(now.In(s.loc))

	if !state.LastRequestAt.IsZero() {
		if elapsed := now.Sub(state.LastRequestAt); elapsed < s.minInterval {
			wait := int(math.Ceil((s.minInterval - elapsed).Seconds()))
			metrics.IncGovernorRejection(ReasonCooldown)
			return domain.Decision{
				Reason:            ReasonCooldown,
				RetryAfterSeconds: wait,
				RemainingToday:    s.remaining(state, today),
			}, nil
		}
	}

	if state.CountDate != today {
		state.CountDate = today
		state.Count = 0
	}

	if state.Count >= s.dailyLimit {
		metrics.IncGovernorRejection(ReasonDailyQuota)
		return domain.Decision{Reason: ReasonDailyQuota, RemainingToday: 0}, nil
	}

	state.LastRequestAt = now
	state.Count++
	if err := s.store.Save(ctx, userID, state); err != nil {
		return domain.Decision{}, fmt.Errorf("сохранение состояния лимитера: %w", err)
	}
	return domain.Decision{Allowed: true, RemainingToday: s.dailyLimit - state.Count}, nil
}

func (s *Service) remaining(state domain.GovernorState, today string) int {
	if state.CountDate != today {
		return s.dailyLimit
	}
	if state.Count >= s.dailyLimit {
		return 0
	}
	return s.dailyLimit - state.Count
}
