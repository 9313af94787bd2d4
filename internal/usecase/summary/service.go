package summary

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"worklog-api/internal/calendar"
	"worklog-api/internal/domain"
	"worklog-api/internal/infra/metrics"
)

// Сообщения об ошибках генерации, попадающие в SummaryResult.Error.
const (
	errAPIKeyMissing  = "API Key Missing"
	errGenerateFailed = "Failed to generate report"
	errWeekLoadFailed = "Failed to load week activities"
	errDayLoadFailed  = "Failed to load day activities"
	errLimiterFailed  = "Rate limiter unavailable"
)

// Service связывает агрегатор недель, композер промптов и генеративный
// бэкенд. Сбои хранилища и бэкенда превращаются в структурный результат
// и не поднимаются выше; промпт сохраняется даже при неудаче.
type Service struct {
	weeks     domain.WeekProvider
	governor  domain.Governor
	completer domain.Completer
	log       zerolog.Logger
	now       func() time.Time
}

// NewService создаёт оркестратор генерации отчётов.
func NewService(weeks domain.WeekProvider, governor domain.Governor, completer domain.Completer, log zerolog.Logger) *Service {
	return &Service{weeks: weeks, governor: governor, completer: completer, log: log, now: time.Now}
}

// GenerateWeekSummary строит недельный отчёт. Пустая неделя отвечает
// сразу, без проверки лимитера и без похода в бэкенд. Отказ лимитера
// возвращается как *domain.RateLimitError.
func (s *Service) GenerateWeekSummary(ctx context.Context, userID string, week, year int) (domain.SummaryResult, error) {
	if userID == "" {
		return domain.SummaryResult{}, domain.ErrUnauthenticated
	}
	metrics.IncSummaryRequest("week")

	entry, ok, err := s.weeks.GetWeek(ctx, userID, week, year)
	if err != nil {
		s.log.Error().Err(err).Int("week", week).Int("year", year).Msg("summary: загрузка недели")
		return domain.SummaryResult{Error: errWeekLoadFailed}, nil
	}
	if !ok || len(entry.Entries) == 0 {
		return domain.SummaryResult{Prompt: "", Content: EmptyWeekMessage}, nil
	}

	prompt := WeekPrompt(s.weeks.ByDay(entry))
	return s.generate(ctx, userID, prompt)
}

// GenerateDaySummary строит дневной отчёт за локальную дату date.
func (s *Service) GenerateDaySummary(ctx context.Context, userID string, date time.Time) (domain.SummaryResult, error) {
	if userID == "" {
		return domain.SummaryResult{}, domain.ErrUnauthenticated
	}
	metrics.IncSummaryRequest("day")

	entries, err := s.weeks.TodayActivities(ctx, userID, date)
	if err != nil {
		s.log.Error().Err(err).Str("date", calendar.DayKey(date)).Msg("summary: загрузка дня")
		return domain.SummaryResult{Error: errDayLoadFailed}, nil
	}
	if len(entries) == 0 {
		return domain.SummaryResult{Prompt: "", Content: EmptyDayMessage}, nil
	}

	prompt := DayPrompt(entries, "")
	return s.generate(ctx, userID, prompt)
}

func (s *Service) generate(ctx context.Context, userID, prompt string) (domain.SummaryResult, error) {
	decision, err := s.governor.Allow(ctx, userID, s.now())
	if err != nil {
		s.log.Error().Err(err).Msg("summary: лимитер недоступен")
		return domain.SummaryResult{Prompt: prompt, Error: errLimiterFailed}, nil
	}
	if !decision.Allowed {
		return domain.SummaryResult{}, &domain.RateLimitError{Decision: decision}
	}

	start := time.Now()
	content, err := s.completer.Complete(ctx, prompt)
	metrics.ObserveSummaryBuild(start)
	if err != nil {
		s.log.Error().Err(err).Msg("summary: генерация не удалась")
		reason := errGenerateFailed
		if errors.Is(err, domain.ErrCompleterNotConfigured) {
			reason = errAPIKeyMissing
		}
		return domain.SummaryResult{Prompt: prompt, Error: reason}, nil
	}
	return domain.SummaryResult{Prompt: prompt, Content: content}, nil
}
