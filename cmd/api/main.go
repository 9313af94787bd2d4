package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"worklog-api/internal/adapters/completion"
	"worklog-api/internal/adapters/limiter"
	"worklog-api/internal/adapters/repo"
	"worklog-api/internal/domain"
	"worklog-api/internal/infra/config"
	"worklog-api/internal/infra/db"
	"worklog-api/internal/infra/gemini"
	httpinfra "worklog-api/internal/infra/http"
	"worklog-api/internal/infra/log"
	"worklog-api/internal/infra/metrics"
	"worklog-api/internal/usecase/activities"
	"worklog-api/internal/usecase/governor"
	"worklog-api/internal/usecase/summary"
	"worklog-api/internal/usecase/weeks"
)

func main() {
	cfg := config.Load()
	logger := log.NewLogger(cfg.AppEnv, "worklog-api")
	loc := cfg.Location()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.MustRegister(prometheus.DefaultRegisterer)
	metrics.StartServer(ctx, logger, cfg.MetricsAddr)

	pool, err := db.Connect(cfg.PGDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("подключение к postgres")
	}
	defer pool.Close()

	var governorStore domain.GovernorStore
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatal().Err(err).Msg("подключение к redis")
		}
		defer redisClient.Close()
		governorStore = limiter.NewRedisStore(redisClient)
	} else {
		logger.Warn().Msg("REDIS_ADDR не задан, состояние лимитера живёт в памяти процесса")
		governorStore = limiter.NewMemoryStore()
	}

	var completer domain.Completer
	switch cfg.Summary.Provider {
	case "stub":
		logger.Warn().Msg("генерация отчётов работает в режиме заглушки")
		completer = completion.Stub{}
	default:
		client := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Timeout)
		completer = completion.NewGemini(client, cfg.Gemini.Model, cfg.Gemini.Timeout)
	}

	activityRepo := repo.NewPostgres(pool)
	weekSvc := weeks.NewService(activityRepo, loc)
	activitySvc := activities.NewService(activityRepo, loc)
	governorSvc := governor.NewService(governorStore, cfg.Summary.MinInterval, cfg.Summary.DailyLimit, loc)
	summarySvc := summary.NewService(weekSvc, governorSvc, completer, logger)

	server := httpinfra.NewServer(logger)
	h := &handlers{
		log:        logger,
		loc:        loc,
		weeks:      weekSvc,
		activities: activitySvc,
		summaries:  summarySvc,
	}
	h.register(server.Router, cfg.Auth.JWTSecret)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(addr(cfg.Port))
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("получен сигнал завершения")
	case err := <-errCh:
		logger.Error().Err(err).Msg("HTTP сервер остановился")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("остановка HTTP сервера")
	}
	logger.Info().Msg("сервис остановлен")
}
