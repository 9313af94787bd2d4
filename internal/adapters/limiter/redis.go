package limiter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"worklog-api/internal/domain"
	"worklog-api/internal/infra/metrics"
)

const (
	keyPrefix = "worklog:governor:"
	stateTTL  = 48 * time.Hour
)

// RedisStore хранит состояние лимитера в Redis. Одна hash-запись
// на пользователя, переживает рестарт сервиса.
type RedisStore struct {
	client *redis.Client
}

var _ domain.GovernorStore = (*RedisStore)(nil)

// NewRedisStore создаёт хранилище поверх готового клиента.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func stateKey(userID string) string {
	return keyPrefix + userID
}

// Load читает состояние пользователя. Отсутствие ключа — нулевое
// состояние, не ошибка.
func (s *RedisStore) Load(ctx context.Context, userID string) (domain.GovernorState, error) {
	start := time.Now()
	fields, err := s.client.HGetAll(ctx, stateKey(userID)).Result()
	metrics.ObserveNetworkRequest("redis", "governor_load", "governor", start, err)
	if err != nil {
		return domain.GovernorState{}, fmt.Errorf("чтение состояния лимитера: %w", err)
	}
	if len(fields) == 0 {
		return domain.GovernorState{}, nil
	}

	var state domain.GovernorState
	if raw, ok := fields["last_request_at"]; ok && raw != "" {
		at, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return domain.GovernorState{}, fmt.Errorf("разбор last_request_at: %w", err)
		}
		state.LastRequestAt = at
	}
	state.CountDate = fields["count_date"]
	if raw, ok := fields["count"]; ok && raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return domain.GovernorState{}, fmt.Errorf("разбор count: %w", err)
		}
		state.Count = n
	}
	return state, nil
}

// Save записывает состояние пользователя целиком.
func (s *RedisStore) Save(ctx context.Context, userID string, state domain.GovernorState) error {
	key := stateKey(userID)
	start := time.Now()
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key,
		"last_request_at", state.LastRequestAt.Format(time.RFC3339Nano),
		"count_date", state.CountDate,
		"count", strconv.Itoa(state.Count),
	)
	pipe.Expire(ctx, key, stateTTL)
	_, err := pipe.Exec(ctx)
	metrics.ObserveNetworkRequest("redis", "governor_save", "governor", start, err)
	if err != nil {
		return fmt.Errorf("сохранение состояния лимитера: %w", err)
	}
	return nil
}
