package limiter

import (
	"context"
	"sync"

	"worklog-api/internal/domain"
)

// MemoryStore держит состояние лимитера в памяти процесса.
// Для локальной разработки без Redis.
type MemoryStore struct {
	mu     sync.Mutex
	states map[string]domain.GovernorState
}

var _ domain.GovernorStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]domain.GovernorState)}
}

func (s *MemoryStore) Load(_ context.Context, userID string) (domain.GovernorState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[userID], nil
}

func (s *MemoryStore) Save(_ context.Context, userID string, state domain.GovernorState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[userID] = state
	return nil
}
