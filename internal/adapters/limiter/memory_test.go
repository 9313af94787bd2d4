package limiter

import (
	"context"
	"testing"
	"time"

	"worklog-api/internal/domain"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	state, err := store.Load(ctx, "user-1")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !state.LastRequestAt.IsZero() || state.Count != 0 {
		t.Fatalf("ожидалось нулевое состояние, получено %+v", state)
	}

	want := domain.GovernorState{
		LastRequestAt: time.Date(2025, 1, 6, 9, 30, 0, 0, time.UTC),
		CountDate:     "2025-01-06",
		Count:         2,
	}
	if err := store.Save(ctx, "user-1", want); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	got, err := store.Load(ctx, "user-1")
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if got != want {
		t.Fatalf("ожидалось %+v, получено %+v", want, got)
	}

	other, _ := store.Load(ctx, "user-2")
	if other.Count != 0 {
		t.Fatalf("состояние не должно пересекаться между пользователями")
	}
}
