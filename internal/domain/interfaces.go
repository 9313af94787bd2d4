package domain

import (
	"context"
	"time"
)

// ActivityRepo управляет записями журнала. Все операции ограничены
// владельцем: чужой id ведёт к ErrNotFound, а не к чужим данным.
type ActivityRepo interface {
	Insert(ctx context.Context, activity Activity) (Activity, error)
	Update(ctx context.Context, userID, id, newText string) error
	Delete(ctx context.Context, userID, id string) error
	ListByUser(ctx context.Context, userID string) ([]Activity, error)
	ListByWeek(ctx context.Context, userID string, week, year int) ([]Activity, error)
}

// WeekProvider отдаёт агрегированные представления журнала.
type WeekProvider interface {
	GetWeek(ctx context.Context, userID string, week, year int) (WeekEntry, bool, error)
	TodayActivities(ctx context.Context, userID string, date time.Time) ([]Activity, error)
	ByDay(entry WeekEntry) []DayBucket
}

// Completer обращается к генеративной модели с готовым промптом.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Governor решает, можно ли выполнить запрос к генеративной модели.
type Governor interface {
	Allow(ctx context.Context, userID string, now time.Time) (Decision, error)
}

// GovernorStore хранит состояние лимитера между перезапусками.
type GovernorStore interface {
	Load(ctx context.Context, userID string) (GovernorState, error)
	Save(ctx context.Context, userID string, state GovernorState) error
}
