package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"worklog-api/internal/domain"
	"worklog-api/internal/infra/metrics"
)

// Postgres реализует domain.ActivityRepo на pgxpool.
type Postgres struct {
	pool *pgxpool.Pool
}

var _ domain.ActivityRepo = (*Postgres)(nil)

// NewPostgres создаёт адаптер БД.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) connCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, 5*time.Second)
}

// Insert сохраняет запись и назначает ей идентификатор.
func (p *Postgres) Insert(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	ctx, cancel := p.connCtx(ctx)
	defer cancel()

	activity.ID = uuid.NewString()
	start := time.Now()
	err := p.pool.QueryRow(ctx, `
INSERT INTO work_logs (id, user_id, time, activity, week, year)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created_at, updated_at
`, activity.ID, activity.UserID, activity.Time, activity.Text, activity.Week, activity.Year).Scan(&activity.CreatedAt, &activity.UpdatedAt)
	metrics.ObserveNetworkRequest("postgres", "work_logs_insert", "work_logs", start, err)
	if err != nil {
		return domain.Activity{}, err
	}
	return activity, nil
}

// Update меняет текст записи пользователя. Чужой id — ErrNotFound.
func (p *Postgres) Update(ctx context.Context, userID, id, newText string) error {
	ctx, cancel := p.connCtx(ctx)
	defer cancel()

	start := time.Now()
	tag, err := p.pool.Exec(ctx, `
UPDATE work_logs SET activity = $1, updated_at = now()
WHERE id = $2 AND user_id = $3
`, newText, id, userID)
	metrics.ObserveNetworkRequest("postgres", "work_logs_update", "work_logs", start, err)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete удаляет запись пользователя. Чужой id — ErrNotFound.
func (p *Postgres) Delete(ctx context.Context, userID, id string) error {
	ctx, cancel := p.connCtx(ctx)
	defer cancel()

	start := time.Now()
	tag, err := p.pool.Exec(ctx, `
DELETE FROM work_logs WHERE id = $1 AND user_id = $2
`, id, userID)
	metrics.ObserveNetworkRequest("postgres", "work_logs_delete", "work_logs", start, err)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser возвращает все записи пользователя по возрастанию времени.
// Одинаковое время разрешается порядком создания.
func (p *Postgres) ListByUser(ctx context.Context, userID string) ([]domain.Activity, error) {
	ctx, cancel := p.connCtx(ctx)
	defer cancel()

	start := time.Now()
	rows, err := p.pool.Query(ctx, `
SELECT id, user_id, time, activity, week, year, created_at, updated_at
FROM work_logs
WHERE user_id = $1
ORDER BY time ASC, created_at ASC
`, userID)
	metrics.ObserveNetworkRequest("postgres", "work_logs_list", "work_logs", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanActivities(rows)
}

// ListByWeek возвращает записи одной ISO-недели пользователя.
func (p *Postgres) ListByWeek(ctx context.Context, userID string, week, year int) ([]domain.Activity, error) {
	ctx, cancel := p.connCtx(ctx)
	defer cancel()

	start := time.Now()
	rows, err := p.pool.Query(ctx, `
SELECT id, user_id, time, activity, week, year, created_at, updated_at
FROM work_logs
WHERE user_id = $1 AND week = $2 AND year = $3
ORDER BY time ASC, created_at ASC
`, userID, week, year)
	metrics.ObserveNetworkRequest("postgres", "work_logs_list_week", "work_logs", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanActivities(rows)
}

func scanActivities(rows pgx.Rows) ([]domain.Activity, error) {
	activities := make([]domain.Activity, 0)
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Time, &a.Text, &a.Week, &a.Year, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
