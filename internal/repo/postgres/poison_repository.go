package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Gunvolt24/eventbus/internal/domain"
	"github.com/Gunvolt24/eventbus/internal/ports"
)

var _ ports.PoisonRepository = (*PoisonRepository)(nil)

// querier: общая часть pgxpool.Pool и pgx.Tx, чтобы репозиторий работал в транзакции вызывающего.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PoisonRepository: журнал отвергнутых сообщений в Postgres.
type PoisonRepository struct {
	db querier
}

func NewPoisonRepository(db querier) *PoisonRepository { return &PoisonRepository{db: db} }

// Save: идемпотентный upsert по координатам (topic, partition, offset).
// Повторная запись той же координаты обновляет попытки и текст ошибки.
func (r *PoisonRepository) Save(ctx context.Context, rec *domain.PoisonRecord) error {
	if rec == nil || rec.Topic == "" {
		return errors.New("poison record is empty or topic is required")
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO poison_records (topic, partition, "offset", attempts, error)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (topic, partition, "offset") DO UPDATE SET
			attempts = EXCLUDED.attempts,
			error    = EXCLUDED.error
		RETURNING id, created_at
	`, rec.Topic, rec.Partition, rec.Offset, rec.Attempts, rec.Error).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert poison record: %w", err)
	}
	return nil
}

// List: последние записи журнала; пустой topic означает все топики.
func (r *PoisonRepository) List(ctx context.Context, topic string, limit, offset int) ([]*domain.PoisonRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, topic, partition, "offset", attempts, error, created_at
		FROM poison_records
		WHERE ($1 = '' OR topic = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, topic, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select poison records: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.PoisonRecord, 0, limit)
	for rows.Next() {
		var p domain.PoisonRecord
		if err := rows.Scan(&p.ID, &p.Topic, &p.Partition, &p.Offset, &p.Attempts, &p.Error, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan poison record: %w", err)
		}
		out = append(out, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
