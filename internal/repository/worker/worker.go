package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"pako/internal/entities"
	"pako/internal/service/assignment"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetWorkerByID(ctx context.Context, id int64) (*entities.DeliveryWorker, error) {
	query := `
		SELECT id, name, phone, created_at, updated_at
		FROM delivery_workers
		WHERE id = $1`

	var workerEntity entities.DeliveryWorker
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&workerEntity.ID,
		&workerEntity.Name,
		&workerEntity.Phone,
		&workerEntity.CreatedAt,
		&workerEntity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrUnknownWorker
		}
		return nil, fmt.Errorf("unexpected worker repository get by id error: %w", err)
	}

	return &workerEntity, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.DeliveryWorker, error) {
	query := `
		SELECT id, name, phone, created_at, updated_at
		FROM delivery_workers
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected worker repository get all error: %w", err)
	}
	defer rows.Close()

	workers := make([]entities.DeliveryWorker, 0, 8)
	for rows.Next() {
		var workerEntity entities.DeliveryWorker
		err := rows.Scan(
			&workerEntity.ID,
			&workerEntity.Name,
			&workerEntity.Phone,
			&workerEntity.CreatedAt,
			&workerEntity.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected worker repository get all error: %w", err)
		}
		workers = append(workers, workerEntity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected worker repository get all error: %w", err)
	}

	return workers, nil
}
