package assignment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"pako/internal/entities"
	"pako/internal/repository"
	"pako/internal/service/assignment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const missionColumns = `id, number, status, worker_id, package_id, package_code,
		assigned_at, started_at, completed_at, created_at, updated_at`

const packageColumns = `id, code, order_id, order_number, description, status,
		worker_id, worker_name, assigned_at, created_at, updated_at`

// Statuses counted as an active mission. Must stay in sync with the partial
// unique index on missions.
const activeMissionStatuses = `('pending', 'assigned', 'in_progress')`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetPackageByCode(ctx context.Context, code string) (*entities.Package, error) {
	query := `
		SELECT ` + packageColumns + `
		FROM packages
		WHERE code = $1`

	var packageModel PackageDB
	err := r.querier.QueryRow(ctx, query, code).Scan(scanPackageFields(&packageModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository get package error: %w", err)
	}

	return ToPackageDomain(&packageModel), nil
}

func (r *Repository) UpdatePackage(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error) {
	packageModifyModel := FromPackageDomainModify(&packageModifyEntity)

	builder := qb.
		Update("packages")

	if packageModifyModel.Code != nil {
		builder = builder.Set("code", packageModifyModel.Code)
	}
	if packageModifyModel.Status != nil {
		builder = builder.Set("status", packageModifyModel.Status)
	}
	if packageModifyModel.WorkerID != nil {
		builder = builder.Set("worker_id", packageModifyModel.WorkerID)
	}
	if packageModifyModel.WorkerName != nil {
		builder = builder.Set("worker_name", packageModifyModel.WorkerName)
	}
	if packageModifyModel.AssignedAt != nil {
		builder = builder.Set("assigned_at", packageModifyModel.AssignedAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": packageModifyModel.ID}).
		Suffix("RETURNING " + packageColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository update package error: %w", err)
	}

	var packageModel PackageDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanPackageFields(&packageModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrPackageNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository update package error: %w", err)
	}

	return ToPackageDomain(&packageModel), nil
}

func (r *Repository) GetOrderStatus(ctx context.Context, orderID int64) (entities.OrderStatusType, error) {
	query := `
		SELECT status
		FROM orders
		WHERE id = $1`

	var status string
	err := r.querier.QueryRow(ctx, query, orderID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", assignment.ErrPackageNotFound
		}
		return "", fmt.Errorf("unexpected assignment repository get order status error: %w", err)
	}

	return entities.OrderStatusType(status), nil
}

func (r *Repository) GetActiveMissionByPackageID(ctx context.Context, packageID int64) (*entities.Mission, error) {
	query := `
		SELECT ` + missionColumns + `
		FROM missions
		WHERE package_id = $1
		  AND status IN ` + activeMissionStatuses

	var missionModel MissionDB
	err := r.querier.QueryRow(ctx, query, packageID).Scan(scanMissionFields(&missionModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrMissionNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository get active mission error: %w", err)
	}

	return ToMissionDomain(&missionModel), nil
}

func (r *Repository) CreateMission(ctx context.Context, mission entities.Mission) (*entities.Mission, error) {
	query := `
		INSERT INTO missions (number, status, worker_id, package_id, package_code,
			assigned_at, started_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + missionColumns

	var created MissionDB
	err := r.querier.QueryRow(
		ctx,
		query,
		mission.Number,
		mission.Status.String(),
		mission.WorkerID,
		mission.PackageID,
		mission.PackageCode,
		mission.AssignedAt,
		mission.StartedAt,
		mission.CompletedAt,
	).Scan(scanMissionFields(&created)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, assignment.ErrMissionConflict
		}
		return nil, fmt.Errorf("unexpected assignment repository create mission error: %w", err)
	}

	return ToMissionDomain(&created), nil
}

func (r *Repository) UpdateMission(ctx context.Context, missionModifyEntity entities.MissionModify) (*entities.Mission, error) {
	missionModifyModel := FromMissionDomainModify(&missionModifyEntity)

	builder := qb.
		Update("missions")

	if missionModifyModel.Number != nil {
		builder = builder.Set("number", missionModifyModel.Number)
	}
	if missionModifyModel.Status != nil {
		builder = builder.Set("status", missionModifyModel.Status)
	}
	if missionModifyModel.WorkerID != nil {
		builder = builder.Set("worker_id", missionModifyModel.WorkerID)
	}
	if missionModifyModel.AssignedAt != nil {
		builder = builder.Set("assigned_at", missionModifyModel.AssignedAt)
	}
	if missionModifyModel.StartedAt != nil {
		builder = builder.Set("started_at", missionModifyModel.StartedAt)
	}
	if missionModifyModel.CompletedAt != nil {
		builder = builder.Set("completed_at", missionModifyModel.CompletedAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": missionModifyModel.ID}).
		Suffix("RETURNING " + missionColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository update mission error: %w", err)
	}

	var missionModel MissionDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanMissionFields(&missionModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrMissionNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, assignment.ErrMissionConflict
		}

		return nil, fmt.Errorf("unexpected assignment repository update mission error: %w", err)
	}

	return ToMissionDomain(&missionModel), nil
}

func (r *Repository) ListMissionsByWorker(ctx context.Context, workerID int64, statuses []entities.MissionStatusType) ([]entities.Mission, error) {
	builder := qb.
		Select(missionColumns).
		From("missions").
		Where(sq.Eq{"worker_id": workerID}).
		OrderBy("assigned_at DESC", "created_at DESC", "id DESC")

	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, status.String())
		}
		builder = builder.Where(sq.Eq{"status": values})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list missions error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list missions error: %w", err)
	}
	defer rows.Close()

	missionModels := make([]MissionDB, 0, 8)
	for rows.Next() {
		var missionModel MissionDB
		if err := rows.Scan(scanMissionFields(&missionModel)...); err != nil {
			return nil, fmt.Errorf("unexpected assignment repository list missions error: %w", err)
		}
		missionModels = append(missionModels, missionModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list missions error: %w", err)
	}

	return ToMissionDomainList(missionModels), nil
}

func (r *Repository) ListOrdersWithActiveMissions(ctx context.Context) ([]entities.OrderStatusRef, error) {
	query := `
		SELECT DISTINCT o.id, o.status
		FROM orders o
		JOIN packages p ON p.order_id = o.id
		JOIN missions m ON m.package_id = p.id
		WHERE m.status IN ` + activeMissionStatuses + `
		ORDER BY o.id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list active orders error: %w", err)
	}
	defer rows.Close()

	refs := make([]entities.OrderStatusRef, 0, 8)
	for rows.Next() {
		var (
			orderID int64
			status  string
		)
		if err := rows.Scan(&orderID, &status); err != nil {
			return nil, fmt.Errorf("unexpected assignment repository list active orders error: %w", err)
		}
		refs = append(refs, entities.OrderStatusRef{
			OrderID: orderID,
			Status:  entities.OrderStatusType(status),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected assignment repository list active orders error: %w", err)
	}

	return refs, nil
}

func (r *Repository) UpdateActiveMissionStatusesByOrder(ctx context.Context, orderID int64, status entities.MissionStatusType) (int64, error) {
	query := `
		UPDATE missions m
		SET status = $2,
			started_at = CASE
				WHEN $2 = 'in_progress' AND m.started_at IS NULL THEN NOW()
				ELSE m.started_at
			END,
			completed_at = CASE
				WHEN $2 = 'completed' THEN NOW()
				ELSE m.completed_at
			END,
			updated_at = NOW()
		FROM packages p
		WHERE m.package_id = p.id
		  AND p.order_id = $1
		  AND m.status IN ` + activeMissionStatuses + `
		  AND m.status != $2
	`

	result, err := r.querier.Exec(ctx, query, orderID, status.String())
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository sync mission statuses error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) CancelMissionsByOrder(ctx context.Context, orderID int64) (int64, error) {
	query := `
		UPDATE missions m
		SET status = 'cancelled',
			updated_at = NOW()
		FROM packages p
		WHERE m.package_id = p.id
		  AND p.order_id = $1
		  AND m.status IN ` + activeMissionStatuses

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository cancel missions error: %w", err)
	}

	return result.RowsAffected(), nil
}

// MissionNumberExists backs the mission number generator.
func (r *Repository) MissionNumberExists(ctx context.Context, number string) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM missions WHERE number = $1)
	`

	var exists bool
	err := r.querier.QueryRow(ctx, query, number).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected assignment repository mission number exists error: %w", err)
	}

	return exists, nil
}

func scanMissionFields(m *MissionDB) []interface{} {
	return []interface{}{
		&m.ID,
		&m.Number,
		&m.Status,
		&m.WorkerID,
		&m.PackageID,
		&m.PackageCode,
		&m.AssignedAt,
		&m.StartedAt,
		&m.CompletedAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	}
}

func scanPackageFields(p *PackageDB) []interface{} {
	return []interface{}{
		&p.ID,
		&p.Code,
		&p.OrderID,
		&p.OrderNumber,
		&p.Description,
		&p.Status,
		&p.WorkerID,
		&p.WorkerName,
		&p.AssignedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}
