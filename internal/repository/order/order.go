package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"pako/internal/entities"
	"pako/internal/repository"
	"pako/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, number, customer_id, customer_name, station,
		pickup_address, delivery_address,
		pickup_lat, pickup_lng, delivery_lat, delivery_lng, distance_km,
		sender_phone, receiver_phone, tier, payment_method,
		status, payment_status, total_price, created_at, updated_at`

const packageColumns = `id, code, order_id, order_number, description, status,
		worker_id, worker_name, assigned_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateOrder(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderModel := FromDomain(&orderEntity)

	query := `
		INSERT INTO orders (number, customer_id, customer_name, station,
			pickup_address, delivery_address,
			pickup_lat, pickup_lng, delivery_lat, delivery_lng, distance_km,
			sender_phone, receiver_phone, tier, payment_method,
			status, payment_status, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + orderColumns

	var created OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModel.Number,
		orderModel.CustomerID,
		orderModel.CustomerName,
		orderModel.Station,
		orderModel.PickupAddress,
		orderModel.DeliveryAddress,
		orderModel.PickupLat,
		orderModel.PickupLng,
		orderModel.DeliveryLat,
		orderModel.DeliveryLng,
		orderModel.DistanceKm,
		orderModel.SenderPhone,
		orderModel.ReceiverPhone,
		orderModel.Tier,
		orderModel.PaymentMethod,
		orderModel.Status,
		orderModel.PaymentStatus,
		orderModel.TotalPrice,
	).Scan(scanOrderFields(&created)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrOrderNumberConflict
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&created), nil
}

func (r *Repository) CreatePackage(ctx context.Context, pkg entities.Package) (*entities.Package, error) {
	query := `
		INSERT INTO packages (code, order_id, order_number, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + packageColumns

	var created PackageDB
	err := r.querier.QueryRow(
		ctx,
		query,
		pkg.Code,
		pkg.OrderID,
		pkg.OrderNumber,
		pkg.Description,
		pkg.Status.String(),
	).Scan(scanPackageFields(&created)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrPackageCodeConflict
		}
		return nil, fmt.Errorf("unexpected order repository create package error: %w", err)
	}

	return ToPackageDomain(&created), nil
}

func (r *Repository) GetOrderByNumber(ctx context.Context, number string) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE number = $1`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, number).Scan(scanOrderFields(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get by number error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) ListOrdersByCustomer(ctx context.Context, customerID string) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.querier.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list by customer error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		if err := rows.Scan(scanOrderFields(&orderModel)...); err != nil {
			return nil, fmt.Errorf("unexpected order repository list by customer error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list by customer error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) ListPackagesByOrder(ctx context.Context, orderID int64) ([]entities.Package, error) {
	query := `
		SELECT ` + packageColumns + `
		FROM packages
		WHERE order_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list packages error: %w", err)
	}
	defer rows.Close()

	packageModels := make([]PackageDB, 0, 4)
	for rows.Next() {
		var packageModel PackageDB
		if err := rows.Scan(scanPackageFields(&packageModel)...); err != nil {
			return nil, fmt.Errorf("unexpected order repository list packages error: %w", err)
		}
		packageModels = append(packageModels, packageModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list packages error: %w", err)
	}

	return ToPackageDomainList(packageModels), nil
}

func (r *Repository) UpdateOrder(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	if orderModifyModel.Number != nil {
		builder = builder.Set("number", orderModifyModel.Number)
	}
	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.PaymentStatus != nil {
		builder = builder.Set("payment_status", orderModifyModel.PaymentStatus)
	}
	if orderModifyModel.TotalPrice != nil {
		builder = builder.Set("total_price", orderModifyModel.TotalPrice)
	}
	if orderModifyModel.DistanceKm != nil {
		builder = builder.Set("distance_km", orderModifyModel.DistanceKm)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanOrderFields(&orderModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrOrderNumberConflict
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) DeleteOrder(ctx context.Context, id int64) error {
	query := `
		DELETE FROM orders WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) PackageCodeExists(ctx context.Context, code string) (bool, error) {
	query := `
		SELECT EXISTS(SELECT 1 FROM packages WHERE code = $1)
	`

	var exists bool
	err := r.querier.QueryRow(ctx, query, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository package code exists error: %w", err)
	}

	return exists, nil
}

func (r *Repository) CancelPackagesByOrder(ctx context.Context, orderID int64) (int64, error) {
	query := `
		UPDATE packages
		SET status = 'cancelled',
			updated_at = NOW()
		WHERE order_id = $1
		  AND status != 'cancelled'
	`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository cancel packages error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanOrderFields(o *OrderDB) []interface{} {
	return []interface{}{
		&o.ID,
		&o.Number,
		&o.CustomerID,
		&o.CustomerName,
		&o.Station,
		&o.PickupAddress,
		&o.DeliveryAddress,
		&o.PickupLat,
		&o.PickupLng,
		&o.DeliveryLat,
		&o.DeliveryLng,
		&o.DistanceKm,
		&o.SenderPhone,
		&o.ReceiverPhone,
		&o.Tier,
		&o.PaymentMethod,
		&o.Status,
		&o.PaymentStatus,
		&o.TotalPrice,
		&o.CreatedAt,
		&o.UpdatedAt,
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
