//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"pako/internal/entities"
	"pako/pkg/logger"
)

type Repository interface {
	CreateOrder(ctx context.Context, order entities.Order) (*entities.Order, error)
	CreatePackage(ctx context.Context, pkg entities.Package) (*entities.Package, error)
	GetOrderByNumber(ctx context.Context, number string) (*entities.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]entities.Order, error)
	ListPackagesByOrder(ctx context.Context, orderID int64) ([]entities.Package, error)
	UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	PackageCodeExists(ctx context.Context, code string) (bool, error)
	CancelPackagesByOrder(ctx context.Context, orderID int64) (int64, error)
}

type Pricer interface {
	Quote(distanceKm float64, packageCount int, express bool) (*entities.PriceQuote, error)
}

type DistanceCalculator interface {
	DistanceKm(a, b entities.GeoPoint) (float64, error)
}

type IdentifierGenerator interface {
	OrderNumber() string
	PackageCode(orderNumber, seed string, index int) string
}

// MissionSyncer keeps mission statuses in lockstep with order transitions.
// Implemented by the assignment service; called inside the same transaction.
type MissionSyncer interface {
	SyncMissionsForOrder(ctx context.Context, orderID int64, status entities.OrderStatusType) error
	CancelMissionsForOrder(ctx context.Context, orderID int64) error
}

type Notifier interface {
	SendSMS(ctx context.Context, phone, message string) error
}

type PaymentGateway interface {
	Capture(ctx context.Context, amount int64, method entities.PaymentMethodType, payerPhone string) (*entities.PaymentCapture, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
