//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"pako/internal/entities"
	"pako/pkg/logger"
)

type Repository interface {
	GetPackageByCode(ctx context.Context, code string) (*entities.Package, error)
	UpdatePackage(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error)
	GetOrderStatus(ctx context.Context, orderID int64) (entities.OrderStatusType, error)
	GetActiveMissionByPackageID(ctx context.Context, packageID int64) (*entities.Mission, error)
	CreateMission(ctx context.Context, mission entities.Mission) (*entities.Mission, error)
	UpdateMission(ctx context.Context, missionModify entities.MissionModify) (*entities.Mission, error)
	ListMissionsByWorker(ctx context.Context, workerID int64, statuses []entities.MissionStatusType) ([]entities.Mission, error)
	ListOrdersWithActiveMissions(ctx context.Context) ([]entities.OrderStatusRef, error)
	UpdateActiveMissionStatusesByOrder(ctx context.Context, orderID int64, status entities.MissionStatusType) (int64, error)
	CancelMissionsByOrder(ctx context.Context, orderID int64) (int64, error)
}

type WorkerDirectory interface {
	GetWorkerByID(ctx context.Context, id int64) (*entities.DeliveryWorker, error)
}

type IdentifierGenerator interface {
	MissionNumber(ctx context.Context) (string, error)
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
