//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=worker_missions_get_test
package worker_missions_get

import (
	"context"

	"pako/internal/entities"
	"pako/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	MissionsByWorker(ctx context.Context, workerID int64, statuses ...entities.MissionStatusType) ([]entities.Mission, error)
}
