//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_assign_post_test
package package_assign_post

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
	AssignPackageToWorker(ctx context.Context, packageCode string, workerID int64) (*entities.Mission, error)
}
