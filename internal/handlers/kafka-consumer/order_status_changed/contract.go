package order_status_changed

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
	UpdateStatus(ctx context.Context, number string, status entities.OrderStatusType) (*entities.Order, error)
}
