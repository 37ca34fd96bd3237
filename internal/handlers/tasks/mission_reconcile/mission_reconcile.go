package mission_reconcile

import (
	"context"
	"time"

	"pako/pkg/logger"
)

type Service interface {
	ReconcileMissionStatuses(ctx context.Context) (int64, error)
}

type MissionReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewMissionReconcile(log logger.Logger, service Service, interval time.Duration) *MissionReconcile {
	return &MissionReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (m *MissionReconcile) TTL() time.Duration {
	return m.interval
}

func (m *MissionReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	rowsAffected, err := m.service.ReconcileMissionStatuses(ctxWithTimeout)

	if rowsAffected > 0 {
		m.log.With(
			logger.NewField("reconciled_missions", rowsAffected),
		).Info("mission reconcile")
	}

	return err
}

func (m *MissionReconcile) Info() string {
	return "mission reconcile"
}
