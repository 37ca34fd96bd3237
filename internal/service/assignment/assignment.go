package assignment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pako/internal/entities"
	"pako/pkg/logger"
)

// Coordinator assigns packages to delivery workers and keeps mission state
// aligned with the owning order.
type Coordinator struct {
	log        serviceLogger
	repository Repository
	workers    WorkerDirectory
	identifier IdentifierGenerator
	txManager  TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	workers WorkerDirectory,
	identifier IdentifierGenerator,
	txManager TxManager,
) *Coordinator {
	return &Coordinator{
		log:        log,
		repository: repository,
		workers:    workers,
		identifier: identifier,
		txManager:  txManager,
	}
}

// AssignPackageToWorker attaches a package to a worker atomically. An unknown
// worker fails the whole call; a package never ends up assigned to nobody.
// Re-assigning the same worker is a no-op, a different worker takes over the
// active mission.
func (s *Coordinator) AssignPackageToWorker(ctx context.Context, packageCode string, workerID int64) (*entities.Mission, error) {
	if strings.TrimSpace(packageCode) == "" || workerID <= 0 {
		return nil, ErrInvalidInput
	}

	var mission *entities.Mission
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		worker, err := s.workers.GetWorkerByID(ctx, workerID)
		if err != nil {
			return fmt.Errorf("get worker: %w", err)
		}

		pkg, err := s.repository.GetPackageByCode(ctx, packageCode)
		if err != nil {
			return fmt.Errorf("get package: %w", err)
		}
		if pkg.Status == entities.PackageCancelled {
			return fmt.Errorf("%w: package %s is cancelled", ErrPackageNotAssignable, pkg.Code)
		}

		orderStatus, err := s.repository.GetOrderStatus(ctx, pkg.OrderID)
		if err != nil {
			return fmt.Errorf("get order status: %w", err)
		}
		if orderStatus.IsTerminal() {
			return fmt.Errorf("%w: order is %s", ErrPackageNotAssignable, orderStatus)
		}

		now := time.Now().UTC()
		targetStatus := entities.MissionStatusFor(orderStatus, pkg.Status)

		mission, err = s.ensureMission(ctx, pkg, workerID, targetStatus, now)
		if err != nil {
			return err
		}

		packageModify := entities.PackageModify{
			ID:         &pkg.ID,
			WorkerID:   &workerID,
			WorkerName: &worker.Name,
			AssignedAt: &now,
		}
		if pkg.Status.CanTransitionTo(entities.PackageInDelivery) {
			inDelivery := entities.PackageInDelivery
			packageModify.Status = &inDelivery
		}
		if _, err := s.repository.UpdatePackage(ctx, packageModify); err != nil {
			return fmt.Errorf("update package: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("package assigned",
		logger.NewField("package_code", packageCode),
		logger.NewField("worker_id", workerID),
		logger.NewField("mission_number", mission.Number),
	)
	return mission, nil
}

func (s *Coordinator) ensureMission(
	ctx context.Context,
	pkg *entities.Package,
	workerID int64,
	status entities.MissionStatusType,
	now time.Time,
) (*entities.Mission, error) {
	active, err := s.repository.GetActiveMissionByPackageID(ctx, pkg.ID)
	switch {
	case err == nil:
		if active.WorkerID != nil && *active.WorkerID == workerID {
			return active, nil
		}

		updated, err := s.repository.UpdateMission(ctx, entities.MissionModify{
			ID:         &active.ID,
			Status:     &status,
			WorkerID:   &workerID,
			AssignedAt: &now,
		})
		if err != nil {
			return nil, fmt.Errorf("reassign mission: %w", err)
		}
		return updated, nil

	case errors.Is(err, ErrMissionNotFound):
		number, err := s.identifier.MissionNumber(ctx)
		if err != nil {
			return nil, fmt.Errorf("generate mission number: %w", err)
		}

		mission := entities.Mission{
			Number:      number,
			Status:      status,
			WorkerID:    &workerID,
			PackageID:   &pkg.ID,
			PackageCode: pkg.Code,
			AssignedAt:  &now,
		}
		if status == entities.MissionInProgress {
			mission.StartedAt = &now
		}

		created, err := s.repository.CreateMission(ctx, mission)
		if err != nil {
			return nil, fmt.Errorf("create mission: %w", err)
		}
		return created, nil

	default:
		return nil, fmt.Errorf("get active mission: %w", err)
	}
}

// MissionsByWorker returns the worker's missions, newest assignment first.
// Without a status filter every mission is returned, active and finished.
func (s *Coordinator) MissionsByWorker(ctx context.Context, workerID int64, statuses ...entities.MissionStatusType) ([]entities.Mission, error) {
	if workerID <= 0 {
		return nil, ErrInvalidInput
	}
	for _, status := range statuses {
		switch status {
		case entities.MissionPending, entities.MissionAssigned, entities.MissionInProgress,
			entities.MissionCompleted, entities.MissionCancelled:
		default:
			return nil, fmt.Errorf("%w: unknown mission status %q", ErrInvalidInput, status)
		}
	}

	if _, err := s.workers.GetWorkerByID(ctx, workerID); err != nil {
		return nil, fmt.Errorf("get worker: %w", err)
	}

	missions, err := s.repository.ListMissionsByWorker(ctx, workerID, statuses)
	if err != nil {
		return nil, fmt.Errorf("list missions: %w", err)
	}
	return missions, nil
}

// SyncMissionsForOrder moves the active missions of an order to the status the
// order implies. Runs inside the caller's transaction.
func (s *Coordinator) SyncMissionsForOrder(ctx context.Context, orderID int64, status entities.OrderStatusType) error {
	target := entities.MissionStatusFor(status, entities.PackageInDelivery)

	if _, err := s.repository.UpdateActiveMissionStatusesByOrder(ctx, orderID, target); err != nil {
		return fmt.Errorf("sync mission statuses: %w", err)
	}
	return nil
}

// CancelMissionsForOrder cancels the active missions of an order. Runs inside
// the caller's transaction.
func (s *Coordinator) CancelMissionsForOrder(ctx context.Context, orderID int64) error {
	if _, err := s.repository.CancelMissionsByOrder(ctx, orderID); err != nil {
		return fmt.Errorf("cancel missions: %w", err)
	}
	return nil
}

// ReconcileMissionStatuses realigns every active mission with its order. The
// synchronous propagation in the order service makes drift rare; this is the
// safety net run periodically in the background.
func (s *Coordinator) ReconcileMissionStatuses(ctx context.Context) (int64, error) {
	var total int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		refs, err := s.repository.ListOrdersWithActiveMissions(ctx)
		if err != nil {
			return fmt.Errorf("list orders with active missions: %w", err)
		}

		for _, ref := range refs {
			target := entities.MissionStatusFor(ref.Status, entities.PackageInDelivery)

			updated, err := s.repository.UpdateActiveMissionStatusesByOrder(ctx, ref.OrderID, target)
			if err != nil {
				return fmt.Errorf("reconcile order %d: %w", ref.OrderID, err)
			}
			total += updated
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if total > 0 {
		s.log.Warn("mission statuses drifted and were reconciled",
			logger.NewField("updated", total),
		)
	}
	return total, nil
}
