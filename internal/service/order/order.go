package order

import (
	"context"
	"fmt"
	"strconv"

	"pako/internal/entities"
	"pako/pkg/logger"
)

const (
	maxPackageCodeLen        = 50
	packageCodeDedupAttempts = 5
)

// Lifecycle owns the order state machine: creation, status transitions and
// removal. Mission statuses are kept consistent inside the same transaction.
type Lifecycle struct {
	log        serviceLogger
	repository Repository
	pricer     Pricer
	distance   DistanceCalculator
	identifier IdentifierGenerator
	missions   MissionSyncer
	notifier   Notifier
	payments   PaymentGateway
	txManager  TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	pricer Pricer,
	distance DistanceCalculator,
	identifier IdentifierGenerator,
	missions MissionSyncer,
	notifier Notifier,
	payments PaymentGateway,
	txManager TxManager,
) *Lifecycle {
	return &Lifecycle{
		log:        log,
		repository: repository,
		pricer:     pricer,
		distance:   distance,
		identifier: identifier,
		missions:   missions,
		notifier:   notifier,
		payments:   payments,
		txManager:  txManager,
	}
}

// CreateOrder registers an order with its packages atomically. The total is
// recomputed server side whenever both coordinates are present; the notification
// and payment capture run after commit and never fail the call.
func (s *Lifecycle) CreateOrder(ctx context.Context, draft entities.OrderDraft) (*entities.Order, []entities.Package, error) {
	if err := validateDraft(draft); err != nil {
		return nil, nil, err
	}

	totalPrice, distanceKm, err := s.resolveTotal(draft)
	if err != nil {
		return nil, nil, err
	}

	number := s.identifier.OrderNumber()

	var (
		createdOrder    *entities.Order
		createdPackages []entities.Package
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.repository.CreateOrder(ctx, entities.Order{
			Number:          number,
			CustomerID:      draft.CustomerID,
			CustomerName:    draft.CustomerName,
			Station:         draft.Station,
			PickupAddress:   draft.PickupAddress,
			DeliveryAddress: draft.DeliveryAddress,
			PickupPoint:     draft.PickupPoint,
			DeliveryPoint:   draft.DeliveryPoint,
			DistanceKm:      distanceKm,
			SenderPhone:     draft.SenderPhone,
			ReceiverPhone:   draft.ReceiverPhone,
			Tier:            draft.Tier,
			PaymentMethod:   draft.PaymentMethod,
			Status:          entities.OrderPending,
			PaymentStatus:   entities.PaymentPending,
			TotalPrice:      totalPrice,
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		createdOrder = created

		for i := range draft.Packages {
			code, err := s.uniquePackageCode(ctx, created.Number, draft.CustomerID, i+1)
			if err != nil {
				return err
			}

			pkg, err := s.repository.CreatePackage(ctx, entities.Package{
				Code:        code,
				OrderID:     created.ID,
				OrderNumber: created.Number,
				Description: draft.Packages[i].Description,
				Status:      entities.PackageReceived,
			})
			if err != nil {
				return fmt.Errorf("create package: %w", err)
			}
			createdPackages = append(createdPackages, *pkg)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.log.Info("order created",
		logger.NewField("order_number", createdOrder.Number),
		logger.NewField("packages", len(createdPackages)),
		logger.NewField("total_price", createdOrder.TotalPrice),
	)

	s.notifyCreated(ctx, createdOrder, len(createdPackages))
	s.capturePayment(ctx, createdOrder)

	return createdOrder, createdPackages, nil
}

// UpdateStatus applies one transition of the order state machine and propagates
// it to packages and missions in the same transaction.
func (s *Lifecycle) UpdateStatus(ctx context.Context, number string, status entities.OrderStatusType) (*entities.Order, error) {
	if !isValidOrderNumber(number) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetOrderByNumber(ctx, number)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if !current.Status.CanTransitionTo(status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.Status, status)
		}

		modified, err := s.repository.UpdateOrder(ctx, entities.OrderModify{
			ID:     &current.ID,
			Status: &status,
		})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		updated = modified

		if status == entities.OrderCancelled {
			if _, err := s.repository.CancelPackagesByOrder(ctx, current.ID); err != nil {
				return fmt.Errorf("cancel packages: %w", err)
			}
			if err := s.missions.CancelMissionsForOrder(ctx, current.ID); err != nil {
				return fmt.Errorf("cancel missions: %w", err)
			}
			return nil
		}

		if err := s.missions.SyncMissionsForOrder(ctx, current.ID, status); err != nil {
			return fmt.Errorf("sync missions: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Lifecycle) GetOrder(ctx context.Context, number string) (*entities.Order, []entities.Package, error) {
	if !isValidOrderNumber(number) {
		return nil, nil, ErrMissingRequiredFields
	}

	ord, err := s.repository.GetOrderByNumber(ctx, number)
	if err != nil {
		return nil, nil, fmt.Errorf("get order: %w", err)
	}

	packages, err := s.repository.ListPackagesByOrder(ctx, ord.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list packages: %w", err)
	}
	return ord, packages, nil
}

func (s *Lifecycle) ListOrdersByCustomer(ctx context.Context, customerID string) ([]entities.Order, error) {
	if customerID == "" {
		return nil, ErrMissingRequiredFields
	}

	orders, err := s.repository.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// RemoveOrder deletes an order entirely. Missions are cancelled explicitly
// first; packages go with the order via FK cascade.
func (s *Lifecycle) RemoveOrder(ctx context.Context, number string) error {
	if !isValidOrderNumber(number) {
		return ErrMissingRequiredFields
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		ord, err := s.repository.GetOrderByNumber(ctx, number)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if err := s.missions.CancelMissionsForOrder(ctx, ord.ID); err != nil {
			return fmt.Errorf("cancel missions: %w", err)
		}

		if err := s.repository.DeleteOrder(ctx, ord.ID); err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return nil
	})
}

func (s *Lifecycle) resolveTotal(draft entities.OrderDraft) (int64, *float64, error) {
	if draft.PickupPoint == nil || draft.DeliveryPoint == nil {
		if draft.ClientTotalPrice == nil || *draft.ClientTotalPrice < 0 {
			return 0, nil, ErrMissingPricingInput
		}
		return *draft.ClientTotalPrice, nil, nil
	}

	km, err := s.distance.DistanceKm(*draft.PickupPoint, *draft.DeliveryPoint)
	if err != nil {
		return 0, nil, fmt.Errorf("compute distance: %w", err)
	}

	quote, err := s.pricer.Quote(km, len(draft.Packages), draft.Tier == entities.TierExpress)
	if err != nil {
		return 0, nil, fmt.Errorf("compute price: %w", err)
	}

	if draft.ClientTotalPrice != nil && *draft.ClientTotalPrice != quote.TotalPrice {
		s.log.Warn("client total differs from recomputed total, server price wins",
			logger.NewField("client_total", *draft.ClientTotalPrice),
			logger.NewField("server_total", quote.TotalPrice),
		)
	}
	return quote.TotalPrice, &km, nil
}

func (s *Lifecycle) uniquePackageCode(ctx context.Context, orderNumber, seed string, index int) (string, error) {
	base := s.identifier.PackageCode(orderNumber, seed, index)

	candidate := base
	for attempt := 0; attempt <= packageCodeDedupAttempts; attempt++ {
		if attempt > 0 {
			suffix := "-" + strconv.Itoa(attempt)
			trimmed := base
			if len(trimmed)+len(suffix) > maxPackageCodeLen {
				trimmed = trimmed[:maxPackageCodeLen-len(suffix)]
			}
			candidate = trimmed + suffix
		}

		exists, err := s.repository.PackageCodeExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check package code: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrPackageCodeExhausted
}

func (s *Lifecycle) notifyCreated(ctx context.Context, ord *entities.Order, packageCount int) {
	message := fmt.Sprintf("Pako: order %s registered, %d package(s), total %d FCFA",
		ord.Number, packageCount, ord.TotalPrice)

	if err := s.notifier.SendSMS(ctx, ord.SenderPhone, message); err != nil {
		s.log.Warn("order created notification failed",
			logger.NewField("order_number", ord.Number),
			logger.NewField("error", err.Error()),
		)
	}
}

func (s *Lifecycle) capturePayment(ctx context.Context, ord *entities.Order) {
	if !ord.PaymentMethod.IsOnline() {
		return
	}

	paymentStatus := entities.PaymentPaid
	capture, err := s.payments.Capture(ctx, ord.TotalPrice, ord.PaymentMethod, ord.SenderPhone)
	switch {
	case err != nil:
		paymentStatus = entities.PaymentFailed
		s.log.Warn("payment capture failed",
			logger.NewField("order_number", ord.Number),
			logger.NewField("error", err.Error()),
		)
	case !capture.Success:
		paymentStatus = entities.PaymentFailed
		s.log.Warn("payment capture declined",
			logger.NewField("order_number", ord.Number),
			logger.NewField("transaction_id", capture.TransactionID),
		)
	}

	updated, err := s.repository.UpdateOrder(ctx, entities.OrderModify{
		ID:            &ord.ID,
		PaymentStatus: &paymentStatus,
	})
	if err != nil {
		s.log.Error("record payment status failed",
			logger.NewField("order_number", ord.Number),
			logger.NewField("error", err.Error()),
		)
		return
	}
	ord.PaymentStatus = updated.PaymentStatus
}
