package entities

import "time"

// Mission is the unit of work assigned to a delivery worker for one package.
// At most one active (non-cancelled, non-completed) mission exists per package.
type Mission struct {
	ID          int64
	Number      string // MIS-YYMMDDHHMMSS-NNN, <=20 chars
	Status      MissionStatusType
	WorkerID    *int64
	PackageID   *int64
	PackageCode string
	AssignedAt  *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type MissionStatusType string

const (
	MissionPending    MissionStatusType = "pending"
	MissionAssigned   MissionStatusType = "assigned"
	MissionInProgress MissionStatusType = "in_progress"
	MissionCompleted  MissionStatusType = "completed"
	MissionCancelled  MissionStatusType = "cancelled"
)

func (s MissionStatusType) String() string {
	return string(s)
}

func (s MissionStatusType) IsActive() bool {
	return s != MissionCompleted && s != MissionCancelled
}

// MissionStatusFor derives the mission status from the owning order and
// package state. Delivery progress lives on the order; the package only tells
// whether the item was cancelled.
func MissionStatusFor(orderStatus OrderStatusType, packageStatus PackageStatusType) MissionStatusType {
	if packageStatus == PackageCancelled {
		return MissionCancelled
	}

	switch orderStatus {
	case OrderPickedUp, OrderInTransit:
		return MissionInProgress
	case OrderDelivered:
		return MissionCompleted
	case OrderCancelled:
		return MissionCancelled
	default:
		return MissionAssigned
	}
}

// OrderStatusRef pairs an order with its current status. Used when mission
// statuses are reconciled in bulk.
type OrderStatusRef struct {
	OrderID int64
	Status  OrderStatusType
}

type MissionModify struct {
	ID          *int64
	Number      *string
	Status      *MissionStatusType
	WorkerID    *int64
	PackageID   *int64
	AssignedAt  *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}
