package entities

import "time"

type Package struct {
	ID          int64
	Code        string // globally unique, <=50 chars
	OrderID     int64
	OrderNumber string
	Description string
	Status      PackageStatusType
	WorkerID    *int64
	WorkerName  *string // snapshot taken at assignment
	AssignedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PackageStatusType string

const (
	PackageReceived   PackageStatusType = "received"
	PackageInDelivery PackageStatusType = "in_delivery"
	PackageCancelled  PackageStatusType = "cancelled"
)

func (s PackageStatusType) String() string {
	return string(s)
}

var packageTransitions = map[PackageStatusType][]PackageStatusType{
	PackageReceived:   {PackageInDelivery, PackageCancelled},
	PackageInDelivery: {PackageCancelled},
}

func (s PackageStatusType) CanTransitionTo(next PackageStatusType) bool {
	for _, allowed := range packageTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PackageModify struct {
	ID         *int64
	Code       *string
	Status     *PackageStatusType
	WorkerID   *int64
	WorkerName *string
	AssignedAt *time.Time
}

// PackageDraft is one package line of an order draft.
type PackageDraft struct {
	Description string
}
