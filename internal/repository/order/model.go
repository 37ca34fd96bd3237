package order

import "time"

type OrderDB struct {
	ID              int64
	Number          string
	CustomerID      string
	CustomerName    string
	Station         string
	PickupAddress   string
	DeliveryAddress string
	PickupLat       *float64
	PickupLng       *float64
	DeliveryLat     *float64
	DeliveryLng     *float64
	DistanceKm      *float64
	SenderPhone     string
	ReceiverPhone   string
	Tier            string
	PaymentMethod   string
	Status          string
	PaymentStatus   string
	TotalPrice      int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderModifyDB struct {
	ID            *int64
	Number        *string
	Status        *string
	PaymentStatus *string
	TotalPrice    *int64
	DistanceKm    *float64
}

type PackageDB struct {
	ID          int64
	Code        string
	OrderID     int64
	OrderNumber string
	Description string
	Status      string
	WorkerID    *int64
	WorkerName  *string
	AssignedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
