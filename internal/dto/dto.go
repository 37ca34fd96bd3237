// Package dto holds the request and response bodies of the REST API.
package dto

import "time"

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type PackageCreate struct {
	Description string `json:"description"`
}

type OrderCreate struct {
	CustomerID      string          `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	Station         string          `json:"station,omitempty"`
	PickupAddress   string          `json:"pickup_address"`
	DeliveryAddress string          `json:"delivery_address"`
	PickupPoint     *GeoPoint       `json:"pickup_point,omitempty"`
	DeliveryPoint   *GeoPoint       `json:"delivery_point,omitempty"`
	SenderPhone     string          `json:"sender_phone"`
	ReceiverPhone   string          `json:"receiver_phone"`
	Tier            string          `json:"tier"`
	PaymentMethod   string          `json:"payment_method"`
	TotalPrice      *int64          `json:"total_price,omitempty"`
	Packages        []PackageCreate `json:"packages"`
}

type Order struct {
	Number          string    `json:"number"`
	CustomerID      string    `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	Station         string    `json:"station,omitempty"`
	PickupAddress   string    `json:"pickup_address"`
	DeliveryAddress string    `json:"delivery_address"`
	PickupPoint     *GeoPoint `json:"pickup_point,omitempty"`
	DeliveryPoint   *GeoPoint `json:"delivery_point,omitempty"`
	DistanceKm      *float64  `json:"distance_km,omitempty"`
	SenderPhone     string    `json:"sender_phone"`
	ReceiverPhone   string    `json:"receiver_phone"`
	Tier            string    `json:"tier"`
	PaymentMethod   string    `json:"payment_method"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	TotalPrice      int64     `json:"total_price"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Package struct {
	Code        string     `json:"code"`
	OrderNumber string     `json:"order_number"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	WorkerID    *int64     `json:"worker_id,omitempty"`
	WorkerName  *string    `json:"worker_name,omitempty"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
}

type OrderWithPackages struct {
	Order    Order     `json:"order"`
	Packages []Package `json:"packages"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
}

type OrderStatusUpdate struct {
	Number string `json:"number"`
	Status string `json:"status"`
}

type PackageAssign struct {
	PackageCode string `json:"package_code"`
	WorkerID    int64  `json:"worker_id"`
}

type Mission struct {
	Number      string     `json:"number"`
	Status      string     `json:"status"`
	WorkerID    *int64     `json:"worker_id,omitempty"`
	PackageCode string     `json:"package_code"`
	AssignedAt  *time.Time `json:"assigned_at,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type MissionList struct {
	Missions []Mission `json:"missions"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
