package entities

import "time"

// DeliveryWorker is the courier identity known to the platform. Credentials
// and OTP login live in the identity provider; only the record needed for
// assignment is kept here.
type DeliveryWorker struct {
	ID        int64
	Name      string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
