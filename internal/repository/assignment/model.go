package assignment

import "time"

type MissionDB struct {
	ID          int64
	Number      string
	Status      string
	WorkerID    *int64
	PackageID   *int64
	PackageCode string
	AssignedAt  *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type MissionModifyDB struct {
	ID          *int64
	Number      *string
	Status      *string
	WorkerID    *int64
	PackageID   *int64
	AssignedAt  *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
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

type PackageModifyDB struct {
	ID         *int64
	Code       *string
	Status     *string
	WorkerID   *int64
	WorkerName *string
	AssignedAt *time.Time
}
