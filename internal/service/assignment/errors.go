package assignment

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnknownWorker        = errors.New("unknown delivery worker")
	ErrPackageNotFound      = errors.New("package not found")
	ErrPackageNotAssignable = errors.New("package is not assignable")
	ErrMissionNotFound      = errors.New("mission not found")
	ErrMissionConflict      = errors.New("active mission already exists for the package")
)
