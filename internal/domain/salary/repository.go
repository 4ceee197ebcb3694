package salary

import (
	"context"
	"time"
)

type SalaryConfigRepository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]SalaryConfig, error)
	GetByID(ctx context.Context, id string) (SalaryConfig, error)
	// GetActiveByEmployee returns the latest config effective on or before at.
	GetActiveByEmployee(ctx context.Context, employeeID string, at time.Time) (SalaryConfig, error)
	Create(ctx context.Context, c SalaryConfig) (SalaryConfig, error)
	Delete(ctx context.Context, id string) error
}
