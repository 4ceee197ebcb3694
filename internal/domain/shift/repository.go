package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	List(ctx context.Context) ([]Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	GetByName(ctx context.Context, name string) (Shift, error)
	Create(ctx context.Context, s Shift) (Shift, error)
	Update(ctx context.Context, req UpdateShiftRequest) error
	Delete(ctx context.Context, id string) error
	CountAssignments(ctx context.Context, shiftID string) (int64, error)
}

type ShiftAssignmentRepository interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]ShiftAssignment, error)
	GetActiveByEmployee(ctx context.Context, employeeID string, at time.Time) (ShiftAssignment, error)
	Create(ctx context.Context, a ShiftAssignment) (ShiftAssignment, error)
	EndAssignment(ctx context.Context, id string, endDate time.Time) error
	Delete(ctx context.Context, id string) error
}
