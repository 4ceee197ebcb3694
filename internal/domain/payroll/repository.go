package payroll

import (
	"context"
	"time"
)

type CycleRepository interface {
	List(ctx context.Context) ([]Cycle, error)
	GetByID(ctx context.Context, id string) (Cycle, error)
	FindOverlapping(ctx context.Context, start, end time.Time) ([]Cycle, error)
	Create(ctx context.Context, c Cycle) (Cycle, error)
	UpdateStatus(ctx context.Context, id string, status CycleStatus) error
	Delete(ctx context.Context, id string) error
}

type ItemRepository interface {
	ListByCycle(ctx context.Context, cycleID string) ([]Item, error)
	GetByID(ctx context.Context, id string) (Item, error)
	Create(ctx context.Context, i Item) (Item, error)
	Delete(ctx context.Context, id string) error
}
