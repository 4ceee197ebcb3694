package payroll

import "errors"

var (
	ErrCycleNotFound         = errors.New("payroll cycle not found")
	ErrCycleAlreadyProcessed = errors.New("payroll cycle already processed")
	ErrCycleOverlap          = errors.New("payroll cycle overlaps an existing cycle")
	ErrItemNotFound          = errors.New("payroll item not found")
	ErrNoEmployeesToProcess  = errors.New("no active employees with salary configs to process")
)
