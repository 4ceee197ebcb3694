package payslip

import "context"

type PayslipRepository interface {
	GetByID(ctx context.Context, id string) (Payslip, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
	ListByCycle(ctx context.Context, cycleID string) ([]Payslip, error)
	// Issue stamps the payslip as issued with the given date. Idempotent on
	// already-issued payslips.
	Issue(ctx context.Context, id string) error
}
