package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft  Status = "draft"
	StatusIssued Status = "issued"
)

// Payslip is the per-employee, per-cycle pay summary snapshotted when a
// payroll cycle is processed. The totals here are authoritative; the
// itemized rows on the document are derived from cycle items at read time
// and are never reconciled against them.
type Payslip struct {
	ID              string
	EmployeeID      string
	CycleID         string
	Status          Status
	BasicPay        decimal.Decimal
	GrossPay        decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	PaymentMethod   *string
	IssuedDate      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
