package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayType string

const (
	PayTypeMonthly     PayType = "monthly"
	PayTypeSemiMonthly PayType = "semi_monthly"
)

func (t PayType) IsValid() bool {
	return t == PayTypeMonthly || t == PayTypeSemiMonthly
}

type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCheck        PaymentMethod = "check"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodCash, PaymentMethodCheck:
		return true
	}
	return false
}

// SalaryConfig is the compensation record for an employee. Only the
// latest config whose effective date has passed is used for payroll.
type SalaryConfig struct {
	ID            string
	EmployeeID    string
	BasicSalary   decimal.Decimal
	PayType       PayType
	PaymentMethod PaymentMethod
	BankName      *string
	BankAccount   *string
	EffectiveDate time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
