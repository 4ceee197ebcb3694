package salary

import (
	"github.com/shopspring/decimal"

	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/validator"
)

type CreateSalaryConfigRequest struct {
	EmployeeID    string  `json:"employee_id"`
	BasicSalary   string  `json:"basic_salary"`
	PayType       string  `json:"pay_type"`
	PaymentMethod string  `json:"payment_method"`
	BankName      *string `json:"bank_name,omitempty"`
	BankAccount   *string `json:"bank_account,omitempty"`
	EffectiveDate string  `json:"effective_date"`
}

func (r *CreateSalaryConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	amount, err := decimal.NewFromString(r.BasicSalary)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be a valid decimal amount"})
	} else if amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must not be negative"})
	}
	if !PayType(r.PayType).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "pay_type", Message: "must be monthly or semi_monthly"})
	}
	if !PaymentMethod(r.PaymentMethod).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "payment_method", Message: "must be bank_transfer, cash, or check"})
	}
	if PaymentMethod(r.PaymentMethod) == PaymentMethodBankTransfer {
		if r.BankName == nil || validator.IsEmpty(*r.BankName) {
			errs = append(errs, validator.ValidationError{Field: "bank_name", Message: "is required for bank transfers"})
		}
		if r.BankAccount == nil || validator.IsEmpty(*r.BankAccount) {
			errs = append(errs, validator.ValidationError{Field: "bank_account", Message: "is required for bank transfers"})
		}
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryConfigResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	BasicSalary   string  `json:"basic_salary"`
	PayType       string  `json:"pay_type"`
	PaymentMethod string  `json:"payment_method"`
	BankName      *string `json:"bank_name,omitempty"`
	BankAccount   *string `json:"bank_account,omitempty"`
	EffectiveDate string  `json:"effective_date"`
}

func toResponse(c SalaryConfig) SalaryConfigResponse {
	return SalaryConfigResponse{
		ID:            c.ID,
		EmployeeID:    c.EmployeeID,
		BasicSalary:   c.BasicSalary.StringFixed(2),
		PayType:       string(c.PayType),
		PaymentMethod: string(c.PaymentMethod),
		BankName:      c.BankName,
		BankAccount:   c.BankAccount,
		EffectiveDate: c.EffectiveDate.Format("2006-01-02"),
	}
}
