package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/validator"
)

type CreateCycleRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	PayDate   string `json:"pay_date"`
}

func (r *CreateCycleRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidDate(r.PayDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateItemRequest struct {
	CycleID    string  `json:"cycle_id"`
	Scope      string  `json:"scope"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Type       string  `json:"type"`
	Category   string  `json:"category"`
	Amount     string  `json:"amount"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
}

func (r *CreateItemRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CycleID) {
		errs = append(errs, validator.ValidationError{Field: "cycle_id", Message: "is required"})
	}
	switch ItemScope(r.Scope) {
	case ScopeGlobal:
		if r.EmployeeID != nil {
			errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must not be set for global items"})
		}
	case ScopeSpecific:
		if r.EmployeeID == nil || validator.IsEmpty(*r.EmployeeID) {
			errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required for specific items"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "scope", Message: "must be global or specific"})
	}
	if !ItemType(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be earning, deduction, or contribution"})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is required"})
	}
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be a valid decimal amount"})
	} else if amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must not be negative"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CycleResponse struct {
	ID        string `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	PayDate   string `json:"pay_date"`
	Status    string `json:"status"`
}

type ItemResponse struct {
	ID         string  `json:"id"`
	CycleID    string  `json:"cycle_id"`
	Scope      string  `json:"scope"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Type       string  `json:"type"`
	Category   string  `json:"category"`
	Amount     string  `json:"amount"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
}

type ProcessCycleResponse struct {
	CycleID   string `json:"cycle_id"`
	Generated int    `json:"generated"`
	Skipped   int    `json:"skipped"`
}

func toCycleResponse(c Cycle) CycleResponse {
	return CycleResponse{
		ID:        c.ID,
		StartDate: c.StartDate.Format("2006-01-02"),
		EndDate:   c.EndDate.Format("2006-01-02"),
		PayDate:   c.PayDate.Format("2006-01-02"),
		Status:    string(c.Status),
	}
}

func toItemResponse(i Item) ItemResponse {
	resp := ItemResponse{
		ID:         i.ID,
		CycleID:    i.CycleID,
		Scope:      string(i.Scope),
		EmployeeID: i.EmployeeID,
		Type:       string(i.Type),
		Category:   i.Category,
		Amount:     i.Amount.StringFixed(2),
	}
	if i.StartDate != nil {
		s := i.StartDate.Format("2006-01-02")
		resp.StartDate = &s
	}
	if i.EndDate != nil {
		s := i.EndDate.Format("2006-01-02")
		resp.EndDate = &s
	}
	return resp
}
