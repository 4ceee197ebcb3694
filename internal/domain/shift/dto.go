package shift

import (
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name      string  `json:"name"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Workdays  []int32 `json:"workdays"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if _, ok := validator.IsValidTimeOfDay(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be a valid time (HH:MM)"})
	}
	if _, ok := validator.IsValidTimeOfDay(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be a valid time (HH:MM)"})
	}
	if len(r.Workdays) == 0 {
		errs = append(errs, validator.ValidationError{Field: "workdays", Message: "at least one workday is required"})
	}
	for _, d := range r.Workdays {
		if d < 1 || d > 7 {
			errs = append(errs, validator.ValidationError{Field: "workdays", Message: "weekdays must be between 1 (Monday) and 7 (Sunday)"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID        string
	Name      *string  `json:"name,omitempty"`
	StartTime *string  `json:"start_time,omitempty"`
	EndTime   *string  `json:"end_time,omitempty"`
	Workdays  *[]int32 `json:"workdays,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.StartTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_time", Message: "must be a valid time (HH:MM)"})
		}
	}
	if r.EndTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_time", Message: "must be a valid time (HH:MM)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignShiftRequest struct {
	EmployeeID    string  `json:"employee_id"`
	ShiftID       string  `json:"shift_id"`
	EffectiveDate string  `json:"effective_date"`
	EndDate       *string `json:"end_date,omitempty"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{Field: "shift_id", Message: "is required"})
	}
	effective, effectiveOK := validator.IsValidDate(r.EffectiveDate)
	if !effectiveOK {
		errs = append(errs, validator.ValidationError{Field: "effective_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.EndDate != nil {
		end, ok := validator.IsValidDate(*r.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		} else if effectiveOK && end.Before(effective) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before effective_date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Workdays  []int32 `json:"workdays"`
}

type ShiftAssignmentResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	ShiftID       string  `json:"shift_id"`
	ShiftName     *string `json:"shift_name,omitempty"`
	EffectiveDate string  `json:"effective_date"`
	EndDate       *string `json:"end_date,omitempty"`
}

func toShiftResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		ID:        s.ID,
		Name:      s.Name,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Workdays:  s.Workdays,
	}
}

func toAssignmentResponse(a ShiftAssignment) ShiftAssignmentResponse {
	resp := ShiftAssignmentResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		ShiftID:       a.ShiftID,
		ShiftName:     a.ShiftName,
		EffectiveDate: a.EffectiveDate.Format("2006-01-02"),
	}
	if a.EndDate != nil {
		formatted := a.EndDate.Format("2006-01-02")
		resp.EndDate = &formatted
	}
	return resp
}
