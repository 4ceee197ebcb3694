package employee

import (
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Code          string  `json:"code"`
	FirstName     string  `json:"first_name"`
	MiddleName    *string `json:"middle_name,omitempty"`
	LastName      string  `json:"last_name"`
	DepartmentID  *string `json:"department_id,omitempty"`
	DesignationID *string `json:"designation_id,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
	Email         *string `json:"email,omitempty"`
	HireDate      *string `json:"hire_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	} else if !validator.IsValidEmployeeCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must match the format 0000-0000"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.ContactNumber != nil && !validator.IsValidPhoneNumber(*r.ContactNumber) {
		errs = append(errs, validator.ValidationError{Field: "contact_number", Message: "must be a valid phone number"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string
	FirstName     *string `json:"first_name,omitempty"`
	MiddleName    *string `json:"middle_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	DepartmentID  *string `json:"department_id,omitempty"`
	DesignationID *string `json:"designation_id,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
	Email         *string `json:"email,omitempty"`
	Status        *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "must not be empty"})
	}
	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active' or 'inactive'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	DepartmentID  *string
	DesignationID *string
	Status        *string
	Search        string
	Page          int
	Limit         int
	SortBy        string
	SortOrder     string
}

type EmployeeResponse struct {
	ID              string  `json:"id"`
	Code            string  `json:"code"`
	FirstName       string  `json:"first_name"`
	MiddleName      *string `json:"middle_name,omitempty"`
	LastName        string  `json:"last_name"`
	FullName        string  `json:"full_name"`
	DepartmentID    *string `json:"department_id,omitempty"`
	DepartmentName  *string `json:"department_name,omitempty"`
	DesignationID   *string `json:"designation_id,omitempty"`
	DesignationName *string `json:"designation_name,omitempty"`
	ContactNumber   *string `json:"contact_number,omitempty"`
	Email           *string `json:"email,omitempty"`
	PhotoURL        *string `json:"photo_url,omitempty"`
	HireDate        *string `json:"hire_date,omitempty"`
	Status          string  `json:"status"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

func toResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:              e.ID,
		Code:            e.Code,
		FirstName:       e.FirstName,
		MiddleName:      e.MiddleName,
		LastName:        e.LastName,
		FullName:        e.FullName(),
		DepartmentID:    e.DepartmentID,
		DepartmentName:  e.DepartmentName,
		DesignationID:   e.DesignationID,
		DesignationName: e.DesignationName,
		ContactNumber:   e.ContactNumber,
		Email:           e.Email,
		PhotoURL:        e.PhotoURL,
		Status:          string(e.Status),
	}
	if e.HireDate != nil {
		formatted := e.HireDate.Format("2006-01-02")
		resp.HireDate = &formatted
	}
	return resp
}
