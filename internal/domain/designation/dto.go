package designation

import (
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/validator"
)

type CreateDesignationRequest struct {
	Name         string  `json:"name"`
	DepartmentID *string `json:"department_id,omitempty"`
	Description  *string `json:"description,omitempty"`
}

func (r *CreateDesignationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not exceed 100 characters"})
	}
	if r.DepartmentID != nil && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "must be a valid id"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDesignationRequest struct {
	ID           string
	Name         *string `json:"name,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	Description  *string `json:"description,omitempty"`
}

func (r *UpdateDesignationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DesignationResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	Description    *string `json:"description,omitempty"`
}

func toResponse(d Designation) DesignationResponse {
	return DesignationResponse{
		ID:             d.ID,
		Name:           d.Name,
		DepartmentID:   d.DepartmentID,
		DepartmentName: d.DepartmentName,
		Description:    d.Description,
	}
}
