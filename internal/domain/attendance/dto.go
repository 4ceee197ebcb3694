package attendance

import (
	"time"

	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/validator"
)

type ClockRequest struct {
	EmployeeID string  `json:"employee_id"`
	Notes      *string `json:"notes,omitempty"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeID *string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	EmployeeCode  *string `json:"employee_code,omitempty"`
	ClockIn       string  `json:"clock_in"`
	ClockOut      *string `json:"clock_out,omitempty"`
	Status        string  `json:"status"`
	WorkedMinutes int     `json:"worked_minutes"`
	Notes         *string `json:"notes,omitempty"`
}

type ListAttendanceResponse struct {
	Data       []AttendanceResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}

func toResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		EmployeeCode:  a.EmployeeCode,
		ClockIn:       a.ClockIn.Format(time.RFC3339),
		Status:        string(a.Status),
		WorkedMinutes: a.WorkedMinutes(),
		Notes:         a.Notes,
	}
	if a.ClockOut != nil {
		formatted := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &formatted
	}
	return resp
}
