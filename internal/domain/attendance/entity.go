package attendance

import "time"

type Status string

const (
	StatusPresent    Status = "present"
	StatusAutoClosed Status = "auto_closed"
)

type Attendance struct {
	ID         string
	EmployeeID string
	ClockIn    time.Time
	ClockOut   *time.Time
	Status     Status
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// WorkedMinutes returns the session length, zero while still open.
func (a *Attendance) WorkedMinutes() int {
	if a.ClockOut == nil {
		return 0
	}
	return int(a.ClockOut.Sub(a.ClockIn).Minutes())
}
