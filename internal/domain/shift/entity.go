package shift

import "time"

type Shift struct {
	ID        string
	Name      string
	StartTime string // "HH:MM", 24h clock
	EndTime   string // "HH:MM"; may be earlier than StartTime for night shifts
	// Workdays holds ISO weekday numbers (1=Monday .. 7=Sunday).
	Workdays  []int32
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShiftAssignment links an employee to a shift for a date range.
type ShiftAssignment struct {
	ID            string
	EmployeeID    string
	ShiftID       string
	EffectiveDate time.Time
	EndDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	ShiftName *string
}
