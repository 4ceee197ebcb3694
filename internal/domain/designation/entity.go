package designation

import "time"

type Designation struct {
	ID           string
	Name         string
	DepartmentID *string
	Description  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	DepartmentName *string
}
