package employee

import (
	"strings"
	"time"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Employee struct {
	ID            string
	Code          string
	FirstName     string
	MiddleName    *string
	LastName      string
	DepartmentID  *string
	DesignationID *string
	ContactNumber *string
	Email         *string
	PhotoURL      *string
	HireDate      *time.Time
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	DepartmentName  *string
	DesignationName *string
}

// FullName joins first name, optional middle initial with a period, and last
// name, with no stray whitespace when parts are missing.
func (e *Employee) FullName() string {
	parts := []string{strings.TrimSpace(e.FirstName)}
	if e.MiddleName != nil {
		if mi := strings.TrimSpace(*e.MiddleName); mi != "" {
			parts = append(parts, string(mi[0])+".")
		}
	}
	parts = append(parts, strings.TrimSpace(e.LastName))

	joined := strings.Join(parts, " ")
	return strings.Join(strings.Fields(joined), " ")
}
