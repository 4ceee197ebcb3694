package company

import "time"

type Company struct {
	ID        string
	Name      string
	// Address is stored as a single value with CRLF separated lines; the
	// payslip header splits it for display.
	Address   *string
	Phone     *string
	Email     *string
	LogoURL   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
