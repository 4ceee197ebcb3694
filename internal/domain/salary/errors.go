package salary

import "errors"

var (
	ErrSalaryConfigNotFound = errors.New("salary config not found")
	ErrNoActiveSalaryConfig = errors.New("employee has no active salary config")
)
