package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftNameExists    = errors.New("shift name already exists")
	ErrShiftInUse         = errors.New("shift still has employees assigned")
	ErrAssignmentNotFound = errors.New("shift assignment not found")
	ErrAssignmentOverlap  = errors.New("employee already has a shift assignment in this period")
)
