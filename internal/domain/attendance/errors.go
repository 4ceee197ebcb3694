package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyClockedIn   = errors.New("employee already has an open attendance session")
	ErrNotClockedIn       = errors.New("employee has no open attendance session")
)
