package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetOpenSession(ctx context.Context, employeeID string) (Attendance, error)
	CloseSession(ctx context.Context, id string, clockOut time.Time, status Status) error
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	// GetStaleOpenSessions returns open sessions whose clock-in is older than
	// the given number of hours.
	GetStaleOpenSessions(ctx context.Context, olderThanHours int) ([]Attendance, error)
}
