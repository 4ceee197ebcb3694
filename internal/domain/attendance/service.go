package attendance

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/employee"
)

type AttendanceService interface {
	ClockIn(ctx context.Context, req ClockRequest) (AttendanceResponse, error)
	ClockOut(ctx context.Context, req ClockRequest) (AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	AutoCloseStaleSessions(ctx context.Context, olderThanHours int) (int, error)
}

type attendanceServiceImpl struct {
	repo         AttendanceRepository
	employeeRepo employee.EmployeeRepository
}

func NewAttendanceService(repo AttendanceRepository, employeeRepo employee.EmployeeRepository) AttendanceService {
	return &attendanceServiceImpl{repo: repo, employeeRepo: employeeRepo}
}

func (s *attendanceServiceImpl) ClockIn(ctx context.Context, req ClockRequest) (AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return AttendanceResponse{}, err
	}

	if _, err := s.repo.GetOpenSession(ctx, req.EmployeeID); err == nil {
		return AttendanceResponse{}, ErrAlreadyClockedIn
	} else if !errors.Is(err, ErrAttendanceNotFound) {
		return AttendanceResponse{}, err
	}

	created, err := s.repo.Create(ctx, Attendance{
		EmployeeID: req.EmployeeID,
		ClockIn:    time.Now(),
		Status:     StatusPresent,
		Notes:      req.Notes,
	})
	if err != nil {
		return AttendanceResponse{}, err
	}
	return toResponse(created), nil
}

func (s *attendanceServiceImpl) ClockOut(ctx context.Context, req ClockRequest) (AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return AttendanceResponse{}, err
	}

	open, err := s.repo.GetOpenSession(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, ErrAttendanceNotFound) {
			return AttendanceResponse{}, ErrNotClockedIn
		}
		return AttendanceResponse{}, err
	}

	now := time.Now()
	if err := s.repo.CloseSession(ctx, open.ID, now, StatusPresent); err != nil {
		return AttendanceResponse{}, err
	}

	open.ClockOut = &now
	return toResponse(open), nil
}

func (s *attendanceServiceImpl) List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	records, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return ListAttendanceResponse{}, err
	}

	data := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		data = append(data, toResponse(a))
	}

	return ListAttendanceResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// AutoCloseStaleSessions closes open sessions whose clock-in is older than
// the given number of hours. Forgotten clock-outs are marked auto_closed so
// they are distinguishable from a normal punch.
func (s *attendanceServiceImpl) AutoCloseStaleSessions(ctx context.Context, olderThanHours int) (int, error) {
	stale, err := s.repo.GetStaleOpenSessions(ctx, olderThanHours)
	if err != nil {
		return 0, err
	}

	closed := 0
	now := time.Now()
	for _, session := range stale {
		if err := s.repo.CloseSession(ctx, session.ID, now, StatusAutoClosed); err != nil {
			slog.Warn("Failed to auto-close attendance session", "attendance_id", session.ID, "error", err)
			continue
		}
		closed++
	}

	if closed > 0 {
		slog.Info("Auto-closed stale attendance sessions", "count", closed)
	}
	return closed, nil
}
