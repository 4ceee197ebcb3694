package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/attendance"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.employee_id, a.clock_in, a.clock_out, a.status, a.notes,
	       a.created_at, a.updated_at,
	       e.first_name || ' ' || e.last_name AS employee_name, e.code AS employee_code
	FROM attendances a
	JOIN employees e ON e.id = a.employee_id
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.ClockIn,
		&a.ClockOut,
		&a.Status,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.EmployeeName,
		&a.EmployeeCode,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, clock_in, status, notes)
		VALUES (uuidv7(), $1, $2, $3, $4)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query, a.EmployeeID, a.ClockIn, a.Status, a.Notes).Scan(&id)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	created, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to read back attendance: %w", err)
	}
	return created, nil
}

// GetOpenSession implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOpenSession(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + ` WHERE a.employee_id = $1 AND a.clock_out IS NULL ORDER BY a.clock_in DESC LIMIT 1`

	found, err := scanAttendance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open session: %w", err)
	}
	return found, nil
}

// CloseSession implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CloseSession(ctx context.Context, id string, clockOut time.Time, status attendance.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_out = $1, status = $2, updated_at = NOW()
		WHERE id = $3 AND clock_out IS NULL
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, clockOut, status, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to close attendance session: %w", err)
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := make([]string, 0, 3)
	args := make([]interface{}, 0, 5)
	i := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", i))
		args = append(args, *filter.EmployeeID)
		i++
	}
	if filter.From != nil {
		conditions = append(conditions, fmt.Sprintf("a.clock_in >= $%d", i))
		args = append(args, *filter.From)
		i++
	}
	if filter.To != nil {
		conditions = append(conditions, fmt.Sprintf("a.clock_in < $%d", i))
		args = append(args, *filter.To)
		i++
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendances a`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	pagination := fmt.Sprintf(" ORDER BY a.clock_in DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, attendanceSelect+where+pagination, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, a)
	}
	return attendances, total, rows.Err()
}

// GetStaleOpenSessions implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetStaleOpenSessions(ctx context.Context, olderThanHours int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + ` WHERE a.clock_out IS NULL AND a.clock_in < NOW() - ($1 || ' hours')::interval`

	rows, err := q.Query(ctx, query, olderThanHours)
	if err != nil {
		return nil, fmt.Errorf("failed to get stale open sessions: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, a)
	}
	return attendances, rows.Err()
}
