package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/shift"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `id, name, start_time, end_time, workdays, created_at, updated_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.StartTime,
		&s.EndTime,
		&s.Workdays,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// List implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+shiftColumns+` FROM shifts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanShift(q.QueryRow(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return found, nil
}

// GetByName implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByName(ctx context.Context, name string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanShift(q.QueryRow(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE name = $1`, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift by name: %w", err)
	}
	return found, nil
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, name, start_time, end_time, workdays)
		VALUES (uuidv7(), $1, $2, $3, $4)
		RETURNING ` + shiftColumns

	created, err := scanShift(q.QueryRow(ctx, query, s.Name, s.StartTime, s.EndTime, s.Workdays))
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return created, nil
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}
	if req.Workdays != nil {
		updates["workdays"] = *req.Workdays
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for shift update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE shifts SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to update shift with id %s: %w", req.ID, err)
	}
	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// CountAssignments implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) CountAssignments(ctx context.Context, shiftID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	query := `
		SELECT COUNT(*) FROM shift_assignments
		WHERE shift_id = $1 AND (end_date IS NULL OR end_date >= CURRENT_DATE)
	`
	if err := q.QueryRow(ctx, query, shiftID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count shift assignments: %w", err)
	}
	return count, nil
}

type shiftAssignmentRepositoryImpl struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) shift.ShiftAssignmentRepository {
	return &shiftAssignmentRepositoryImpl{db: db}
}

const assignmentSelect = `
	SELECT a.id, a.employee_id, a.shift_id, a.effective_date, a.end_date,
	       a.created_at, a.updated_at, s.name AS shift_name
	FROM shift_assignments a
	JOIN shifts s ON s.id = a.shift_id
`

func scanAssignment(row pgx.Row) (shift.ShiftAssignment, error) {
	var a shift.ShiftAssignment
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.ShiftID,
		&a.EffectiveDate,
		&a.EndDate,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.ShiftName,
	)
	return a, err
}

// ListByEmployee implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, assignmentSelect+` WHERE a.employee_id = $1 ORDER BY a.effective_date DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.ShiftAssignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// GetActiveByEmployee implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) GetActiveByEmployee(ctx context.Context, employeeID string, at time.Time) (shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := assignmentSelect + `
		WHERE a.employee_id = $1
		  AND a.effective_date <= $2
		  AND (a.end_date IS NULL OR a.end_date >= $2)
		ORDER BY a.effective_date DESC
		LIMIT 1
	`

	found, err := scanAssignment(q.QueryRow(ctx, query, employeeID, at))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.ShiftAssignment{}, shift.ErrAssignmentNotFound
		}
		return shift.ShiftAssignment{}, fmt.Errorf("failed to get active shift assignment: %w", err)
	}
	return found, nil
}

// Create implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) Create(ctx context.Context, a shift.ShiftAssignment) (shift.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (id, employee_id, shift_id, effective_date, end_date)
		VALUES (uuidv7(), $1, $2, $3, $4)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query, a.EmployeeID, a.ShiftID, a.EffectiveDate, a.EndDate).Scan(&id)
	if err != nil {
		return shift.ShiftAssignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	created, err := scanAssignment(q.QueryRow(ctx, assignmentSelect+` WHERE a.id = $1`, id))
	if err != nil {
		return shift.ShiftAssignment{}, fmt.Errorf("failed to read back shift assignment: %w", err)
	}
	return created, nil
}

// EndAssignment implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) EndAssignment(ctx context.Context, id string, endDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE shift_assignments SET end_date = $1, updated_at = NOW() WHERE id = $2 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, endDate, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to end shift assignment: %w", err)
	}
	return nil
}

// Delete implements shift.ShiftAssignmentRepository.
func (r *shiftAssignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrAssignmentNotFound
	}
	return nil
}
