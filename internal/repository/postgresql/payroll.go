package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/payroll"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/database"
)

type payrollCycleRepositoryImpl struct {
	db *database.DB
}

func NewPayrollCycleRepository(db *database.DB) payroll.CycleRepository {
	return &payrollCycleRepositoryImpl{db: db}
}

const cycleColumns = `id, start_date, end_date, pay_date, status, created_at, updated_at`

func scanCycle(row pgx.Row) (payroll.Cycle, error) {
	var c payroll.Cycle
	err := row.Scan(
		&c.ID,
		&c.StartDate,
		&c.EndDate,
		&c.PayDate,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// List implements payroll.CycleRepository.
func (r *payrollCycleRepositoryImpl) List(ctx context.Context) ([]payroll.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+cycleColumns+` FROM payroll_cycles ORDER BY start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll cycles: %w", err)
	}
	defer rows.Close()

	var cycles []payroll.Cycle
	for rows.Next() {
		c, err := scanCycle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll cycle: %w", err)
		}
		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}

// GetByID implements payroll.CycleRepository.
func (r *payrollCycleRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanCycle(q.QueryRow(ctx, `SELECT `+cycleColumns+` FROM payroll_cycles WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Cycle{}, payroll.ErrCycleNotFound
		}
		return payroll.Cycle{}, fmt.Errorf("failed to get payroll cycle: %w", err)
	}
	return found, nil
}

// FindOverlapping implements payroll.CycleRepository.
func (r *payrollCycleRepositoryImpl) FindOverlapping(ctx context.Context, start, end time.Time) ([]payroll.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + cycleColumns + ` FROM payroll_cycles WHERE start_date <= $2 AND end_date >= $1`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to find overlapping payroll cycles: %w", err)
	}
	defer rows.Close()

	var cycles []payroll.Cycle
	for rows.Next() {
		c, err := scanCycle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll cycle: %w", err)
		}
		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}

// Create implements payroll.CycleRepository.
func (r *payrollCycleRepositoryImpl) Create(ctx context.Context, c payroll.Cycle) (payroll.Cycle, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_cycles (id, start_date, end_date, pay_date, status)
		VALUES (uuidv7(), $1, $2, $3, $4)
		RETURNING ` + cycleColumns

	created, err := scanCycle(q.QueryRow(ctx, query, c.StartDate, c.EndDate, c.PayDate, c.Status))
	if err != nil {
		return payroll.Cycle{}, fmt.Errorf("failed to create payroll cycle: %w", err)
	}
	return created, nil
}

// UpdateStatus implements payroll.CycleRepository.
func (r *payrollCycleRepositoryImpl) UpdateStatus(ctx context.Context, id string, status payroll.CycleStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE payroll_cycles SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING id`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return payroll.ErrCycleNotFound
		}
		return fmt.Errorf("failed to update payroll cycle status: %w", err)
	}
	return nil
}

// Delete implements payroll.CycleRepository.
func (r *payrollCycleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_cycles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll cycle: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrCycleNotFound
	}
	return nil
}

type payrollItemRepositoryImpl struct {
	db *database.DB
}

func NewPayrollItemRepository(db *database.DB) payroll.ItemRepository {
	return &payrollItemRepositoryImpl{db: db}
}

const itemColumns = `id, payroll_cycle_id, scope, employee_id, type, category, amount, start_date, end_date, created_at, updated_at`

func scanItem(row pgx.Row) (payroll.Item, error) {
	var i payroll.Item
	err := row.Scan(
		&i.ID,
		&i.CycleID,
		&i.Scope,
		&i.EmployeeID,
		&i.Type,
		&i.Category,
		&i.Amount,
		&i.StartDate,
		&i.EndDate,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

// ListByCycle implements payroll.ItemRepository.
func (r *payrollItemRepositoryImpl) ListByCycle(ctx context.Context, cycleID string) ([]payroll.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + itemColumns + ` FROM payroll_items WHERE payroll_cycle_id = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, cycleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll items: %w", err)
	}
	defer rows.Close()

	var items []payroll.Item
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll item: %w", err)
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

// GetByID implements payroll.ItemRepository.
func (r *payrollItemRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Item, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanItem(q.QueryRow(ctx, `SELECT `+itemColumns+` FROM payroll_items WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Item{}, payroll.ErrItemNotFound
		}
		return payroll.Item{}, fmt.Errorf("failed to get payroll item: %w", err)
	}
	return found, nil
}

// Create implements payroll.ItemRepository.
func (r *payrollItemRepositoryImpl) Create(ctx context.Context, i payroll.Item) (payroll.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_items (id, payroll_cycle_id, scope, employee_id, type, category, amount, start_date, end_date)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + itemColumns

	created, err := scanItem(q.QueryRow(ctx, query,
		i.CycleID,
		i.Scope,
		i.EmployeeID,
		i.Type,
		i.Category,
		i.Amount,
		i.StartDate,
		i.EndDate,
	))
	if err != nil {
		return payroll.Item{}, fmt.Errorf("failed to create payroll item: %w", err)
	}
	return created, nil
}

// Delete implements payroll.ItemRepository.
func (r *payrollItemRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrItemNotFound
	}
	return nil
}
