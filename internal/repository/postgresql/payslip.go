package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/payroll"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/payslip"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/database"
)

// PayslipRepository implements payslip.PayslipRepository and
// payroll.PayslipWriter over the same table.
type PayslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) *PayslipRepository {
	return &PayslipRepository{db: db}
}

var (
	_ payslip.PayslipRepository = (*PayslipRepository)(nil)
	_ payroll.PayslipWriter     = (*PayslipRepository)(nil)
)

const payslipColumns = `id, employee_id, payroll_cycle_id, status, basic_pay, gross_pay, total_deductions, net_pay, payment_method, issued_date, created_at, updated_at`

func scanPayslip(row pgx.Row) (payslip.Payslip, error) {
	var p payslip.Payslip
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.CycleID,
		&p.Status,
		&p.BasicPay,
		&p.GrossPay,
		&p.TotalDeductions,
		&p.NetPay,
		&p.PaymentMethod,
		&p.IssuedDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// GetByID implements payslip.PayslipRepository.
func (r *PayslipRepository) GetByID(ctx context.Context, id string) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanPayslip(q.QueryRow(ctx, `SELECT `+payslipColumns+` FROM payslips WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}
	return found, nil
}

// ListByEmployee implements payslip.PayslipRepository.
func (r *PayslipRepository) ListByEmployee(ctx context.Context, employeeID string) ([]payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE employee_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	return collectPayslips(rows)
}

// ListByCycle implements payslip.PayslipRepository.
func (r *PayslipRepository) ListByCycle(ctx context.Context, cycleID string) ([]payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE payroll_cycle_id = $1 ORDER BY created_at`

	rows, err := q.Query(ctx, query, cycleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips for cycle: %w", err)
	}
	defer rows.Close()

	return collectPayslips(rows)
}

func collectPayslips(rows pgx.Rows) ([]payslip.Payslip, error) {
	var slips []payslip.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		slips = append(slips, p)
	}
	return slips, rows.Err()
}

// Issue implements payslip.PayslipRepository.
func (r *PayslipRepository) Issue(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payslips
		SET status = 'issued', issued_date = COALESCE(issued_date, CURRENT_DATE), updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return payslip.ErrPayslipNotFound
		}
		return fmt.Errorf("failed to issue payslip: %w", err)
	}
	return nil
}

// ReplaceDraft implements payroll.PayslipWriter. The existing draft for the
// employee and cycle is removed and re-inserted in one transaction; an
// issued payslip for the same pair is left alone.
func (r *PayslipRepository) ReplaceDraft(ctx context.Context, slip payroll.GeneratedPayslip) error {
	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		var issuedExists bool
		checkQuery := `
			SELECT EXISTS(
				SELECT 1 FROM payslips
				WHERE employee_id = $1 AND payroll_cycle_id = $2 AND status = 'issued'
			)
		`
		if err := q.QueryRow(txCtx, checkQuery, slip.EmployeeID, slip.CycleID).Scan(&issuedExists); err != nil {
			return fmt.Errorf("failed to check for issued payslip: %w", err)
		}
		if issuedExists {
			return nil
		}

		deleteQuery := `
			DELETE FROM payslips
			WHERE employee_id = $1 AND payroll_cycle_id = $2 AND status = 'draft'
		`
		if _, err := q.Exec(txCtx, deleteQuery, slip.EmployeeID, slip.CycleID); err != nil {
			return fmt.Errorf("failed to delete draft payslip: %w", err)
		}

		insertQuery := `
			INSERT INTO payslips (id, employee_id, payroll_cycle_id, status, basic_pay, gross_pay, total_deductions, net_pay, payment_method)
			VALUES (uuidv7(), $1, $2, 'draft', $3, $4, $5, $6, $7)
		`
		if _, err := q.Exec(txCtx, insertQuery,
			slip.EmployeeID,
			slip.CycleID,
			slip.BasicPay,
			slip.GrossPay,
			slip.TotalDeductions,
			slip.NetPay,
			slip.PaymentMethod,
		); err != nil {
			return fmt.Errorf("failed to insert draft payslip: %w", err)
		}
		return nil
	})
}
