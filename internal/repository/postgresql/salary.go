package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/salary"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/database"
)

type salaryConfigRepositoryImpl struct {
	db *database.DB
}

func NewSalaryConfigRepository(db *database.DB) salary.SalaryConfigRepository {
	return &salaryConfigRepositoryImpl{db: db}
}

const salaryColumns = `id, employee_id, basic_salary, pay_type, payment_method, bank_name, bank_account, effective_date, created_at, updated_at`

func scanSalaryConfig(row pgx.Row) (salary.SalaryConfig, error) {
	var c salary.SalaryConfig
	err := row.Scan(
		&c.ID,
		&c.EmployeeID,
		&c.BasicSalary,
		&c.PayType,
		&c.PaymentMethod,
		&c.BankName,
		&c.BankAccount,
		&c.EffectiveDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// ListByEmployee implements salary.SalaryConfigRepository.
func (r *salaryConfigRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]salary.SalaryConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + salaryColumns + ` FROM salary_configs WHERE employee_id = $1 ORDER BY effective_date DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary configs: %w", err)
	}
	defer rows.Close()

	var configs []salary.SalaryConfig
	for rows.Next() {
		c, err := scanSalaryConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary config: %w", err)
		}
		configs = append(configs, c)
	}
	return configs, rows.Err()
}

// GetByID implements salary.SalaryConfigRepository.
func (r *salaryConfigRepositoryImpl) GetByID(ctx context.Context, id string) (salary.SalaryConfig, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanSalaryConfig(q.QueryRow(ctx, `SELECT `+salaryColumns+` FROM salary_configs WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.SalaryConfig{}, salary.ErrSalaryConfigNotFound
		}
		return salary.SalaryConfig{}, fmt.Errorf("failed to get salary config: %w", err)
	}
	return found, nil
}

// GetActiveByEmployee implements salary.SalaryConfigRepository.
func (r *salaryConfigRepositoryImpl) GetActiveByEmployee(ctx context.Context, employeeID string, at time.Time) (salary.SalaryConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_configs
		WHERE employee_id = $1 AND effective_date <= $2
		ORDER BY effective_date DESC
		LIMIT 1
	`

	found, err := scanSalaryConfig(q.QueryRow(ctx, query, employeeID, at))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salary.SalaryConfig{}, salary.ErrNoActiveSalaryConfig
		}
		return salary.SalaryConfig{}, fmt.Errorf("failed to get active salary config: %w", err)
	}
	return found, nil
}

// Create implements salary.SalaryConfigRepository.
func (r *salaryConfigRepositoryImpl) Create(ctx context.Context, c salary.SalaryConfig) (salary.SalaryConfig, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_configs (id, employee_id, basic_salary, pay_type, payment_method, bank_name, bank_account, effective_date)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + salaryColumns

	created, err := scanSalaryConfig(q.QueryRow(ctx, query,
		c.EmployeeID,
		c.BasicSalary,
		c.PayType,
		c.PaymentMethod,
		c.BankName,
		c.BankAccount,
		c.EffectiveDate,
	))
	if err != nil {
		return salary.SalaryConfig{}, fmt.Errorf("failed to create salary config: %w", err)
	}
	return created, nil
}

// Delete implements salary.SalaryConfigRepository.
func (r *salaryConfigRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salary_configs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete salary config: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryConfigNotFound
	}
	return nil
}
