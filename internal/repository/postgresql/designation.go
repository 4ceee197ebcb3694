package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/designation"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/database"
)

type designationRepositoryImpl struct {
	db *database.DB
}

func NewDesignationRepository(db *database.DB) designation.DesignationRepository {
	return &designationRepositoryImpl{db: db}
}

// List implements designation.DesignationRepository.
func (r *designationRepositoryImpl) List(ctx context.Context) ([]designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT g.id, g.name, g.department_id, g.description, g.created_at, g.updated_at,
		       d.name AS department_name
		FROM designations g
		LEFT JOIN departments d ON d.id = g.department_id
		ORDER BY g.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list designations: %w", err)
	}
	defer rows.Close()

	var designations []designation.Designation
	for rows.Next() {
		var g designation.Designation
		if err := rows.Scan(&g.ID, &g.Name, &g.DepartmentID, &g.Description, &g.CreatedAt, &g.UpdatedAt, &g.DepartmentName); err != nil {
			return nil, fmt.Errorf("failed to scan designation: %w", err)
		}
		designations = append(designations, g)
	}
	return designations, rows.Err()
}

// GetByID implements designation.DesignationRepository.
func (r *designationRepositoryImpl) GetByID(ctx context.Context, id string) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT g.id, g.name, g.department_id, g.description, g.created_at, g.updated_at,
		       d.name AS department_name
		FROM designations g
		LEFT JOIN departments d ON d.id = g.department_id
		WHERE g.id = $1
	`

	var g designation.Designation
	err := q.QueryRow(ctx, query, id).
		Scan(&g.ID, &g.Name, &g.DepartmentID, &g.Description, &g.CreatedAt, &g.UpdatedAt, &g.DepartmentName)
	if err != nil {
		if err == pgx.ErrNoRows {
			return designation.Designation{}, designation.ErrDesignationNotFound
		}
		return designation.Designation{}, fmt.Errorf("failed to get designation: %w", err)
	}
	return g, nil
}

// Create implements designation.DesignationRepository.
func (r *designationRepositoryImpl) Create(ctx context.Context, g designation.Designation) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO designations (id, name, department_id, description)
		VALUES (uuidv7(), $1, $2, $3)
		RETURNING id, name, department_id, description, created_at, updated_at
	`

	var created designation.Designation
	err := q.QueryRow(ctx, query, g.Name, g.DepartmentID, g.Description).
		Scan(&created.ID, &created.Name, &created.DepartmentID, &created.Description, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return designation.Designation{}, fmt.Errorf("failed to create designation: %w", err)
	}
	return created, nil
}

// Update implements designation.DesignationRepository.
func (r *designationRepositoryImpl) Update(ctx context.Context, req designation.UpdateDesignationRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.DepartmentID != nil {
		updates["department_id"] = *req.DepartmentID
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for designation update")
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

	sql := "UPDATE designations SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, req.ID)

	var updatedID string
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return designation.ErrDesignationNotFound
		}
		return fmt.Errorf("failed to update designation with id %s: %w", req.ID, err)
	}
	return nil
}

// Delete implements designation.DesignationRepository.
func (r *designationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM designations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete designation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return designation.ErrDesignationNotFound
	}
	return nil
}

// CountEmployees implements designation.DesignationRepository.
func (r *designationRepositoryImpl) CountEmployees(ctx context.Context, id string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE designation_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees in designation: %w", err)
	}
	return count, nil
}
