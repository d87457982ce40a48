package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kauanferreira/salesdesk/internal/app/models"
	"github.com/kauanferreira/salesdesk/internal/pkg/apperrors"
)

// departmentRepository handles database operations for departments
type departmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) DepartmentRepository {
	return &departmentRepository{
		db: db,
	}
}

// scanDepartment maps the current row onto a department record
func scanDepartment(row rowScanner) (*models.Department, error) {
	var department models.Department
	if err := row.Scan(&department.ID, &department.Name); err != nil {
		return nil, err
	}
	return &department, nil
}

// Create inserts a new department and copies the generated id back into it
func (r *departmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO department (name)
		VALUES ($1)
		RETURNING id
	`

	if err := r.db.QueryRow(ctx, query, department.Name).Scan(&department.ID); err != nil {
		return wrapDBError(err)
	}

	return nil
}

// GetByID retrieves a department by ID
func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT id, name
		FROM department
		WHERE id = $1
	`

	department, err := scanDepartment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("department with id %d not found", id))
		}
		return nil, wrapDBError(err)
	}

	return department, nil
}

// GetAll retrieves all departments in database default order
func (r *departmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT id, name
		FROM department
	`

	return r.queryMany(ctx, query)
}

// GetPage retrieves one page of departments ordered by name. Pagination is
// 1-based; bounds are validated by the service layer.
func (r *departmentRepository) GetPage(ctx context.Context, page, size int) ([]*models.Department, error) {
	query := `
		SELECT id, name
		FROM department
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	return r.queryMany(ctx, query, size, (page-1)*size)
}

func (r *departmentRepository) queryMany(ctx context.Context, query string, args ...any) ([]*models.Department, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		department, err := scanDepartment(rows)
		if err != nil {
			return nil, wrapDBError(err)
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err)
	}

	return departments, nil
}

// Update updates a department by id. Updating an id that matches no row is
// reported as not found rather than silently succeeding.
func (r *departmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE department
		SET name = $1
		WHERE id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, department.Name, department.ID)
	if err != nil {
		return wrapDBError(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("department with id %d not found", department.ID))
	}

	return nil
}

// Delete deletes a department by ID. Deleting a department that still has
// sellers surfaces the foreign-key violation as an integrity error.
func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM department WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return wrapDBError(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("department with id %d not found", id))
	}

	return nil
}
