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

// sellerColumns is the projection shared by every seller query: all seller
// columns plus the joined department name.
const sellerColumns = `
	seller.id, seller.name, seller.email, seller.birthdate, seller.basesalary,
	seller.departmentid, department.name AS depname
`

// sellerRepository handles database operations for sellers
type sellerRepository struct {
	db *pgxpool.Pool
}

// NewSellerRepository creates a new seller repository
func NewSellerRepository(db *pgxpool.Pool) SellerRepository {
	return &sellerRepository{
		db: db,
	}
}

// scanSeller maps the current row onto a seller record. Departments are
// memoized by id within one call, so sellers sharing a department share one
// instance instead of each list row constructing its own.
func scanSeller(row rowScanner, departments map[int64]*models.Department) (*models.Seller, error) {
	var seller models.Seller
	var departmentID int64
	var departmentName string

	if err := row.Scan(
		&seller.ID,
		&seller.Name,
		&seller.Email,
		&seller.BirthDate,
		&seller.BaseSalary,
		&departmentID,
		&departmentName,
	); err != nil {
		return nil, err
	}

	department := departments[departmentID]
	if department == nil {
		department = &models.Department{ID: departmentID, Name: departmentName}
		departments[departmentID] = department
	}
	seller.Department = department

	return &seller, nil
}

// Create inserts a new seller and copies the generated id back into it.
// A violation of the email uniqueness constraint surfaces as a duplicate
// error, any other failure as a persistence error.
func (r *sellerRepository) Create(ctx context.Context, seller *models.Seller) error {
	query := `
		INSERT INTO seller (name, email, birthdate, basesalary, departmentid)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		seller.Name,
		seller.Email,
		seller.BirthDate,
		seller.BaseSalary,
		seller.Department.ID,
	).Scan(&seller.ID)
	if err != nil {
		return wrapSellerWriteError(err)
	}

	return nil
}

// GetByID retrieves a seller by ID with its department populated from the join
func (r *sellerRepository) GetByID(ctx context.Context, id int64) (*models.Seller, error) {
	query := `
		SELECT ` + sellerColumns + `
		FROM seller INNER JOIN department ON seller.departmentid = department.id
		WHERE seller.id = $1
	`

	seller, err := scanSeller(r.db.QueryRow(ctx, query, id), map[int64]*models.Department{})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("seller with id %d not found", id))
		}
		return nil, wrapDBError(err)
	}

	return seller, nil
}

// GetAll retrieves all sellers with their departments, ordered by name
func (r *sellerRepository) GetAll(ctx context.Context) ([]*models.Seller, error) {
	query := `
		SELECT ` + sellerColumns + `
		FROM seller INNER JOIN department ON seller.departmentid = department.id
		ORDER BY seller.name
	`

	return r.queryMany(ctx, query)
}

// GetPage retrieves one page of sellers ordered by name. Pagination is
// 1-based; bounds are validated by the service layer.
func (r *sellerRepository) GetPage(ctx context.Context, page, size int) ([]*models.Seller, error) {
	query := `
		SELECT ` + sellerColumns + `
		FROM seller INNER JOIN department ON seller.departmentid = department.id
		ORDER BY seller.name
		LIMIT $1 OFFSET $2
	`

	return r.queryMany(ctx, query, size, (page-1)*size)
}

// GetByDepartment retrieves all sellers of one department, ordered by name
func (r *sellerRepository) GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Seller, error) {
	query := `
		SELECT ` + sellerColumns + `
		FROM seller INNER JOIN department ON seller.departmentid = department.id
		WHERE seller.departmentid = $1
		ORDER BY seller.name
	`

	return r.queryMany(ctx, query, departmentID)
}

// GetByName retrieves sellers whose name contains the given string,
// case-insensitive, ordered by name
func (r *sellerRepository) GetByName(ctx context.Context, namePart string) ([]*models.Seller, error) {
	query := `
		SELECT ` + sellerColumns + `
		FROM seller INNER JOIN department ON seller.departmentid = department.id
		WHERE seller.name ILIKE '%' || $1 || '%'
		ORDER BY seller.name
	`

	return r.queryMany(ctx, query, namePart)
}

// GetByEmail retrieves the single seller with the given email. Email is
// unique in storage, so at most one row can match.
func (r *sellerRepository) GetByEmail(ctx context.Context, email string) (*models.Seller, error) {
	query := `
		SELECT ` + sellerColumns + `
		FROM seller INNER JOIN department ON seller.departmentid = department.id
		WHERE seller.email = $1
	`

	seller, err := scanSeller(r.db.QueryRow(ctx, query, email), map[int64]*models.Department{})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("seller with email %s not found", email))
		}
		return nil, wrapDBError(err)
	}

	return seller, nil
}

// GetByBirthMonth retrieves sellers born in the given calendar month (1-12),
// ordered by name
func (r *sellerRepository) GetByBirthMonth(ctx context.Context, month int) ([]*models.Seller, error) {
	query := `
		SELECT ` + sellerColumns + `
		FROM seller INNER JOIN department ON seller.departmentid = department.id
		WHERE EXTRACT(MONTH FROM seller.birthdate) = $1
		ORDER BY seller.name
	`

	return r.queryMany(ctx, query, month)
}

func (r *sellerRepository) queryMany(ctx context.Context, query string, args ...any) ([]*models.Seller, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var sellers []*models.Seller
	departments := map[int64]*models.Department{}
	for rows.Next() {
		seller, err := scanSeller(rows, departments)
		if err != nil {
			return nil, wrapDBError(err)
		}
		sellers = append(sellers, seller)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapDBError(err)
	}

	return sellers, nil
}

// Update updates all mutable columns by id. Updating an id that matches no
// row is reported as not found rather than silently succeeding.
func (r *sellerRepository) Update(ctx context.Context, seller *models.Seller) error {
	query := `
		UPDATE seller
		SET name = $1, email = $2, birthdate = $3, basesalary = $4, departmentid = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		seller.Name,
		seller.Email,
		seller.BirthDate,
		seller.BaseSalary,
		seller.Department.ID,
		seller.ID,
	)
	if err != nil {
		return wrapSellerWriteError(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("seller with id %d not found", seller.ID))
	}

	return nil
}

// Delete deletes a seller by ID
func (r *sellerRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM seller WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return wrapDBError(err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("seller with id %d not found", id))
	}

	return nil
}
