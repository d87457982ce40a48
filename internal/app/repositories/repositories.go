package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kauanferreira/salesdesk/internal/app/models"
)

// DepartmentRepository is the storage port for departments. An in-memory
// implementation can satisfy it for tests without a real database.
type DepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	GetPage(ctx context.Context, page, size int) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// SellerRepository is the storage port for sellers
type SellerRepository interface {
	Create(ctx context.Context, seller *models.Seller) error
	GetByID(ctx context.Context, id int64) (*models.Seller, error)
	GetAll(ctx context.Context) ([]*models.Seller, error)
	GetPage(ctx context.Context, page, size int) ([]*models.Seller, error)
	GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Seller, error)
	GetByName(ctx context.Context, namePart string) ([]*models.Seller, error)
	GetByEmail(ctx context.Context, email string) (*models.Seller, error)
	GetByBirthMonth(ctx context.Context, month int) ([]*models.Seller, error)
	Update(ctx context.Context, seller *models.Seller) error
	Delete(ctx context.Context, id int64) error
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows, so one row-mapper per
// entity serves single-row and multi-row queries alike.
type rowScanner interface {
	Scan(dest ...any) error
}

// Repositories holds all the repository instances
type Repositories struct {
	Departments DepartmentRepository
	Sellers     SellerRepository
}

// NewRepositories initializes all repositories against the shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Departments: NewDepartmentRepository(db),
		Sellers:     NewSellerRepository(db),
	}
}
