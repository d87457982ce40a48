package services

import (
	"context"
	"strings"

	"github.com/kauanferreira/salesdesk/internal/app/models"
	"github.com/kauanferreira/salesdesk/internal/app/repositories"
	"github.com/kauanferreira/salesdesk/internal/pkg/apperrors"
)

// DepartmentService handles department-related operations
type DepartmentService interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	GetPage(ctx context.Context, page, size int) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

type departmentService struct {
	departmentRepo repositories.DepartmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo repositories.DepartmentRepository) DepartmentService {
	return &departmentService{
		departmentRepo: departmentRepo,
	}
}

// validateDepartment validates department data before database operations
func validateDepartment(department *models.Department) error {
	if department == nil {
		return apperrors.NewValidationError("department is required")
	}

	if strings.TrimSpace(department.Name) == "" {
		return apperrors.NewValidationError("department name cannot be empty")
	}

	return nil
}

// validatePagination validates 1-based page and size parameters
func validatePagination(page, size int) error {
	if page < 1 {
		return apperrors.NewValidationError("page must be 1 or greater")
	}

	if size < 1 {
		return apperrors.NewValidationError("size must be 1 or greater")
	}

	return nil
}

// Create creates a new department; the generated id is set on the record
func (s *departmentService) Create(ctx context.Context, department *models.Department) error {
	if err := validateDepartment(department); err != nil {
		return err
	}

	return s.departmentRepo.Create(ctx, department)
}

// GetByID retrieves a department by ID
func (s *departmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("department id must be positive")
	}

	return s.departmentRepo.GetByID(ctx, id)
}

// GetAll retrieves all departments
func (s *departmentService) GetAll(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx)
}

// GetPage retrieves one page of departments ordered by name
func (s *departmentService) GetPage(ctx context.Context, page, size int) ([]*models.Department, error) {
	if err := validatePagination(page, size); err != nil {
		return nil, err
	}

	return s.departmentRepo.GetPage(ctx, page, size)
}

// Update updates an existing department
func (s *departmentService) Update(ctx context.Context, department *models.Department) error {
	if err := validateDepartment(department); err != nil {
		return err
	}

	if department.ID <= 0 {
		return apperrors.NewValidationError("department id must be positive")
	}

	return s.departmentRepo.Update(ctx, department)
}

// Delete deletes a department by ID
func (s *departmentService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("department id must be positive")
	}

	return s.departmentRepo.Delete(ctx, id)
}
