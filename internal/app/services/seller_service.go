package services

import (
	"context"
	"strings"

	"github.com/kauanferreira/salesdesk/internal/app/models"
	"github.com/kauanferreira/salesdesk/internal/app/models/dto"
	"github.com/kauanferreira/salesdesk/internal/app/repositories"
	"github.com/kauanferreira/salesdesk/internal/pkg/apperrors"
)

// SellerService handles seller-related operations
type SellerService interface {
	Create(ctx context.Context, req *dto.CreateSellerRequest) (*models.Seller, error)
	GetByID(ctx context.Context, id int64) (*models.Seller, error)
	GetAll(ctx context.Context) ([]*models.Seller, error)
	GetPage(ctx context.Context, page, size int) ([]*models.Seller, error)
	GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Seller, error)
	GetByName(ctx context.Context, namePart string) ([]*models.Seller, error)
	GetByEmail(ctx context.Context, email string) (*models.Seller, error)
	GetByBirthMonth(ctx context.Context, month int) ([]*models.Seller, error)
	Update(ctx context.Context, id int64, req *dto.UpdateSellerRequest) (*models.Seller, error)
	Delete(ctx context.Context, id int64) error
}

type sellerService struct {
	sellerRepo repositories.SellerRepository
}

// NewSellerService creates a new seller service instance
func NewSellerService(sellerRepo repositories.SellerRepository) SellerService {
	return &sellerService{
		sellerRepo: sellerRepo,
	}
}

// buildSeller validates request fields and assembles a seller record.
// Whether the referenced department exists is left to the foreign-key
// constraint in storage.
func buildSeller(name, email, birthDate string, baseSalary float64, departmentID int64) (*models.Seller, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("seller name cannot be empty")
	}

	if strings.TrimSpace(email) == "" {
		return nil, apperrors.NewValidationError("seller email cannot be empty")
	}

	if baseSalary < 0 {
		return nil, apperrors.NewValidationError("base salary cannot be negative")
	}

	if departmentID <= 0 {
		return nil, apperrors.NewValidationError("department id must be positive")
	}

	parsedDate, err := dto.ParseBirthDate(birthDate)
	if err != nil {
		return nil, apperrors.NewValidationError("birth date must use format " + dto.BirthDateLayout)
	}

	return &models.Seller{
		Name:       name,
		Email:      email,
		BirthDate:  parsedDate,
		BaseSalary: baseSalary,
		Department: &models.Department{ID: departmentID},
	}, nil
}

// Create inserts a new seller and returns the persisted record with its
// department populated from the join.
func (s *sellerService) Create(ctx context.Context, req *dto.CreateSellerRequest) (*models.Seller, error) {
	seller, err := buildSeller(req.Name, req.Email, req.BirthDate, req.BaseSalary, req.DepartmentID)
	if err != nil {
		return nil, err
	}

	if err := s.sellerRepo.Create(ctx, seller); err != nil {
		return nil, err
	}

	return s.sellerRepo.GetByID(ctx, seller.ID)
}

// GetByID retrieves a seller by ID
func (s *sellerService) GetByID(ctx context.Context, id int64) (*models.Seller, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("seller id must be positive")
	}

	return s.sellerRepo.GetByID(ctx, id)
}

// GetAll retrieves all sellers ordered by name
func (s *sellerService) GetAll(ctx context.Context) ([]*models.Seller, error) {
	return s.sellerRepo.GetAll(ctx)
}

// GetPage retrieves one page of sellers ordered by name
func (s *sellerService) GetPage(ctx context.Context, page, size int) ([]*models.Seller, error) {
	if err := validatePagination(page, size); err != nil {
		return nil, err
	}

	return s.sellerRepo.GetPage(ctx, page, size)
}

// GetByDepartment retrieves all sellers of one department
func (s *sellerService) GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Seller, error) {
	if departmentID <= 0 {
		return nil, apperrors.NewValidationError("department id must be positive")
	}

	return s.sellerRepo.GetByDepartment(ctx, departmentID)
}

// GetByName retrieves sellers by case-insensitive partial name match
func (s *sellerService) GetByName(ctx context.Context, namePart string) ([]*models.Seller, error) {
	if strings.TrimSpace(namePart) == "" {
		return nil, apperrors.NewValidationError("name search term cannot be empty")
	}

	return s.sellerRepo.GetByName(ctx, namePart)
}

// GetByEmail retrieves the single seller with the given email
func (s *sellerService) GetByEmail(ctx context.Context, email string) (*models.Seller, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.NewValidationError("email cannot be empty")
	}

	return s.sellerRepo.GetByEmail(ctx, email)
}

// GetByBirthMonth retrieves sellers born in the given month (1-12)
func (s *sellerService) GetByBirthMonth(ctx context.Context, month int) ([]*models.Seller, error) {
	if month < 1 || month > 12 {
		return nil, apperrors.NewValidationError("month must be between 1 and 12")
	}

	return s.sellerRepo.GetByBirthMonth(ctx, month)
}

// Update updates all mutable seller columns by id and returns the persisted
// record.
func (s *sellerService) Update(ctx context.Context, id int64, req *dto.UpdateSellerRequest) (*models.Seller, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("seller id must be positive")
	}

	seller, err := buildSeller(req.Name, req.Email, req.BirthDate, req.BaseSalary, req.DepartmentID)
	if err != nil {
		return nil, err
	}
	seller.ID = id

	if err := s.sellerRepo.Update(ctx, seller); err != nil {
		return nil, err
	}

	return s.sellerRepo.GetByID(ctx, id)
}

// Delete deletes a seller by ID
func (s *sellerService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("seller id must be positive")
	}

	return s.sellerRepo.Delete(ctx, id)
}
