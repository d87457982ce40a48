package dto

import (
	"time"

	"github.com/kauanferreira/salesdesk/internal/app/models"
)

// BirthDateLayout is the wire format for seller birth dates
const BirthDateLayout = "2006-01-02"

// CreateSellerRequest is the body for POST /api/sellers
type CreateSellerRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	BirthDate    string  `json:"birthDate" binding:"required"`
	BaseSalary   float64 `json:"baseSalary"`
	DepartmentID int64   `json:"departmentId" binding:"required"`
}

// UpdateSellerRequest is the body for PUT /api/sellers/:id
type UpdateSellerRequest struct {
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	BirthDate    string  `json:"birthDate" binding:"required"`
	BaseSalary   float64 `json:"baseSalary"`
	DepartmentID int64   `json:"departmentId" binding:"required"`
}

// SellerResponse is the seller representation returned by the API. The birth
// date is rendered as a plain calendar date, not a timestamp.
type SellerResponse struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	BirthDate  string             `json:"birthDate"`
	BaseSalary float64            `json:"baseSalary"`
	Department *models.Department `json:"department,omitempty"`
}

// NewSellerResponse maps a seller model to its API representation
func NewSellerResponse(seller *models.Seller) *SellerResponse {
	return &SellerResponse{
		ID:         seller.ID,
		Name:       seller.Name,
		Email:      seller.Email,
		BirthDate:  seller.BirthDate.Format(BirthDateLayout),
		BaseSalary: seller.BaseSalary,
		Department: seller.Department,
	}
}

// NewSellerResponseList maps a slice of seller models
func NewSellerResponseList(sellers []*models.Seller) []*SellerResponse {
	responses := make([]*SellerResponse, 0, len(sellers))
	for _, seller := range sellers {
		responses = append(responses, NewSellerResponse(seller))
	}
	return responses
}

// ParseBirthDate parses a wire-format birth date
func ParseBirthDate(value string) (time.Time, error) {
	return time.Parse(BirthDateLayout, value)
}
