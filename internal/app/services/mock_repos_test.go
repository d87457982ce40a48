package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kauanferreira/salesdesk/internal/app/models"
	"github.com/kauanferreira/salesdesk/internal/pkg/apperrors"
)

// store is shared in-memory state backing both fake repositories, so
// referential integrity between sellers and departments can be emulated.
type store struct {
	departments map[int64]*models.Department
	sellers     map[int64]*models.Seller
	nextDeptID  int64
	nextSellID  int64
}

func newStore() *store {
	return &store{
		departments: map[int64]*models.Department{},
		sellers:     map[int64]*models.Seller{},
		nextDeptID:  1,
		nextSellID:  1,
	}
}

type mockDepartmentRepo struct {
	s *store
}

type mockSellerRepo struct {
	s *store
}

func newMockRepos() (*mockDepartmentRepo, *mockSellerRepo) {
	s := newStore()
	return &mockDepartmentRepo{s: s}, &mockSellerRepo{s: s}
}

func (r *mockDepartmentRepo) Create(_ context.Context, department *models.Department) error {
	department.ID = r.s.nextDeptID
	r.s.nextDeptID++
	r.s.departments[department.ID] = &models.Department{ID: department.ID, Name: department.Name}
	return nil
}

func (r *mockDepartmentRepo) GetByID(_ context.Context, id int64) (*models.Department, error) {
	department, ok := r.s.departments[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("department with id %d not found", id))
	}
	copied := *department
	return &copied, nil
}

func (r *mockDepartmentRepo) GetAll(_ context.Context) ([]*models.Department, error) {
	var departments []*models.Department
	for _, department := range r.s.departments {
		copied := *department
		departments = append(departments, &copied)
	}
	sort.Slice(departments, func(i, j int) bool { return departments[i].ID < departments[j].ID })
	return departments, nil
}

func (r *mockDepartmentRepo) GetPage(ctx context.Context, page, size int) ([]*models.Department, error) {
	departments, _ := r.GetAll(ctx)
	sort.Slice(departments, func(i, j int) bool { return departments[i].Name < departments[j].Name })
	return paginate(departments, page, size), nil
}

func (r *mockDepartmentRepo) Update(_ context.Context, department *models.Department) error {
	existing, ok := r.s.departments[department.ID]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("department with id %d not found", department.ID))
	}
	existing.Name = department.Name
	return nil
}

func (r *mockDepartmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.departments[id]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("department with id %d not found", id))
	}
	for _, seller := range r.s.sellers {
		if seller.Department.ID == id {
			return apperrors.NewIntegrityError("seller still references department")
		}
	}
	delete(r.s.departments, id)
	return nil
}

func (r *mockSellerRepo) Create(_ context.Context, seller *models.Seller) error {
	for _, existing := range r.s.sellers {
		if existing.Email == seller.Email {
			return apperrors.NewDuplicateError("duplicate key value violates unique constraint \"seller_email_key\"")
		}
	}
	if _, ok := r.s.departments[seller.Department.ID]; !ok {
		return apperrors.NewIntegrityError("insert violates foreign key constraint \"seller_departmentid_fkey\"")
	}
	seller.ID = r.s.nextSellID
	r.s.nextSellID++
	stored := *seller
	stored.Department = &models.Department{ID: seller.Department.ID}
	r.s.sellers[seller.ID] = &stored
	return nil
}

// joined returns a copy with the department name populated, as the SQL join
// does in the real repository.
func (r *mockSellerRepo) joined(seller *models.Seller) *models.Seller {
	copied := *seller
	department := r.s.departments[seller.Department.ID]
	copied.Department = &models.Department{ID: department.ID, Name: department.Name}
	return &copied
}

func (r *mockSellerRepo) GetByID(_ context.Context, id int64) (*models.Seller, error) {
	seller, ok := r.s.sellers[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("seller with id %d not found", id))
	}
	return r.joined(seller), nil
}

func (r *mockSellerRepo) all() []*models.Seller {
	var sellers []*models.Seller
	for _, seller := range r.s.sellers {
		sellers = append(sellers, r.joined(seller))
	}
	sort.Slice(sellers, func(i, j int) bool { return sellers[i].Name < sellers[j].Name })
	return sellers
}

func (r *mockSellerRepo) GetAll(_ context.Context) ([]*models.Seller, error) {
	return r.all(), nil
}

func (r *mockSellerRepo) GetPage(_ context.Context, page, size int) ([]*models.Seller, error) {
	return paginate(r.all(), page, size), nil
}

func (r *mockSellerRepo) GetByDepartment(_ context.Context, departmentID int64) ([]*models.Seller, error) {
	var sellers []*models.Seller
	for _, seller := range r.all() {
		if seller.Department.ID == departmentID {
			sellers = append(sellers, seller)
		}
	}
	return sellers, nil
}

func (r *mockSellerRepo) GetByName(_ context.Context, namePart string) ([]*models.Seller, error) {
	var sellers []*models.Seller
	for _, seller := range r.all() {
		if strings.Contains(strings.ToLower(seller.Name), strings.ToLower(namePart)) {
			sellers = append(sellers, seller)
		}
	}
	return sellers, nil
}

func (r *mockSellerRepo) GetByEmail(_ context.Context, email string) (*models.Seller, error) {
	for _, seller := range r.s.sellers {
		if seller.Email == email {
			return r.joined(seller), nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("seller with email %s not found", email))
}

func (r *mockSellerRepo) GetByBirthMonth(_ context.Context, month int) ([]*models.Seller, error) {
	var sellers []*models.Seller
	for _, seller := range r.all() {
		if int(seller.BirthDate.Month()) == month {
			sellers = append(sellers, seller)
		}
	}
	return sellers, nil
}

func (r *mockSellerRepo) Update(_ context.Context, seller *models.Seller) error {
	existing, ok := r.s.sellers[seller.ID]
	if !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("seller with id %d not found", seller.ID))
	}
	if _, ok := r.s.departments[seller.Department.ID]; !ok {
		return apperrors.NewIntegrityError("update violates foreign key constraint \"seller_departmentid_fkey\"")
	}
	existing.Name = seller.Name
	existing.Email = seller.Email
	existing.BirthDate = seller.BirthDate
	existing.BaseSalary = seller.BaseSalary
	existing.Department = &models.Department{ID: seller.Department.ID}
	return nil
}

func (r *mockSellerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.sellers[id]; !ok {
		return apperrors.NewNotFoundError(fmt.Sprintf("seller with id %d not found", id))
	}
	delete(r.s.sellers, id)
	return nil
}

func paginate[T any](items []T, page, size int) []T {
	offset := (page - 1) * size
	if offset >= len(items) {
		return nil
	}
	end := offset + size
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
