package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/kauanferreira/salesdesk/internal/app/models"
	"github.com/kauanferreira/salesdesk/internal/app/models/dto"
	"github.com/kauanferreira/salesdesk/internal/pkg/apperrors"
)

func testSeller() *models.Seller {
	return &models.Seller{
		ID:         1,
		Name:       "Bob Brown",
		Email:      "bob@gmail.com",
		BirthDate:  time.Date(1998, 4, 21, 0, 0, 0, 0, time.UTC),
		BaseSalary: 1000.0,
		Department: &models.Department{ID: 1, Name: "Computers"},
	}
}

func TestGetSellerByID_DateFormat(t *testing.T) {
	sellerSvc := &stubSellerService{
		getByIDFn: func(context.Context, int64) (*models.Seller, error) {
			return testSeller(), nil
		},
	}
	router := newTestRouter(nil, sellerSvc)

	rec := doRequest(t, router, http.MethodGet, "/api/sellers/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}

	var resp dto.SellerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if resp.BirthDate != "1998-04-21" {
		t.Errorf("birth date %q, want 1998-04-21", resp.BirthDate)
	}
	if resp.Department == nil || resp.Department.Name != "Computers" {
		t.Errorf("department not populated: %+v", resp.Department)
	}
}

func TestListSellers_EmptyResult(t *testing.T) {
	sellerSvc := &stubSellerService{
		getAllFn: func(context.Context) ([]*models.Seller, error) { return nil, nil },
	}
	router := newTestRouter(nil, sellerSvc)

	rec := doRequest(t, router, http.MethodGet, "/api/sellers", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if rec.Body.String() != "[]" {
		t.Errorf("expected empty JSON array, got %q", rec.Body.String())
	}
}

func TestGetSellerByEmail_NotFound(t *testing.T) {
	sellerSvc := &stubSellerService{
		getByEmailFn: func(_ context.Context, email string) (*models.Seller, error) {
			return nil, apperrors.NewNotFoundError("seller with email " + email + " not found")
		},
	}
	router := newTestRouter(nil, sellerSvc)

	rec := doRequest(t, router, http.MethodGet, "/api/sellers/email/nobody@gmail.com", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}

func TestSearchSellersByName(t *testing.T) {
	var gotName string
	sellerSvc := &stubSellerService{
		getByNameFn: func(_ context.Context, namePart string) ([]*models.Seller, error) {
			gotName = namePart
			return []*models.Seller{testSeller()}, nil
		},
	}
	router := newTestRouter(nil, sellerSvc)

	rec := doRequest(t, router, http.MethodGet, "/api/sellers/name/bro", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if gotName != "bro" {
		t.Errorf("service called with %q, want bro", gotName)
	}
}

func TestListSellersByDepartment(t *testing.T) {
	var gotID int64
	sellerSvc := &stubSellerService{
		getByDepartmentFn: func(_ context.Context, departmentID int64) ([]*models.Seller, error) {
			gotID = departmentID
			return []*models.Seller{testSeller()}, nil
		},
	}
	router := newTestRouter(nil, sellerSvc)

	rec := doRequest(t, router, http.MethodGet, "/api/sellers/department/54", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if gotID != 54 {
		t.Errorf("service called with department id %d, want 54", gotID)
	}
}

func TestListSellersByBirthMonth_Invalid(t *testing.T) {
	sellerSvc := &stubSellerService{
		getByBirthMonthFn: func(_ context.Context, month int) ([]*models.Seller, error) {
			return nil, apperrors.NewValidationError("month must be between 1 and 12")
		},
	}
	router := newTestRouter(nil, sellerSvc)

	rec := doRequest(t, router, http.MethodGet, "/api/sellers/birth-month/13", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/api/sellers/birth-month/x", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d for non-numeric month, want 400", rec.Code)
	}
}

func TestCreateSeller(t *testing.T) {
	sellerSvc := &stubSellerService{
		createFn: func(_ context.Context, req *dto.CreateSellerRequest) (*models.Seller, error) {
			seller := testSeller()
			seller.Name = req.Name
			seller.Email = req.Email
			return seller, nil
		},
	}
	router := newTestRouter(nil, sellerSvc)

	body := `{"name":"Adam","email":"adam@example.com","birthDate":"2020-01-01","baseSalary":5000,"departmentId":54}`
	rec := doRequest(t, router, http.MethodPost, "/api/sellers", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var resp dto.SellerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if resp.ID == 0 {
		t.Error("expected generated id in response")
	}
}

func TestCreateSeller_DuplicateEmail(t *testing.T) {
	sellerSvc := &stubSellerService{
		createFn: func(context.Context, *dto.CreateSellerRequest) (*models.Seller, error) {
			return nil, apperrors.NewDuplicateError("duplicate key value violates unique constraint \"seller_email_key\"")
		},
	}
	router := newTestRouter(nil, sellerSvc)

	body := `{"name":"Adam","email":"adam@example.com","birthDate":"2020-01-01","baseSalary":5000,"departmentId":54}`
	rec := doRequest(t, router, http.MethodPost, "/api/sellers", body)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status %d, want 409", rec.Code)
	}

	stdErr := decodeError(t, rec.Body.Bytes())
	if stdErr.Error != "Duplicate entry" {
		t.Errorf("error label %q, want Duplicate entry", stdErr.Error)
	}
}

func TestCreateSeller_MalformedEmail(t *testing.T) {
	router := newTestRouter(nil, &stubSellerService{})

	body := `{"name":"Adam","email":"not-an-email","birthDate":"2020-01-01","baseSalary":5000,"departmentId":54}`
	rec := doRequest(t, router, http.MethodPost, "/api/sellers", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestUpdateSeller(t *testing.T) {
	var gotID int64
	sellerSvc := &stubSellerService{
		updateFn: func(_ context.Context, id int64, req *dto.UpdateSellerRequest) (*models.Seller, error) {
			gotID = id
			seller := testSeller()
			seller.ID = id
			seller.Name = req.Name
			return seller, nil
		},
	}
	router := newTestRouter(nil, sellerSvc)

	body := `{"name":"Robert","email":"bob@gmail.com","birthDate":"1998-04-21","baseSalary":1500,"departmentId":1}`
	rec := doRequest(t, router, http.MethodPut, "/api/sellers/8", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if gotID != 8 {
		t.Errorf("service called with id %d, want 8", gotID)
	}
}

func TestDeleteSeller_NoContent(t *testing.T) {
	sellerSvc := &stubSellerService{
		deleteFn: func(context.Context, int64) error { return nil },
	}
	router := newTestRouter(nil, sellerSvc)

	rec := doRequest(t, router, http.MethodDelete, "/api/sellers/2", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status %d, want 204", rec.Code)
	}
}
