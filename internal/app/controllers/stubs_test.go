package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kauanferreira/salesdesk/internal/app/controllers"
	"github.com/kauanferreira/salesdesk/internal/app/models"
	"github.com/kauanferreira/salesdesk/internal/app/models/dto"
	"github.com/kauanferreira/salesdesk/internal/app/routes"
)

// Stub services with function fields so each test supplies exactly the
// behavior it needs.

type stubDepartmentService struct {
	createFn  func(ctx context.Context, department *models.Department) error
	getByIDFn func(ctx context.Context, id int64) (*models.Department, error)
	getAllFn  func(ctx context.Context) ([]*models.Department, error)
	getPageFn func(ctx context.Context, page, size int) ([]*models.Department, error)
	updateFn  func(ctx context.Context, department *models.Department) error
	deleteFn  func(ctx context.Context, id int64) error
}

func (s *stubDepartmentService) Create(ctx context.Context, department *models.Department) error {
	return s.createFn(ctx, department)
}

func (s *stubDepartmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubDepartmentService) GetAll(ctx context.Context) ([]*models.Department, error) {
	return s.getAllFn(ctx)
}

func (s *stubDepartmentService) GetPage(ctx context.Context, page, size int) ([]*models.Department, error) {
	return s.getPageFn(ctx, page, size)
}

func (s *stubDepartmentService) Update(ctx context.Context, department *models.Department) error {
	return s.updateFn(ctx, department)
}

func (s *stubDepartmentService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubSellerService struct {
	createFn          func(ctx context.Context, req *dto.CreateSellerRequest) (*models.Seller, error)
	getByIDFn         func(ctx context.Context, id int64) (*models.Seller, error)
	getAllFn          func(ctx context.Context) ([]*models.Seller, error)
	getPageFn         func(ctx context.Context, page, size int) ([]*models.Seller, error)
	getByDepartmentFn func(ctx context.Context, departmentID int64) ([]*models.Seller, error)
	getByNameFn       func(ctx context.Context, namePart string) ([]*models.Seller, error)
	getByEmailFn      func(ctx context.Context, email string) (*models.Seller, error)
	getByBirthMonthFn func(ctx context.Context, month int) ([]*models.Seller, error)
	updateFn          func(ctx context.Context, id int64, req *dto.UpdateSellerRequest) (*models.Seller, error)
	deleteFn          func(ctx context.Context, id int64) error
}

func (s *stubSellerService) Create(ctx context.Context, req *dto.CreateSellerRequest) (*models.Seller, error) {
	return s.createFn(ctx, req)
}

func (s *stubSellerService) GetByID(ctx context.Context, id int64) (*models.Seller, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubSellerService) GetAll(ctx context.Context) ([]*models.Seller, error) {
	return s.getAllFn(ctx)
}

func (s *stubSellerService) GetPage(ctx context.Context, page, size int) ([]*models.Seller, error) {
	return s.getPageFn(ctx, page, size)
}

func (s *stubSellerService) GetByDepartment(ctx context.Context, departmentID int64) ([]*models.Seller, error) {
	return s.getByDepartmentFn(ctx, departmentID)
}

func (s *stubSellerService) GetByName(ctx context.Context, namePart string) ([]*models.Seller, error) {
	return s.getByNameFn(ctx, namePart)
}

func (s *stubSellerService) GetByEmail(ctx context.Context, email string) (*models.Seller, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *stubSellerService) GetByBirthMonth(ctx context.Context, month int) ([]*models.Seller, error) {
	return s.getByBirthMonthFn(ctx, month)
}

func (s *stubSellerService) Update(ctx context.Context, id int64, req *dto.UpdateSellerRequest) (*models.Seller, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubSellerService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func newTestRouter(deptSvc *stubDepartmentService, sellerSvc *stubSellerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if deptSvc == nil {
		deptSvc = &stubDepartmentService{}
	}
	if sellerSvc == nil {
		sellerSvc = &stubSellerService{}
	}
	routes.SetupRouter(router, controllers.NewDepartmentController(deptSvc), controllers.NewSellerController(sellerSvc))
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
