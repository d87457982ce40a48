package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kauanferreira/salesdesk/internal/app/models"
	"github.com/kauanferreira/salesdesk/internal/app/models/dto"
	"github.com/kauanferreira/salesdesk/internal/app/services"
	"github.com/kauanferreira/salesdesk/internal/middleware"
)

// DepartmentController handles department-related endpoints
type DepartmentController struct {
	departmentService services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// ListDepartments returns all departments, optionally paginated via the
// page/size query parameters.
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	page, size, paginated, err := parsePagination(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var departments []*models.Department
	if paginated {
		departments, err = c.departmentService.GetPage(ctx, page, size)
	} else {
		departments, err = c.departmentService.GetAll(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if departments == nil {
		departments = []*models.Department{}
	}
	ctx.JSON(http.StatusOK, departments)
}

// GetDepartmentByID retrieves a department by ID
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	department, err := c.departmentService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, department)
}

// CreateDepartment creates a department and returns it with its generated id
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BadRequest(ctx, "invalid department data: "+err.Error())
		return
	}

	department := &models.Department{Name: req.Name}
	if err := c.departmentService.Create(ctx, department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, department)
}

// UpdateDepartment updates an existing department; the id comes from the path
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BadRequest(ctx, "invalid department data: "+err.Error())
		return
	}

	department := &models.Department{ID: id, Name: req.Name}
	if err := c.departmentService.Update(ctx, department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, department)
}

// DeleteDepartment deletes a department by ID
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.departmentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
