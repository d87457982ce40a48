package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kauanferreira/salesdesk/internal/app/models"
	"github.com/kauanferreira/salesdesk/internal/app/models/dto"
	"github.com/kauanferreira/salesdesk/internal/app/services"
	"github.com/kauanferreira/salesdesk/internal/middleware"
	"github.com/kauanferreira/salesdesk/internal/pkg/apperrors"
)

// SellerController handles seller-related endpoints
type SellerController struct {
	sellerService services.SellerService
}

// NewSellerController creates a new SellerController
func NewSellerController(sellerService services.SellerService) *SellerController {
	return &SellerController{
		sellerService: sellerService,
	}
}

// ListSellers returns all sellers ordered by name, optionally paginated via
// the page/size query parameters.
func (c *SellerController) ListSellers(ctx *gin.Context) {
	page, size, paginated, err := parsePagination(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var sellers []*models.Seller
	if paginated {
		sellers, err = c.sellerService.GetPage(ctx, page, size)
	} else {
		sellers, err = c.sellerService.GetAll(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSellerResponseList(sellers))
}

// GetSellerByID retrieves a seller by ID
func (c *SellerController) GetSellerByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	seller, err := c.sellerService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSellerResponse(seller))
}

// GetSellerByEmail retrieves the single seller with the given email
func (c *SellerController) GetSellerByEmail(ctx *gin.Context) {
	seller, err := c.sellerService.GetByEmail(ctx, ctx.Param("email"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSellerResponse(seller))
}

// SearchSellersByName retrieves sellers whose name contains the given string,
// case-insensitive
func (c *SellerController) SearchSellersByName(ctx *gin.Context) {
	sellers, err := c.sellerService.GetByName(ctx, ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSellerResponseList(sellers))
}

// ListSellersByDepartment retrieves all sellers of one department
func (c *SellerController) ListSellersByDepartment(ctx *gin.Context) {
	departmentID, err := parseIDParam(ctx, "departmentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	sellers, err := c.sellerService.GetByDepartment(ctx, departmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSellerResponseList(sellers))
}

// ListSellersByBirthMonth retrieves sellers born in the given month (1-12)
func (c *SellerController) ListSellersByBirthMonth(ctx *gin.Context) {
	month, err := strconv.Atoi(ctx.Param("month"))
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("month must be a valid number"))
		return
	}

	sellers, err := c.sellerService.GetByBirthMonth(ctx, month)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSellerResponseList(sellers))
}

// CreateSeller creates a seller and returns it with its generated id
func (c *SellerController) CreateSeller(ctx *gin.Context) {
	var req dto.CreateSellerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BadRequest(ctx, "invalid seller data: "+err.Error())
		return
	}

	seller, err := c.sellerService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSellerResponse(seller))
}

// UpdateSeller updates an existing seller; the id comes from the path
func (c *SellerController) UpdateSeller(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateSellerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.BadRequest(ctx, "invalid seller data: "+err.Error())
		return
	}

	seller, err := c.sellerService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSellerResponse(seller))
}

// DeleteSeller deletes a seller by ID
func (c *SellerController) DeleteSeller(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.sellerService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
