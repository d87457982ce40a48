package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kauanferreira/salesdesk/internal/pkg/apperrors"
)

// parseIDParam parses a numeric path parameter
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError(name + " must be a valid number")
	}
	return id, nil
}

// parsePagination reads the optional page/size query parameters. Both present
// selects the paginated variant; both absent the full listing; one without
// the other is a caller error.
func parsePagination(c *gin.Context) (page, size int, paginated bool, err error) {
	pageStr := c.Query("page")
	sizeStr := c.Query("size")

	if pageStr == "" && sizeStr == "" {
		return 0, 0, false, nil
	}

	if pageStr == "" || sizeStr == "" {
		return 0, 0, false, apperrors.NewValidationError("page and size must be provided together")
	}

	page, err = strconv.Atoi(pageStr)
	if err != nil {
		return 0, 0, false, apperrors.NewValidationError("page must be a valid number")
	}

	size, err = strconv.Atoi(sizeStr)
	if err != nil {
		return 0, 0, false, apperrors.NewValidationError("size must be a valid number")
	}

	return page, size, true, nil
}
