package dto

// CreateDepartmentRequest is the body for POST /api/departments
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateDepartmentRequest is the body for PUT /api/departments/:id
type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}
