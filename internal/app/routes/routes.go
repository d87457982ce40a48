package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kauanferreira/salesdesk/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	departmentController *controllers.DepartmentController,
	sellerController *controllers.SellerController,
) {
	api := router.Group("/api")

	departments := api.Group("/departments")
	{
		departments.GET("", departmentController.ListDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
		departments.POST("", departmentController.CreateDepartment)
		departments.PUT("/:id", departmentController.UpdateDepartment)
		departments.DELETE("/:id", departmentController.DeleteDepartment)
	}

	sellers := api.Group("/sellers")
	{
		sellers.GET("", sellerController.ListSellers)
		sellers.GET("/:id", sellerController.GetSellerByID)
		sellers.GET("/email/:email", sellerController.GetSellerByEmail)
		sellers.GET("/name/:name", sellerController.SearchSellersByName)
		sellers.GET("/department/:departmentId", sellerController.ListSellersByDepartment)
		sellers.GET("/birth-month/:month", sellerController.ListSellersByBirthMonth)
		sellers.POST("", sellerController.CreateSeller)
		sellers.PUT("/:id", sellerController.UpdateSeller)
		sellers.DELETE("/:id", sellerController.DeleteSeller)
	}
}
