package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/shopverse/ecom-backend/controllers/order"
	productControllers "github.com/shopverse/ecom-backend/controllers/product"
	userControllers "github.com/shopverse/ecom-backend/controllers/user"
	"github.com/shopverse/ecom-backend/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. JWT plus admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ──────────────── Catalog Management ────────────────
		adminGroup.POST("/products", productControllers.CreateProduct(db))
		adminGroup.PUT("/products/:id", productControllers.UpdateProduct(db))
		adminGroup.DELETE("/products/:id", productControllers.DeleteProduct(db))

		// ──────────────── Back Office ────────────────
		adminGroup.GET("/orders/export", orderControllers.ExportOrdersToExcel(db))
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
	}
}
