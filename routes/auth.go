package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/shopverse/ecom-backend/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		// Google sign-in: Firebase ID token in, API JWT out
		authGroup.POST("/google", auth.GoogleLoginHandler(db))
	}
}
