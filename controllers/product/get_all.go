package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopverse/ecom-backend/models"
	"gorm.io/gorm"
)

// GetProducts returns the whole catalog, newest first.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total":    len(products),
			"products": products,
		})
	}
}
