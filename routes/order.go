package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/shopverse/ecom-backend/controllers/order"
	"github.com/shopverse/ecom-backend/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Convert the cart into an order
		orders.POST("/checkout", orderControllers.CheckoutHandler(db))

		// Caller's orders; every order when the caller is an admin
		orders.GET("/", orderControllers.GetOrdersHandler(db))

		// Websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Update status / payment / contact fields
		orders.PUT("/:orderID", orderControllers.UpdateOrderHandler(db))

		// Delete an order
		orders.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
	}
}
