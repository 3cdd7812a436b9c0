package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopverse/ecom-backend/models"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CheckoutRequest struct {
	Email         string `json:"email"`
	MobileNumber  string `json:"mobileNumber"`
	Name          string `json:"name"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"` // optional, defaults to Pending
}

type UpdateOrderRequest struct {
	OrderStatus   string `json:"orderStatus"`
	PaymentStatus string `json:"paymentStatus"`
	PaymentMethod string `json:"paymentMethod"`
	Name          string `json:"name"`
	MobileNumber  string `json:"mobileNumber"`
	Email         string `json:"email"`
}

// -------- Core Logic --------

// Checkout converts the user's cart into an immutable order. All request
// validation happens before any store access; the order insert and the cart
// clear share one transaction, so a failed write leaves the cart untouched.
func Checkout(db *gorm.DB, userID string, req CheckoutRequest) (*models.Order, error) {
	method, err := parsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	paymentStatus := models.PaymentStatusPending
	if req.PaymentStatus != "" {
		if paymentStatus, err = parsePaymentStatus(req.PaymentStatus); err != nil {
			return nil, err
		}
	}

	if req.Email == "" {
		return nil, invalidField("email", "is required")
	}
	if req.MobileNumber == "" {
		return nil, invalidField("mobileNumber", "is required")
	}
	if req.Name == "" {
		return nil, invalidField("name", "is required")
	}

	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Email:         req.Email,
		MobileNumber:  req.MobileNumber,
		Name:          req.Name,
		PaymentMethod: method,
		PaymentStatus: paymentStatus,
		// Orders always start out pending, whatever the caller asks for.
		OrderStatus: models.OrderStatusPending,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		items, err := snapshotCartItems(tx, cart.Items)
		if err != nil {
			return err
		}
		order.Items = items
		order.TotalAmount = orderTotal(items)

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		// Empty the cart only once the order row is in.
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateOrder applies a partial update to an order's status and contact
// fields. Every supplied field is validated before anything is written; the
// valid fields go out in a single update. Items and total are frozen at
// checkout and cannot be touched here.
func UpdateOrder(db *gorm.DB, orderID string, req UpdateOrderRequest) (*models.Order, error) {
	updates := map[string]interface{}{}

	if req.OrderStatus != "" {
		status, err := parseOrderStatus(req.OrderStatus)
		if err != nil {
			return nil, err
		}
		updates["order_status"] = status
	}
	if req.PaymentStatus != "" {
		status, err := parsePaymentStatus(req.PaymentStatus)
		if err != nil {
			return nil, err
		}
		updates["payment_status"] = status
	}
	if req.PaymentMethod != "" {
		method, err := parsePaymentMethod(req.PaymentMethod)
		if err != nil {
			return nil, err
		}
		updates["payment_method"] = method
	}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.MobileNumber != "" {
		if !validMobile(req.MobileNumber) {
			return nil, invalidField("mobileNumber", "must be exactly 10 digits")
		}
		updates["mobile_number"] = req.MobileNumber
	}
	if req.Email != "" {
		if !validEmail(req.Email) {
			return nil, invalidField("email", "is not a valid address")
		}
		updates["email"] = req.Email
	}

	var order models.Order
	if err := db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if len(updates) > 0 {
		if err := db.Model(&order).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	if err := db.Preload("Items").First(&order, "id = ?", order.ID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns the caller's orders, or every order for admins,
// newest first.
func ListOrders(db *gorm.DB, userID string, isAdmin bool) ([]models.Order, error) {
	query := db.Preload("Items").Order("created_at DESC")
	if !isAdmin {
		query = query.Where("user_id = ?", userID)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// DeleteOrder removes an order and its items.
func DeleteOrder(db *gorm.DB, orderID string) error {
	var order models.Order
	if err := db.First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}

// -------- Handlers --------

// POST /orders/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		order, err := Checkout(db, userIDVal.(string), req)
		if err != nil {
			respondError(c, err)
			return
		}

		broadcastOrderEvent("order_created", *order)
		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"order":   order,
		})
	}
}

// GET /orders
func GetOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		role, _ := c.Get("role")

		orders, err := ListOrders(db, userIDVal.(string), role == models.RoleAdmin)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"count":  len(orders),
			"orders": orders,
		})
	}
}

// PUT /orders/:orderID
func UpdateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		order, err := UpdateOrder(db, orderID, req)
		if err != nil {
			respondError(c, err)
			return
		}

		broadcastOrderEvent("order_updated", *order)
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Order updated successfully",
			"order":   order,
		})
	}
}

// DELETE /orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		if err := DeleteOrder(db, orderID); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
