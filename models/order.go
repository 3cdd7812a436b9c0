package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string
type PaymentMethod string

const (
	// Order statuses (checkout lifecycle)
	OrderStatusPending    OrderStatus = "pending"     // Order placed, awaiting processing
	OrderStatusInProgress OrderStatus = "in_progress" // Being worked on
	OrderStatusApproval   OrderStatus = "approval"    // Waiting on approval
	OrderStatusCancelled  OrderStatus = "cancelled"   // Cancelled by user or admin
	OrderStatusFailed     OrderStatus = "failed"      // Could not be fulfilled
	OrderStatusSuccess    OrderStatus = "success"     // Completed

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "Pending"  // Payment not completed yet
	PaymentStatusPaid     PaymentStatus = "Paid"     // Payment completed successfully
	PaymentStatusFailed   PaymentStatus = "Failed"   // Payment attempt failed
	PaymentStatusRefunded PaymentStatus = "Refunded" // Money returned to customer

	// Payment methods
	PaymentMethodCreditCard PaymentMethod = "CreditCard"
	PaymentMethodDebitCard  PaymentMethod = "DebitCard"
	PaymentMethodUPI        PaymentMethod = "UPI"
	PaymentMethodNetBanking PaymentMethod = "NetBanking"
)

type Order struct {
	ID            string          `gorm:"primaryKey" json:"id"`
	UserID        string          `gorm:"not null;index" json:"user_id"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric" json:"total_amount"`
	Email         string          `gorm:"not null" json:"email"`
	MobileNumber  string          `gorm:"not null" json:"mobile_number"`
	Name          string          `gorm:"not null" json:"name"`
	PaymentMethod PaymentMethod   `gorm:"type:VARCHAR(20);not null" json:"payment_method"`
	PaymentStatus PaymentStatus   `gorm:"type:VARCHAR(20);default:'Pending'" json:"payment_status"`
	OrderStatus   OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"order_status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrderItem is a snapshot of the product at order time. Catalog edits or
// deletions after checkout never change a placed order.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   string          `gorm:"index" json:"order_id"`
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:numeric" json:"unit_price"`
	Quantity  int             `json:"quantity"`
}
