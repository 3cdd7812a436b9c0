package orderControllers

import (
	"github.com/shopspring/decimal"
	"github.com/shopverse/ecom-backend/models"
	"gorm.io/gorm"
)

// snapshotCartItems resolves every cart line against the catalog and copies
// the fields the order must keep. Prices are read at call time, so the
// snapshot reflects the catalog at the instant of checkout and is immune to
// later price edits or product deletions.
func snapshotCartItems(tx *gorm.DB, items []models.CartItem) ([]models.OrderItem, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		var product models.Product
		if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
			return nil, err
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
		})
	}
	return orderItems, nil
}

// orderTotal sums unit price × quantity over the snapshot lines.
func orderTotal(items []models.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
