package orderControllers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/shopverse/ecom-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderTotal(t *testing.T) {
	items := []models.OrderItem{
		{UnitPrice: decimal.RequireFromString("10.00"), Quantity: 2},
		{UnitPrice: decimal.RequireFromString("5.50"), Quantity: 1},
	}

	total := orderTotal(items)
	assert.True(t, total.Equal(decimal.RequireFromString("25.50")), "got %s", total)
}

func TestOrderTotalNoFloatDrift(t *testing.T) {
	// 0.10 summed three times must be exactly 0.30
	items := []models.OrderItem{
		{UnitPrice: decimal.RequireFromString("0.10"), Quantity: 3},
	}

	total := orderTotal(items)
	assert.True(t, total.Equal(decimal.RequireFromString("0.30")), "got %s", total)
}

func TestOrderTotalEmpty(t *testing.T) {
	assert.True(t, orderTotal(nil).IsZero())
}

func TestSnapshotCartItemsEmpty(t *testing.T) {
	db := setupTestDB(t)

	_, err := snapshotCartItems(db, nil)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestSnapshotCartItemsCopiesCatalogFields(t *testing.T) {
	db := setupTestDB(t)
	product := seedProduct(t, db, "Keyboard", "49.90")

	items, err := snapshotCartItems(db, []models.CartItem{
		{ProductID: product.ID, Quantity: 2},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, product.ID, items[0].ProductID)
	assert.Equal(t, "Keyboard", items[0].Name)
	assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("49.90")))
	assert.Equal(t, 2, items[0].Quantity)
}

func TestSnapshotCartItemsUnknownProduct(t *testing.T) {
	db := setupTestDB(t)

	_, err := snapshotCartItems(db, []models.CartItem{
		{ProductID: 999, Quantity: 1},
	})
	assert.Error(t, err)
}
