package cartControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/shopverse/ecom-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	))
	return db
}

// testRouter registers the cart routes behind a stub auth middleware that
// pins the caller to user-1.
func testRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
	})

	r.GET("/user/cart", GetUserCart(db))
	r.POST("/user/cart", AddCartItem(db))
	r.PUT("/user/cart", UpdateCartItemQuantity(db))
	r.DELETE("/user/cart/:product_id", DeleteCartItem(db))
	r.DELETE("/user/cart", ClearUserCart(db))
	return r
}

func seedProduct(t *testing.T, db *gorm.DB, name string) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: decimal.RequireFromString("9.99")}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddCartItemCreatesCartAndLine(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter(db)
	product := seedProduct(t, db, "Mug")

	w := doJSON(r, http.MethodPost, "/user/cart", gin.H{"product_id": product.ID, "quantity": 2})
	assert.Equal(t, http.StatusCreated, w.Code)

	var items []models.CartItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, product.ID, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddCartItemSameProductBumpsQuantity(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter(db)
	product := seedProduct(t, db, "Mug")

	doJSON(r, http.MethodPost, "/user/cart", gin.H{"product_id": product.ID, "quantity": 2})
	w := doJSON(r, http.MethodPost, "/user/cart", gin.H{"product_id": product.ID, "quantity": 3})
	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter(db)

	w := doJSON(r, http.MethodPost, "/user/cart", gin.H{"product_id": 42, "quantity": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddCartItemRejectsZeroQuantity(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter(db)
	product := seedProduct(t, db, "Mug")

	w := doJSON(r, http.MethodPost, "/user/cart", gin.H{"product_id": product.ID, "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCartItemQuantity(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter(db)
	product := seedProduct(t, db, "Mug")

	doJSON(r, http.MethodPost, "/user/cart", gin.H{"product_id": product.ID, "quantity": 2})
	w := doJSON(r, http.MethodPut, "/user/cart", gin.H{"product_id": product.ID, "quantity": 7})
	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, db.Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestDeleteCartItem(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter(db)
	product := seedProduct(t, db, "Mug")

	doJSON(r, http.MethodPost, "/user/cart", gin.H{"product_id": product.ID, "quantity": 1})

	w := doJSON(r, http.MethodDelete, "/user/cart/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Deleting again is a 404
	w = doJSON(r, http.MethodDelete, "/user/cart/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearUserCart(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter(db)
	a := seedProduct(t, db, "Mug")
	b := seedProduct(t, db, "Plate")

	doJSON(r, http.MethodPost, "/user/cart", gin.H{"product_id": a.ID, "quantity": 1})
	doJSON(r, http.MethodPost, "/user/cart", gin.H{"product_id": b.ID, "quantity": 2})

	w := doJSON(r, http.MethodDelete, "/user/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var n int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestGetUserCartEmptyWithoutCartRow(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter(db)

	w := doJSON(r, http.MethodGet, "/user/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Empty(t, items)
}
