package orderControllers

import (
	"testing"

	"github.com/shopverse/ecom-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "in_progress", "approval", "cancelled", "failed", "success"} {
		status, err := parseOrderStatus(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, models.OrderStatus(valid), status)
	}

	for _, invalid := range []string{"", "approved", "shipped", "Pending", "in progress", "done"} {
		_, err := parseOrderStatus(invalid)
		require.Error(t, err, invalid)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "orderStatus", ve.Field)
	}
}

func TestParsePaymentStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Paid", "Failed", "Refunded"} {
		status, err := parsePaymentStatus(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, models.PaymentStatus(valid), status)
	}

	for _, invalid := range []string{"", "pending", "paid", "Settled"} {
		_, err := parsePaymentStatus(invalid)
		require.Error(t, err, invalid)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "paymentStatus", ve.Field)
	}
}

func TestParsePaymentMethod(t *testing.T) {
	for _, valid := range []string{"CreditCard", "DebitCard", "UPI", "NetBanking"} {
		method, err := parsePaymentMethod(valid)
		require.NoError(t, err, valid)
		assert.Equal(t, models.PaymentMethod(valid), method)
	}

	for _, invalid := range []string{"", "Cash", "creditcard", "Credit Card", "PayPal"} {
		_, err := parsePaymentMethod(invalid)
		require.Error(t, err, invalid)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "paymentMethod", ve.Field)
	}
}

func TestValidMobile(t *testing.T) {
	assert.True(t, validMobile("9876543210"))
	assert.True(t, validMobile("0000000000"))

	assert.False(t, validMobile(""))
	assert.False(t, validMobile("987654321"))     // 9 digits
	assert.False(t, validMobile("98765432101"))   // 11 digits
	assert.False(t, validMobile("98765 43210"))   // whitespace
	assert.False(t, validMobile("98765-43210"))   // separator
	assert.False(t, validMobile("+919876543210")) // country code
}

func TestValidEmail(t *testing.T) {
	assert.True(t, validEmail("user@example.com"))
	assert.True(t, validEmail("first.last+tag@sub.example.co"))

	assert.False(t, validEmail(""))
	assert.False(t, validEmail("not-an-email"))
	assert.False(t, validEmail("missing@domain"))
	assert.False(t, validEmail("user @example.com"))
	assert.False(t, validEmail("@example.com"))
	assert.False(t, validEmail("user@.com"))
}
