package orderControllers

import (
	"regexp"

	"github.com/shopverse/ecom-backend/models"
)

var (
	mobileRe = regexp.MustCompile(`^[0-9]{10}$`)
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Closed-set checks. Any status may be set to any other member of its set;
// membership is the only gate.

func parseOrderStatus(s string) (models.OrderStatus, error) {
	switch status := models.OrderStatus(s); status {
	case models.OrderStatusPending,
		models.OrderStatusInProgress,
		models.OrderStatusApproval,
		models.OrderStatusCancelled,
		models.OrderStatusFailed,
		models.OrderStatusSuccess:
		return status, nil
	default:
		return "", invalidField("orderStatus", "unknown status "+s)
	}
}

func parsePaymentStatus(s string) (models.PaymentStatus, error) {
	switch status := models.PaymentStatus(s); status {
	case models.PaymentStatusPending,
		models.PaymentStatusPaid,
		models.PaymentStatusFailed,
		models.PaymentStatusRefunded:
		return status, nil
	default:
		return "", invalidField("paymentStatus", "unknown status "+s)
	}
}

func parsePaymentMethod(s string) (models.PaymentMethod, error) {
	switch method := models.PaymentMethod(s); method {
	case models.PaymentMethodCreditCard,
		models.PaymentMethodDebitCard,
		models.PaymentMethodUPI,
		models.PaymentMethodNetBanking:
		return method, nil
	default:
		return "", invalidField("paymentMethod", "unknown method "+s)
	}
}

func validMobile(s string) bool {
	return mobileRe.MatchString(s)
}

func validEmail(s string) bool {
	return emailRe.MatchString(s)
}
