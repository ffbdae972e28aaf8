package models

// Payment methods accepted at checkout
const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentUPI  = "upi"
)

// ValidPaymentMethod reports whether method is one of the accepted
// payment methods.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentCard, PaymentUPI:
		return true
	}
	return false
}
