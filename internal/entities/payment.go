package entities

// PaymentCapture is the advisory result of an online capture attempt.
// Payment status can lag order status; capture never blocks the order flow.
type PaymentCapture struct {
	Success       bool
	TransactionID string
}
