package payment

import (
	"pako/internal/entities"
)

const statusCaptured = "captured"

type captureRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Method   string `json:"method"`
	Phone    string `json:"phone"`
}

type captureResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}

func toDomain(resp *captureResponse) *entities.PaymentCapture {
	if resp == nil {
		return nil
	}

	return &entities.PaymentCapture{
		Success:       resp.Status == statusCaptured,
		TransactionID: resp.TransactionID,
	}
}
