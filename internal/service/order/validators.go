package order

import (
	"strings"

	"pako/internal/entities"
)

func validateDraft(draft entities.OrderDraft) error {
	if strings.TrimSpace(draft.CustomerID) == "" ||
		strings.TrimSpace(draft.CustomerName) == "" ||
		strings.TrimSpace(draft.PickupAddress) == "" ||
		strings.TrimSpace(draft.DeliveryAddress) == "" {
		return ErrMissingRequiredFields
	}

	if !isValidPhone(draft.SenderPhone) || !isValidPhone(draft.ReceiverPhone) {
		return ErrInvalidPhone
	}
	if !isValidTier(draft.Tier) {
		return ErrInvalidTier
	}
	if !isValidPaymentMethod(draft.PaymentMethod) {
		return ErrInvalidPaymentMethod
	}

	if len(draft.Packages) == 0 {
		return ErrNoPackages
	}
	for _, pkg := range draft.Packages {
		if strings.TrimSpace(pkg.Description) == "" {
			return ErrMissingRequiredFields
		}
	}
	return nil
}

func isValidOrderNumber(number string) bool {
	return strings.TrimSpace(number) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") || len(phone) < 8 {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidTier(tier entities.DeliveryTierType) bool {
	switch tier {
	case entities.TierStandard, entities.TierExpress:
		return true
	default:
		return false
	}
}

func isValidPaymentMethod(method entities.PaymentMethodType) bool {
	switch method {
	case entities.PaymentCash, entities.PaymentWave, entities.PaymentOrange:
		return true
	default:
		return false
	}
}

func isValidOrderStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPending, entities.OrderConfirmed, entities.OrderPickedUp,
		entities.OrderInTransit, entities.OrderDelivered, entities.OrderCancelled:
		return true
	default:
		return false
	}
}
