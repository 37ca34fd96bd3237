package entities

import "time"

type Order struct {
	ID              int64
	Number          string // #PAKO-YYYYMMDD-NNN
	CustomerID      string
	CustomerName    string // snapshot taken at creation, not re-derived
	Station         string
	PickupAddress   string
	DeliveryAddress string
	PickupPoint     *GeoPoint
	DeliveryPoint   *GeoPoint
	DistanceKm      *float64
	SenderPhone     string
	ReceiverPhone   string
	Tier            DeliveryTierType
	PaymentMethod   PaymentMethodType
	Status          OrderStatusType
	PaymentStatus   PaymentStatusType
	TotalPrice      int64 // FCFA
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderConfirmed OrderStatusType = "confirmed"
	OrderPickedUp  OrderStatusType = "picked_up"
	OrderInTransit OrderStatusType = "in_transit"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// orderTransitions is the full edge set of the order lifecycle. Cancellation is
// reachable from every non-terminal state; delivered and cancelled are terminal.
var orderTransitions = map[OrderStatusType][]OrderStatusType{
	OrderPending:   {OrderConfirmed, OrderCancelled},
	OrderConfirmed: {OrderPickedUp, OrderCancelled},
	OrderPickedUp:  {OrderInTransit, OrderCancelled},
	OrderInTransit: {OrderDelivered, OrderCancelled},
}

func (s OrderStatusType) CanTransitionTo(next OrderStatusType) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type DeliveryTierType string

const (
	TierStandard DeliveryTierType = "standard"
	TierExpress  DeliveryTierType = "express"
)

func (t DeliveryTierType) String() string {
	return string(t)
}

type PaymentMethodType string

const (
	PaymentCash   PaymentMethodType = "cash"
	PaymentWave   PaymentMethodType = "wave"
	PaymentOrange PaymentMethodType = "orange"
)

func (m PaymentMethodType) String() string {
	return string(m)
}

// IsOnline reports whether the method requires capture through the payment
// provider; cash is settled on delivery.
func (m PaymentMethodType) IsOnline() bool {
	return m == PaymentWave || m == PaymentOrange
}

type PaymentStatusType string

const (
	PaymentPending  PaymentStatusType = "pending"
	PaymentPaid     PaymentStatusType = "paid"
	PaymentFailed   PaymentStatusType = "failed"
	PaymentRefunded PaymentStatusType = "refunded"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

type OrderModify struct {
	ID            *int64
	Number        *string
	Status        *OrderStatusType
	PaymentStatus *PaymentStatusType
	TotalPrice    *int64
	DistanceKm    *float64
}

// OrderDraft is the input to order creation. Price and identifiers are always
// computed server side; ClientTotalPrice is only compared against the
// recomputed total, never persisted as-is.
type OrderDraft struct {
	CustomerID       string
	CustomerName     string
	Station          string
	PickupAddress    string
	DeliveryAddress  string
	PickupPoint      *GeoPoint
	DeliveryPoint    *GeoPoint
	SenderPhone      string
	ReceiverPhone    string
	Tier             DeliveryTierType
	PaymentMethod    PaymentMethodType
	ClientTotalPrice *int64
	Packages         []PackageDraft
}
