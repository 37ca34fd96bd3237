package dto

import "pako/internal/entities"

func FromOrder(o *entities.Order) Order {
	orderDTO := Order{
		Number:          o.Number,
		CustomerID:      o.CustomerID,
		CustomerName:    o.CustomerName,
		Station:         o.Station,
		PickupAddress:   o.PickupAddress,
		DeliveryAddress: o.DeliveryAddress,
		DistanceKm:      o.DistanceKm,
		SenderPhone:     o.SenderPhone,
		ReceiverPhone:   o.ReceiverPhone,
		Tier:            o.Tier.String(),
		PaymentMethod:   o.PaymentMethod.String(),
		Status:          o.Status.String(),
		PaymentStatus:   o.PaymentStatus.String(),
		TotalPrice:      o.TotalPrice,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}

	if o.PickupPoint != nil {
		orderDTO.PickupPoint = &GeoPoint{Lat: o.PickupPoint.Lat, Lng: o.PickupPoint.Lng}
	}
	if o.DeliveryPoint != nil {
		orderDTO.DeliveryPoint = &GeoPoint{Lat: o.DeliveryPoint.Lat, Lng: o.DeliveryPoint.Lng}
	}

	return orderDTO
}

func FromOrderList(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for i := range orders {
		result = append(result, FromOrder(&orders[i]))
	}
	return result
}

func FromPackage(p *entities.Package) Package {
	return Package{
		Code:        p.Code,
		OrderNumber: p.OrderNumber,
		Description: p.Description,
		Status:      p.Status.String(),
		WorkerID:    p.WorkerID,
		WorkerName:  p.WorkerName,
		AssignedAt:  p.AssignedAt,
	}
}

func FromPackageList(packages []entities.Package) []Package {
	result := make([]Package, 0, len(packages))
	for i := range packages {
		result = append(result, FromPackage(&packages[i]))
	}
	return result
}

func FromMission(m *entities.Mission) Mission {
	return Mission{
		Number:      m.Number,
		Status:      m.Status.String(),
		WorkerID:    m.WorkerID,
		PackageCode: m.PackageCode,
		AssignedAt:  m.AssignedAt,
		StartedAt:   m.StartedAt,
		CompletedAt: m.CompletedAt,
	}
}

func FromMissionList(missions []entities.Mission) []Mission {
	result := make([]Mission, 0, len(missions))
	for i := range missions {
		result = append(result, FromMission(&missions[i]))
	}
	return result
}

// ToDraft converts the create request into the service input.
func (r *OrderCreate) ToDraft() entities.OrderDraft {
	draft := entities.OrderDraft{
		CustomerID:       r.CustomerID,
		CustomerName:     r.CustomerName,
		Station:          r.Station,
		PickupAddress:    r.PickupAddress,
		DeliveryAddress:  r.DeliveryAddress,
		SenderPhone:      r.SenderPhone,
		ReceiverPhone:    r.ReceiverPhone,
		Tier:             entities.DeliveryTierType(r.Tier),
		PaymentMethod:    entities.PaymentMethodType(r.PaymentMethod),
		ClientTotalPrice: r.TotalPrice,
	}

	if r.PickupPoint != nil {
		draft.PickupPoint = &entities.GeoPoint{Lat: r.PickupPoint.Lat, Lng: r.PickupPoint.Lng}
	}
	if r.DeliveryPoint != nil {
		draft.DeliveryPoint = &entities.GeoPoint{Lat: r.DeliveryPoint.Lat, Lng: r.DeliveryPoint.Lng}
	}

	for _, pkg := range r.Packages {
		draft.Packages = append(draft.Packages, entities.PackageDraft{Description: pkg.Description})
	}

	return draft
}
