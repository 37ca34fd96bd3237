package order

import "pako/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	orderEntity := &entities.Order{
		ID:              o.ID,
		Number:          o.Number,
		CustomerID:      o.CustomerID,
		CustomerName:    o.CustomerName,
		Station:         o.Station,
		PickupAddress:   o.PickupAddress,
		DeliveryAddress: o.DeliveryAddress,
		DistanceKm:      o.DistanceKm,
		SenderPhone:     o.SenderPhone,
		ReceiverPhone:   o.ReceiverPhone,
		Tier:            entities.DeliveryTierType(o.Tier),
		PaymentMethod:   entities.PaymentMethodType(o.PaymentMethod),
		Status:          entities.OrderStatusType(o.Status),
		PaymentStatus:   entities.PaymentStatusType(o.PaymentStatus),
		TotalPrice:      o.TotalPrice,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}

	if o.PickupLat != nil && o.PickupLng != nil {
		orderEntity.PickupPoint = &entities.GeoPoint{Lat: *o.PickupLat, Lng: *o.PickupLng}
	}
	if o.DeliveryLat != nil && o.DeliveryLng != nil {
		orderEntity.DeliveryPoint = &entities.GeoPoint{Lat: *o.DeliveryLat, Lng: *o.DeliveryLng}
	}

	return orderEntity
}

func ToDomainList(orders []OrderDB) []entities.Order {
	result := make([]entities.Order, 0, len(orders))
	for i := range orders {
		result = append(result, *ToDomain(&orders[i]))
	}
	return result
}

func FromDomain(o *entities.Order) *OrderDB {
	if o == nil {
		return nil
	}

	orderDB := &OrderDB{
		ID:              o.ID,
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
	}

	if o.PickupPoint != nil {
		orderDB.PickupLat = &o.PickupPoint.Lat
		orderDB.PickupLng = &o.PickupPoint.Lng
	}
	if o.DeliveryPoint != nil {
		orderDB.DeliveryLat = &o.DeliveryPoint.Lat
		orderDB.DeliveryLng = &o.DeliveryPoint.Lng
	}

	return orderDB
}

func FromDomainModify(o *entities.OrderModify) *OrderModifyDB {
	if o == nil {
		return nil
	}
	orderModifyDB := &OrderModifyDB{
		ID:         o.ID,
		Number:     o.Number,
		TotalPrice: o.TotalPrice,
		DistanceKm: o.DistanceKm,
	}

	if o.Status != nil {
		status := o.Status.String()
		orderModifyDB.Status = &status
	}
	if o.PaymentStatus != nil {
		paymentStatus := o.PaymentStatus.String()
		orderModifyDB.PaymentStatus = &paymentStatus
	}

	return orderModifyDB
}

func ToPackageDomain(p *PackageDB) *entities.Package {
	if p == nil {
		return nil
	}
	return &entities.Package{
		ID:          p.ID,
		Code:        p.Code,
		OrderID:     p.OrderID,
		OrderNumber: p.OrderNumber,
		Description: p.Description,
		Status:      entities.PackageStatusType(p.Status),
		WorkerID:    p.WorkerID,
		WorkerName:  p.WorkerName,
		AssignedAt:  p.AssignedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToPackageDomainList(packages []PackageDB) []entities.Package {
	result := make([]entities.Package, 0, len(packages))
	for i := range packages {
		result = append(result, *ToPackageDomain(&packages[i]))
	}
	return result
}
