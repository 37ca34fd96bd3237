package assignment

import "pako/internal/entities"

func ToMissionDomain(m *MissionDB) *entities.Mission {
	if m == nil {
		return nil
	}
	return &entities.Mission{
		ID:          m.ID,
		Number:      m.Number,
		Status:      entities.MissionStatusType(m.Status),
		WorkerID:    m.WorkerID,
		PackageID:   m.PackageID,
		PackageCode: m.PackageCode,
		AssignedAt:  m.AssignedAt,
		StartedAt:   m.StartedAt,
		CompletedAt: m.CompletedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToMissionDomainList(missions []MissionDB) []entities.Mission {
	result := make([]entities.Mission, 0, len(missions))
	for i := range missions {
		result = append(result, *ToMissionDomain(&missions[i]))
	}
	return result
}

func FromMissionDomainModify(m *entities.MissionModify) *MissionModifyDB {
	if m == nil {
		return nil
	}
	missionModifyDB := &MissionModifyDB{
		ID:          m.ID,
		Number:      m.Number,
		WorkerID:    m.WorkerID,
		PackageID:   m.PackageID,
		AssignedAt:  m.AssignedAt,
		StartedAt:   m.StartedAt,
		CompletedAt: m.CompletedAt,
	}

	if m.Status != nil {
		status := m.Status.String()
		missionModifyDB.Status = &status
	}

	return missionModifyDB
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

func FromPackageDomainModify(p *entities.PackageModify) *PackageModifyDB {
	if p == nil {
		return nil
	}
	packageModifyDB := &PackageModifyDB{
		ID:         p.ID,
		Code:       p.Code,
		WorkerID:   p.WorkerID,
		WorkerName: p.WorkerName,
		AssignedAt: p.AssignedAt,
	}

	if p.Status != nil {
		status := p.Status.String()
		packageModifyDB.Status = &status
	}

	return packageModifyDB
}
