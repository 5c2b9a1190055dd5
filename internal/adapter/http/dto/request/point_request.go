package request

import "ecotech/internal/domain/entities"

type CreatePointRequest struct {
	Name      string  `json:"name" binding:"required"`
	Address   string  `json:"address" binding:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// CapacityKg falls back to the default capacity when omitted.
	CapacityKg *float64 `json:"capacity_kg"`
}

func (r CreatePointRequest) ToParams() entities.CollectionPointParams {
	return entities.CollectionPointParams{
		Name:       r.Name,
		Address:    r.Address,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		CapacityKg: r.CapacityKg,
	}
}
