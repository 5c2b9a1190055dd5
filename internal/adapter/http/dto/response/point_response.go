package response

import (
	"time"

	"ecotech/internal/domain/entities"
)

type PointResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Address             string    `json:"address"`
	Latitude            float64   `json:"latitude"`
	Longitude           float64   `json:"longitude"`
	CapacityKg          float64   `json:"capacity_kg"`
	OccupancyKg         float64   `json:"occupancy_kg"`
	AvailabilityPercent float64   `json:"availability_percent"`
	Active              bool      `json:"active"`
	CreatedAt           time.Time `json:"created_at"`
}

func FromPoint(p *entities.CollectionPoint) PointResponse {
	return PointResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Address:             p.Address,
		Latitude:            p.Latitude,
		Longitude:           p.Longitude,
		CapacityKg:          p.CapacityKg,
		OccupancyKg:         p.OccupancyKg(),
		AvailabilityPercent: p.AvailabilityPercent(),
		Active:              p.Active(),
		CreatedAt:           p.CreatedAt,
	}
}

func FromPoints(ps []*entities.CollectionPoint) []PointResponse {
	out := make([]PointResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPoint(p))
	}
	return out
}
