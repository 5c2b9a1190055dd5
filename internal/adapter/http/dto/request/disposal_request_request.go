package request

import (
	"time"

	"ecotech/internal/domain/entities"
)

type CreateDisposalRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	PointID string `json:"point_id"`
}

// DeviceRequest describes a device to be built by the catalog.
type DeviceRequest struct {
	Category        string  `json:"category" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	WeightKg        float64 `json:"weight_kg" binding:"required"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	ManufactureYear int     `json:"manufacture_year"`
	Subcategory     string  `json:"subcategory"`
}

func (r DeviceRequest) ToParams() entities.DeviceParams {
	return entities.DeviceParams{
		Name:            r.Name,
		WeightKg:        r.WeightKg,
		Brand:           r.Brand,
		Model:           r.Model,
		ManufactureYear: r.ManufactureYear,
		Subcategory:     r.Subcategory,
	}
}

type AddItemRequest struct {
	Device   DeviceRequest `json:"device"`
	Quantity *int          `json:"quantity"`
	Notes    string        `json:"notes"`
}

// ResolveQuantity defaults a missing quantity to one unit.
func (r AddItemRequest) ResolveQuantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type AssignPointRequest struct {
	PointID string `json:"point_id" binding:"required"`
}

type AssignTreatmentRequest struct {
	Treatment string `json:"treatment" binding:"required"`
}

type ScheduleRequest struct {
	At time.Time `json:"at" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}
