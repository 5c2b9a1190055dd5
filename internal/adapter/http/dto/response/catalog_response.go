package response

import "ecotech/internal/domain/entities"

type DeviceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Subcategory     string  `json:"subcategory"`
	WeightKg        float64 `json:"weight_kg"`
	Brand           string  `json:"brand,omitempty"`
	Model           string  `json:"model,omitempty"`
	ManufactureYear int     `json:"manufacture_year,omitempty"`
	Age             int     `json:"age"`
	HazardTier      string  `json:"hazard_tier"`
	Impact          float64 `json:"impact"`
	ResaleValue     float64 `json:"resale_value"`
}

func FromDevice(d entities.Device) DeviceResponse {
	return DeviceResponse{
		ID:              d.ID(),
		Name:            d.Name(),
		Category:        string(d.Category()),
		Subcategory:     d.Subcategory(),
		WeightKg:        d.WeightKg(),
		Brand:           d.Brand(),
		Model:           d.Model(),
		ManufactureYear: d.ManufactureYear(),
		Age:             d.Age(),
		HazardTier:      d.HazardTier().String(),
		Impact:          d.Impact(),
		ResaleValue:     d.ResaleValue(),
	}
}

type CategoryResponse struct {
	Category   string `json:"category"`
	Label      string `json:"label"`
	HazardTier string `json:"hazard_tier"`
}

func FromCategories(cs []entities.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, CategoryResponse{Category: string(c), Label: c.Label(), HazardTier: c.Hazard().String()})
	}
	return out
}

type TreatmentResponse struct {
	Kind             string  `json:"kind"`
	Name             string  `json:"name"`
	CostPerKg        float64 `json:"cost_per_kg"`
	ReductionPercent float64 `json:"reduction_percent"`
}

func FromTreatment(m entities.TreatmentMethod) TreatmentResponse {
	return TreatmentResponse{
		Kind:             string(m.Kind()),
		Name:             m.Name(),
		CostPerKg:        m.CostPerKg(),
		ReductionPercent: m.ReductionPercent(),
	}
}

func FromTreatments(ms []entities.TreatmentMethod) []TreatmentResponse {
	out := make([]TreatmentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromTreatment(m))
	}
	return out
}
