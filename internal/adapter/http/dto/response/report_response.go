package response

import (
	"time"

	"ecotech/internal/domain/entities"
)

type ReportResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	GeneratedAt      time.Time `json:"generated_at"`
	RequestCount     int       `json:"request_count"`
	WeightRecycledKg float64   `json:"weight_recycled_kg"`
	WeightReusedKg   float64   `json:"weight_reused_kg"`
	WeightDisposedKg float64   `json:"weight_disposed_kg"`
	ImpactAvoided    float64   `json:"impact_avoided"`
}

func FromReport(r entities.Report) ReportResponse {
	return ReportResponse(r)
}

func FromReports(rs []entities.Report) []ReportResponse {
	out := make([]ReportResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReport(r))
	}
	return out
}
