package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Report is the summary produced over a set of disposal requests.
type Report struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	GeneratedAt      time.Time `json:"generated_at"`
	RequestCount     int       `json:"request_count"`
	WeightRecycledKg float64   `json:"weight_recycled_kg"`
	WeightReusedKg   float64   `json:"weight_reused_kg"`
	WeightDisposedKg float64   `json:"weight_disposed_kg"`
	ImpactAvoided    float64   `json:"impact_avoided"`
}

// TotalWeightByOutcome sums the weight of the requests sitting in each
// treated state. Requests in any other state are left out.
func TotalWeightByOutcome(requests []*DisposalRequest) map[Status]float64 {
	totals := map[Status]float64{
		StatusRecycled: 0,
		StatusReused:   0,
		StatusDisposed: 0,
	}
	for _, r := range requests {
		if r == nil {
			continue
		}
		if st := r.Status(); st.IsTreated() {
			totals[st] += r.TotalWeight()
		}
	}
	return totals
}

// AvoidedImpact sums, over requests with a treatment method, the share of
// their impact the method removes. The sum is rounded once, at the end.
func AvoidedImpact(requests []*DisposalRequest) float64 {
	total := 0.0
	for _, r := range requests {
		if r == nil || r.Treatment() == nil {
			continue
		}
		total += r.TotalImpact() * r.Treatment().ReductionPercent() / 100
	}
	return round2(total)
}

// BuildReport aggregates requests into a Report stamped with at.
func BuildReport(title string, requests []*DisposalRequest, at time.Time) (Report, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Report{}, fmt.Errorf("%w: report title is required", ErrInvalidParameter)
	}

	weights := TotalWeightByOutcome(requests)
	return Report{
		ID:               uuid.NewString(),
		Title:            title,
		GeneratedAt:      at,
		RequestCount:     len(requests),
		WeightRecycledKg: round2(weights[StatusRecycled]),
		WeightReusedKg:   round2(weights[StatusReused]),
		WeightDisposedKg: round2(weights[StatusDisposed]),
		ImpactAvoided:    AvoidedImpact(requests),
	}, nil
}
