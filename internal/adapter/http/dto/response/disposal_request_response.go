package response

import (
	"math"
	"time"

	"ecotech/internal/domain/entities"
	"ecotech/internal/usecase"
)

type LineItemResponse struct {
	ID          string         `json:"id"`
	Device      DeviceResponse `json:"device"`
	Quantity    int            `json:"quantity"`
	Notes       string         `json:"notes,omitempty"`
	TotalWeight float64        `json:"total_weight_kg"`
	TotalImpact float64        `json:"total_impact"`
}

func FromLineItem(it *entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:          it.ID(),
		Device:      FromDevice(it.Device()),
		Quantity:    it.Quantity(),
		Notes:       it.Notes(),
		TotalWeight: it.TotalWeight(),
		TotalImpact: it.TotalImpact(),
	}
}

type StateResponse struct {
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	EnteredAt time.Time `json:"entered_at"`
}

type DisposalRequestResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user_id"`
	UserName    string             `json:"user_name"`
	PointID     string             `json:"point_id,omitempty"`
	Treatment   string             `json:"treatment,omitempty"`
	Status      string             `json:"status"`
	Items       []LineItemResponse `json:"items"`
	TotalWeight float64            `json:"total_weight_kg"`
	TotalImpact float64            `json:"total_impact"`
	History     []StateResponse    `json:"history"`
	CreatedAt   time.Time          `json:"created_at"`
	ScheduledAt *time.Time         `json:"scheduled_at,omitempty"`
}

// FromDisposalRequest renders a request. Totals are rounded for display
// only.
func FromDisposalRequest(r *entities.DisposalRequest) DisposalRequestResponse {
	res := DisposalRequestResponse{
		ID:          r.ID(),
		UserID:      r.User().ID,
		UserName:    r.User().Name,
		Status:      string(r.Status()),
		Items:       make([]LineItemResponse, 0),
		TotalWeight: round2(r.TotalWeight()),
		TotalImpact: round2(r.TotalImpact()),
		CreatedAt:   r.CreatedAt(),
		ScheduledAt: r.ScheduledAt(),
	}
	if p := r.Point(); p != nil {
		res.PointID = p.ID
	}
	if m := r.Treatment(); m != nil {
		res.Treatment = string(m.Kind())
	}
	for _, it := range r.Items() {
		res.Items = append(res.Items, FromLineItem(it))
	}
	for _, s := range r.History() {
		res.History = append(res.History, StateResponse{Status: string(s.Status), Reason: s.Reason, EnteredAt: s.EnteredAt})
	}
	return res
}

func FromDisposalRequests(rs []*entities.DisposalRequest) []DisposalRequestResponse {
	out := make([]DisposalRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromDisposalRequest(r))
	}
	return out
}

type RequestCostResponse struct {
	RequestID      string  `json:"request_id"`
	Treatment      string  `json:"treatment"`
	Policy         string  `json:"policy"`
	Amount         float64 `json:"amount"`
	ResidualImpact float64 `json:"residual_impact"`
}

func FromRequestCost(c usecase.RequestCost) RequestCostResponse {
	return RequestCostResponse{
		RequestID:      c.RequestID,
		Treatment:      c.Treatment,
		Policy:         string(c.Policy),
		Amount:         c.Amount,
		ResidualImpact: c.ResidualImpact,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
