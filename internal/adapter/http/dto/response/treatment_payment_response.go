package response

import (
	"time"

	"ecotech/internal/domain/entities"
)

type TreatmentPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	RequestID   string    `json:"request_id"`
	Amount      float64   `json:"amount"`
	Policy      string    `json:"policy"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromTreatmentPayment(p entities.TreatmentPayment) TreatmentPaymentResponse {
	return TreatmentPaymentResponse{
		PaymentID:    p.ID,
		RequestID:    p.RequestID,
		Amount:       p.Amount,
		Policy:       string(p.Policy),
		PaymentDate:  p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
