package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the outcome of charging a treatment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// TreatmentPayment is the charge of a request's treatment cost.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (request_id-index): request_id
//
// MPPayloadRaw keeps the provider body as received; MPPayload is its parsed
// form.
type TreatmentPayment struct {
	ID        string        `json:"id"`
	RequestID string        `json:"request_id"`
	Amount    float64       `json:"amount"`
	Policy    CostPolicy    `json:"policy"`
	Date      time.Time     `json:"date"`
	Status    PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

// PaymentStatusFromProvider maps a MercadoPago status to ours.
func PaymentStatusFromProvider(s string) PaymentStatus {
	switch s {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusDenied
	default:
		return PaymentStatusPending
	}
}
