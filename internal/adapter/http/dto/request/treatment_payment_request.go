package request

import "encoding/json"

// TreatmentPaymentCreateRequest wraps a MercadoPago payment body. The body
// may also be sent unwrapped.
//
// `mp_payload` is forwarded as-is to support varying Mercado Pago schemas.
type TreatmentPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
