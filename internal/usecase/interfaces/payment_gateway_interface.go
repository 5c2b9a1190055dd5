package interfaces

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mock_interfaces

// IPaymentGateway abstracts the payment provider used to charge treatments.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
