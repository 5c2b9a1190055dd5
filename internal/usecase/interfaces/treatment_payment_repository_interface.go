package interfaces

import (
	"context"

	"ecotech/internal/domain/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mock_interfaces

// ITreatmentPaymentRepository persists treatment payments.
type ITreatmentPaymentRepository interface {
	Create(ctx context.Context, p entities.TreatmentPayment) (entities.TreatmentPayment, error)
	GetByID(ctx context.Context, id string) (entities.TreatmentPayment, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.TreatmentPayment, error)
}
