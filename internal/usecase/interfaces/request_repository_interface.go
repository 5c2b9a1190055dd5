package interfaces

import (
	"context"

	"ecotech/internal/domain/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mock_interfaces

// IRequestRepository keeps disposal requests keyed by id. List returns them
// in insertion order. GetByID returns nil without error when the id is
// unknown.
type IRequestRepository interface {
	Save(ctx context.Context, r *entities.DisposalRequest) error
	GetByID(ctx context.Context, id string) (*entities.DisposalRequest, error)
	List(ctx context.Context) ([]*entities.DisposalRequest, error)
}
