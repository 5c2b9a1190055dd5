package interfaces

import (
	"context"

	"ecotech/internal/domain/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mock_interfaces

// ICollectionPointRepository keeps collection points keyed by id.
type ICollectionPointRepository interface {
	Save(ctx context.Context, p *entities.CollectionPoint) error
	GetByID(ctx context.Context, id string) (*entities.CollectionPoint, error)
	List(ctx context.Context) ([]*entities.CollectionPoint, error)
}
