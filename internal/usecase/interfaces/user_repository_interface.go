package interfaces

import (
	"context"

	"ecotech/internal/domain/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mock_interfaces

type IUserRepository interface {
	Save(ctx context.Context, u *entities.User) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
}
