package usecase

import (
	"context"

	"ecotech/internal/domain/entities"
	"ecotech/internal/usecase/interfaces"
	"ecotech/pkg/logger"
)

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/collection_point_usecase.go -package=mocks

type ICollectionPointUseCase interface {
	CreatePoint(ctx context.Context, p entities.CollectionPointParams) (*entities.CollectionPoint, error)
	FindPoint(ctx context.Context, id string) (*entities.CollectionPoint, error)
	ListPoints(ctx context.Context) ([]*entities.CollectionPoint, error)
	SetActive(ctx context.Context, id string, active bool) (*entities.CollectionPoint, error)
}

type CollectionPointUseCase struct {
	repo  interfaces.ICollectionPointRepository
	guard *Guard
	log   logger.Logger
}

var _ ICollectionPointUseCase = (*CollectionPointUseCase)(nil)

func NewCollectionPointUseCase(repo interfaces.ICollectionPointRepository, guard *Guard, log logger.Logger) *CollectionPointUseCase {
	return &CollectionPointUseCase{repo: repo, guard: guardOrNew(guard), log: log}
}

func (u *CollectionPointUseCase) CreatePoint(ctx context.Context, p entities.CollectionPointParams) (*entities.CollectionPoint, error) {
	point, err := entities.NewCollectionPoint(p)
	if err != nil {
		return nil, err
	}

	u.guard.mu.Lock()
	defer u.guard.mu.Unlock()

	if err := u.repo.Save(ctx, point); err != nil {
		return nil, err
	}
	l := u.log.WithContext(ctx)
	l.Info().Str("point_id", point.ID).Float64("capacity_kg", point.CapacityKg).Msg("collection point created")
	return point.Clone(), nil
}

func (u *CollectionPointUseCase) FindPoint(ctx context.Context, id string) (*entities.CollectionPoint, error) {
	u.guard.mu.RLock()
	defer u.guard.mu.RUnlock()

	point, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return point.Clone(), nil
}

func (u *CollectionPointUseCase) ListPoints(ctx context.Context) ([]*entities.CollectionPoint, error) {
	u.guard.mu.RLock()
	defer u.guard.mu.RUnlock()

	points, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.CollectionPoint, 0, len(points))
	for _, p := range points {
		out = append(out, p.Clone())
	}
	return out, nil
}

// SetActive opens or closes a point to new deliveries.
func (u *CollectionPointUseCase) SetActive(ctx context.Context, id string, active bool) (*entities.CollectionPoint, error) {
	u.guard.mu.Lock()
	defer u.guard.mu.Unlock()

	point, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if active {
		point.Activate()
	} else {
		point.Deactivate()
	}
	if err := u.repo.Save(ctx, point); err != nil {
		return nil, err
	}
	l := u.log.WithContext(ctx)
	l.Info().Str("point_id", point.ID).Bool("active", active).Msg("collection point updated")
	return point.Clone(), nil
}

func (u *CollectionPointUseCase) load(ctx context.Context, id string) (*entities.CollectionPoint, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	point, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if point == nil {
		return nil, ErrPointNotFound
	}
	return point, nil
}
