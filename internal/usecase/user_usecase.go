package usecase

import (
	"context"

	"ecotech/internal/domain/entities"
	"ecotech/internal/usecase/interfaces"
	"ecotech/pkg/logger"
)

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/user_usecase.go -package=mocks

type IUserUseCase interface {
	CreateUser(ctx context.Context, kind string, p entities.UserParams) (*entities.User, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
	ListUsers(ctx context.Context) ([]*entities.User, error)
	SetActive(ctx context.Context, id string, active bool) (*entities.User, error)
	ResetMonthlyQuota(ctx context.Context, id string) (*entities.User, error)
	Notifications(ctx context.Context, id string) ([]string, error)
}

type UserUseCase struct {
	repo  interfaces.IUserRepository
	guard *Guard
	log   logger.Logger
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, guard *Guard, log logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, guard: guardOrNew(guard), log: log}
}

func (u *UserUseCase) CreateUser(ctx context.Context, kind string, p entities.UserParams) (*entities.User, error) {
	user, err := entities.NewUser(kind, p)
	if err != nil {
		return nil, err
	}

	u.guard.mu.Lock()
	defer u.guard.mu.Unlock()

	if err := u.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	l := u.log.WithContext(ctx)
	l.Info().Str("user_id", user.ID).Str("kind", string(user.Kind)).Msg("user created")
	return user.Clone(), nil
}

func (u *UserUseCase) GetUser(ctx context.Context, id string) (*entities.User, error) {
	u.guard.mu.RLock()
	defer u.guard.mu.RUnlock()

	user, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Clone(), nil
}

func (u *UserUseCase) ListUsers(ctx context.Context) ([]*entities.User, error) {
	u.guard.mu.RLock()
	defer u.guard.mu.RUnlock()

	users, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.User, 0, len(users))
	for _, user := range users {
		out = append(out, user.Clone())
	}
	return out, nil
}

func (u *UserUseCase) SetActive(ctx context.Context, id string, active bool) (*entities.User, error) {
	u.guard.mu.Lock()
	defer u.guard.mu.Unlock()

	user, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if active {
		user.Activate()
	} else {
		user.Deactivate()
	}
	if err := u.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user.Clone(), nil
}

// ResetMonthlyQuota clears the monthly weight of a company.
func (u *UserUseCase) ResetMonthlyQuota(ctx context.Context, id string) (*entities.User, error) {
	u.guard.mu.Lock()
	defer u.guard.mu.Unlock()

	user, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	user.ResetMonth()
	if err := u.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user.Clone(), nil
}

func (u *UserUseCase) Notifications(ctx context.Context, id string) ([]string, error) {
	u.guard.mu.RLock()
	defer u.guard.mu.RUnlock()

	user, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Notifications(), nil
}

func (u *UserUseCase) load(ctx context.Context, id string) (*entities.User, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
