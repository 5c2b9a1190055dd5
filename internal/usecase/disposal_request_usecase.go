package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ecotech/internal/domain/entities"
	"ecotech/internal/infrastructure/metrics"
	"ecotech/internal/usecase/interfaces"
	"ecotech/pkg/logger"
)

var (
	ErrItemNotFound         = errors.New("line item not found")
	ErrTreatmentNotAssigned = errors.New("treatment method not assigned")
)

// RequestCost is the price of treating a request under a policy.
type RequestCost struct {
	RequestID      string
	Treatment      string
	Policy         entities.CostPolicy
	Amount         float64
	ResidualImpact float64
}

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/disposal_request_usecase.go -package=mocks

// IDisposalRequestUseCase drives the disposal request lifecycle.
type IDisposalRequestUseCase interface {
	CreateRequest(ctx context.Context, userID, pointID string) (*entities.DisposalRequest, error)
	AddItem(ctx context.Context, requestID string, device entities.Device, quantity int, notes string) (*entities.LineItem, error)
	RemoveItem(ctx context.Context, requestID, itemID string) error
	SetItemQuantity(ctx context.Context, requestID, itemID string, quantity int) (*entities.LineItem, error)
	AssignPoint(ctx context.Context, requestID, pointID string) (*entities.DisposalRequest, error)
	AssignTreatment(ctx context.Context, requestID, kind string) (*entities.DisposalRequest, error)
	SchedulePickup(ctx context.Context, requestID string, at time.Time) (*entities.DisposalRequest, error)
	Advance(ctx context.Context, requestID string) (*entities.DisposalRequest, error)
	Cancel(ctx context.Context, requestID, reason string) (*entities.DisposalRequest, error)
	GetRequest(ctx context.Context, id string) (*entities.DisposalRequest, error)
	ListRequests(ctx context.Context) ([]*entities.DisposalRequest, error)
	TreatmentCost(ctx context.Context, requestID string) (RequestCost, error)
}

type DisposalRequestUseCase struct {
	requests interfaces.IRequestRepository
	users    interfaces.IUserRepository
	points   interfaces.ICollectionPointRepository
	policy   entities.CostPolicy
	guard    *Guard
	log      logger.Logger
	clock    func() time.Time
}

var _ IDisposalRequestUseCase = (*DisposalRequestUseCase)(nil)

func NewDisposalRequestUseCase(
	requests interfaces.IRequestRepository,
	users interfaces.IUserRepository,
	points interfaces.ICollectionPointRepository,
	policy entities.CostPolicy,
	guard *Guard,
	log logger.Logger,
) *DisposalRequestUseCase {
	if policy == "" {
		policy = entities.CostPolicyFlat
	}
	return &DisposalRequestUseCase{
		requests: requests,
		users:    users,
		points:   points,
		policy:   policy,
		guard:    guardOrNew(guard),
		log:      log,
		clock:    utcNow,
	}
}

func (u *DisposalRequestUseCase) CreateRequest(ctx context.Context, userID, pointID string) (*entities.DisposalRequest, error) {
	u.guard.mu.Lock()
	defer u.guard.mu.Unlock()

	user, err := u.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var point *entities.CollectionPoint
	if strings.TrimSpace(pointID) != "" {
		if point, err = u.loadPoint(ctx, pointID); err != nil {
			return nil, err
		}
	}

	now := u.clock()
	cp := entities.NewCheckpoint(user, nil, point)
	req, err := entities.NewDisposalRequest(user, point, now)
	if err != nil {
		return nil, err
	}
	if err := u.requests.Save(ctx, req); err != nil {
		cp.Restore()
		return nil, err
	}

	user.Notify(now, fmt.Sprintf("Disposal request %s opened", req.ID()))
	metrics.IncTransition(string(req.Status()))

	l := u.log.WithContext(ctx)
	l.Info().Str("request_id", req.ID()).Str("user_id", user.ID).Msg("disposal request created")
	return req.Clone(), nil
}

func (u *DisposalRequestUseCase) AddItem(ctx context.Context, requestID string, device entities.Device, quantity int, notes string) (*entities.LineItem, error) {
	u.guard.mu.Lock()
	defer u.guard.mu.Unlock()

	req, err := u.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	cp := entities.NewCheckpoint(nil, req)
	item, err := req.AddItem(device, quantity, notes)
	if err != nil {
		return nil, err
	}
	if err := u.save(ctx, req, cp); err != nil {
		return nil, err
	}

	l := u.log.WithContext(ctx)
	l.Debug().Str("request_id", req.ID()).Str("item_id", item.ID()).Int("quantity", quantity).Msg("line item added")
	return cloneItem(item), nil
}

func (u *DisposalRequestUseCase) RemoveItem(ctx context.Context, requestID, itemID string) error {
	u.guard.mu.Lock()
	defer u.guard.mu.Unlock()

	req, err := u.loadRequest(ctx, requestID)
	if err != nil {
		return err
	}
	cp := entities.NewCheckpoint(nil, req)
	removed, err := req.RemoveItem(strings.TrimSpace(itemID))
	if err != nil {
		return err
	}
	if !removed {
		return ErrItemNotFound
	}
	return u.save(ctx, req, cp)
}

func (u *DisposalRequestUseCase) SetItemQuantity(ctx context.Context, requestID, itemID string, quantity int) (*entities.LineItem, error) {
	u.guard.mu.Lock()
	defer u.guard.mu.Unlock()

	req, err := u.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	cp := entities.NewCheckpoint(nil, req)
	item, found, err := req.SetItemQuantity(strings.TrimSpace(itemID), quantity)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrItemNotFound
	}
	if err := u.save(ctx, req, cp); err != nil {
		return nil, err
	}
	return cloneItem(item), nil
}

// AssignPoint admits the request's weight at a point. The capacity check and
// the admission happen under the same lock.
func (u *DisposalRequestUseCase) AssignPoint(ctx context.Context, requestID, pointID string) (*entities.DisposalRequest, error) {
	u.guard.mu.Lock()
	defer u.guard.mu.Unlock()

	req, err := u.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	point, err := u.loadPoint(ctx, pointID)
	if err != nil {
		return nil, err
	}

	weight := req.TotalWeight()
	l := u.log.WithContext(ctx)
	cp := entities.NewCheckpoint(nil, req, point)
	if err := req.AssignPoint(point); err != nil {
		if errors.Is(err, entities.ErrCapacityExceeded) {
			metrics.ObserveAdmission(false, weight)
		}
		l.Warn().Err(err).Str("request_id", req.ID()).Str("point_id", point.ID).Float64("weight_kg", weight).Msg("point assignment rejected")
		return nil, err
	}

	if err := u.points.Save(ctx, point); err != nil {
		cp.Restore()
		return nil, err
	}
	if err := u.requests.Save(ctx, req); err != nil {
		cp.Restore()
		// the point was already stored with the admitted weight
		if perr := u.points.Save(ctx, point); perr != nil {
			l.Error().Err(perr).Str("point_id", point.ID).Msg("failed to restore point occupancy")
		}
		return nil, err
	}
	metrics.ObserveAdmission(true, weight)

	req.User().Notify(u.clock(), fmt.Sprintf("Request %s assigned to %s", req.ID(), point.Name))
	l.Info().Str("request_id", req.ID()).Str("point_id", point.ID).Float64("weight_kg", weight).Msg("point assigned")
	return req.Clone(), nil
}

func (u *DisposalRequestUseCase) AssignTreatment(ctx context.Context, requestID, kind string) (*entities.DisposalRequest, error) {
	method, err := entities.NewTreatmentMethod(kind)
	if err != nil {
		return nil, err
	}

	u.guard.mu.Lock()
	defer u.guard.mu.Unlock()

	req, err := u.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	cp := entities.NewCheckpoint(nil, req)
	if err := req.AssignTreatment(method); err != nil {
		return nil, err
	}
	if err := u.save(ctx, req, cp); err != nil {
		return nil, err
	}

	l := u.log.WithContext(ctx)
	l.Info().Str("request_id", req.ID()).Str("treatment", method.Name()).Msg("treatment assigned")
	return req.Clone(), nil
}

func (u *DisposalRequestUseCase) SchedulePickup(ctx context.Context, requestID string, at time.Time) (*entities.DisposalRequest, error) {
	u.guard.mu.Lock()
	defer u.guard.mu.Unlock()

	req, err := u.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	cp := entities.NewCheckpoint(nil, req)
	if err := req.SchedulePickup(at.UTC()); err != nil {
		return nil, err
	}
	if err := u.save(ctx, req, cp); err != nil {
		return nil, err
	}

	req.User().Notify(u.clock(), fmt.Sprintf("Pickup of request %s scheduled for %s", req.ID(), at.UTC().Format("02/01/2006 15:04")))
	return req.Clone(), nil
}

func (u *DisposalRequestUseCase) Advance(ctx context.Context, requestID string) (*entities.DisposalRequest, error) {
	return u.transition(ctx, requestID, func(req *entities.DisposalRequest, now time.Time) error {
		return req.Advance(now)
	})
}

func (u *DisposalRequestUseCase) Cancel(ctx context.Context, requestID, reason string) (*entities.DisposalRequest, error) {
	return u.transition(ctx, requestID, func(req *entities.DisposalRequest, now time.Time) error {
		return req.Cancel(strings.TrimSpace(reason), now)
	})
}

func (u *DisposalRequestUseCase) transition(
	ctx context.Context,
	requestID string,
	apply func(req *entities.DisposalRequest, now time.Time) error,
) (*entities.DisposalRequest, error) {
	u.guard.mu.Lock()
	defer u.guard.mu.Unlock()

	req, err := u.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	from := req.Status()
	now := u.clock()
	l := u.log.WithContext(ctx)
	cp := entities.NewCheckpoint(nil, req)
	if err := apply(req, now); err != nil {
		l.Warn().Err(err).Str("request_id", req.ID()).Str("state", string(from)).Msg("transition rejected")
		return nil, err
	}
	if err := u.save(ctx, req, cp); err != nil {
		return nil, err
	}

	to := req.Status()
	metrics.IncTransition(string(to))
	req.User().Notify(now, fmt.Sprintf("Request %s is now %s", req.ID(), to))
	l.Info().Str("request_id", req.ID()).Str("from", string(from)).Str("state", string(to)).Msg("request transitioned")
	return req.Clone(), nil
}

func (u *DisposalRequestUseCase) GetRequest(ctx context.Context, id string) (*entities.DisposalRequest, error) {
	u.guard.mu.RLock()
	defer u.guard.mu.RUnlock()

	req, err := u.loadRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	return req.Clone(), nil
}

func (u *DisposalRequestUseCase) ListRequests(ctx context.Context) ([]*entities.DisposalRequest, error) {
	u.guard.mu.RLock()
	defer u.guard.mu.RUnlock()

	reqs, err := u.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entities.DisposalRequest, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.Clone())
	}
	return out, nil
}

// TreatmentCost prices a request under the configured policy.
func (u *DisposalRequestUseCase) TreatmentCost(ctx context.Context, requestID string) (RequestCost, error) {
	u.guard.mu.RLock()
	defer u.guard.mu.RUnlock()

	req, err := u.loadRequest(ctx, requestID)
	if err != nil {
		return RequestCost{}, err
	}
	return costOf(req, u.policy)
}

func costOf(req *entities.DisposalRequest, policy entities.CostPolicy) (RequestCost, error) {
	amount, ok := req.TreatmentCost(policy)
	if !ok {
		return RequestCost{}, ErrTreatmentNotAssigned
	}
	return RequestCost{
		RequestID:      req.ID(),
		Treatment:      req.Treatment().Name(),
		Policy:         policy,
		Amount:         amount,
		ResidualImpact: req.ResidualImpact(),
	}, nil
}

// save stores req, or rolls req, its owner and its point back to cp.
func (u *DisposalRequestUseCase) save(ctx context.Context, req *entities.DisposalRequest, cp entities.Checkpoint) error {
	if err := u.requests.Save(ctx, req); err != nil {
		cp.Restore()
		return err
	}
	return nil
}

func (u *DisposalRequestUseCase) loadRequest(ctx context.Context, id string) (*entities.DisposalRequest, error) {
	return loadRequest(ctx, u.requests, id)
}

func (u *DisposalRequestUseCase) loadUser(ctx context.Context, id string) (*entities.User, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *DisposalRequestUseCase) loadPoint(ctx context.Context, id string) (*entities.CollectionPoint, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	point, err := u.points.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if point == nil {
		return nil, ErrPointNotFound
	}
	return point, nil
}

func loadRequest(ctx context.Context, repo interfaces.IRequestRepository, id string) (*entities.DisposalRequest, error) {
	id, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	req, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	return req, nil
}

func cloneItem(it *entities.LineItem) *entities.LineItem {
	c := *it
	return &c
}
