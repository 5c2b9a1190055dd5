package memory

import (
	"context"
	"errors"
	"fmt"

	"ecotech/internal/domain/entities"
	"ecotech/internal/usecase/interfaces"
)

var ErrDuplicateID = errors.New("duplicate id")

type RequestRepository struct {
	store *store[*entities.DisposalRequest]
}

var _ interfaces.IRequestRepository = (*RequestRepository)(nil)

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{store: newStore[*entities.DisposalRequest]()}
}

func (r *RequestRepository) Save(_ context.Context, req *entities.DisposalRequest) error {
	r.store.put(req.ID(), req)
	return nil
}

func (r *RequestRepository) GetByID(_ context.Context, id string) (*entities.DisposalRequest, error) {
	req, _ := r.store.get(id)
	return req, nil
}

func (r *RequestRepository) List(_ context.Context) ([]*entities.DisposalRequest, error) {
	return r.store.list(), nil
}

type CollectionPointRepository struct {
	store *store[*entities.CollectionPoint]
}

var _ interfaces.ICollectionPointRepository = (*CollectionPointRepository)(nil)

func NewCollectionPointRepository() *CollectionPointRepository {
	return &CollectionPointRepository{store: newStore[*entities.CollectionPoint]()}
}

func (r *CollectionPointRepository) Save(_ context.Context, p *entities.CollectionPoint) error {
	r.store.put(p.ID, p)
	return nil
}

func (r *CollectionPointRepository) GetByID(_ context.Context, id string) (*entities.CollectionPoint, error) {
	p, _ := r.store.get(id)
	return p, nil
}

func (r *CollectionPointRepository) List(_ context.Context) ([]*entities.CollectionPoint, error) {
	return r.store.list(), nil
}

type UserRepository struct {
	store *store[*entities.User]
}

var _ interfaces.IUserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{store: newStore[*entities.User]()}
}

func (r *UserRepository) Save(_ context.Context, u *entities.User) error {
	r.store.put(u.ID, u)
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entities.User, error) {
	u, _ := r.store.get(id)
	return u, nil
}

func (r *UserRepository) List(_ context.Context) ([]*entities.User, error) {
	return r.store.list(), nil
}

// ReportRepository is the in-process archive used when DynamoDB is off.
type ReportRepository struct {
	store *store[entities.Report]
}

var _ interfaces.IReportRepository = (*ReportRepository)(nil)

func NewReportRepository() *ReportRepository {
	return &ReportRepository{store: newStore[entities.Report]()}
}

func (r *ReportRepository) Create(_ context.Context, rep entities.Report) (entities.Report, error) {
	if _, exists := r.store.get(rep.ID); exists {
		return entities.Report{}, fmt.Errorf("%w: report %s", ErrDuplicateID, rep.ID)
	}
	r.store.put(rep.ID, rep)
	return rep, nil
}

func (r *ReportRepository) GetByID(_ context.Context, id string) (entities.Report, error) {
	rep, _ := r.store.get(id)
	return rep, nil
}

func (r *ReportRepository) List(_ context.Context) ([]entities.Report, error) {
	return r.store.list(), nil
}

type TreatmentPaymentRepository struct {
	store *store[entities.TreatmentPayment]
}

var _ interfaces.ITreatmentPaymentRepository = (*TreatmentPaymentRepository)(nil)

func NewTreatmentPaymentRepository() *TreatmentPaymentRepository {
	return &TreatmentPaymentRepository{store: newStore[entities.TreatmentPayment]()}
}

func (r *TreatmentPaymentRepository) Create(_ context.Context, p entities.TreatmentPayment) (entities.TreatmentPayment, error) {
	if _, exists := r.store.get(p.ID); exists {
		return entities.TreatmentPayment{}, fmt.Errorf("%w: payment %s", ErrDuplicateID, p.ID)
	}
	r.store.put(p.ID, p)
	return p, nil
}

func (r *TreatmentPaymentRepository) GetByID(_ context.Context, id string) (entities.TreatmentPayment, error) {
	p, _ := r.store.get(id)
	return p, nil
}

func (r *TreatmentPaymentRepository) ListByRequestID(_ context.Context, requestID string) ([]entities.TreatmentPayment, error) {
	return r.store.filter(func(p entities.TreatmentPayment) bool {
		return p.RequestID == requestID
	}), nil
}
