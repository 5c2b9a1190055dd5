package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DisposalRequest is the aggregate root of a disposal: who asked, what is
// being disposed of, where it is dropped and how it is treated.
//
// Totals are always recomputed from the line items; nothing is cached.
type DisposalRequest struct {
	id          string
	user        *User
	items       []*LineItem
	point       *CollectionPoint
	treatment   *TreatmentMethod
	state       State
	history     []State
	createdAt   time.Time
	scheduledAt *time.Time
}

// RequestSummary is a flat view of a request.
type RequestSummary struct {
	ID          string
	UserName    string
	Status      Status
	ItemCount   int
	TotalWeight float64
	TotalImpact float64
	CreatedAt   time.Time
}

// NewDisposalRequest opens a request for user, optionally at point. The
// user's quota is consumed; with a point, the point must be accepting.
func NewDisposalRequest(user *User, point *CollectionPoint, at time.Time) (*DisposalRequest, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user is required", ErrInvalidParameter)
	}
	if err := user.reserveRequest(); err != nil {
		return nil, err
	}
	if point != nil && !point.CanAccept(0) {
		user.releaseRequest()
		return nil, fmt.Errorf("%w: point %s is not accepting deliveries", ErrCapacityExceeded, point.Name)
	}

	initial := newState(StatusRequested, "", at)
	return &DisposalRequest{
		id:        uuid.NewString(),
		user:      user,
		point:     point,
		state:     initial,
		history:   []State{initial},
		createdAt: at,
	}, nil
}

func (r *DisposalRequest) ID() string                  { return r.id }
func (r *DisposalRequest) User() *User                 { return r.user }
func (r *DisposalRequest) Point() *CollectionPoint     { return r.point }
func (r *DisposalRequest) Treatment() *TreatmentMethod { return r.treatment }
func (r *DisposalRequest) State() State                { return r.state }
func (r *DisposalRequest) Status() Status              { return r.state.Status }
func (r *DisposalRequest) CreatedAt() time.Time        { return r.createdAt }
func (r *DisposalRequest) ScheduledAt() *time.Time     { return r.scheduledAt }

// Items returns the line items in insertion order.
func (r *DisposalRequest) Items() []*LineItem {
	out := make([]*LineItem, len(r.items))
	copy(out, r.items)
	return out
}

// History returns every state the request went through, oldest first.
func (r *DisposalRequest) History() []State {
	out := make([]State, len(r.history))
	copy(out, r.history)
	return out
}

// Item finds a line item by id.
func (r *DisposalRequest) Item(itemID string) (*LineItem, bool) {
	for _, it := range r.items {
		if it.ID() == itemID {
			return it, true
		}
	}
	return nil, false
}

func (r *DisposalRequest) ensureEditable() error {
	if r.state.Status != StatusRequested {
		return fmt.Errorf("%w: items cannot change once the request is %s", ErrIllegalTransition, r.state.Status)
	}
	return nil
}

// AddItem appends quantity units of device to the request.
func (r *DisposalRequest) AddItem(device Device, quantity int, notes string) (*LineItem, error) {
	if err := r.ensureEditable(); err != nil {
		return nil, err
	}
	item, err := NewLineItem(device, quantity, notes)
	if err != nil {
		return nil, err
	}
	r.items = append(r.items, item)
	return item, nil
}

// RemoveItem drops a line item; it reports whether the item was present.
func (r *DisposalRequest) RemoveItem(itemID string) (bool, error) {
	if err := r.ensureEditable(); err != nil {
		return false, err
	}
	for i, it := range r.items {
		if it.ID() == itemID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// SetItemQuantity changes the quantity of a line item.
func (r *DisposalRequest) SetItemQuantity(itemID string, quantity int) (*LineItem, bool, error) {
	if err := r.ensureEditable(); err != nil {
		return nil, false, err
	}
	item, ok := r.Item(itemID)
	if !ok {
		return nil, false, nil
	}
	if err := item.SetQuantity(quantity); err != nil {
		return nil, true, err
	}
	return item, true, nil
}

func (r *DisposalRequest) TotalWeight() float64 {
	total := 0.0
	for _, it := range r.items {
		total += it.TotalWeight()
	}
	return total
}

func (r *DisposalRequest) TotalImpact() float64 {
	total := 0.0
	for _, it := range r.items {
		total += it.TotalImpact()
	}
	return total
}

// Devices expands the line items into one device per unit.
func (r *DisposalRequest) Devices() []Device {
	var out []Device
	for _, it := range r.items {
		for i := 0; i < it.Quantity(); i++ {
			out = append(out, it.Device())
		}
	}
	return out
}

// TreatmentCost prices the request under policy. It reports false when no
// treatment method is assigned.
func (r *DisposalRequest) TreatmentCost(policy CostPolicy) (float64, bool) {
	if r.treatment == nil {
		return 0, false
	}
	return r.treatment.CostWith(policy, r.Devices()), true
}

// ResidualImpact is the impact left after treatment, or the full impact when
// no treatment is assigned.
func (r *DisposalRequest) ResidualImpact() float64 {
	if r.treatment == nil {
		return round2(r.TotalImpact())
	}
	return r.treatment.Impact(r.Devices())
}

// AssignPoint admits the request's current weight at point and keeps a
// reference to it. Capacity is consulted here only; later transitions do not
// re-check it.
func (r *DisposalRequest) AssignPoint(point *CollectionPoint) error {
	if point == nil {
		return fmt.Errorf("%w: point is required", ErrInvalidParameter)
	}
	if r.state.Status.IsTerminal() {
		return fmt.Errorf("%w: request is %s", ErrIllegalTransition, r.state.Status)
	}

	weight := r.TotalWeight()
	if !point.CanAccept(weight) {
		return fmt.Errorf("%w: point %s has no room for %gkg", ErrCapacityExceeded, point.Name, weight)
	}
	if err := r.user.checkWeight(weight); err != nil {
		return err
	}
	if err := point.Admit(weight); err != nil {
		return err
	}
	r.user.recordWeight(weight)
	r.point = point
	return nil
}

// AssignTreatment sets the treatment method deciding the final outcome.
func (r *DisposalRequest) AssignTreatment(m TreatmentMethod) error {
	if r.state.Status.IsTerminal() {
		return fmt.Errorf("%w: request is %s", ErrIllegalTransition, r.state.Status)
	}
	r.treatment = &m
	return nil
}

// SchedulePickup records when the devices will be collected.
func (r *DisposalRequest) SchedulePickup(at time.Time) error {
	if r.state.Status.IsTerminal() {
		return fmt.Errorf("%w: request is %s", ErrIllegalTransition, r.state.Status)
	}
	if at.Before(r.createdAt) {
		return fmt.Errorf("%w: pickup cannot precede the request", ErrInvalidParameter)
	}
	t := at
	r.scheduledAt = &t
	return nil
}

// Advance moves the request to its next state. From processing the target
// depends on the assigned treatment.
func (r *DisposalRequest) Advance(at time.Time) error {
	next, err := r.state.next(r.treatment, at)
	if err != nil {
		return err
	}
	r.install(next)
	return nil
}

// Cancel ends the request with a reason. Only requested and collected
// requests can be cancelled.
func (r *DisposalRequest) Cancel(reason string, at time.Time) error {
	next, err := r.state.cancel(reason, at)
	if err != nil {
		return err
	}
	r.install(next)
	return nil
}

func (r *DisposalRequest) install(s State) {
	r.state = s
	r.history = append(r.history, s)
	if s.Status.IsTerminal() {
		r.user.releaseRequest()
	}
}

func (r *DisposalRequest) Summary() RequestSummary {
	return RequestSummary{
		ID:          r.id,
		UserName:    r.user.Name,
		Status:      r.state.Status,
		ItemCount:   len(r.items),
		TotalWeight: r.TotalWeight(),
		TotalImpact: r.TotalImpact(),
		CreatedAt:   r.createdAt,
	}
}

// Clone returns a deep copy that shares nothing mutable with r. Mutating the
// copy never reaches the owner or the point of r.
func (r *DisposalRequest) Clone() *DisposalRequest {
	c := *r
	c.user = r.user.Clone()
	if r.point != nil {
		c.point = r.point.Clone()
	}
	if r.treatment != nil {
		m := *r.treatment
		c.treatment = &m
	}
	if r.scheduledAt != nil {
		at := *r.scheduledAt
		c.scheduledAt = &at
	}
	c.items = make([]*LineItem, len(r.items))
	for i, it := range r.items {
		item := *it
		c.items[i] = &item
	}
	c.history = r.History()
	return &c
}

func (r *DisposalRequest) String() string {
	return fmt.Sprintf("request %s - %s", r.id, r.state.Status)
}
