package entities

import (
	"fmt"
	"strings"
	"time"
)

// Status is a stage of the disposal request lifecycle.
//
//	requested -> collected -> processing -> recycled | reused | disposed
//	requested | collected -> cancelled
type Status string

const (
	StatusRequested  Status = "requested"
	StatusCollected  Status = "collected"
	StatusProcessing Status = "processing"
	StatusRecycled   Status = "recycled"
	StatusReused     Status = "reused"
	StatusDisposed   Status = "disposed"
	StatusCancelled  Status = "cancelled"
)

type statusRule struct {
	next      Status
	advance   bool
	cancel    bool
	treatment bool // next status depends on the assigned treatment
}

var transitions = map[Status]statusRule{
	StatusRequested:  {next: StatusCollected, advance: true, cancel: true},
	StatusCollected:  {next: StatusProcessing, advance: true, cancel: true},
	StatusProcessing: {advance: true, treatment: true},
	StatusRecycled:   {},
	StatusReused:     {},
	StatusDisposed:   {},
	StatusCancelled:  {},
}

// ParseStatus resolves a status name, case-insensitively.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := transitions[st]; !ok {
		return "", fmt.Errorf("%w: status %q", ErrUnknownKind, s)
	}
	return st, nil
}

func (s Status) String() string { return string(s) }

func (s Status) CanAdvance() bool { return transitions[s].advance }

func (s Status) CanCancel() bool { return transitions[s].cancel }

// IsTerminal reports whether no further transition leaves s.
func (s Status) IsTerminal() bool {
	r := transitions[s]
	return !r.advance && !r.cancel
}

// IsTreated reports whether s is one of the final treatment outcomes.
func (s Status) IsTreated() bool {
	return s == StatusRecycled || s == StatusReused || s == StatusDisposed
}

// outcomeFor classifies a treatment by its name. Without a treatment the
// request ends disposed.
func outcomeFor(m *TreatmentMethod) Status {
	if m == nil {
		return StatusDisposed
	}
	name := strings.ToLower(m.Name())
	switch {
	case strings.Contains(name, "recycl"):
		return StatusRecycled
	case strings.Contains(name, "reuse"):
		return StatusReused
	default:
		return StatusDisposed
	}
}

// State is the lifecycle value held by a request. It is replaced wholesale
// on every transition.
type State struct {
	Status    Status
	Reason    string
	EnteredAt time.Time
}

func newState(s Status, reason string, at time.Time) State {
	return State{Status: s, Reason: reason, EnteredAt: at}
}

// next computes the state following current, or fails when current does
// not advance.
func (s State) next(treatment *TreatmentMethod, at time.Time) (State, error) {
	rule, ok := transitions[s.Status]
	if !ok || !rule.advance {
		return State{}, fmt.Errorf("%w: cannot advance from %s", ErrIllegalTransition, s.Status)
	}
	target := rule.next
	if rule.treatment {
		target = outcomeFor(treatment)
	}
	return newState(target, "", at), nil
}

func (s State) cancel(reason string, at time.Time) (State, error) {
	if !s.Status.CanCancel() {
		return State{}, fmt.Errorf("%w: cannot cancel from %s", ErrIllegalTransition, s.Status)
	}
	return newState(StatusCancelled, reason, at), nil
}

func (s State) String() string {
	return string(s.Status)
}
