package usecase

import (
	"errors"
	"strings"
	"sync"
	"time"
)

var (
	ErrInvalidID       = errors.New("invalid id")
	ErrRequestNotFound = errors.New("disposal request not found")
	ErrPointNotFound   = errors.New("collection point not found")
	ErrUserNotFound    = errors.New("user not found")
)

// Guard serialises access to the aggregates shared between use cases.
// Requests hold live pointers to their owner and point, so every use case
// touching users, points or requests must be built with the same Guard.
// Writers take the exclusive lock; readers copy what they return while
// holding the shared one.
type Guard struct {
	mu sync.RWMutex
}

func NewGuard() *Guard {
	return &Guard{}
}

func guardOrNew(g *Guard) *Guard {
	if g == nil {
		return NewGuard()
	}
	return g
}

func normalizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrInvalidID
	}
	return id, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
