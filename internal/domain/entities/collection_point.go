package entities

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultPointCapacityKg is used when a point is created without capacity.
const DefaultPointCapacityKg = 1000.0

// CollectionPointParams carries the raw construction input of a point.
type CollectionPointParams struct {
	ID         string
	Name       string
	Address    string
	Latitude   float64
	Longitude  float64
	CapacityKg *float64
}

// CollectionPoint is a physical drop-off location with bounded capacity.
//
// Invariant: occupancy never exceeds capacity. Occupancy only grows, through
// Admit; there is no release path.
type CollectionPoint struct {
	ID         string
	Name       string
	Address    string
	Latitude   float64
	Longitude  float64
	CapacityKg float64
	CreatedAt  time.Time

	occupancyKg float64
	active      bool
}

func NewCollectionPoint(p CollectionPointParams) (*CollectionPoint, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: point name is required", ErrInvalidParameter)
	}
	address := strings.TrimSpace(p.Address)
	if address == "" {
		return nil, fmt.Errorf("%w: point address is required", ErrInvalidParameter)
	}
	if !(p.Latitude >= -90 && p.Latitude <= 90) {
		return nil, fmt.Errorf("%w: latitude %v out of range", ErrInvalidParameter, p.Latitude)
	}
	if !(p.Longitude >= -180 && p.Longitude <= 180) {
		return nil, fmt.Errorf("%w: longitude %v out of range", ErrInvalidParameter, p.Longitude)
	}

	capacity := DefaultPointCapacityKg
	if p.CapacityKg != nil {
		capacity = *p.CapacityKg
	}
	if !validWeight(capacity) {
		return nil, fmt.Errorf("%w: capacity must be a finite, non-negative weight", ErrInvalidParameter)
	}

	id := strings.TrimSpace(p.ID)
	if id == "" {
		id = uuid.NewString()
	}

	return &CollectionPoint{
		ID:         id,
		Name:       name,
		Address:    address,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		CapacityKg: capacity,
		CreatedAt:  time.Now().UTC(),
		active:     true,
	}, nil
}

// CanAccept reports whether the point would admit weightKg right now.
func (p *CollectionPoint) CanAccept(weightKg float64) bool {
	return p.active && validWeight(weightKg) && p.occupancyKg+weightKg <= p.CapacityKg
}

// Admit adds weightKg to the occupancy, or fails leaving it untouched.
func (p *CollectionPoint) Admit(weightKg float64) error {
	if !validWeight(weightKg) {
		return fmt.Errorf("%w: admitted weight must be finite and non-negative, got %g", ErrInvalidParameter, weightKg)
	}
	if !p.CanAccept(weightKg) {
		return fmt.Errorf("%w: point %s cannot receive %gkg (occupancy %g of %g, active=%t)",
			ErrCapacityExceeded, p.Name, weightKg, p.occupancyKg, p.CapacityKg, p.active)
	}
	p.occupancyKg += weightKg
	return nil
}

// AvailabilityPercent is the free share of the capacity, to one decimal.
func (p *CollectionPoint) AvailabilityPercent() float64 {
	if p.CapacityKg == 0 {
		return 0.0
	}
	return round1(100 - 100*p.occupancyKg/p.CapacityKg)
}

func (p *CollectionPoint) OccupancyKg() float64 { return p.occupancyKg }
func (p *CollectionPoint) Active() bool         { return p.active }

func (p *CollectionPoint) Activate() {
	p.active = true
}

func (p *CollectionPoint) Deactivate() {
	p.active = false
}

// Clone returns a detached copy of the point.
func (p *CollectionPoint) Clone() *CollectionPoint {
	c := *p
	return &c
}

func (p *CollectionPoint) String() string {
	return fmt.Sprintf("%s - %s", p.Name, p.Address)
}

// validWeight holds for finite weights from zero up; NaN fails every
// comparison and is rejected with them.
func validWeight(kg float64) bool {
	return kg >= 0 && !math.IsInf(kg, 0)
}
