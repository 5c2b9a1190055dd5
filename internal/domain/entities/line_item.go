package entities

import (
	"fmt"

	"github.com/google/uuid"
)

// LineItem is one device of a disposal request, times a quantity.
type LineItem struct {
	id       string
	device   Device
	quantity int
	notes    string
}

func NewLineItem(device Device, quantity int, notes string) (*LineItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidParameter)
	}
	return &LineItem{
		id:       uuid.NewString(),
		device:   device,
		quantity: quantity,
		notes:    notes,
	}, nil
}

func (i *LineItem) ID() string     { return i.id }
func (i *LineItem) Device() Device { return i.device }
func (i *LineItem) Quantity() int  { return i.quantity }
func (i *LineItem) Notes() string  { return i.notes }

// SetQuantity replaces the quantity; it must stay positive.
func (i *LineItem) SetQuantity(q int) error {
	if q <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidParameter)
	}
	i.quantity = q
	return nil
}

func (i *LineItem) TotalWeight() float64 {
	return i.device.WeightKg() * float64(i.quantity)
}

func (i *LineItem) TotalImpact() float64 {
	return i.device.Impact() * float64(i.quantity)
}

func (i *LineItem) String() string {
	return fmt.Sprintf("%dx %s", i.quantity, i.device.Name())
}
