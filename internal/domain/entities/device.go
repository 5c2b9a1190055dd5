package entities

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	minManufactureYear = 1970
	maxTextFieldLength = 100
)

// DeviceParams carries the raw construction input of a device.
//
// ManufactureYear zero means unknown. Subcategory empty means the category
// default.
type DeviceParams struct {
	ID              string
	Name            string
	WeightKg        float64
	Brand           string
	Model           string
	ManufactureYear int
	Subcategory     string
}

// Device is an immutable electronic item. Its impact and resale value are
// pure functions of the fields fixed at construction.
type Device struct {
	id              string
	name            string
	category        Category
	subcategory     string
	weightKg        float64
	brand           string
	model           string
	manufactureYear int
	age             int
}

// NewDevice builds a device of the given category tag.
func NewDevice(category string, p DeviceParams) (Device, error) {
	return newDeviceAt(category, p, time.Now().UTC())
}

func newDeviceAt(category string, p DeviceParams, now time.Time) (Device, error) {
	c, err := ParseCategory(category)
	if err != nil {
		return Device{}, err
	}
	coef := categoryCatalog[c]

	name := strings.TrimSpace(p.Name)
	if name == "" {
		return Device{}, fmt.Errorf("%w: name is required", ErrInvalidParameter)
	}
	if utf8.RuneCountInString(name) > maxTextFieldLength {
		return Device{}, fmt.Errorf("%w: name exceeds %d characters", ErrInvalidParameter, maxTextFieldLength)
	}
	if !(p.WeightKg > 0) || math.IsInf(p.WeightKg, 0) {
		return Device{}, fmt.Errorf("%w: weight must be a positive, finite number", ErrInvalidParameter)
	}

	brand, err := optionalText("brand", p.Brand)
	if err != nil {
		return Device{}, err
	}
	model, err := optionalText("model", p.Model)
	if err != nil {
		return Device{}, err
	}

	age := 0
	if p.ManufactureYear != 0 {
		if p.ManufactureYear < minManufactureYear || p.ManufactureYear > now.Year() {
			return Device{}, fmt.Errorf("%w: manufacture year %d outside [%d, %d]",
				ErrInvalidParameter, p.ManufactureYear, minManufactureYear, now.Year())
		}
		age = now.Year() - p.ManufactureYear
	}

	sub := strings.ToLower(strings.TrimSpace(p.Subcategory))
	if sub == "" {
		sub = coef.defaultSubcategory
	}
	if _, ok := coef.subcategoryFactors[sub]; !ok {
		return Device{}, fmt.Errorf("%w: unknown %s subcategory %q", ErrInvalidParameter, c, p.Subcategory)
	}

	id := strings.TrimSpace(p.ID)
	if id == "" {
		id = uuid.NewString()
	}

	return Device{
		id:              id,
		name:            name,
		category:        c,
		subcategory:     sub,
		weightKg:        p.WeightKg,
		brand:           brand,
		model:           model,
		manufactureYear: p.ManufactureYear,
		age:             age,
	}, nil
}

// optionalText accepts an absent value or a non-blank value within bounds.
func optionalText(field, v string) (string, error) {
	if v == "" {
		return "", nil
	}
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return "", fmt.Errorf("%w: %s must not be blank", ErrInvalidParameter, field)
	}
	if utf8.RuneCountInString(trimmed) > maxTextFieldLength {
		return "", fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidParameter, field, maxTextFieldLength)
	}
	return trimmed, nil
}

func (d Device) ID() string             { return d.id }
func (d Device) Name() string           { return d.name }
func (d Device) Category() Category     { return d.category }
func (d Device) Subcategory() string    { return d.subcategory }
func (d Device) WeightKg() float64      { return d.weightKg }
func (d Device) Brand() string          { return d.brand }
func (d Device) Model() string          { return d.model }
func (d Device) ManufactureYear() int   { return d.manufactureYear }
func (d Device) HazardTier() HazardTier { return d.category.Hazard() }
func (d Device) hasKnownAge() bool      { return d.manufactureYear != 0 }

// Age is the device age in years at construction, zero when unknown.
func (d Device) Age() int { return d.age }

// Impact is the per-unit environmental impact:
// weight × base rate × subcategory factor × hazard weight × age factor.
func (d Device) Impact() float64 {
	coef := categoryCatalog[d.category]
	return round2(d.weightKg *
		coef.baseImpactRate *
		coef.subcategoryFactors[d.subcategory] *
		coef.hazard.Weight() *
		ageFactor(d.age, d.hasKnownAge()))
}

// ResaleValue is the per-unit resale estimate, depreciated by age.
func (d Device) ResaleValue() float64 {
	coef := categoryCatalog[d.category]
	return round2(d.weightKg * coef.resaleRatePerKg * resaleRatio(d.age, d.hasKnownAge()))
}

func (d Device) String() string {
	return fmt.Sprintf("%s: %s (%gkg)", d.category.Label(), d.name, d.weightKg)
}
