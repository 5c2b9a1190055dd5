package entities

import (
	"fmt"
	"strings"
)

// Category identifies a device family of the catalog.
type Category string

const (
	CategoryPhone     Category = "phone"
	CategoryComputer  Category = "computer"
	CategoryAppliance Category = "appliance"
)

// HazardTier classifies how dangerous a device family is to treat.
type HazardTier int

const (
	HazardLow HazardTier = iota + 1
	HazardMedium
	HazardHigh
)

func (h HazardTier) String() string {
	switch h {
	case HazardLow:
		return "low"
	case HazardMedium:
		return "medium"
	case HazardHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Weight is the multiplier a hazard tier contributes to the impact formula.
func (h HazardTier) Weight() float64 {
	return hazardWeights[h]
}

var hazardWeights = map[HazardTier]float64{
	HazardLow:    1.0,
	HazardMedium: 1.25,
	HazardHigh:   1.5,
}

// coefficients describe a category as data. Adding a category is a new row
// in categoryCatalog and an alias in categoryAliases, nothing else.
type coefficients struct {
	label              string
	baseImpactRate     float64
	hazard             HazardTier
	resaleRatePerKg    float64
	defaultSubcategory string
	subcategoryFactors map[string]float64
}

var categoryCatalog = map[Category]coefficients{
	CategoryPhone: {
		label:              "Phone",
		baseImpactRate:     5.0,
		hazard:             HazardLow,
		resaleRatePerKg:    120.0,
		defaultSubcategory: "smartphone",
		subcategoryFactors: map[string]float64{
			"smartphone": 1.0,
			"feature":    0.8,
			"tablet":     1.1,
		},
	},
	CategoryComputer: {
		label:              "Computer",
		baseImpactRate:     15.0,
		hazard:             HazardMedium,
		resaleRatePerKg:    40.0,
		defaultSubcategory: "laptop",
		subcategoryFactors: map[string]float64{
			"laptop":  1.0,
			"desktop": 1.2,
			"server":  1.5,
		},
	},
	CategoryAppliance: {
		label:              "Appliance",
		baseImpactRate:     8.0,
		hazard:             HazardHigh,
		resaleRatePerKg:    10.0,
		defaultSubcategory: "small",
		subcategoryFactors: map[string]float64{
			"small":         1.0,
			"large":         1.3,
			"refrigeration": 1.6,
		},
	},
}

var categoryAliases = map[string]Category{
	"phone":           CategoryPhone,
	"celular":         CategoryPhone,
	"computer":        CategoryComputer,
	"computador":      CategoryComputer,
	"appliance":       CategoryAppliance,
	"eletrodomestico": CategoryAppliance,
}

// ageBands maps a device age to its impact factor. Bands are checked in
// order; the last band catches everything older.
var ageBands = []struct {
	maxAge int
	factor float64
}{
	{maxAge: 5, factor: 1.0},
	{maxAge: 10, factor: 1.1},
	{maxAge: -1, factor: 1.25},
}

const (
	depreciationPerYear = 0.1
	minResaleRatio      = 0.1
)

// ParseCategory resolves a category tag, case-insensitively.
func ParseCategory(s string) (Category, error) {
	c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: device category %q", ErrUnknownKind, s)
	}
	return c, nil
}

// Categories lists every category of the catalog.
func Categories() []Category {
	return []Category{CategoryPhone, CategoryComputer, CategoryAppliance}
}

// Label is the display name of the category.
func (c Category) Label() string {
	return categoryCatalog[c].label
}

// Hazard is the fixed hazard classification of the category.
func (c Category) Hazard() HazardTier {
	return categoryCatalog[c].hazard
}

func ageFactor(age int, known bool) float64 {
	if !known {
		return 1.0
	}
	for _, b := range ageBands {
		if b.maxAge < 0 || age < b.maxAge {
			return b.factor
		}
	}
	return 1.0
}

func resaleRatio(age int, known bool) float64 {
	if !known {
		return 1.0
	}
	ratio := 1 - depreciationPerYear*float64(age)
	if ratio < minResaleRatio {
		return minResaleRatio
	}
	return ratio
}
