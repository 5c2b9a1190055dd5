package entities

import (
	"fmt"
	"strings"
)

// TreatmentKind identifies one of the treatment strategies.
type TreatmentKind string

const (
	TreatmentRecycling          TreatmentKind = "recycling"
	TreatmentReuse              TreatmentKind = "reuse"
	TreatmentControlledDisposal TreatmentKind = "controlled_disposal"
)

// CostPolicy selects how a treatment turns device weight into money.
type CostPolicy string

const (
	// CostPolicyFlat charges the base rate per kilogram, nothing else.
	CostPolicyFlat CostPolicy = "flat"
	// CostPolicySurcharge adjusts each device by a kind-specific surcharge.
	CostPolicySurcharge CostPolicy = "surcharge"
)

// ParseCostPolicy resolves a policy name; empty means flat.
func ParseCostPolicy(s string) (CostPolicy, error) {
	switch CostPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", CostPolicyFlat:
		return CostPolicyFlat, nil
	case CostPolicySurcharge:
		return CostPolicySurcharge, nil
	default:
		return "", fmt.Errorf("%w: cost policy %q", ErrUnknownKind, s)
	}
}

// TreatmentMethod is a stateless strategy that turns a batch of devices into
// a cost and a residual impact. Values are safe to share between requests.
type TreatmentMethod struct {
	kind             TreatmentKind
	name             string
	costPerKg        float64
	reductionPercent float64
}

var treatmentCatalog = map[TreatmentKind]TreatmentMethod{
	TreatmentRecycling: {
		kind:             TreatmentRecycling,
		name:             "Recycling",
		costPerKg:        15.0,
		reductionPercent: 80.0,
	},
	TreatmentReuse: {
		kind:             TreatmentReuse,
		name:             "Reuse",
		costPerKg:        8.0,
		reductionPercent: 95.0,
	},
	TreatmentControlledDisposal: {
		kind:             TreatmentControlledDisposal,
		name:             "Controlled Disposal",
		costPerKg:        25.0,
		reductionPercent: 40.0,
	},
}

// surcharges hold the per-device multipliers of CostPolicySurcharge.
var surcharges = map[TreatmentKind]func(Device) float64{
	TreatmentRecycling: func(d Device) float64 {
		switch d.Category() {
		case CategoryPhone:
			return 1.3
		case CategoryComputer:
			return 1.2
		default:
			return 1.0
		}
	},
	TreatmentReuse: func(d Device) float64 {
		if !d.hasKnownAge() {
			return 1.0
		}
		switch {
		case d.Age() < 3:
			return 1.5
		case d.Age() < 5:
			return 1.2
		default:
			return 1.0
		}
	},
	TreatmentControlledDisposal: func(d Device) float64 {
		return 1 + float64(d.HazardTier())*0.2
	},
}

var treatmentAliases = map[string]TreatmentKind{
	"recycling":           TreatmentRecycling,
	"reciclagem":          TreatmentRecycling,
	"reuse":               TreatmentReuse,
	"reuso":               TreatmentReuse,
	"controlled_disposal": TreatmentControlledDisposal,
	"descarte_controlado": TreatmentControlledDisposal,
}

// NewTreatmentMethod resolves a treatment discriminator, case-insensitively.
func NewTreatmentMethod(kind string) (TreatmentMethod, error) {
	k, ok := treatmentAliases[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return TreatmentMethod{}, fmt.Errorf("%w: treatment method %q", ErrUnknownKind, kind)
	}
	return treatmentCatalog[k], nil
}

// TreatmentMethods lists every strategy of the catalog.
func TreatmentMethods() []TreatmentMethod {
	return []TreatmentMethod{
		treatmentCatalog[TreatmentRecycling],
		treatmentCatalog[TreatmentReuse],
		treatmentCatalog[TreatmentControlledDisposal],
	}
}

func (m TreatmentMethod) Kind() TreatmentKind       { return m.kind }
func (m TreatmentMethod) Name() string              { return m.name }
func (m TreatmentMethod) CostPerKg() float64        { return m.costPerKg }
func (m TreatmentMethod) ReductionPercent() float64 { return m.reductionPercent }

// Cost is the flat per-kilogram price of treating the devices.
func (m TreatmentMethod) Cost(devices []Device) float64 {
	return m.CostWith(CostPolicyFlat, devices)
}

// CostWith prices the devices under the given policy.
func (m TreatmentMethod) CostWith(policy CostPolicy, devices []Device) float64 {
	surcharge := surcharges[m.kind]
	total := 0.0
	for _, d := range devices {
		c := d.WeightKg() * m.costPerKg
		if policy == CostPolicySurcharge && surcharge != nil {
			c *= surcharge(d)
		}
		total += c
	}
	return round2(total)
}

// Impact is the residual impact of the devices after the reduction.
func (m TreatmentMethod) Impact(devices []Device) float64 {
	total := 0.0
	for _, d := range devices {
		total += d.Impact()
	}
	return round2(total * (1 - m.reductionPercent/100))
}

func (m TreatmentMethod) String() string {
	return m.name
}
