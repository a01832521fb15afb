package footprint

import (
	"math"

	"github.com/theirongolddev/greenscore/internal/model"
)

// Tier maps a half-open band of total emissions to a grade.
// A total belongs to the first tier whose UpperBoundKg it is strictly below.
type Tier struct {
	UpperBoundKg float64     `json:"upper_bound_kg" yaml:"upper_bound_kg"`
	Grade        model.Grade `json:"grade" yaml:"grade"`
	Label        string      `json:"label" yaml:"label"`
	Color        string      `json:"color" yaml:"color"`
}

// Open reports whether the tier has no upper bound.
func (t Tier) Open() bool {
	return math.IsInf(t.UpperBoundKg, 1)
}

// DefaultTiers returns the GO / WARN / NO-GO table in ascending order.
func DefaultTiers() []Tier {
	return []Tier{
		{UpperBoundKg: 1_000, Grade: model.GradeA, Label: "GO • SUSTAINABLE PROJECT", Color: "#2E7D32"},
		{UpperBoundKg: 10_000, Grade: model.GradeB, Label: "GO • MANAGED IMPACT", Color: "#66BB6A"},
		{UpperBoundKg: 50_000, Grade: model.GradeC, Label: "WARNING • OPTIMIZATION NEEDED", Color: "#FFA726"},
		{UpperBoundKg: 100_000, Grade: model.GradeD, Label: "NO-GO • HIGH RISK", Color: "#EF5350"},
		{UpperBoundKg: math.Inf(1), Grade: model.GradeE, Label: "NO-GO • CRITICAL", Color: "#C62828"},
	}
}

// Classify returns the first tier whose upper bound exceeds totalKg.
// Values past every bound (including NaN) land in the last tier.
func Classify(tiers []Tier, totalKg float64) Tier {
	for _, t := range tiers {
		if totalKg < t.UpperBoundKg {
			return t
		}
	}
	if len(tiers) == 0 {
		return Tier{}
	}
	return tiers[len(tiers)-1]
}

// Range returns the inclusive lower and exclusive upper bound of tiers[i].
func Range(tiers []Tier, i int) (lo, hi float64) {
	if i > 0 {
		lo = tiers[i-1].UpperBoundKg
	}
	return lo, tiers[i].UpperBoundKg
}

// TierInfo is the serializable view of one tier. JSON cannot carry +Inf,
// so the open-ended top tier has a nil UpperBoundKg.
type TierInfo struct {
	Grade        model.Grade `json:"grade" yaml:"grade"`
	Label        string      `json:"label" yaml:"label"`
	Color        string      `json:"color" yaml:"color"`
	LowerBoundKg float64     `json:"lower_bound_kg" yaml:"lower_bound_kg"`
	UpperBoundKg *float64    `json:"upper_bound_kg" yaml:"upper_bound_kg"`
}

// Infos converts a tier table to its serializable view.
func Infos(tiers []Tier) []TierInfo {
	out := make([]TierInfo, len(tiers))
	for i, t := range tiers {
		lo, hi := Range(tiers, i)
		info := TierInfo{Grade: t.Grade, Label: t.Label, Color: t.Color, LowerBoundKg: lo}
		if !t.Open() {
			info.UpperBoundKg = &hi
		}
		out[i] = info
	}
	return out
}
