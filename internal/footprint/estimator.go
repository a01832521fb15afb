package footprint

import (
	"math"

	"github.com/theirongolddev/greenscore/internal/model"
)

// Estimator evaluates usage parameters against a calibration and tier table.
// The zero value is not usable; build one with New or use Evaluate.
type Estimator struct {
	cal   Calibration
	tiers []Tier
}

// New returns an Estimator. A nil or empty tiers slice selects DefaultTiers.
func New(cal Calibration, tiers []Tier) Estimator {
	if len(tiers) == 0 {
		tiers = DefaultTiers()
	}
	cp := make([]Tier, len(tiers))
	copy(cp, tiers)
	return Estimator{cal: cal, tiers: cp}
}

var defaultEstimator = New(DefaultCalibration(), nil)

// Evaluate runs the reference model over p.
func Evaluate(p model.UsageParameters) model.FootprintResult {
	return defaultEstimator.Evaluate(p)
}

// Calibration returns the constants the estimator was built with.
func (e Estimator) Calibration() Calibration {
	return e.cal
}

// Tiers returns a copy of the grade table.
func (e Estimator) Tiers() []Tier {
	cp := make([]Tier, len(e.tiers))
	copy(cp, e.tiers)
	return cp
}

// Evaluate maps usage parameters to footprint metrics and a grade.
// Inputs are trusted: range checks belong to the caller.
func (e Estimator) Evaluate(p model.UsageParameters) model.FootprintResult {
	c := e.cal

	// Volumes are multiplied in float64: tokens per request is unbounded
	// and an int64 product can wrap negative.
	days := float64(c.DaysPerMonth) * float64(p.ProjectDurationMonths)
	users := float64(p.NumUsers)
	tokens := users * float64(p.RequestsPerDayPerUser) * days * float64(p.AvgTokensPerRequest)

	var images, videoSec float64
	if p.UseMedia {
		images = users * float64(p.ImagesPerDayPerUser) * days
		videoSec = users * float64(p.VideoSecondsPerDayPerUser) * days
	}

	textCO2 := (tokens * c.CO2PerTokenG) / 1000
	mediaCO2 := ((images * c.CO2PerImageG) + (videoSec * c.CO2PerVideoSecondG)) / 1000
	textWater := (tokens * c.WaterPerTokenML) / 1000
	mediaWater := ((images + videoSec) * c.WaterPerMediaUnitML) / 1000

	trainingCO2 := c.TrainingCO2Kg(p.ModelType)
	factor := c.CarbonFactor(p.Region)

	// Training is a one-off cost and is not scaled by the grid multiplier.
	totalCO2 := (textCO2+mediaCO2)*factor + trainingCO2
	tier := Classify(e.tiers, totalCO2)

	return model.FootprintResult{
		TotalCO2Kg:       totalCO2,
		TotalWaterLiters: textWater + mediaWater,
		CarEquivalentKm:  totalCO2 / c.CarEmissionKgPerKm,
		Grade:            tier.Grade,
		DecisionLabel:    tier.Label,
		ColorToken:       tier.Color,
		Breakdown: model.Breakdown{
			TextCO2Kg:     textCO2 * factor,
			TrainingCO2Kg: trainingCO2,
			MediaCO2Kg:    mediaCO2 * factor,
		},
		TextWaterLiters:  textWater,
		MediaWaterLiters: mediaWater,
		Volumes: model.Volumes{
			TotalDays:         counter(days),
			TotalTokens:       counter(tokens),
			TotalImages:       counter(images),
			TotalVideoSeconds: counter(videoSec),
		},
	}
}

// counter converts a volume to int64, saturating at math.MaxInt64.
func counter(v float64) int64 {
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	if v <= 0 {
		return 0
	}
	return int64(v)
}
