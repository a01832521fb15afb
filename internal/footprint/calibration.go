// Package footprint estimates the carbon and water footprint of an AI
// project and grades it on the A-E sustainability scale.
package footprint

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/greenscore/internal/model"
)

// Calibration holds every constant of the linear footprint model.
// Per-unit costs are in grams and millilitres; training costs are in kg.
type Calibration struct {
	CO2PerTokenG        float64 `json:"co2_per_token_g" yaml:"co2_per_token_g"`
	WaterPerTokenML     float64 `json:"water_per_token_ml" yaml:"water_per_token_ml"`
	CO2PerImageG        float64 `json:"co2_per_image_g" yaml:"co2_per_image_g"`
	CO2PerVideoSecondG  float64 `json:"co2_per_video_second_g" yaml:"co2_per_video_second_g"`
	WaterPerMediaUnitML float64 `json:"water_per_media_unit_ml" yaml:"water_per_media_unit_ml"`

	TrainingFromScratchCO2Kg float64 `json:"training_from_scratch_co2_kg" yaml:"training_from_scratch_co2_kg"`
	TrainingFineTuneCO2Kg    float64 `json:"training_fine_tune_co2_kg" yaml:"training_fine_tune_co2_kg"`
	TrainingInferenceCO2Kg   float64 `json:"training_inference_co2_kg" yaml:"training_inference_co2_kg"`

	LowCarbonFactor     float64 `json:"low_carbon_factor" yaml:"low_carbon_factor"`
	MixedMixFactor      float64 `json:"mixed_mix_factor" yaml:"mixed_mix_factor"`
	GlobalAverageFactor float64 `json:"global_average_factor" yaml:"global_average_factor"`

	CarEmissionKgPerKm float64 `json:"car_emission_kg_per_km" yaml:"car_emission_kg_per_km"`

	// DaysPerMonth is a flat convention, not calendar aware.
	DaysPerMonth int `json:"days_per_month" yaml:"days_per_month"`
}

// DefaultCalibration returns the reference calibration table.
func DefaultCalibration() Calibration {
	return Calibration{
		CO2PerTokenG:        0.0031,
		WaterPerTokenML:     0.12,
		CO2PerImageG:        4.0,
		CO2PerVideoSecondG:  15.0,
		WaterPerMediaUnitML: 5.0,

		TrainingFromScratchCO2Kg: 19_200_000,
		TrainingFineTuneCO2Kg:    5_000,
		TrainingInferenceCO2Kg:   0,

		LowCarbonFactor:     0.1,
		MixedMixFactor:      1.5,
		GlobalAverageFactor: 1.0,

		CarEmissionKgPerKm: 0.12,
		DaysPerMonth:       30,
	}
}

// Validate reports every constant outside the model's domain. Constants must
// be finite and non-negative; the car emission rate must be positive.
func (c Calibration) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"co2_per_token_g", c.CO2PerTokenG},
		{"water_per_token_ml", c.WaterPerTokenML},
		{"co2_per_image_g", c.CO2PerImageG},
		{"co2_per_video_second_g", c.CO2PerVideoSecondG},
		{"water_per_media_unit_ml", c.WaterPerMediaUnitML},
		{"training_from_scratch_co2_kg", c.TrainingFromScratchCO2Kg},
		{"training_fine_tune_co2_kg", c.TrainingFineTuneCO2Kg},
		{"training_inference_co2_kg", c.TrainingInferenceCO2Kg},
		{"low_carbon_factor", c.LowCarbonFactor},
		{"mixed_mix_factor", c.MixedMixFactor},
		{"global_average_factor", c.GlobalAverageFactor},
		{"car_emission_kg_per_km", c.CarEmissionKgPerKm},
	}

	var problems []string
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			problems = append(problems, fmt.Sprintf("%s must be a finite non-negative number, got %v", f.name, f.v))
		}
	}
	if c.CarEmissionKgPerKm == 0 {
		problems = append(problems, "car_emission_kg_per_km must be greater than 0")
	}
	if c.DaysPerMonth < 1 {
		problems = append(problems, fmt.Sprintf("days_per_month must be at least 1, got %d", c.DaysPerMonth))
	}

	if len(problems) > 0 {
		return fmt.Errorf("calibration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// TrainingCO2Kg returns the one-off training emissions for a model type.
// Unknown model types cost nothing.
func (c Calibration) TrainingCO2Kg(mt model.ModelType) float64 {
	switch mt {
	case model.TrainedFromScratch:
		return c.TrainingFromScratchCO2Kg
	case model.FineTuned:
		return c.TrainingFineTuneCO2Kg
	case model.Inference:
		return c.TrainingInferenceCO2Kg
	}
	return 0
}

// CarbonFactor returns the grid multiplier for a region.
// Unknown regions fall back to the global average.
func (c Calibration) CarbonFactor(r model.Region) float64 {
	switch r {
	case model.LowCarbon:
		return c.LowCarbonFactor
	case model.MixedMix:
		return c.MixedMixFactor
	}
	return c.GlobalAverageFactor
}
