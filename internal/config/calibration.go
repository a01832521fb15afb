// Package config loads and stores greenscore settings, including optional
// overrides of the footprint calibration table.
package config

import "github.com/theirongolddev/greenscore/internal/footprint"

// CalibrationOverrides replaces individual calibration constants.
// Unset fields keep the reference value.
type CalibrationOverrides struct {
	CO2PerTokenG        *float64 `toml:"co2_per_token_g,omitempty"`
	WaterPerTokenML     *float64 `toml:"water_per_token_ml,omitempty"`
	CO2PerImageG        *float64 `toml:"co2_per_image_g,omitempty"`
	CO2PerVideoSecondG  *float64 `toml:"co2_per_video_second_g,omitempty"`
	WaterPerMediaUnitML *float64 `toml:"water_per_media_unit_ml,omitempty"`

	TrainingFromScratchCO2Kg *float64 `toml:"training_from_scratch_co2_kg,omitempty"`
	TrainingFineTuneCO2Kg    *float64 `toml:"training_fine_tune_co2_kg,omitempty"`
	TrainingInferenceCO2Kg   *float64 `toml:"training_inference_co2_kg,omitempty"`

	LowCarbonFactor     *float64 `toml:"low_carbon_factor,omitempty"`
	MixedMixFactor      *float64 `toml:"mixed_mix_factor,omitempty"`
	GlobalAverageFactor *float64 `toml:"global_average_factor,omitempty"`

	CarEmissionKgPerKm *float64 `toml:"car_emission_kg_per_km,omitempty"`
	DaysPerMonth       *int     `toml:"days_per_month,omitempty"`
}

// IsZero reports whether no constant is overridden.
func (o CalibrationOverrides) IsZero() bool {
	return o == CalibrationOverrides{}
}

// Apply returns base with every set override written over it.
func (o CalibrationOverrides) Apply(base footprint.Calibration) footprint.Calibration {
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}

	set(&base.CO2PerTokenG, o.CO2PerTokenG)
	set(&base.WaterPerTokenML, o.WaterPerTokenML)
	set(&base.CO2PerImageG, o.CO2PerImageG)
	set(&base.CO2PerVideoSecondG, o.CO2PerVideoSecondG)
	set(&base.WaterPerMediaUnitML, o.WaterPerMediaUnitML)
	set(&base.TrainingFromScratchCO2Kg, o.TrainingFromScratchCO2Kg)
	set(&base.TrainingFineTuneCO2Kg, o.TrainingFineTuneCO2Kg)
	set(&base.TrainingInferenceCO2Kg, o.TrainingInferenceCO2Kg)
	set(&base.LowCarbonFactor, o.LowCarbonFactor)
	set(&base.MixedMixFactor, o.MixedMixFactor)
	set(&base.GlobalAverageFactor, o.GlobalAverageFactor)
	set(&base.CarEmissionKgPerKm, o.CarEmissionKgPerKm)
	if o.DaysPerMonth != nil {
		base.DaysPerMonth = *o.DaysPerMonth
	}

	return base
}

// Estimator builds the estimator described by cfg.
func (cfg Config) Estimator() footprint.Estimator {
	return footprint.New(cfg.Calibration.Apply(footprint.DefaultCalibration()), nil)
}
