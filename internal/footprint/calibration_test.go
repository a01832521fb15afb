package footprint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalibration_DefaultIsValid(t *testing.T) {
	require.NoError(t, DefaultCalibration().Validate())
}

func TestCalibration_ValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Calibration)
		field  string
	}{
		{"zero car emission", func(c *Calibration) { c.CarEmissionKgPerKm = 0 }, "car_emission_kg_per_km"},
		{"negative car emission", func(c *Calibration) { c.CarEmissionKgPerKm = -0.12 }, "car_emission_kg_per_km"},
		{"negative factor", func(c *Calibration) { c.GlobalAverageFactor = -1 }, "global_average_factor"},
		{"negative media water", func(c *Calibration) { c.WaterPerMediaUnitML = -5 }, "water_per_media_unit_ml"},
		{"nan token cost", func(c *Calibration) { c.CO2PerTokenG = math.NaN() }, "co2_per_token_g"},
		{"infinite training", func(c *Calibration) { c.TrainingFromScratchCO2Kg = math.Inf(1) }, "training_from_scratch_co2_kg"},
		{"zero days", func(c *Calibration) { c.DaysPerMonth = 0 }, "days_per_month"},
		{"negative days", func(c *Calibration) { c.DaysPerMonth = -1 }, "days_per_month"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultCalibration()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestCalibration_ValidateListsEveryProblem(t *testing.T) {
	c := DefaultCalibration()
	c.MixedMixFactor = -1
	c.DaysPerMonth = 0
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mixed_mix_factor")
	assert.Contains(t, err.Error(), "days_per_month")
}

func TestCalibration_ValidateAllowsZeroCosts(t *testing.T) {
	c := DefaultCalibration()
	c.CO2PerTokenG = 0
	c.TrainingFromScratchCO2Kg = 0
	c.LowCarbonFactor = 0
	c.DaysPerMonth = 1
	assert.NoError(t, c.Validate())
}
