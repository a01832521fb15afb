package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/greenscore/internal/footprint"
	"github.com/theirongolddev/greenscore/internal/model"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("GREENSCORE_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults != model.DefaultUsage() {
		t.Errorf("Defaults = %+v, want %+v", cfg.Defaults, model.DefaultUsage())
	}
	if cfg.Server.Addr != "127.0.0.1:8787" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if Exists() {
		t.Error("Exists() = true for a missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("GREENSCORE_CONFIG", path)

	factor := 0.05
	cfg := DefaultConfig()
	cfg.General.ProjectName = "Atelier Search"
	cfg.Defaults.Region = model.MixedMix
	cfg.Defaults.ModelType = model.FineTuned
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Calibration.LowCarbonFactor = &factor

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.ProjectName != "Atelier Search" {
		t.Errorf("ProjectName = %q", got.General.ProjectName)
	}
	if got.Defaults.Region != model.MixedMix || got.Defaults.ModelType != model.FineTuned {
		t.Errorf("Defaults = %+v", got.Defaults)
	}
	if got.Calibration.LowCarbonFactor == nil || *got.Calibration.LowCarbonFactor != 0.05 {
		t.Errorf("LowCarbonFactor override lost: %v", got.Calibration.LowCarbonFactor)
	}
	if got.Calibration.MixedMixFactor != nil {
		t.Error("MixedMixFactor should stay unset")
	}
}

func TestLoad_ParsesHandWrittenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := `
[defaults]
model_type = "Training from Scratch"
region = "france"
num_users = 42

[calibration]
days_per_month = 31
co2_per_token_g = 0.004
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Defaults.ModelType != model.TrainedFromScratch {
		t.Errorf("ModelType = %s", cfg.Defaults.ModelType)
	}
	if cfg.Defaults.NumUsers != 42 {
		t.Errorf("NumUsers = %d", cfg.Defaults.NumUsers)
	}
	// fields absent from the file keep their defaults
	if cfg.Defaults.ProjectDurationMonths != 12 {
		t.Errorf("ProjectDurationMonths = %d, want 12", cfg.Defaults.ProjectDurationMonths)
	}

	cal := cfg.Estimator().Calibration()
	if cal.DaysPerMonth != 31 || cal.CO2PerTokenG != 0.004 {
		t.Errorf("overrides not applied: %+v", cal)
	}
	if cal.MixedMixFactor != 1.5 {
		t.Errorf("MixedMixFactor = %v, want reference 1.5", cal.MixedMixFactor)
	}
}

func TestLoad_RejectsBadEnum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[defaults]\nregion = \"mars\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("LoadFrom accepted an unknown region")
	}
}

func TestCalibrationOverrides_ApplyLeavesUnsetFields(t *testing.T) {
	var o CalibrationOverrides
	if !o.IsZero() {
		t.Fatal("zero overrides reported as set")
	}
	if got := o.Apply(footprint.DefaultCalibration()); got != footprint.DefaultCalibration() {
		t.Errorf("empty overrides changed calibration: %+v", got)
	}

	training := 0.0
	o.TrainingFromScratchCO2Kg = &training
	got := o.Apply(footprint.DefaultCalibration())
	if got.TrainingFromScratchCO2Kg != 0 {
		t.Errorf("TrainingFromScratchCO2Kg = %v, want 0", got.TrainingFromScratchCO2Kg)
	}
	if got.TrainingFineTuneCO2Kg != 5000 {
		t.Errorf("TrainingFineTuneCO2Kg = %v, want 5000", got.TrainingFineTuneCO2Kg)
	}
}

func TestLoad_RejectsBrokenCalibration(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"zero car emission", "car_emission_kg_per_km = 0.0", "car_emission_kg_per_km"},
		{"negative car emission", "car_emission_kg_per_km = -0.12", "car_emission_kg_per_km"},
		{"negative region factor", "mixed_mix_factor = -1.5", "mixed_mix_factor"},
		{"negative per-token cost", "co2_per_token_g = -0.0031", "co2_per_token_g"},
		{"infinite training cost", "training_fine_tune_co2_kg = inf", "training_fine_tune_co2_kg"},
		{"nan water cost", "water_per_token_ml = nan", "water_per_token_ml"},
		{"zero days per month", "days_per_month = 0", "days_per_month"},
		{"negative days per month", "days_per_month = -30", "days_per_month"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte("[calibration]\n"+tt.doc+"\n"), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFrom(path)
			if err == nil {
				t.Fatalf("LoadFrom accepted %q", tt.doc)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name %s", err, tt.field)
			}
		})
	}
}

func TestLoad_AcceptsZeroCostCalibration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := "[calibration]\ntraining_from_scratch_co2_kg = 0.0\nlow_carbon_factor = 0.0\ndays_per_month = 1\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got := cfg.Estimator().Calibration().DaysPerMonth; got != 1 {
		t.Errorf("DaysPerMonth = %d, want 1", got)
	}
}
