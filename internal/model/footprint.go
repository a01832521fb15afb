package model

// Grade is the ordinal sustainability tier, A best through E worst.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
)

// Breakdown splits the total carbon footprint into its chart series.
// Text and media are already scaled by the region multiplier; training is not.
type Breakdown struct {
	TextCO2Kg     float64 `json:"text_co2_kg" yaml:"text_co2_kg"`
	TrainingCO2Kg float64 `json:"training_co2_kg" yaml:"training_co2_kg"`
	MediaCO2Kg    float64 `json:"media_co2_kg" yaml:"media_co2_kg"`
}

// Sum returns the total of all three series.
func (b Breakdown) Sum() float64 {
	return b.TextCO2Kg + b.TrainingCO2Kg + b.MediaCO2Kg
}

// Volumes holds the raw activity counters behind an estimate.
type Volumes struct {
	TotalDays         int64 `json:"total_days" yaml:"total_days"`
	TotalTokens       int64 `json:"total_tokens" yaml:"total_tokens"`
	TotalImages       int64 `json:"total_images" yaml:"total_images"`
	TotalVideoSeconds int64 `json:"total_video_seconds" yaml:"total_video_seconds"`
}

// FootprintResult is the estimator output for one set of UsageParameters.
type FootprintResult struct {
	TotalCO2Kg       float64   `json:"total_co2_kg" yaml:"total_co2_kg"`
	TotalWaterLiters float64   `json:"total_water_liters" yaml:"total_water_liters"`
	CarEquivalentKm  float64   `json:"car_equivalent_km" yaml:"car_equivalent_km"`
	Grade            Grade     `json:"grade" yaml:"grade"`
	DecisionLabel    string    `json:"decision_label" yaml:"decision_label"`
	ColorToken       string    `json:"color_token" yaml:"color_token"`
	Breakdown        Breakdown `json:"breakdown" yaml:"breakdown"`

	TextWaterLiters  float64 `json:"text_water_liters" yaml:"text_water_liters"`
	MediaWaterLiters float64 `json:"media_water_liters" yaml:"media_water_liters"`
	Volumes          Volumes `json:"volumes" yaml:"volumes"`
}
