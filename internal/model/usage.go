// Package model defines the usage parameters and footprint results exchanged
// between the estimator and its front ends.
package model

import (
	"fmt"
	"strings"
)

// ModelType is the lifecycle category of the AI model behind a project.
type ModelType int

const (
	Inference ModelType = iota
	FineTuned
	TrainedFromScratch
)

// ModelTypes lists every model type in display order.
var ModelTypes = []ModelType{Inference, FineTuned, TrainedFromScratch}

var modelTypeNames = map[ModelType]string{
	Inference:          "inference",
	FineTuned:          "fine-tuned",
	TrainedFromScratch: "trained-from-scratch",
}

var modelTypeLabels = map[ModelType]string{
	Inference:          "GPT-Standard (Inference)",
	FineTuned:          "Fine-Tuned Model",
	TrainedFromScratch: "Training from Scratch",
}

// String returns the canonical machine name ("inference", "fine-tuned", ...).
func (m ModelType) String() string {
	if s, ok := modelTypeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("ModelType(%d)", int(m))
}

// Label returns the human-facing name shown in forms and certificates.
func (m ModelType) Label() string {
	if s, ok := modelTypeLabels[m]; ok {
		return s
	}
	return m.String()
}

// MarshalText implements encoding.TextMarshaler.
func (m ModelType) MarshalText() ([]byte, error) {
	if _, ok := modelTypeNames[m]; !ok {
		return nil, fmt.Errorf("unknown model type %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ModelType) UnmarshalText(b []byte) error {
	v, err := ParseModelType(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseModelType accepts canonical names, display labels, and short aliases.
func ParseModelType(s string) (ModelType, error) {
	switch normalize(s) {
	case "inference", "gpt-standard", "gpt-standard-inference", "standard":
		return Inference, nil
	case "fine-tuned", "finetuned", "fine-tune", "finetune", "fine-tuned-model":
		return FineTuned, nil
	case "trained-from-scratch", "training-from-scratch", "scratch", "from-scratch", "trained":
		return TrainedFromScratch, nil
	}
	return 0, fmt.Errorf("unknown model type %q", s)
}

// Region is the hosting location class, which selects the grid carbon multiplier.
type Region int

const (
	LowCarbon Region = iota
	MixedMix
	GlobalAverage
)

// Regions lists every region in display order.
var Regions = []Region{LowCarbon, MixedMix, GlobalAverage}

var regionNames = map[Region]string{
	LowCarbon:     "low-carbon",
	MixedMix:      "mixed-mix",
	GlobalAverage: "global-average",
}

var regionLabels = map[Region]string{
	LowCarbon:     "France (Low Carbon)",
	MixedMix:      "USA (Mixed Mix)",
	GlobalAverage: "Global (Average)",
}

func (r Region) String() string {
	if s, ok := regionNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Region(%d)", int(r))
}

// Label returns the human-facing server location name.
func (r Region) Label() string {
	if s, ok := regionLabels[r]; ok {
		return s
	}
	return r.String()
}

// MarshalText implements encoding.TextMarshaler.
func (r Region) MarshalText() ([]byte, error) {
	if _, ok := regionNames[r]; !ok {
		return nil, fmt.Errorf("unknown region %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Region) UnmarshalText(b []byte) error {
	v, err := ParseRegion(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// ParseRegion accepts canonical names, display labels, and short aliases.
func ParseRegion(s string) (Region, error) {
	switch normalize(s) {
	case "low-carbon", "lowcarbon", "low", "france", "france-low-carbon", "fr":
		return LowCarbon, nil
	case "mixed-mix", "mixedmix", "mixed", "usa", "usa-mixed-mix", "us":
		return MixedMix, nil
	case "global-average", "globalaverage", "global", "average", "world":
		return GlobalAverage, nil
	}
	return 0, fmt.Errorf("unknown region %q", s)
}

// normalize lowercases s and collapses spaces, underscores and parentheses
// into single dashes so "France (Low Carbon)" becomes "france-low-carbon".
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	dash := false
	for _, r := range s {
		switch r {
		case ' ', '_', '(', ')', '-':
			if b.Len() > 0 {
				dash = true
			}
		default:
			if dash {
				b.WriteByte('-')
				dash = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UsageParameters describes how an AI project is expected to be used.
// Image and video volumes only count when UseMedia is set.
type UsageParameters struct {
	ModelType                 ModelType `json:"model_type" yaml:"model_type" toml:"model_type"`
	NumUsers                  int       `json:"num_users" yaml:"num_users" toml:"num_users"`
	RequestsPerDayPerUser     int       `json:"requests_per_day_per_user" yaml:"requests_per_day_per_user" toml:"requests_per_day_per_user"`
	AvgTokensPerRequest       int       `json:"avg_tokens_per_request" yaml:"avg_tokens_per_request" toml:"avg_tokens_per_request"`
	UseMedia                  bool      `json:"use_media" yaml:"use_media" toml:"use_media"`
	ImagesPerDayPerUser       int       `json:"images_per_day_per_user" yaml:"images_per_day_per_user" toml:"images_per_day_per_user"`
	VideoSecondsPerDayPerUser int       `json:"video_seconds_per_day_per_user" yaml:"video_seconds_per_day_per_user" toml:"video_seconds_per_day_per_user"`
	ProjectDurationMonths     int       `json:"project_duration_months" yaml:"project_duration_months" toml:"project_duration_months"`
	Region                    Region    `json:"region" yaml:"region" toml:"region"`
}

// DefaultUsage returns the starting values of the input form.
func DefaultUsage() UsageParameters {
	return UsageParameters{
		ModelType:                 Inference,
		NumUsers:                  500,
		RequestsPerDayPerUser:     10,
		AvgTokensPerRequest:       500,
		UseMedia:                  false,
		ImagesPerDayPerUser:       2,
		VideoSecondsPerDayPerUser: 5,
		ProjectDurationMonths:     12,
		Region:                    LowCarbon,
	}
}
