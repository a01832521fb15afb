// Package params guards the estimator's input boundary: range checks and
// scenario files.
package params

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/greenscore/internal/model"
)

// Bounds is an inclusive integer range for one parameter.
type Bounds struct {
	Min, Max int
}

// Contains reports whether v lies within b.
func (b Bounds) Contains(v int) bool {
	return v >= b.Min && v <= b.Max
}

// Accepted ranges for each bounded field.
var (
	UsersBounds    = Bounds{Min: 10, Max: 5000}
	RequestsBounds = Bounds{Min: 1, Max: 50}
	ImagesBounds   = Bounds{Min: 0, Max: 50}
	VideoBounds    = Bounds{Min: 0, Max: 60}
	MonthsBounds   = Bounds{Min: 1, Max: 36}
)

// TokensStep is the suggested increment for the tokens-per-request input.
const TokensStep = 100

// FieldError describes one out-of-range parameter.
type FieldError struct {
	Field   string `json:"field"`
	Value   int    `json:"value"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s (got %d)", e.Field, e.Message, e.Value)
}

// ValidationError collects every violated constraint of one parameter set.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid usage parameters: " + strings.Join(msgs, "; ")
}

// Validate checks p against the accepted ranges and returns a
// *ValidationError listing every violation, or nil.
// Image and video volumes are only checked when media is enabled.
func Validate(p model.UsageParameters) error {
	var fields []FieldError

	check := func(field string, v int, b Bounds) {
		if !b.Contains(v) {
			fields = append(fields, FieldError{
				Field:   field,
				Value:   v,
				Message: fmt.Sprintf("must be between %d and %d", b.Min, b.Max),
			})
		}
	}

	if _, err := p.ModelType.MarshalText(); err != nil {
		fields = append(fields, FieldError{Field: "model_type", Value: int(p.ModelType), Message: "unknown model type"})
	}
	if _, err := p.Region.MarshalText(); err != nil {
		fields = append(fields, FieldError{Field: "region", Value: int(p.Region), Message: "unknown region"})
	}

	check("num_users", p.NumUsers, UsersBounds)
	check("requests_per_day_per_user", p.RequestsPerDayPerUser, RequestsBounds)
	if p.AvgTokensPerRequest < 0 {
		fields = append(fields, FieldError{
			Field:   "avg_tokens_per_request",
			Value:   p.AvgTokensPerRequest,
			Message: "must not be negative",
		})
	}
	if p.UseMedia {
		check("images_per_day_per_user", p.ImagesPerDayPerUser, ImagesBounds)
		check("video_seconds_per_day_per_user", p.VideoSecondsPerDayPerUser, VideoBounds)
	}
	check("project_duration_months", p.ProjectDurationMonths, MonthsBounds)

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// Clamp pulls every bounded field of p into range. It is used by
// interactive front ends that adjust values step by step.
func Clamp(p model.UsageParameters) model.UsageParameters {
	p.NumUsers = clamp(p.NumUsers, UsersBounds)
	p.RequestsPerDayPerUser = clamp(p.RequestsPerDayPerUser, RequestsBounds)
	if p.AvgTokensPerRequest < 0 {
		p.AvgTokensPerRequest = 0
	}
	p.ImagesPerDayPerUser = clamp(p.ImagesPerDayPerUser, ImagesBounds)
	p.VideoSecondsPerDayPerUser = clamp(p.VideoSecondsPerDayPerUser, VideoBounds)
	p.ProjectDurationMonths = clamp(p.ProjectDurationMonths, MonthsBounds)
	return p
}

func clamp(v int, b Bounds) int {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}
