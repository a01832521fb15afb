package tui

import (
	"fmt"

	"github.com/theirongolddev/greenscore/internal/cli"
	"github.com/theirongolddev/greenscore/internal/model"
	"github.com/theirongolddev/greenscore/internal/params"
)

// field is one editable usage parameter on the Estimate tab.
type field int

const (
	fieldModel field = iota
	fieldRegion
	fieldUsers
	fieldRequests
	fieldTokens
	fieldMedia
	fieldImages
	fieldVideo
	fieldMonths
)

var fieldLabels = map[field]string{
	fieldModel:    "Model type",
	fieldRegion:   "Hosting region",
	fieldUsers:    "Active users",
	fieldRequests: "Requests / user / day",
	fieldTokens:   "Tokens / request",
	fieldMedia:    "Multimodal",
	fieldImages:   "Images / user / day",
	fieldVideo:    "Video sec / user / day",
	fieldMonths:   "Duration (months)",
}

func (f field) label() string { return fieldLabels[f] }

// step returns the small and large increments for numeric fields.
func (f field) step() (small, big int) {
	switch f {
	case fieldUsers:
		return 10, 100
	case fieldRequests:
		return 1, 5
	case fieldTokens:
		return params.TokensStep, 10 * params.TokensStep
	case fieldImages:
		return 1, 5
	case fieldVideo:
		return 1, 10
	case fieldMonths:
		return 1, 6
	}
	return 1, 1
}

// visibleFields lists the editable fields in display order. Image and
// video volumes only appear when multimodal generation is on.
func visibleFields(p model.UsageParameters) []field {
	fields := []field{fieldModel, fieldRegion, fieldUsers, fieldRequests, fieldTokens, fieldMedia}
	if p.UseMedia {
		fields = append(fields, fieldImages, fieldVideo)
	}
	return append(fields, fieldMonths)
}

// fieldValue formats the current value of f.
func fieldValue(p model.UsageParameters, f field) string {
	switch f {
	case fieldModel:
		return p.ModelType.Label()
	case fieldRegion:
		return p.Region.Label()
	case fieldUsers:
		return cli.FormatNumber(int64(p.NumUsers))
	case fieldRequests:
		return fmt.Sprintf("%d", p.RequestsPerDayPerUser)
	case fieldTokens:
		return cli.FormatNumber(int64(p.AvgTokensPerRequest))
	case fieldMedia:
		if p.UseMedia {
			return "On"
		}
		return "Off"
	case fieldImages:
		return fmt.Sprintf("%d", p.ImagesPerDayPerUser)
	case fieldVideo:
		return fmt.Sprintf("%d", p.VideoSecondsPerDayPerUser)
	case fieldMonths:
		return fmt.Sprintf("%d", p.ProjectDurationMonths)
	}
	return ""
}

// adjust moves f by dir steps (negative decreases) and clamps the result
// into the accepted ranges. Enum fields cycle; the media flag toggles.
func adjust(p model.UsageParameters, f field, dir int, big bool) model.UsageParameters {
	small, large := f.step()
	delta := small
	if big {
		delta = large
	}
	delta *= dir

	switch f {
	case fieldModel:
		p.ModelType = model.ModelTypes[cycle(int(p.ModelType), dir, len(model.ModelTypes))]
	case fieldRegion:
		p.Region = model.Regions[cycle(int(p.Region), dir, len(model.Regions))]
	case fieldUsers:
		p.NumUsers += delta
	case fieldRequests:
		p.RequestsPerDayPerUser += delta
	case fieldTokens:
		p.AvgTokensPerRequest += delta
	case fieldMedia:
		p.UseMedia = !p.UseMedia
	case fieldImages:
		p.ImagesPerDayPerUser += delta
	case fieldVideo:
		p.VideoSecondsPerDayPerUser += delta
	case fieldMonths:
		p.ProjectDurationMonths += delta
	}
	return params.Clamp(p)
}

func cycle(i, dir, n int) int {
	if dir < 0 {
		return (i - 1 + n) % n
	}
	return (i + 1) % n
}
