package params

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theirongolddev/greenscore/internal/footprint"
	"github.com/theirongolddev/greenscore/internal/model"
)

func TestValidate_DefaultsPass(t *testing.T) {
	assert.NoError(t, Validate(model.DefaultUsage()))
}

func TestValidate_ReportsEveryField(t *testing.T) {
	p := model.DefaultUsage()
	p.NumUsers = 9
	p.RequestsPerDayPerUser = 51
	p.AvgTokensPerRequest = -1
	p.ProjectDurationMonths = 0

	err := Validate(p)
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{
		"num_users",
		"requests_per_day_per_user",
		"avg_tokens_per_request",
		"project_duration_months",
	}, fields)
	assert.Contains(t, err.Error(), "num_users: must be between 10 and 5000 (got 9)")
}

func TestValidate_MediaRangesOnlyWhenEnabled(t *testing.T) {
	p := model.DefaultUsage()
	p.ImagesPerDayPerUser = 500
	p.VideoSecondsPerDayPerUser = -3
	assert.NoError(t, Validate(p))

	p.UseMedia = true
	err := Validate(p)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
}

func TestValidate_EdgesAreInclusive(t *testing.T) {
	p := model.DefaultUsage()
	p.UseMedia = true
	for _, set := range []func(){
		func() { p.NumUsers, p.RequestsPerDayPerUser, p.ProjectDurationMonths = 10, 1, 1 },
		func() { p.NumUsers, p.RequestsPerDayPerUser, p.ProjectDurationMonths = 5000, 50, 36 },
		func() { p.ImagesPerDayPerUser, p.VideoSecondsPerDayPerUser = 0, 0 },
		func() { p.ImagesPerDayPerUser, p.VideoSecondsPerDayPerUser = 50, 60 },
	} {
		set()
		assert.NoError(t, Validate(p))
	}
}

func TestValidate_UnknownEnums(t *testing.T) {
	p := model.DefaultUsage()
	p.Region = model.Region(9)
	p.ModelType = model.ModelType(-1)

	var verr *ValidationError
	require.ErrorAs(t, Validate(p), &verr)
	assert.Len(t, verr.Fields, 2)
}

func TestClamp(t *testing.T) {
	p := model.UsageParameters{
		NumUsers:                  1,
		RequestsPerDayPerUser:     99,
		AvgTokensPerRequest:       -100,
		ImagesPerDayPerUser:       -1,
		VideoSecondsPerDayPerUser: 61,
		ProjectDurationMonths:     40,
	}
	got := Clamp(p)
	assert.Equal(t, 10, got.NumUsers)
	assert.Equal(t, 50, got.RequestsPerDayPerUser)
	assert.Equal(t, 0, got.AvgTokensPerRequest)
	assert.Equal(t, 0, got.ImagesPerDayPerUser)
	assert.Equal(t, 60, got.VideoSecondsPerDayPerUser)
	assert.Equal(t, 36, got.ProjectDurationMonths)
	assert.NoError(t, Validate(got))
}

func TestValidate_LargeTokenCountsAccepted(t *testing.T) {
	p := model.DefaultUsage()
	p.NumUsers = UsersBounds.Max
	p.RequestsPerDayPerUser = RequestsBounds.Max
	p.ProjectDurationMonths = MonthsBounds.Max
	p.Region = model.MixedMix

	var prev float64
	for _, tokens := range []int{1_000_000, 40_000_000_000, 100_000_000_000} {
		p.AvgTokensPerRequest = tokens
		require.NoError(t, Validate(p))

		r := footprint.Evaluate(p)
		assert.Greater(t, r.TotalCO2Kg, prev, "tokens=%d", tokens)
		assert.Equal(t, model.GradeE, r.Grade, "tokens=%d", tokens)
		prev = r.TotalCO2Kg
	}
}
