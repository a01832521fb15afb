package mcpserver

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/greenscore/internal/footprint"
	"github.com/theirongolddev/greenscore/internal/logging"
	"github.com/theirongolddev/greenscore/internal/model"
)

func testOptions() Options {
	return Options{
		Project:   "MCP Project",
		Defaults:  model.DefaultUsage(),
		Estimator: footprint.New(footprint.DefaultCalibration(), nil),
		Logger:    logging.Nop(),
		Now:       func() time.Time { return time.Date(2026, 5, 4, 8, 0, 0, 0, time.UTC) },
	}
}

func call(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return tc.Text
}

func TestEvaluateFootprint_Defaults(t *testing.T) {
	h := makeEvaluateHandler(testOptions())
	res, err := h(context.Background(), call("evaluate_footprint", map[string]any{}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out evaluation
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.InDelta(t, 279.0, out.Result.TotalCO2Kg, 1e-9)
	assert.Equal(t, model.GradeA, out.Result.Grade)
}

func TestEvaluateFootprint_Arguments(t *testing.T) {
	h := makeEvaluateHandler(testOptions())
	res, err := h(context.Background(), call("evaluate_footprint", map[string]any{
		"model_type": "trained-from-scratch",
		"region":     "mixed-mix",
		"num_users":  float64(500),
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	var out evaluation
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.Equal(t, model.TrainedFromScratch, out.Params.ModelType)
	assert.Equal(t, model.MixedMix, out.Params.Region)
	assert.InDelta(t, 19_204_185.0, out.Result.TotalCO2Kg, 1e-3)
	assert.Equal(t, model.GradeE, out.Result.Grade)
}

func TestEvaluateFootprint_Media(t *testing.T) {
	h := makeEvaluateHandler(testOptions())
	res, err := h(context.Background(), call("evaluate_footprint", map[string]any{
		"use_media":                      true,
		"images_per_day_per_user":        float64(2),
		"video_seconds_per_day_per_user": float64(5),
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	var out evaluation
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.True(t, out.Params.UseMedia)
	assert.Greater(t, out.Result.Breakdown.MediaCO2Kg, 0.0)
}

func TestEvaluateFootprint_Rejections(t *testing.T) {
	h := makeEvaluateHandler(testOptions())
	cases := map[string]map[string]any{
		"out of range":  {"num_users": float64(1)},
		"fractional":    {"project_duration_months": 1.5},
		"unknown enum":  {"region": "moon"},
		"unknown model": {"model_type": "distilled"},
		"huge tokens":   {"avg_tokens_per_request": 1e300},
		"infinite":      {"num_users": math.Inf(1)},
		"negative huge": {"avg_tokens_per_request": -1e20},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := h(context.Background(), call("evaluate_footprint", args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
		})
	}
}

func TestListGradeTiers(t *testing.T) {
	h := makeTiersHandler(testOptions())
	res, err := h(context.Background(), call("list_grade_tiers", nil))
	require.NoError(t, err)

	var tiers []footprint.TierInfo
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &tiers))
	require.Len(t, tiers, 5)
	assert.Equal(t, "NO-GO • CRITICAL", tiers[4].Label)
	assert.Nil(t, tiers[4].UpperBoundKg)
}

func TestGenerateCertificate(t *testing.T) {
	h := makeCertificateHandler(testOptions())
	res, err := h(context.Background(), call("generate_certificate", map[string]any{"project": "Agent X"}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "Project Name: Agent X")
	assert.Contains(t, text, "Date: 2026-05-04 08:00")
	assert.Contains(t, text, "- Total Carbon Footprint: 279 kg CO2eq")
}

func TestNewReturnsServer(t *testing.T) {
	assert.NotNil(t, New("test", testOptions()))
}

func TestEvaluateFootprint_LargeTokensInRange(t *testing.T) {
	h := makeEvaluateHandler(testOptions())
	res, err := h(context.Background(), call("evaluate_footprint", map[string]any{
		"num_users":                 float64(5000),
		"requests_per_day_per_user": float64(50),
		"project_duration_months":   float64(36),
		"region":                    "mixed-mix",
		"avg_tokens_per_request":    4e10,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	var out evaluation
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.Equal(t, 40_000_000_000, out.Params.AvgTokensPerRequest)
	assert.Greater(t, out.Result.TotalCO2Kg, 0.0)
	assert.Equal(t, model.GradeE, out.Result.Grade)
}
