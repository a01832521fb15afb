// Package mcpserver exposes the footprint estimator as MCP tools.
package mcpserver

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/theirongolddev/greenscore/internal/certificate"
	"github.com/theirongolddev/greenscore/internal/footprint"
	"github.com/theirongolddev/greenscore/internal/model"
	"github.com/theirongolddev/greenscore/internal/params"
)

// Options configures the registered tools.
type Options struct {
	Project   string
	Defaults  model.UsageParameters
	Estimator footprint.Estimator
	Logger    zerolog.Logger
	Now       func() time.Time
}

// New returns an MCP server with every greenscore tool registered.
func New(version string, opts Options) *server.MCPServer {
	s := server.NewMCPServer(
		"greenscore-mcp",
		version,
		server.WithToolCapabilities(true),
	)
	Register(s, opts)
	return s
}

// Register adds the greenscore tools to s.
func Register(s *server.MCPServer, opts Options) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if len(opts.Estimator.Tiers()) == 0 {
		opts.Estimator = footprint.New(footprint.DefaultCalibration(), nil)
	}

	s.AddTool(
		mcp.NewTool("evaluate_footprint", usageOptions(
			mcp.WithDescription("Estimate the carbon (kg CO2eq) and water (L) footprint of an AI project and return its A-E GO/NO-GO grade. Omitted arguments use the configured defaults."),
		)...),
		makeEvaluateHandler(opts),
	)

	s.AddTool(
		mcp.NewTool("list_grade_tiers",
			mcp.WithDescription("List the grade tiers: emission band in kg CO2eq, grade letter, decision label and color"),
		),
		makeTiersHandler(opts),
	)

	s.AddTool(
		mcp.NewTool("generate_certificate", usageOptions(
			mcp.WithDescription("Evaluate an AI project and return its plain-text footprint certificate"),
			mcp.WithString("project", mcp.Description("Project name printed on the certificate")),
		)...),
		makeCertificateHandler(opts),
	)
}

func usageOptions(extra ...mcp.ToolOption) []mcp.ToolOption {
	opts := []mcp.ToolOption{
		mcp.WithString("model_type",
			mcp.Description("How the model is obtained"),
			mcp.Enum("inference", "fine-tuned", "trained-from-scratch"),
		),
		mcp.WithString("region",
			mcp.Description("Hosting region electricity mix"),
			mcp.Enum("low-carbon", "mixed-mix", "global-average"),
		),
		mcp.WithNumber("num_users", mcp.Description("Active users (10-5000)")),
		mcp.WithNumber("requests_per_day_per_user", mcp.Description("Requests per user per day (1-50)")),
		mcp.WithNumber("avg_tokens_per_request", mcp.Description("Average tokens per request (>= 0)")),
		mcp.WithBoolean("use_media", mcp.Description("Whether the project generates images or video")),
		mcp.WithNumber("images_per_day_per_user", mcp.Description("Images per user per day (0-50), only with use_media")),
		mcp.WithNumber("video_seconds_per_day_per_user", mcp.Description("Video seconds per user per day (0-60), only with use_media")),
		mcp.WithNumber("project_duration_months", mcp.Description("Project duration in months (1-36)")),
	}
	return append(extra, opts...)
}

// usageFromRequest overlays the request arguments on defaults and validates
// the result.
func usageFromRequest(request mcp.CallToolRequest, defaults model.UsageParameters) (model.UsageParameters, error) {
	p := defaults
	args := request.GetArguments()

	if _, ok := args["model_type"]; ok {
		mt, err := model.ParseModelType(request.GetString("model_type", ""))
		if err != nil {
			return p, err
		}
		p.ModelType = mt
	}
	if _, ok := args["region"]; ok {
		r, err := model.ParseRegion(request.GetString("region", ""))
		if err != nil {
			return p, err
		}
		p.Region = r
	}

	// JSON numbers arrive as float64; past 2^53 they are no longer exact.
	const maxWholeArg = 1 << 53

	ints := []struct {
		key string
		dst *int
	}{
		{"num_users", &p.NumUsers},
		{"requests_per_day_per_user", &p.RequestsPerDayPerUser},
		{"avg_tokens_per_request", &p.AvgTokensPerRequest},
		{"images_per_day_per_user", &p.ImagesPerDayPerUser},
		{"video_seconds_per_day_per_user", &p.VideoSecondsPerDayPerUser},
		{"project_duration_months", &p.ProjectDurationMonths},
	}
	for _, f := range ints {
		if _, ok := args[f.key]; !ok {
			continue
		}
		v := request.GetFloat(f.key, float64(*f.dst))
		if v != math.Trunc(v) {
			return p, fmt.Errorf("%s must be a whole number, got %v", f.key, v)
		}
		if math.Abs(v) > maxWholeArg {
			return p, fmt.Errorf("%s is out of range, got %v", f.key, v)
		}
		*f.dst = int(v)
	}
	p.UseMedia = request.GetBool("use_media", p.UseMedia)

	return p, params.Validate(p)
}

type evaluation struct {
	Params model.UsageParameters `json:"params"`
	Result model.FootprintResult `json:"result"`
}

func makeEvaluateHandler(opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p, err := usageFromRequest(request, opts.Defaults)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result := opts.Estimator.Evaluate(p)
		opts.Logger.Debug().
			Str("tool", "evaluate_footprint").
			Float64("total_co2_kg", result.TotalCO2Kg).
			Str("grade", string(result.Grade)).
			Msg("evaluated")

		data, err := json.MarshalIndent(evaluation{Params: p, Result: result}, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeTiersHandler(opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := json.MarshalIndent(footprint.Infos(opts.Estimator.Tiers()), "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to encode tiers: %v", err)), nil
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeCertificateHandler(opts Options) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p, err := usageFromRequest(request, opts.Defaults)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		project := request.GetString("project", opts.Project)
		if project == "" {
			project = params.DefaultProjectName
		}

		cert := certificate.New(project, p, opts.Estimator.Evaluate(p), opts.Now())
		return mcp.NewToolResultText(cert.String()), nil
	}
}
