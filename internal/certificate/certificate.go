// Package certificate formats an estimate as a downloadable plain-text
// certificate.
package certificate

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/greenscore/internal/cli"
	"github.com/theirongolddev/greenscore/internal/model"
)

const (
	title     = "GREENSCORE AI FOOTPRINT - CERTIFICATE"
	generator = "Generated by GreenScore AI Footprint Tool"
	rule      = "--------------------------------------------------"

	// DateLayout is the timestamp format printed on the certificate.
	DateLayout = "2006-01-02 15:04"
)

// Certificate is one issued estimate together with its inputs.
type Certificate struct {
	ID       uuid.UUID
	Project  string
	IssuedAt time.Time
	Usage    model.UsageParameters
	Result   model.FootprintResult
}

// New issues a certificate with a fresh random ID.
func New(project string, usage model.UsageParameters, result model.FootprintResult, at time.Time) Certificate {
	return Certificate{
		ID:       uuid.New(),
		Project:  project,
		IssuedAt: at,
		Usage:    usage,
		Result:   result,
	}
}

// String renders the certificate text.
func (c Certificate) String() string {
	var b strings.Builder
	_, _ = c.WriteTo(&b)
	return b.String()
}

// WriteTo writes the certificate text to w.
func (c Certificate) WriteTo(w io.Writer) (int64, error) {
	r := c.Result
	u := c.Usage

	lines := []string{
		title,
		rule,
		"Project Name: " + c.Project,
		"Date: " + c.IssuedAt.Format(DateLayout),
		"Certificate ID: " + c.ID.String(),
		rule,
		"",
		fmt.Sprintf("DECISION: %s (Score %s)", r.DecisionLabel, r.Grade),
		"",
		"KEY METRICS:",
		"- Total Carbon Footprint: " + cli.FormatWhole(r.TotalCO2Kg) + " kg CO2eq",
		"- Water Consumption: " + cli.FormatWhole(r.TotalWaterLiters) + " L",
		"- Car Equivalent: " + cli.FormatWhole(r.CarEquivalentKm) + " km",
		"",
		"CONFIGURATION:",
		fmt.Sprintf("- Users: %d", u.NumUsers),
		"- Location: " + u.Region.Label(),
		"- Multimodal: " + yesNo(u.UseMedia),
		"- Model Type: " + u.ModelType.Label(),
		fmt.Sprintf("- Duration: %d months", u.ProjectDurationMonths),
		"",
		rule,
		generator,
	}

	n, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return int64(n), err
}

// FileName returns the download name for a project's certificate.
func FileName(project string) string {
	name := strings.ReplaceAll(strings.TrimSpace(project), " ", "_")
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == 0 {
			return '_'
		}
		return r
	}, name)
	if name == "" {
		name = "project"
	}
	return "GreenScore_" + name + ".txt"
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
