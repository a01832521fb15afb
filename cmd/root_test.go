package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/greenscore/internal/model"
	"github.com/theirongolddev/greenscore/internal/params"

	"github.com/spf13/cobra"
)

// testCommand returns a command carrying the usage flags, isolated from
// rootCmd so each test controls which flags are marked changed.
func testCommand(t *testing.T, set map[string]string) *cobra.Command {
	t.Helper()
	resetFlags()

	c := &cobra.Command{Use: "test"}
	f := c.Flags()
	f.StringVar(&flagProject, "project", "", "")
	f.StringVar(&flagModel, "model", "", "")
	f.StringVar(&flagRegion, "region", "", "")
	f.IntVar(&flagUsers, "users", 0, "")
	f.IntVar(&flagRequests, "requests", 0, "")
	f.IntVar(&flagTokens, "tokens", 0, "")
	f.BoolVar(&flagMedia, "media", false, "")
	f.IntVar(&flagImages, "images", 0, "")
	f.IntVar(&flagVideo, "video", 0, "")
	f.IntVar(&flagMonths, "months", 0, "")

	for name, val := range set {
		if err := f.Set(name, val); err != nil {
			t.Fatalf("set --%s: %v", name, err)
		}
	}
	return c
}

func resetFlags() {
	flagConfig, flagScenario, flagProject, flagModel, flagRegion = "", "", "", "", ""
	flagUsers, flagRequests, flagTokens, flagImages, flagVideo, flagMonths = 0, 0, 0, 0, 0, 0
	flagMedia = false
}

// isolateConfig points the config at an empty temp dir.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("GREENSCORE_CONFIG", filepath.Join(dir, "config.toml"))
	return dir
}

func TestResolveInputs_DefaultsWithoutFlags(t *testing.T) {
	isolateConfig(t)
	c := testCommand(t, nil)

	in, err := resolveInputs(c)
	if err != nil {
		t.Fatalf("resolveInputs: %v", err)
	}
	if in.usage != model.DefaultUsage() {
		t.Errorf("usage = %+v, want defaults", in.usage)
	}
	if in.project != params.DefaultProjectName {
		t.Errorf("project = %q, want %q", in.project, params.DefaultProjectName)
	}
}

func TestResolveInputs_FlagsOverrideScenario(t *testing.T) {
	dir := isolateConfig(t)
	scenario := filepath.Join(dir, "plan.yaml")
	doc := "project: Support Bot\nusage:\n  num_users: 2000\n  region: usa\n"
	if err := os.WriteFile(scenario, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	c := testCommand(t, map[string]string{"users": "1500", "model": "finetune"})
	flagScenario = scenario

	in, err := resolveInputs(c)
	if err != nil {
		t.Fatalf("resolveInputs: %v", err)
	}
	if in.project != "Support Bot" {
		t.Errorf("project = %q, want %q", in.project, "Support Bot")
	}
	if in.usage.NumUsers != 1500 {
		t.Errorf("NumUsers = %d, want 1500", in.usage.NumUsers)
	}
	if in.usage.Region != model.MixedMix {
		t.Errorf("Region = %v, want %v", in.usage.Region, model.MixedMix)
	}
	if in.usage.ModelType != model.FineTuned {
		t.Errorf("ModelType = %v, want %v", in.usage.ModelType, model.FineTuned)
	}
}

func TestResolveInputs_ImagesImplyMedia(t *testing.T) {
	isolateConfig(t)
	c := testCommand(t, map[string]string{"images": "4"})

	in, err := resolveInputs(c)
	if err != nil {
		t.Fatalf("resolveInputs: %v", err)
	}
	if !in.usage.UseMedia || in.usage.ImagesPerDayPerUser != 4 {
		t.Errorf("usage = %+v, want media on with 4 images", in.usage)
	}
}

func TestResolveInputs_Rejects(t *testing.T) {
	isolateConfig(t)

	tests := []struct {
		name string
		set  map[string]string
		want string
	}{
		{"users out of range", map[string]string{"users": "5"}, "num_users"},
		{"bad model", map[string]string{"model": "quantum"}, "--model"},
		{"bad region", map[string]string{"region": "moon"}, "--region"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCommand(t, tt.set)
			_, err := resolveInputs(c)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func sampleEvaluation() evaluation {
	usage := model.DefaultUsage()
	usage.UseMedia = true
	return evaluation{
		Project: "Green Bot",
		Params:  usage,
		Result: model.FootprintResult{
			TotalCO2Kg:    1234,
			Grade:         model.GradeB,
			DecisionLabel: "GO • MANAGED IMPACT",
			ColorToken:    "#66BB6A",
			Breakdown:     model.Breakdown{TextCO2Kg: 1000, MediaCO2Kg: 234},
		},
	}
}

func TestWriteEvaluation_Formats(t *testing.T) {
	ev := sampleEvaluation()

	tests := []struct {
		format string
		want   []string
	}{
		{"json", []string{`"project": "Green Bot"`, `"grade": "B"`, `"model_type": "inference"`}},
		{"yaml", []string{"project: Green Bot", "grade: B", "region: low-carbon"}},
		{"text", []string{"GREENSCORE  Green Bot", "MANAGED IMPACT", "Total Project", "Text (LLM)", "energy per request"}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeEvaluation(&buf, ev, tt.format, false); err != nil {
				t.Fatalf("writeEvaluation: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output missing %q:\n%s", w, buf.String())
				}
			}
		})
	}
}

func TestWriteEvaluation_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := writeEvaluation(&buf, sampleEvaluation(), "xml", false); err == nil {
		t.Error("expected error for unknown format")
	}
}
