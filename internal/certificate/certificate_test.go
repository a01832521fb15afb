package certificate

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/greenscore/internal/footprint"
	"github.com/theirongolddev/greenscore/internal/model"
)

func TestCertificateLayout(t *testing.T) {
	usage := model.DefaultUsage()
	result := footprint.Evaluate(usage)
	at := time.Date(2025, 11, 3, 14, 5, 0, 0, time.UTC)

	c := New("Veolia Secure GPT Assistant", usage, result, at)
	text := c.String()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")

	if lines[0] != "GREENSCORE AI FOOTPRINT - CERTIFICATE" {
		t.Errorf("title = %q", lines[0])
	}
	if lines[len(lines)-1] != "Generated by GreenScore AI Footprint Tool" {
		t.Errorf("trailer = %q", lines[len(lines)-1])
	}

	for _, want := range []string{
		"Project Name: Veolia Secure GPT Assistant",
		"Date: 2025-11-03 14:05",
		"Certificate ID: " + c.ID.String(),
		"DECISION: GO • SUSTAINABLE PROJECT (Score A)",
		"- Total Carbon Footprint: 279 kg CO2eq",
		"- Water Consumption: 108,000 L",
		"- Car Equivalent: 2,325 km",
		"- Users: 500",
		"- Location: France (Low Carbon)",
		"- Multimodal: No",
		"- Model Type: GPT-Standard (Inference)",
		"- Duration: 12 months",
	} {
		if !strings.Contains(text, want+"\n") {
			t.Errorf("certificate missing line %q\n%s", want, text)
		}
	}

	// blocks appear in order
	order := []string{"DECISION:", "KEY METRICS:", "CONFIGURATION:", "Generated by"}
	last := -1
	for _, marker := range order {
		idx := strings.Index(text, marker)
		if idx <= last {
			t.Fatalf("%q out of order", marker)
		}
		last = idx
	}
}

func TestNewAssignsDistinctIDs(t *testing.T) {
	u := model.DefaultUsage()
	r := footprint.Evaluate(u)
	a := New("p", u, r, time.Now())
	b := New("p", u, r, time.Now())
	if a.ID == b.ID {
		t.Fatal("two certificates share an ID")
	}
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"Veolia Secure GPT Assistant": "GreenScore_Veolia_Secure_GPT_Assistant.txt",
		"  trimmed  ":                 "GreenScore_trimmed.txt",
		"a/b":                         "GreenScore_a_b.txt",
		"":                            "GreenScore_project.txt",
	}
	for in, want := range tests {
		if got := FileName(in); got != want {
			t.Errorf("FileName(%q) = %q, want %q", in, got, want)
		}
	}
}
