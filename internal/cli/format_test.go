package cli

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		0:          "0",
		999:        "999",
		1000:       "1,000",
		108000:     "108,000",
		19_200_000: "19,200,000",
		-4185:      "-4,185",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatWhole(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{279.00000000000006, "279"},
		{2325.0000000000005, "2,325"},
		{4184.6, "4,185"},
		{0.4, "0"},
		{math.Inf(1), "+Inf"},
	}
	for _, tt := range tests {
		if got := FormatWhole(tt.in); got != tt.want {
			t.Errorf("FormatWhole(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatKg(t *testing.T) {
	if got := FormatKg(279); got != "279 kg" {
		t.Errorf("FormatKg(279) = %q", got)
	}
	if got := FormatKg(9_999); got != "9,999 kg" {
		t.Errorf("FormatKg(9999) = %q", got)
	}
	if got := FormatKg(19_200_000); got != "19,200 t" {
		t.Errorf("FormatKg(19.2M) = %q", got)
	}
}

func TestFormatDeltaKg(t *testing.T) {
	if got := FormatDeltaKg(4185, 279); got != "+3,906 kg" {
		t.Errorf("FormatDeltaKg = %q", got)
	}
	if got := FormatDeltaKg(279, 4185); got != "-3,906 kg" {
		t.Errorf("FormatDeltaKg = %q", got)
	}
}

func TestFormatTokens(t *testing.T) {
	if got := FormatTokens(900_000_000); got != "900.0M" {
		t.Errorf("FormatTokens = %q", got)
	}
	if got := FormatTokens(1_234_567_890); got != "1.2B" {
		t.Errorf("FormatTokens = %q", got)
	}
}
