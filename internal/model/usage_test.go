package model

import "testing"

func TestParseRegion_LabelsAndAliases(t *testing.T) {
	tests := map[string]Region{
		"France (Low Carbon)": LowCarbon,
		"low-carbon":          LowCarbon,
		"LOW_CARBON":          LowCarbon,
		"USA (Mixed Mix)":     MixedMix,
		"usa":                 MixedMix,
		"Global (Average)":    GlobalAverage,
		"global-average":      GlobalAverage,
	}
	for in, want := range tests {
		got, err := ParseRegion(in)
		if err != nil {
			t.Fatalf("ParseRegion(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseRegion(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := ParseRegion("antarctica"); err == nil {
		t.Error("ParseRegion(antarctica) succeeded, want error")
	}
}

func TestParseModelType_LabelsAndAliases(t *testing.T) {
	for _, mt := range ModelTypes {
		for _, in := range []string{mt.String(), mt.Label()} {
			got, err := ParseModelType(in)
			if err != nil {
				t.Fatalf("ParseModelType(%q): %v", in, err)
			}
			if got != mt {
				t.Errorf("ParseModelType(%q) = %s, want %s", in, got, mt)
			}
		}
	}
	if _, err := ParseModelType("diffusion"); err == nil {
		t.Error("ParseModelType(diffusion) succeeded, want error")
	}
}

func TestRegionTextRoundTrip(t *testing.T) {
	for _, r := range Regions {
		b, err := r.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Region
		if err := back.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if back != r {
			t.Errorf("round trip %s -> %s", r, back)
		}
	}
	if _, err := Region(7).MarshalText(); err == nil {
		t.Error("MarshalText on unknown region succeeded")
	}
}

func TestBreakdownSum(t *testing.T) {
	b := Breakdown{TextCO2Kg: 1.5, TrainingCO2Kg: 5000, MediaCO2Kg: 0.5}
	if b.Sum() != 5002 {
		t.Errorf("Sum = %v, want 5002", b.Sum())
	}
}
