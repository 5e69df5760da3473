package models

import (
	"reflect"
	"testing"
)

func TestIntensityScore(t *testing.T) {
	cases := map[string]int{
		"Mild":     1,
		"Moderate": 2,
		"Severe":   3,
		"":         0,
		"extreme":  0,
	}
	for intensity, want := range cases {
		if got := IntensityScore(intensity); got != want {
			t.Errorf("IntensityScore(%q) = %d, want %d", intensity, got, want)
		}
	}
}

func TestPainLocations_ValueScanRoundTrip(t *testing.T) {
	locations := PainLocations{
		{Area: "Lower Back", Side: "Left", Intensity: "Severe", Type: "Sharp"},
		{Area: "Leg", Side: "Right", Intensity: "Mild", Type: "Radiating"},
	}

	value, err := locations.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded PainLocations
	if err := decoded.Scan(value); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(locations, decoded) {
		t.Errorf("round trip mismatch: %v != %v", locations, decoded)
	}
}

func TestMedicalConditions_ValueScanRoundTrip(t *testing.T) {
	conditions := MedicalConditions{
		HerniatedDisc:   true,
		Scoliosis:       true,
		OtherConditions: "mild osteoporosis",
	}

	value, err := conditions.Value()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded MedicalConditions
	if err := decoded.Scan([]byte(value.(string))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if decoded != conditions {
		t.Errorf("round trip mismatch: %v != %v", decoded, conditions)
	}
}

func TestTreatments_ScanNil(t *testing.T) {
	var treatments Treatments
	if err := treatments.Scan(nil); err != nil {
		t.Errorf("nil scan should be a no-op, got %v", err)
	}
}
