package utils

import (
	"testing"

	"github.com/clinicdash/backpain-api/models"
)

func validAssessmentInput() *AssessmentInput {
	input := &AssessmentInput{
		PainLevel:       5,
		PainDuration:    "3-6 months",
		PainDescription: "Dull ache in the lower back",
		PainLocations: []models.PainLocation{
			{Area: "Lower Back", Side: "Left", Intensity: "Moderate", Type: "Dull"},
		},
	}
	input.UserInfo.Name = "John Smith"
	input.UserInfo.Email = "john@example.com"
	return input
}

func TestValidateRegister_ShortPassword(t *testing.T) {
	input := &RegisterInput{
		Name:      "Dr. Adams",
		Email:     "adams@clinic.com",
		Password:  "12345",
		Specialty: "Orthopedics",
	}

	errs := ValidateRegister(input)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Param != "password" {
		t.Errorf("expected password error, got %s", errs[0].Param)
	}
}

func TestValidateRegister_Valid(t *testing.T) {
	input := &RegisterInput{
		Name:      "Dr. Adams",
		Email:     "adams@clinic.com",
		Password:  "123456",
		Specialty: "Orthopedics",
	}

	if errs := ValidateRegister(input); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestValidateRegister_AllMissing(t *testing.T) {
	errs := ValidateRegister(&RegisterInput{})
	if len(errs) != 4 {
		t.Errorf("expected 4 errors, got %d: %v", len(errs), errs)
	}
}

func TestValidateRegister_BadEmail(t *testing.T) {
	input := &RegisterInput{
		Name:      "Dr. Adams",
		Email:     "not-an-email",
		Password:  "123456",
		Specialty: "Orthopedics",
	}

	errs := ValidateRegister(input)
	if len(errs) != 1 || errs[0].Param != "email" {
		t.Errorf("expected a single email error, got %v", errs)
	}
}

func TestValidateAssessment_PainLevelBoundaries(t *testing.T) {
	for _, level := range []int{0, 10} {
		input := validAssessmentInput()
		input.PainLevel = level
		if errs := ValidateAssessment(input); len(errs) != 0 {
			t.Errorf("pain level %d should be accepted, got %v", level, errs)
		}
	}

	for _, level := range []int{-1, 11} {
		input := validAssessmentInput()
		input.PainLevel = level
		errs := ValidateAssessment(input)
		if len(errs) != 1 || errs[0].Param != "painLevel" {
			t.Errorf("pain level %d should be rejected, got %v", level, errs)
		}
	}
}

func TestValidateAssessment_EmptyPainLocations(t *testing.T) {
	input := validAssessmentInput()
	input.PainLocations = nil

	errs := ValidateAssessment(input)
	if len(errs) != 1 || errs[0].Param != "painLocations" {
		t.Errorf("expected a painLocations error, got %v", errs)
	}
}

func TestValidateAssessment_SingleLocationAccepted(t *testing.T) {
	if errs := ValidateAssessment(validAssessmentInput()); len(errs) != 0 {
		t.Errorf("one valid pain location should be enough, got %v", errs)
	}
}

func TestValidateAssessment_IncompleteLocation(t *testing.T) {
	input := validAssessmentInput()
	input.PainLocations = []models.PainLocation{{Area: "Neck"}}

	errs := ValidateAssessment(input)
	if len(errs) != 2 {
		t.Fatalf("expected side and intensity errors, got %v", errs)
	}
}
