package utils

import (
	"fmt"
	"regexp"

	"github.com/clinicdash/backpain-api/models"
)

// FieldError describes a single failed validation check
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s looks like an email address
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// RegisterInput is the payload for doctor registration
type RegisterInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Specialty string `json:"specialty"`
}

// ValidateRegister checks a registration payload and returns the list
// of failed fields, empty when the payload is acceptable
func ValidateRegister(input *RegisterInput) []FieldError {
	var errs []FieldError

	if input.Name == "" {
		errs = append(errs, FieldError{Param: "name", Msg: "Name is required"})
	}
	if !IsValidEmail(input.Email) {
		errs = append(errs, FieldError{Param: "email", Msg: "Please include a valid email"})
	}
	if len(input.Password) < 6 {
		errs = append(errs, FieldError{Param: "password", Msg: "Please enter a password with 6 or more characters"})
	}
	if input.Specialty == "" {
		errs = append(errs, FieldError{Param: "specialty", Msg: "Specialty is required"})
	}

	return errs
}

// AssessmentInput is the payload for assessment submission
type AssessmentInput struct {
	UserInfo struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"userInfo"`
	PainLevel         int                      `json:"painLevel"`
	PainDuration      string                   `json:"painDuration"`
	PainDescription   string                   `json:"painDescription"`
	MedicalConditions models.MedicalConditions `json:"medicalConditions"`
	PainLocations     []models.PainLocation    `json:"painLocations"`
	Treatments        models.Treatments        `json:"treatments"`
}

// ValidateAssessment checks an assessment payload field by field
func ValidateAssessment(input *AssessmentInput) []FieldError {
	var errs []FieldError

	if input.UserInfo.Name == "" {
		errs = append(errs, FieldError{Param: "userInfo.name", Msg: "Name is required"})
	}
	if !IsValidEmail(input.UserInfo.Email) {
		errs = append(errs, FieldError{Param: "userInfo.email", Msg: "Please include a valid email"})
	}
	if input.PainLevel < 0 || input.PainLevel > 10 {
		errs = append(errs, FieldError{Param: "painLevel", Msg: "Pain level must be between 0 and 10"})
	}
	if input.PainDuration == "" {
		errs = append(errs, FieldError{Param: "painDuration", Msg: "Pain duration is required"})
	}
	if input.PainDescription == "" {
		errs = append(errs, FieldError{Param: "painDescription", Msg: "Pain description is required"})
	}
	if len(input.PainLocations) == 0 {
		errs = append(errs, FieldError{Param: "painLocations", Msg: "At least one pain location is required"})
	}
	for i, loc := range input.PainLocations {
		if loc.Area == "" {
			errs = append(errs, FieldError{Param: fmt.Sprintf("painLocations[%d].area", i), Msg: "Pain area is required"})
		}
		if loc.Side == "" {
			errs = append(errs, FieldError{Param: fmt.Sprintf("painLocations[%d].side", i), Msg: "Pain side is required"})
		}
		if loc.Intensity == "" {
			errs = append(errs, FieldError{Param: fmt.Sprintf("painLocations[%d].intensity", i), Msg: "Pain intensity is required"})
		}
	}

	return errs
}
