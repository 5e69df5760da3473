package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// UserInfo is the patient identity snapshot stored on each assessment
type UserInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PainLocation struct {
	Area      string `json:"area"`
	Side      string `json:"side"`
	Intensity string `json:"intensity"` // "Mild", "Moderate" or "Severe"
	Type      string `json:"type"`
}

type PainLocations []PainLocation

// Value implements the driver.Valuer interface
func (p PainLocations) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil // Return as string for JSONB type
}

// Scan implements the sql.Scanner interface
func (p *PainLocations) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal PainLocations: unsupported type %T", value)
	}

	return json.Unmarshal(data, p)
}

type MedicalConditions struct {
	HerniatedDisc     bool   `json:"herniatedDisc"`
	SpinalStenosis    bool   `json:"spinalStenosis"`
	Spondylolisthesis bool   `json:"spondylolisthesis"`
	Scoliosis         bool   `json:"scoliosis"`
	OtherConditions   string `json:"otherConditions"`
}

// Value implements the driver.Valuer interface
func (m MedicalConditions) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (m *MedicalConditions) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal MedicalConditions: unsupported type %T", value)
	}

	return json.Unmarshal(data, m)
}

type Treatments struct {
	Medication         bool   `json:"medication"`
	PhysicalTherapy    bool   `json:"physicalTherapy"`
	Surgery            bool   `json:"surgery"`
	AlternativeTherapy bool   `json:"alternativeTherapy"`
	Notes              string `json:"notes"`
}

// Value implements the driver.Valuer interface
func (t Treatments) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (t *Treatments) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal Treatments: unsupported type %T", value)
	}

	return json.Unmarshal(data, t)
}

// Assessment is a snapshot of a patient's self-reported pain state.
// There is no update route; assessments are immutable after creation.
type Assessment struct {
	ID                uint              `json:"id" gorm:"primaryKey"`
	UserInfo          UserInfo          `json:"userInfo" gorm:"embedded;embeddedPrefix:user_"`
	PainLevel         int               `json:"painLevel"`
	PainDuration      string            `json:"painDuration"`
	PainDescription   string            `json:"painDescription"`
	MedicalConditions MedicalConditions `json:"medicalConditions" gorm:"type:jsonb"`
	PainLocations     PainLocations     `json:"painLocations" gorm:"type:jsonb"`
	Treatments        Treatments        `json:"treatments" gorm:"type:jsonb"`
	CreatedAt         time.Time         `json:"createdAt"`
}

// IntensityScore maps the textual intensity of a pain location to the
// numeric scale used by the dashboard (Mild=1, Moderate=2, Severe=3).
func IntensityScore(intensity string) int {
	switch intensity {
	case "Mild":
		return 1
	case "Moderate":
		return 2
	case "Severe":
		return 3
	default:
		return 0
	}
}
