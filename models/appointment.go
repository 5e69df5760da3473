package models

import (
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no-show"
)

type Appointment struct {
	gorm.Model
	PatientID uint              `json:"patient_id"`
	Patient   Patient           `json:"patient" gorm:"foreignKey:PatientID"`
	DoctorID  uint              `json:"doctor_id"`
	Doctor    Doctor            `json:"doctor,omitempty" gorm:"foreignKey:DoctorID"`
	Date      string            `json:"date"` // Format "YYYY-MM-DD"
	Time      string            `json:"time"` // Format "HH:MM" in 24h
	Type      string            `json:"type"`
	Notes     string            `json:"notes"`
	Status    AppointmentStatus `json:"status"`
}

// OwnedBy reports whether doctorID is the practitioner who created
// the appointment. Only the owner may mutate or delete it.
func (a *Appointment) OwnedBy(doctorID uint) bool {
	return a.DoctorID == doctorID
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	return nil
}

// ValidStatus reports whether s is one of the four appointment statuses
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}
