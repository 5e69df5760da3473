package models

import (
	"time"
)

// Patient records are created by the patient-facing intake app, not
// through this API. Doctors only read and search them.
type Patient struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"unique"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
