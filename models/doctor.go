package models

import (
	"time"
)

type Doctor struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"unique"`
	Password  string    `json:"password,omitempty"`
	Role      string    `json:"role" gorm:"default:doctor"`
	Specialty string    `json:"specialty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	LastLogin time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicProfile returns the fields that are safe to send to clients
func (d *Doctor) PublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":        d.ID,
		"name":      d.Name,
		"email":     d.Email,
		"role":      d.Role,
		"specialty": d.Specialty,
	}
}
