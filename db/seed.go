package db

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/clinicdash/backpain-api/models"
)

// Seed fills the database with a handful of sample patients and
// assessments so the dashboard has something to show after a fresh
// install. Safe to run repeatedly; existing emails are skipped.
func Seed() {
	Migrate()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash sample password: ", err)
	}

	patients := []models.Patient{
		{Name: "John Smith", Email: "john.smith@example.com", Password: string(hashed)},
		{Name: "Maria Garcia", Email: "maria.garcia@example.com", Password: string(hashed)},
		{Name: "Wei Chen", Email: "wei.chen@example.com", Password: string(hashed)},
		{Name: "Fatima Khan", Email: "fatima.khan@example.com", Password: string(hashed)},
	}

	for i := range patients {
		var existing models.Patient
		if DB.Where("email = ?", patients[i].Email).First(&existing).RowsAffected > 0 {
			patients[i] = existing
			continue
		}
		if err := DB.Create(&patients[i]).Error; err != nil {
			log.Fatal("Failed to seed patient: ", err)
		}
	}

	assessments := []models.Assessment{
		{
			UserInfo:        models.UserInfo{ID: patients[0].ID, Name: patients[0].Name, Email: patients[0].Email},
			PainLevel:       7,
			PainDuration:    "3-6 months",
			PainDescription: "Sharp pain in the lower back, worse in the morning",
			MedicalConditions: models.MedicalConditions{
				HerniatedDisc: true,
			},
			PainLocations: models.PainLocations{
				{Area: "Lower Back", Side: "Left", Intensity: "Severe", Type: "Sharp"},
				{Area: "Leg", Side: "Left", Intensity: "Moderate", Type: "Radiating"},
			},
			Treatments: models.Treatments{
				Medication:      true,
				PhysicalTherapy: true,
				Notes:           "Ibuprofen twice daily, PT once a week",
			},
		},
		{
			UserInfo:        models.UserInfo{ID: patients[1].ID, Name: patients[1].Name, Email: patients[1].Email},
			PainLevel:       4,
			PainDuration:    "Less than 1 month",
			PainDescription: "Dull ache after long periods of sitting",
			PainLocations: models.PainLocations{
				{Area: "Upper Back", Side: "Center", Intensity: "Mild", Type: "Dull"},
			},
			Treatments: models.Treatments{
				AlternativeTherapy: true,
				Notes:              "Weekly yoga sessions",
			},
		},
		{
			UserInfo:        models.UserInfo{ID: patients[2].ID, Name: patients[2].Name, Email: patients[2].Email},
			PainLevel:       9,
			PainDuration:    "More than a year",
			PainDescription: "Constant burning pain, limited mobility",
			MedicalConditions: models.MedicalConditions{
				SpinalStenosis: true,
				Scoliosis:      true,
			},
			PainLocations: models.PainLocations{
				{Area: "Lower Back", Side: "Right", Intensity: "Severe", Type: "Burning"},
			},
			Treatments: models.Treatments{
				Medication: true,
				Surgery:    true,
				Notes:      "Scheduled for follow-up surgery consult",
			},
		},
	}

	for i := range assessments {
		var count int64
		DB.Model(&models.Assessment{}).
			Where("user_email = ?", assessments[i].UserInfo.Email).
			Count(&count)
		if count > 0 {
			continue
		}
		assessments[i].CreatedAt = time.Now().AddDate(0, 0, -i)
		if err := DB.Create(&assessments[i]).Error; err != nil {
			log.Fatal("Failed to seed assessment: ", err)
		}
	}

	fmt.Println("✅ Sample data seeded successfully!")
}
