package db

import (
	"fmt"
	"log"

	"github.com/clinicdash/backpain-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.Doctor{},
		&models.Patient{},
		&models.Assessment{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// The patient detail view joins assessments by email
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_assessments_user_email ON assessments (user_email)").Error; err != nil {
		log.Fatal("Failed to create assessment email index: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
