package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/clinicdash/backpain-api/db"
	"github.com/clinicdash/backpain-api/models"
	"github.com/clinicdash/backpain-api/utils"
)

// InvalidCredentialsMessage is returned for every failed login, whether
// the email is unknown or the password is wrong, so accounts can't be
// enumerated from the response.
const InvalidCredentialsMessage = "Invalid Credentials"

// isDuplicateEmail reports whether err is the unique-constraint
// violation raised when two registrations race on the same email.
func isDuplicateEmail(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Register handles doctor registration
func Register(c *fiber.Ctx) error {
	input := new(utils.RegisterInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cannot parse JSON",
		})
	}

	if errs := utils.ValidateRegister(input); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid registration data",
			"errors":  errs,
		})
	}

	// Check if doctor already exists
	var existing models.Doctor
	if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Doctor already exists",
		})
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to hash password",
		})
	}

	doctor := models.Doctor{
		Name:      input.Name,
		Email:     input.Email,
		Password:  string(hashedPassword),
		Specialty: input.Specialty,
		Role:      "doctor",
	}

	if err := db.DB.Create(&doctor).Error; err != nil {
		// The email check above can race with a concurrent
		// registration; the unique index settles the loser here
		if isDuplicateEmail(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Doctor already exists",
			})
		}
		log.Printf("Error creating doctor: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error during registration",
		})
	}

	token, err := utils.GenerateToken(doctor.ID, doctor.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creating authentication token",
		})
	}

	return c.JSON(fiber.Map{
		"token":  token,
		"doctor": doctor.PublicProfile(),
	})
}

// Login handles doctor authentication
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cannot parse JSON",
		})
	}

	var doctor models.Doctor
	if db.DB.Where("email = ?", input.Email).First(&doctor).RowsAffected == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": InvalidCredentialsMessage,
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doctor.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": InvalidCredentialsMessage,
		})
	}

	// Update last login timestamp
	doctor.LastLogin = time.Now()
	if err := db.DB.Model(&doctor).Update("last_login", doctor.LastLogin).Error; err != nil {
		log.Printf("Error updating last login for %s: %v", doctor.Email, err)
	}

	token, err := utils.GenerateToken(doctor.ID, doctor.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creating authentication token",
		})
	}

	return c.JSON(fiber.Map{
		"token":  token,
		"doctor": doctor.PublicProfile(),
	})
}

// GetMe returns the current doctor's full profile
func GetMe(c *fiber.Ctx) error {
	doctorID := c.Locals("doctorID").(uint)

	var doctor models.Doctor
	if db.DB.First(&doctor, doctorID).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Doctor not found",
		})
	}

	// Don't send password
	doctor.Password = ""

	return c.JSON(doctor)
}

// UpdateProfile updates the current doctor's name and specialty
func UpdateProfile(c *fiber.Ctx) error {
	doctorID := c.Locals("doctorID").(uint)

	type ProfileInput struct {
		Name      string `json:"name"`
		Specialty string `json:"specialty"`
	}

	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cannot parse JSON",
		})
	}

	var doctor models.Doctor
	if db.DB.First(&doctor, doctorID).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Doctor not found",
		})
	}

	if input.Name != "" {
		doctor.Name = input.Name
	}
	if input.Specialty != "" {
		doctor.Specialty = input.Specialty
	}

	if err := db.DB.Save(&doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update profile",
		})
	}

	doctor.Password = ""
	return c.JSON(doctor)
}

// UploadProfilePicture stores the doctor's avatar in Cloudinary
func UploadProfilePicture(c *fiber.Ctx) error {
	doctorID := c.Locals("doctorID").(uint)

	var doctor models.Doctor
	if db.DB.First(&doctor, doctorID).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Doctor not found",
		})
	}

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Profile picture file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("doctor-%d", doctor.ID), "avatars")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to upload profile picture",
		})
	}

	doctor.AvatarURL = url
	if err := db.DB.Model(&doctor).Update("avatar_url", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to save profile picture",
		})
	}

	return c.JSON(fiber.Map{
		"avatar_url": url,
	})
}
