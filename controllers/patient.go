package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicdash/backpain-api/db"
	"github.com/clinicdash/backpain-api/models"
	"github.com/clinicdash/backpain-api/utils"
)

// GetAllPatients godoc
// @Summary Get all patients (paginated)
// @Tags patients
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} fiber.Map
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/patients [get]
func GetAllPatients(c *fiber.Ctx) error {
	page, limit := utils.NormalizePage(c.QueryInt("page", 1), c.QueryInt("limit", 10))
	offset := (page - 1) * limit

	var total int64
	if err := db.DB.Model(&models.Patient{}).Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch patients",
			Error:   err.Error(),
		})
	}

	var patients []models.Patient
	if err := db.DB.Order("created_at desc").Offset(offset).Limit(limit).Find(&patients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch patients",
			Error:   err.Error(),
		})
	}

	// Don't send password hashes
	for i := range patients {
		patients[i].Password = ""
	}

	return c.JSON(fiber.Map{
		"patients": patients,
		"pagination": utils.Pagination{
			Total: total,
			Page:  page,
			Pages: utils.PageCount(total, limit),
		},
	})
}

// SearchPatients godoc
// @Summary Search patients by name or email
// @Tags patients
// @Produce json
// @Param query query string true "Search text"
// @Success 200 {array} models.Patient
// @Failure 400 {object} fiber.Map
// @Router /api/patients/search [get]
func SearchPatients(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Search query is required",
		})
	}

	var patients []models.Patient
	pattern := "%" + query + "%"
	if err := db.DB.
		Where("name ILIKE ? OR email ILIKE ?", pattern, pattern).
		Find(&patients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to search patients",
			Error:   err.Error(),
		})
	}

	for i := range patients {
		patients[i].Password = ""
	}

	return c.JSON(patients)
}

// GetPatient godoc
// @Summary Get a patient with their assessments
// @Tags patients
// @Produce json
// @Param id path int true "Patient ID"
// @Success 200 {object} fiber.Map
// @Failure 400 {object} fiber.Map
// @Failure 404 {object} fiber.Map
// @Router /api/patients/{id} [get]
func GetPatient(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid patient ID",
		})
	}

	var patient models.Patient
	if db.DB.First(&patient, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Patient not found",
		})
	}
	patient.Password = ""

	// Assessments are associated by the denormalized email field
	var assessments []models.Assessment
	if err := db.DB.
		Where("user_email = ?", patient.Email).
		Order("created_at desc").
		Find(&assessments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch assessments",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"patient":     patient,
		"assessments": assessments,
	})
}
