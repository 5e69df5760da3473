package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicdash/backpain-api/db"
	"github.com/clinicdash/backpain-api/models"
	"github.com/clinicdash/backpain-api/utils"
)

// CreateAssessment godoc
// @Summary Submit a new pain assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Success 200 {object} fiber.Map
// @Failure 400 {object} fiber.Map
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/assessments [post]
func CreateAssessment(c *fiber.Ctx) error {
	input := new(utils.AssessmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cannot parse JSON",
		})
	}

	if errs := utils.ValidateAssessment(input); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid assessment data",
			"errors":  errs,
		})
	}

	doctorID := c.Locals("doctorID").(uint)

	assessment := models.Assessment{
		UserInfo: models.UserInfo{
			ID:    doctorID,
			Name:  input.UserInfo.Name,
			Email: input.UserInfo.Email,
		},
		PainLevel:         input.PainLevel,
		PainDuration:      input.PainDuration,
		PainDescription:   input.PainDescription,
		MedicalConditions: input.MedicalConditions,
		PainLocations:     input.PainLocations,
		Treatments:        input.Treatments,
	}

	if err := db.DB.Create(&assessment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error creating assessment",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"assessment": assessment,
		"message":    "Assessment created successfully",
	})
}

// GetAllAssessments godoc
// @Summary Get all assessments (paginated, newest first)
// @Tags assessments
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} fiber.Map
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/assessments [get]
func GetAllAssessments(c *fiber.Ctx) error {
	page, limit := utils.NormalizePage(c.QueryInt("page", 1), c.QueryInt("limit", 10))
	offset := (page - 1) * limit

	var total int64
	if err := db.DB.Model(&models.Assessment{}).Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch assessments",
			Error:   err.Error(),
		})
	}

	var assessments []models.Assessment
	if err := db.DB.Order("created_at desc").Offset(offset).Limit(limit).Find(&assessments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch assessments",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"assessments": assessments,
		"pagination": utils.Pagination{
			Total: total,
			Page:  page,
			Pages: utils.PageCount(total, limit),
		},
	})
}

// GetRecentAssessments godoc
// @Summary Get the most recent assessments
// @Tags assessments
// @Produce json
// @Param limit query int false "Max records"
// @Success 200 {array} models.Assessment
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/assessments/recent [get]
func GetRecentAssessments(c *fiber.Ctx) error {
	limit := utils.NormalizeLimit(c.QueryInt("limit", 10))

	var assessments []models.Assessment
	if err := db.DB.Order("created_at desc").Limit(limit).Find(&assessments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch assessments",
			Error:   err.Error(),
		})
	}

	return c.JSON(assessments)
}

// GetAssessmentsByEmail godoc
// @Summary Get all assessments submitted for a patient email
// @Tags assessments
// @Produce json
// @Param email path string true "Patient email"
// @Success 200 {array} models.Assessment
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/assessments/user/{email} [get]
func GetAssessmentsByEmail(c *fiber.Ctx) error {
	email := c.Params("email")

	var assessments []models.Assessment
	if err := db.DB.
		Where("user_email = ?", email).
		Order("created_at desc").
		Find(&assessments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch assessments",
			Error:   err.Error(),
		})
	}

	return c.JSON(assessments)
}

// GetAssessment godoc
// @Summary Get an assessment by ID
// @Tags assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} models.Assessment
// @Failure 400 {object} fiber.Map
// @Failure 404 {object} fiber.Map
// @Router /api/assessments/{id} [get]
func GetAssessment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid assessment ID",
		})
	}

	var assessment models.Assessment
	if db.DB.First(&assessment, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Assessment not found",
		})
	}

	return c.JSON(assessment)
}
