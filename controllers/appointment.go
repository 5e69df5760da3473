package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicdash/backpain-api/db"
	"github.com/clinicdash/backpain-api/models"
	"github.com/clinicdash/backpain-api/utils"
)

// GetAllAppointments godoc
// @Summary Get the calling doctor's appointments
// @Tags appointments
// @Produce json
// @Success 200 {array} models.Appointment
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/appointments [get]
func GetAllAppointments(c *fiber.Ctx) error {
	doctorID := c.Locals("doctorID").(uint)

	var appointments []models.Appointment
	if err := db.DB.Preload("Patient").
		Where("doctor_id = ?", doctorID).
		Order("date asc, time asc").
		Find(&appointments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
			Error:   err.Error(),
		})
	}

	for i := range appointments {
		appointments[i].Patient.Password = ""
	}

	return c.JSON(appointments)
}

// CreateAppointment godoc
// @Summary Create a new appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Success 200 {object} models.Appointment
// @Failure 400 {object} fiber.Map
// @Failure 404 {object} fiber.Map
// @Router /api/appointments [post]
func CreateAppointment(c *fiber.Ctx) error {
	doctorID := c.Locals("doctorID").(uint)

	type AppointmentInput struct {
		PatientID uint   `json:"patient_id"`
		Date      string `json:"date"`
		Time      string `json:"time"`
		Type      string `json:"type"`
		Notes     string `json:"notes"`
	}

	input := new(AppointmentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cannot parse JSON",
		})
	}

	// Check if patient exists
	var patient models.Patient
	if db.DB.First(&patient, input.PatientID).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Patient not found",
		})
	}

	appointment := models.Appointment{
		PatientID: input.PatientID,
		DoctorID:  doctorID,
		Date:      input.Date,
		Time:      input.Time,
		Type:      input.Type,
		Notes:     input.Notes,
	}

	if err := db.DB.Create(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create appointment",
			Error:   err.Error(),
		})
	}

	patient.Password = ""
	appointment.Patient = patient

	return c.JSON(appointment)
}

// UpdateAppointmentStatus godoc
// @Summary Update an appointment's status
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} fiber.Map
// @Failure 401 {object} fiber.Map
// @Failure 404 {object} fiber.Map
// @Router /api/appointments/{id} [put]
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	doctorID := c.Locals("doctorID").(uint)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid appointment ID",
		})
	}

	type StatusInput struct {
		Status models.AppointmentStatus `json:"status"`
	}

	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cannot parse JSON",
		})
	}

	if !models.ValidStatus(input.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid appointment status",
		})
	}

	var appointment models.Appointment
	if db.DB.First(&appointment, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Appointment not found",
		})
	}

	// Only the doctor who created the appointment may change it
	if !appointment.OwnedBy(doctorID) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Not authorized",
		})
	}

	appointment.Status = input.Status
	if err := db.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update appointment",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Preload("Patient").First(&appointment, appointment.ID).Error; err == nil {
		appointment.Patient.Password = ""
	}

	return c.JSON(appointment)
}

// DeleteAppointment godoc
// @Summary Delete an appointment
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} fiber.Map
// @Failure 400 {object} fiber.Map
// @Failure 401 {object} fiber.Map
// @Failure 404 {object} fiber.Map
// @Router /api/appointments/{id} [delete]
func DeleteAppointment(c *fiber.Ctx) error {
	doctorID := c.Locals("doctorID").(uint)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid appointment ID",
		})
	}

	var appointment models.Appointment
	if db.DB.First(&appointment, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Appointment not found",
		})
	}

	// Only the doctor who created the appointment may remove it
	if !appointment.OwnedBy(doctorID) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Not authorized",
		})
	}

	if err := db.DB.Delete(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete appointment",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Appointment removed",
	})
}
