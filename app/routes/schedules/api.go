package schedules

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rubulgithub/College-Payment-Management/app/database"
	"github.com/rubulgithub/College-Payment-Management/app/models"
)

var validate = validator.New()

type GenerateSchedulesRequest struct {
	Month int `json:"month" validate:"required,min=1,max=12"`
	Year  int `json:"year" validate:"required,min=2000"`
}

// GenerateSchedulesAPI creates an unpaid schedule row for every enrolled
// student for the given month. Students that already have a row for that
// month keep their existing one.
func GenerateSchedulesAPI(c *fiber.Ctx, db *sql.DB) error {
	var req GenerateSchedulesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	total, err := database.CountStudents(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	if total == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No students found")
	}

	created, err := database.GenerateSchedules(db, req.Month, req.Year)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate schedules")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": fiber.StatusCreated,
		"data": fiber.Map{
			"month":    req.Month,
			"year":     req.Year,
			"created":  created,
			"students": total,
		},
		"message": "Monthly fee schedules generated",
	})
}

// GetScheduleByStudentAPI returns a student's schedule history, most
// recent month first.
func GetScheduleByStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")
	if _, err := uuid.Parse(studentID); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	schedules, err := database.GetSchedulesByStudent(db, studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch schedules")
	}
	if len(schedules) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No fee schedules found for this student")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"data":    schedules,
		"message": "Schedules retrieved successfully",
	})
}

type UpdateScheduleStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateScheduleStatusAPI sets a schedule row's status directly. Statuses
// are not derived from payments, the caller decides.
func UpdateScheduleStatusAPI(c *fiber.Ctx, db *sql.DB) error {
	scheduleID := c.Params("scheduleId")
	if _, err := uuid.Parse(scheduleID); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid schedule id")
	}

	var req UpdateScheduleStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if !models.ValidScheduleStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid status")
	}

	schedule, err := database.UpdateScheduleStatus(db, scheduleID, models.ScheduleStatus(req.Status))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update schedule")
	}
	if schedule == nil {
		return fiber.NewError(fiber.StatusNotFound, "Schedule not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"data":    schedule,
		"message": "Schedule updated successfully",
	})
}
