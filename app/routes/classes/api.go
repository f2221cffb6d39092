package classes

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/rubulgithub/College-Payment-Management/app/database"
	"github.com/rubulgithub/College-Payment-Management/app/models"
)

func CreateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	type CreateClassRequest struct {
		ClassName    string          `json:"class_name"`
		YearlyFee    decimal.Decimal `json:"yearly_fee"`
		MonthlyFee   decimal.Decimal `json:"monthly_fee"`
		AdmissionFee decimal.Decimal `json:"admission_fee"`
	}

	var req CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.ClassName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Class name is required")
	}
	if req.YearlyFee.IsNegative() || req.MonthlyFee.IsNegative() || req.AdmissionFee.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "Fee amounts must not be negative")
	}

	class := &models.Class{
		ClassName:    req.ClassName,
		YearlyFee:    req.YearlyFee,
		MonthlyFee:   req.MonthlyFee,
		AdmissionFee: req.AdmissionFee,
	}

	if err := database.CreateClass(db, class); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return fiber.NewError(fiber.StatusBadRequest, "Class name already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create class")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  fiber.StatusCreated,
		"data":    class,
		"message": "Class created successfully",
	})
}

func GetClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	classes, err := database.GetAllClasses(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch classes")
	}
	if classes == nil {
		classes = []*models.Class{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"data":    classes,
		"message": "Classes retrieved successfully",
	})
}

func GetClassByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class id")
	}

	class, err := database.GetClassByID(db, id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class")
	}
	if class == nil {
		return fiber.NewError(fiber.StatusNotFound, "Class not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"data":    class,
		"message": "Class retrieved successfully",
	})
}

func UpdateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class id")
	}

	type UpdateClassRequest struct {
		ClassName    *string          `json:"class_name"`
		YearlyFee    *decimal.Decimal `json:"yearly_fee"`
		MonthlyFee   *decimal.Decimal `json:"monthly_fee"`
		AdmissionFee *decimal.Decimal `json:"admission_fee"`
	}

	var req UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	class, err := database.GetClassByID(db, id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class")
	}
	if class == nil {
		return fiber.NewError(fiber.StatusNotFound, "Class not found")
	}

	if req.ClassName != nil && *req.ClassName != "" {
		class.ClassName = *req.ClassName
	}
	if req.YearlyFee != nil {
		class.YearlyFee = *req.YearlyFee
	}
	if req.MonthlyFee != nil {
		class.MonthlyFee = *req.MonthlyFee
	}
	if req.AdmissionFee != nil {
		class.AdmissionFee = *req.AdmissionFee
	}
	if class.YearlyFee.IsNegative() || class.MonthlyFee.IsNegative() || class.AdmissionFee.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "Fee amounts must not be negative")
	}

	if err := database.UpdateClass(db, class); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return fiber.NewError(fiber.StatusBadRequest, "Class name already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update class")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"data":    class,
		"message": "Class updated successfully",
	})
}

func DeleteClassAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid class id")
	}

	deleted, err := database.DeleteClass(db, id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete class")
	}
	if !deleted {
		return fiber.NewError(fiber.StatusNotFound, "Class not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Class deleted successfully",
	})
}
