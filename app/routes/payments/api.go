package payments

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rubulgithub/College-Payment-Management/app/database"
	"github.com/rubulgithub/College-Payment-Management/app/models"
)

var validate = validator.New()

type RecordPaymentRequest struct {
	StudentID   string          `json:"student_id" validate:"required,uuid"`
	ClassID     string          `json:"class_id" validate:"required,uuid"`
	AmountPaid  decimal.Decimal `json:"amount_paid" validate:"required"`
	Purpose     string          `json:"purpose" validate:"required,oneof=monthly admission"`
	PaymentMode *string         `json:"payment_mode"`
	PaymentDate *time.Time      `json:"payment_date"`
	Remarks     *string         `json:"remarks"`
}

// RecordPaymentAPI records an admission or monthly fee transaction. The
// class id is stored as supplied and not checked against the student's
// current class.
func RecordPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.AmountPaid.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "Amount paid must not be negative")
	}

	exists, err := database.StudentExists(db, req.StudentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	if !exists {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	paymentDate := time.Now()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	payment := &models.FeePayment{
		StudentID:   req.StudentID,
		ClassID:     req.ClassID,
		AmountPaid:  req.AmountPaid,
		PaymentMode: req.PaymentMode,
		Purpose:     models.PaymentPurpose(req.Purpose),
		PaymentDate: paymentDate,
		Remarks:     req.Remarks,
	}

	if err := database.CreatePayment(db, payment); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  fiber.StatusCreated,
		"data":    payment,
		"message": "Payment recorded successfully",
	})
}

// GetPaymentsAPI returns a paginated, filtered list of payments.
func GetPaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filters := database.PaymentFilters{
		Purpose: c.Query("purpose"),
		ClassID: c.Query("class_id"),
		Limit:   limit,
		Offset:  (page - 1) * limit,
	}

	if filters.Purpose != "" &&
		filters.Purpose != string(models.PurposeMonthly) &&
		filters.Purpose != string(models.PurposeAdmission) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid purpose filter")
	}

	if start := c.Query("start_date"); start != "" {
		if end := c.Query("end_date"); end != "" {
			startDate, err := time.ParseInLocation("2006-01-02", start, time.Local)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD")
			}
			endDate, err := time.ParseInLocation("2006-01-02", end, time.Local)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD")
			}
			filters.StartDate = &startDate
			filters.EndDate = &endDate
		}
	}

	payments, total, err := database.GetPayments(db, filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}
	if payments == nil {
		payments = []*models.FeePayment{}
	}

	pages := total / limit
	if total%limit > 0 {
		pages++
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": fiber.StatusOK,
		"data": fiber.Map{
			"payments": payments,
			"total":    total,
			"page":     page,
			"pages":    pages,
		},
		"message": "Payments retrieved successfully",
	})
}

// GetPaymentsByStudentAPI returns a student's full payment history.
func GetPaymentsByStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")
	if _, err := uuid.Parse(studentID); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	exists, err := database.StudentExists(db, studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	if !exists {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	payments, err := database.GetPaymentsByStudent(db, studentID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}
	if payments == nil {
		payments = []*models.FeePayment{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"data":    payments,
		"message": "Payments retrieved successfully",
	})
}

// DeletePaymentAPI removes a payment record.
func DeletePaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment id")
	}

	deleted, err := database.DeletePayment(db, id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete payment")
	}
	if !deleted {
		return fiber.NewError(fiber.StatusNotFound, "Payment not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Payment deleted successfully",
	})
}
