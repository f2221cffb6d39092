package reports

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rubulgithub/College-Payment-Management/app/config"
)

// GetFeeReportAPI returns total collected fees in a window with a per-class
// breakdown. The window comes from date, month+year or year, in that order
// of precedence.
func GetFeeReportAPI(c *fiber.Ctx, db *sql.DB) error {
	start, end, err := PaymentWindow(c.Query("date"), c.Query("month"), c.Query("year"))
	if err != nil {
		if errors.Is(err, ErrNoWindow) {
			return fiber.NewError(fiber.StatusBadRequest, "Please provide date or month and year or only year")
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	rows, err := GetCollectedByClass(db, start, end, c.Query("class_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee report")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"data":    BuildCollectedReport(rows),
		"message": "Fee report generated",
	})
}

// GetRemainingFeeReportAPI returns expected versus collected fees per class
// for the window from January 1 of the current year through now.
func GetRemainingFeeReportAPI(c *fiber.Ctx, db *sql.DB) error {
	now := time.Now()
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.Local)

	rows, err := GetRemainingRows(db, start, now, c.Query("class_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch remaining fee report")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"data":    BuildRemainingReport(rows, now.Year()),
		"message": "Remaining fee report generated",
	})
}

// GetPendingPaymentsReportAPI returns per-class and per-student pending
// amounts for the current calendar year.
func GetPendingPaymentsReportAPI(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Query("class_id")
	now := time.Now()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.Local)
	yearEnd := yearStart.AddDate(1, 0, 0)

	classes, err := GetClassFeeRows(db, classID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch classes")
	}
	students, err := GetStudentRows(db, classID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	payments, err := GetPaymentSums(db, yearStart, yearEnd, classID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}
	schedules, err := GetScheduleStatuses(db, now.Year(), classID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch schedules")
	}

	report := BuildPendingPaymentsReport(classes, students, payments, schedules, now.Year())

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"data":    report,
		"message": "Pending payments report generated successfully",
	})
}

// GetStudentsWithDuesAPI returns students whose accrual-to-date dues are not
// fully covered, with counts by payment status.
func GetStudentsWithDuesAPI(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Query("class_id")
	now := time.Now()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.Local)
	yearEnd := yearStart.AddDate(1, 0, 0)

	students, err := GetStudentDuesRows(db, classID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	payments, err := GetStudentPaymentSums(db, yearStart, yearEnd, classID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}
	scheduleAggs, err := GetScheduleAggs(db, now.Year(), classID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch schedules")
	}

	report := BuildStudentsWithDuesReport(students, payments, scheduleAggs, now.Year(), int(now.Month()))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"data":    report,
		"message": "Students with pending dues retrieved successfully",
	})
}

// GetFeeSummaryAPI returns collected totals for today, the current month and
// the current year.
func GetFeeSummaryAPI(c *fiber.Ctx, cfg *config.Config) error {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.Local)

	today, err := GetCollectedInWindow(cfg.DB, todayStart, todayStart.AddDate(0, 0, 1))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee summary")
	}
	thisMonth, err := GetCollectedInWindow(cfg.DB, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee summary")
	}
	thisYear, err := GetCollectedInWindow(cfg.DB, yearStart, yearStart.AddDate(1, 0, 0))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch fee summary")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"data":    BuildFeeSummary(today, thisMonth, thisYear, cfg.Currency),
		"message": "Fee summary retrieved successfully",
	})
}
