package students

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/rubulgithub/College-Payment-Management/app/database"
	"github.com/rubulgithub/College-Payment-Management/app/models"
)

var validate = validator.New()

type CreateStudentRequest struct {
	StudentName            string          `json:"student_name" validate:"required"`
	RollNumber             int             `json:"roll_number" validate:"required,min=1"`
	ClassID                string          `json:"class_id" validate:"required,uuid"`
	GuardianName           *string         `json:"guardian_name"`
	PhoneNumber            *string         `json:"phone_number"`
	Address                *string         `json:"address"`
	Gender                 string          `json:"gender" validate:"required,oneof=male female"`
	AdmissionFeePaidAmount decimal.Decimal `json:"admission_fee_paid_amount"`
	BatchYear              int             `json:"batch_year"`
}

func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if req.AdmissionFeePaidAmount.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "Admission fee paid amount must not be negative")
	}

	class, err := database.GetClassByID(db, req.ClassID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class")
	}
	if class == nil {
		return fiber.NewError(fiber.StatusNotFound, "Class not found")
	}

	student := &models.Student{
		StudentName:            req.StudentName,
		RollNumber:             req.RollNumber,
		ClassID:                req.ClassID,
		GuardianName:           req.GuardianName,
		PhoneNumber:            req.PhoneNumber,
		Address:                req.Address,
		Gender:                 models.Gender(req.Gender),
		AdmissionFeePaidAmount: req.AdmissionFeePaidAmount,
		BatchYear:              req.BatchYear,
	}

	if err := database.CreateStudent(db, student); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return fiber.NewError(fiber.StatusBadRequest, "Roll number already exists in this class")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to enroll student")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  fiber.StatusCreated,
		"data":    student,
		"message": "Student enrolled successfully",
	})
}

func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := database.StudentFilters{
		ClassID: c.Query("class_id"),
		Gender:  c.Query("gender"),
		Name:    c.Query("name"),
	}
	if filters.Gender != "" && !validGender(filters.Gender) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid gender filter")
	}

	students, err := database.GetStudents(db, filters)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	if students == nil {
		students = []*models.Student{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"data":    students,
		"message": "Students retrieved successfully",
	})
}

func SearchStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	query := c.Query("query")
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Search query is required")
	}

	students, err := database.SearchStudents(db, query)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to search students")
	}
	if students == nil {
		students = []*models.Student{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"data":    students,
		"message": "Students retrieved successfully",
	})
}

func GetStudentByIDAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	student, err := database.GetStudentByID(db, id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	if student == nil {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"data":    student,
		"message": "Student retrieved successfully",
	})
}

func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	type UpdateStudentRequest struct {
		StudentName            *string          `json:"student_name"`
		RollNumber             *int             `json:"roll_number"`
		ClassID                *string          `json:"class_id" validate:"omitempty,uuid"`
		GuardianName           *string          `json:"guardian_name"`
		PhoneNumber            *string          `json:"phone_number"`
		Address                *string          `json:"address"`
		Gender                 *string          `json:"gender" validate:"omitempty,oneof=male female"`
		AdmissionFeePaidAmount *decimal.Decimal `json:"admission_fee_paid_amount"`
	}

	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	student, err := database.GetStudentByID(db, id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	if student == nil {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	if req.StudentName != nil && *req.StudentName != "" {
		student.StudentName = *req.StudentName
	}
	if req.RollNumber != nil {
		student.RollNumber = *req.RollNumber
	}
	if req.ClassID != nil {
		class, err := database.GetClassByID(db, *req.ClassID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class")
		}
		if class == nil {
			return fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		student.ClassID = *req.ClassID
	}
	if req.GuardianName != nil {
		student.GuardianName = req.GuardianName
	}
	if req.PhoneNumber != nil {
		student.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		student.Address = req.Address
	}
	if req.Gender != nil {
		student.Gender = models.Gender(*req.Gender)
	}
	if req.AdmissionFeePaidAmount != nil {
		if req.AdmissionFeePaidAmount.IsNegative() {
			return fiber.NewError(fiber.StatusBadRequest, "Admission fee paid amount must not be negative")
		}
		student.AdmissionFeePaidAmount = *req.AdmissionFeePaidAmount
	}

	if err := database.UpdateStudent(db, student); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return fiber.NewError(fiber.StatusBadRequest, "Roll number already exists in this class")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"data":    student,
		"message": "Student updated successfully",
	})
}

func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student id")
	}

	deleted, err := database.DeleteStudent(db, id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}
	if !deleted {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  fiber.StatusOK,
		"message": "Student removed successfully",
	})
}

func validGender(g string) bool {
	return g == string(models.Male) || g == string(models.Female)
}
