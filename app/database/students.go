package database

import (
	"database/sql"
	"fmt"

	"github.com/rubulgithub/College-Payment-Management/app/models"
)

// StudentFilters represents filtering options for the student listing.
type StudentFilters struct {
	ClassID string
	Gender  string
	Name    string
}

// CreateStudent inserts a new student and fills in the generated fields.
func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `
		INSERT INTO students (student_name, roll_number, class_id, guardian_name,
			phone_number, address, gender, admission_fee_paid_amount, batch_year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE(NULLIF($9, 0), EXTRACT(YEAR FROM NOW())::int))
		RETURNING id, batch_year, created_at, updated_at
	`
	err := db.QueryRow(query,
		s.StudentName, s.RollNumber, s.ClassID, s.GuardianName,
		s.PhoneNumber, s.Address, string(s.Gender), s.AdmissionFeePaidAmount, s.BatchYear,
	).Scan(&s.ID, &s.BatchYear, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert student: %w", err)
	}
	return nil
}

// GetStudents retrieves students with their class, applying optional filters.
func GetStudents(db *sql.DB, filters StudentFilters) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.student_name, s.roll_number, s.class_id, s.guardian_name,
			s.phone_number, s.address, s.gender, s.admission_fee_paid_amount, s.batch_year,
			s.created_at, s.updated_at,
			c.id, c.class_name, c.yearly_fee, c.monthly_fee, c.admission_fee
		FROM students s
		JOIN classes c ON s.class_id = c.id
	`
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.ClassID != "" {
		conditions = append(conditions, fmt.Sprintf("s.class_id = $%d", argIndex))
		args = append(args, filters.ClassID)
		argIndex++
	}
	if filters.Gender != "" {
		conditions = append(conditions, fmt.Sprintf("s.gender = $%d", argIndex))
		args = append(args, filters.Gender)
		argIndex++
	}
	if filters.Name != "" {
		conditions = append(conditions, fmt.Sprintf("s.student_name ILIKE $%d", argIndex))
		args = append(args, "%"+filters.Name+"%")
		argIndex++
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY s.student_name ASC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudentWithClass(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// SearchStudents matches students by name or roll number.
func SearchStudents(db *sql.DB, search string) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.student_name, s.roll_number, s.class_id, s.guardian_name,
			s.phone_number, s.address, s.gender, s.admission_fee_paid_amount, s.batch_year,
			s.created_at, s.updated_at,
			c.id, c.class_name, c.yearly_fee, c.monthly_fee, c.admission_fee
		FROM students s
		JOIN classes c ON s.class_id = c.id
		WHERE s.student_name ILIKE $1 OR s.roll_number::text ILIKE $1
		ORDER BY s.student_name ASC
	`
	rows, err := db.Query(query, "%"+search+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s, err := scanStudentWithClass(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func scanStudentWithClass(rows *sql.Rows) (*models.Student, error) {
	var s models.Student
	var c models.Class
	err := rows.Scan(
		&s.ID, &s.StudentName, &s.RollNumber, &s.ClassID, &s.GuardianName,
		&s.PhoneNumber, &s.Address, &s.Gender, &s.AdmissionFeePaidAmount, &s.BatchYear,
		&s.CreatedAt, &s.UpdatedAt,
		&c.ID, &c.ClassName, &c.YearlyFee, &c.MonthlyFee, &c.AdmissionFee,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan student: %w", err)
	}
	s.Class = &c
	return &s, nil
}

// GetStudentByID fetches a single student with class and payment history.
// Returns nil when not found.
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `
		SELECT s.id, s.student_name, s.roll_number, s.class_id, s.guardian_name,
			s.phone_number, s.address, s.gender, s.admission_fee_paid_amount, s.batch_year,
			s.created_at, s.updated_at,
			c.id, c.class_name, c.yearly_fee, c.monthly_fee, c.admission_fee
		FROM students s
		JOIN classes c ON s.class_id = c.id
		WHERE s.id = $1
	`
	var s models.Student
	var c models.Class
	err := db.QueryRow(query, id).Scan(
		&s.ID, &s.StudentName, &s.RollNumber, &s.ClassID, &s.GuardianName,
		&s.PhoneNumber, &s.Address, &s.Gender, &s.AdmissionFeePaidAmount, &s.BatchYear,
		&s.CreatedAt, &s.UpdatedAt,
		&c.ID, &c.ClassName, &c.YearlyFee, &c.MonthlyFee, &c.AdmissionFee,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}
	s.Class = &c

	payments, err := GetPaymentsByStudent(db, s.ID)
	if err != nil {
		return nil, err
	}
	s.Payments = payments
	return &s, nil
}

// StudentExists reports whether a student row exists for the given id.
func StudentExists(db *sql.DB, id string) (bool, error) {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check student: %w", err)
	}
	return exists, nil
}

// UpdateStudent persists the given student fields and refreshes updated_at.
func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `
		UPDATE students
		SET student_name = $1, roll_number = $2, class_id = $3, guardian_name = $4,
			phone_number = $5, address = $6, gender = $7, admission_fee_paid_amount = $8,
			updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`
	err := db.QueryRow(query,
		s.StudentName, s.RollNumber, s.ClassID, s.GuardianName,
		s.PhoneNumber, s.Address, string(s.Gender), s.AdmissionFeePaidAmount, s.ID,
	).Scan(&s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	return nil
}

// DeleteStudent removes a student; payments and schedules cascade.
func DeleteStudent(db *sql.DB, id string) (bool, error) {
	res, err := db.Exec(`DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete student: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
