package database

import (
	"database/sql"
	"fmt"

	"github.com/rubulgithub/College-Payment-Management/app/models"
)

// GenerateSchedules creates a fee schedule row for every student for the
// given month and year in a single statement. Rows already present are left
// untouched, so the call is idempotent. The due amount is taken from the
// student's class monthly fee at generation time. Returns the number of rows
// created.
func GenerateSchedules(db *sql.DB, month, year int) (int64, error) {
	query := `
		INSERT INTO fee_schedules (student_id, month, year, due_amount, status)
		SELECT s.id, $1, $2, c.monthly_fee, 'unpaid'
		FROM students s
		JOIN classes c ON s.class_id = c.id
		ON CONFLICT (student_id, month, year) DO NOTHING
	`
	res, err := db.Exec(query, month, year)
	if err != nil {
		return 0, fmt.Errorf("failed to generate schedules: %w", err)
	}
	return res.RowsAffected()
}

// GetSchedulesByStudent retrieves a student's schedules, newest period first.
func GetSchedulesByStudent(db *sql.DB, studentID string) ([]*models.FeeSchedule, error) {
	query := `
		SELECT id, student_id, month, year, due_amount, paid_amount, status, remarks, created_at, updated_at
		FROM fee_schedules
		WHERE student_id = $1
		ORDER BY year DESC, month DESC
	`
	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*models.FeeSchedule
	for rows.Next() {
		var fs models.FeeSchedule
		var status string
		if err := rows.Scan(
			&fs.ID, &fs.StudentID, &fs.Month, &fs.Year, &fs.DueAmount, &fs.PaidAmount,
			&status, &fs.Remarks, &fs.CreatedAt, &fs.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		fs.Status = models.ScheduleStatus(status)
		schedules = append(schedules, &fs)
	}
	return schedules, rows.Err()
}

// UpdateScheduleStatus sets a schedule's status in a single row update.
// Returns nil when the schedule does not exist.
func UpdateScheduleStatus(db *sql.DB, scheduleID string, status models.ScheduleStatus) (*models.FeeSchedule, error) {
	query := `
		UPDATE fee_schedules
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, student_id, month, year, due_amount, paid_amount, status, remarks, created_at, updated_at
	`
	var fs models.FeeSchedule
	var newStatus string
	err := db.QueryRow(query, string(status), scheduleID).Scan(
		&fs.ID, &fs.StudentID, &fs.Month, &fs.Year, &fs.DueAmount, &fs.PaidAmount,
		&newStatus, &fs.Remarks, &fs.CreatedAt, &fs.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update schedule status: %w", err)
	}
	fs.Status = models.ScheduleStatus(newStatus)
	return &fs, nil
}

// CountStudents returns the number of enrolled students.
func CountStudents(db *sql.DB) (int, error) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}
