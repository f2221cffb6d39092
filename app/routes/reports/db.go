package reports

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rubulgithub/College-Payment-Management/app/models"
)

// GetCollectedByClass sums payments per class inside [start, end). The class
// join is optional on purpose: payments pointing at a deleted class are kept
// with a NULL name for the assembler to label.
func GetCollectedByClass(db *sql.DB, start, end time.Time, classID string) ([]CollectionRow, error) {
	query := `
		SELECT p.class_id, c.class_name, SUM(p.amount_paid)
		FROM fee_payments p
		LEFT JOIN classes c ON p.class_id = c.id
		WHERE p.payment_date >= $1 AND p.payment_date < $2
	`
	args := []interface{}{start, end}
	if classID != "" {
		query += " AND p.class_id = $3"
		args = append(args, classID)
	}
	query += " GROUP BY p.class_id, c.class_name ORDER BY c.class_name"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch collected sums: %w", err)
	}
	defer rows.Close()

	var result []CollectionRow
	for rows.Next() {
		var row CollectionRow
		var name sql.NullString
		if err := rows.Scan(&row.ClassID, &name, &row.TotalCollected); err != nil {
			return nil, fmt.Errorf("failed to scan collected sum: %w", err)
		}
		if name.Valid {
			row.ClassName = &name.String
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetRemainingRows fetches per-class enrollment counts and payment sums for
// the [start, end] window in one grouped query.
func GetRemainingRows(db *sql.DB, start, end time.Time, classID string) ([]RemainingRow, error) {
	query := `
		SELECT c.id, c.class_name, c.yearly_fee,
			COUNT(DISTINCT s.id),
			COALESCE(p.total_paid, 0)
		FROM classes c
		LEFT JOIN students s ON s.class_id = c.id
		LEFT JOIN (
			SELECT class_id, SUM(amount_paid) AS total_paid
			FROM fee_payments
			WHERE payment_date >= $1 AND payment_date <= $2
			GROUP BY class_id
		) p ON p.class_id = c.id
	`
	args := []interface{}{start, end}
	if classID != "" {
		query += " WHERE c.id = $3"
		args = append(args, classID)
	}
	query += " GROUP BY c.id, c.class_name, c.yearly_fee, p.total_paid ORDER BY c.class_name"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch remaining rows: %w", err)
	}
	defer rows.Close()

	var result []RemainingRow
	for rows.Next() {
		var row RemainingRow
		if err := rows.Scan(&row.ClassID, &row.ClassName, &row.YearlyFee, &row.StudentCount, &row.TotalPaid); err != nil {
			return nil, fmt.Errorf("failed to scan remaining row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetClassFeeRows fetches fee configuration for all classes, or one.
func GetClassFeeRows(db *sql.DB, classID string) ([]ClassFeeRow, error) {
	query := `SELECT id, class_name, monthly_fee, admission_fee FROM classes`
	var args []interface{}
	if classID != "" {
		query += " WHERE id = $1"
		args = append(args, classID)
	}
	query += " ORDER BY class_name"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch class fees: %w", err)
	}
	defer rows.Close()

	var result []ClassFeeRow
	for rows.Next() {
		var row ClassFeeRow
		if err := rows.Scan(&row.ClassID, &row.ClassName, &row.MonthlyFee, &row.AdmissionFee); err != nil {
			return nil, fmt.Errorf("failed to scan class fee: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetStudentRows fetches students (id, name, class) with an optional class
// filter. The class join is required, so orphaned students are dropped.
func GetStudentRows(db *sql.DB, classID string) ([]StudentRow, error) {
	query := `
		SELECT s.id, s.student_name, s.class_id
		FROM students s
		JOIN classes c ON s.class_id = c.id
	`
	var args []interface{}
	if classID != "" {
		query += " WHERE s.class_id = $1"
		args = append(args, classID)
	}
	query += " ORDER BY s.student_name"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer rows.Close()

	var result []StudentRow
	for rows.Next() {
		var row StudentRow
		if err := rows.Scan(&row.StudentID, &row.StudentName, &row.ClassID); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetPaymentSums fetches payment sums grouped by class and student inside
// [start, end).
func GetPaymentSums(db *sql.DB, start, end time.Time, classID string) ([]PaymentSumRow, error) {
	query := `
		SELECT class_id, student_id, SUM(amount_paid)
		FROM fee_payments
		WHERE payment_date >= $1 AND payment_date < $2
	`
	args := []interface{}{start, end}
	if classID != "" {
		query += " AND class_id = $3"
		args = append(args, classID)
	}
	query += " GROUP BY class_id, student_id"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment sums: %w", err)
	}
	defer rows.Close()

	var result []PaymentSumRow
	for rows.Next() {
		var row PaymentSumRow
		if err := rows.Scan(&row.ClassID, &row.StudentID, &row.TotalPaid); err != nil {
			return nil, fmt.Errorf("failed to scan payment sum: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetStudentPaymentSums fetches per-student payment sums inside [start, end),
// optionally limited to students of one class.
func GetStudentPaymentSums(db *sql.DB, start, end time.Time, classID string) ([]PaymentSumRow, error) {
	query := `
		SELECT p.student_id, SUM(p.amount_paid)
		FROM fee_payments p
		JOIN students s ON p.student_id = s.id
		WHERE p.payment_date >= $1 AND p.payment_date < $2
	`
	args := []interface{}{start, end}
	if classID != "" {
		query += " AND s.class_id = $3"
		args = append(args, classID)
	}
	query += " GROUP BY p.student_id"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student payment sums: %w", err)
	}
	defer rows.Close()

	var result []PaymentSumRow
	for rows.Next() {
		var row PaymentSumRow
		if err := rows.Scan(&row.StudentID, &row.TotalPaid); err != nil {
			return nil, fmt.Errorf("failed to scan student payment sum: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetScheduleStatuses fetches schedule statuses for a year, joined with
// students so a class filter applies and orphaned rows are dropped.
func GetScheduleStatuses(db *sql.DB, year int, classID string) ([]ScheduleStatusRow, error) {
	query := `
		SELECT fs.student_id, fs.status
		FROM fee_schedules fs
		JOIN students s ON fs.student_id = s.id
		WHERE fs.year = $1
	`
	args := []interface{}{year}
	if classID != "" {
		query += " AND s.class_id = $2"
		args = append(args, classID)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule statuses: %w", err)
	}
	defer rows.Close()

	var result []ScheduleStatusRow
	for rows.Next() {
		var row ScheduleStatusRow
		var status string
		if err := rows.Scan(&row.StudentID, &status); err != nil {
			return nil, fmt.Errorf("failed to scan schedule status: %w", err)
		}
		row.Status = models.ScheduleStatus(status)
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetStudentDuesRows fetches students joined with their class fee fields.
func GetStudentDuesRows(db *sql.DB, classID string) ([]StudentDuesRow, error) {
	query := `
		SELECT s.id, s.student_name, s.roll_number, s.class_id,
			c.class_name, c.monthly_fee, c.admission_fee, s.admission_fee_paid_amount
		FROM students s
		JOIN classes c ON s.class_id = c.id
	`
	var args []interface{}
	if classID != "" {
		query += " WHERE s.class_id = $1"
		args = append(args, classID)
	}
	query += " ORDER BY c.class_name, s.roll_number"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student dues rows: %w", err)
	}
	defer rows.Close()

	var result []StudentDuesRow
	for rows.Next() {
		var row StudentDuesRow
		if err := rows.Scan(
			&row.StudentID, &row.StudentName, &row.RollNumber, &row.ClassID,
			&row.ClassName, &row.MonthlyFee, &row.AdmissionFee, &row.AdmissionFeePaid,
		); err != nil {
			return nil, fmt.Errorf("failed to scan student dues row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetScheduleAggs aggregates each student's non-paid schedules for a year:
// row count, summed due amount and summed partial payments.
func GetScheduleAggs(db *sql.DB, year int, classID string) ([]ScheduleAggRow, error) {
	query := `
		SELECT fs.student_id, COUNT(fs.id), SUM(fs.due_amount), SUM(fs.paid_amount)
		FROM fee_schedules fs
		JOIN students s ON fs.student_id = s.id
		WHERE fs.year = $1 AND fs.status <> 'paid'
	`
	args := []interface{}{year}
	if classID != "" {
		query += " AND s.class_id = $2"
		args = append(args, classID)
	}
	query += " GROUP BY fs.student_id"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule aggregates: %w", err)
	}
	defer rows.Close()

	var result []ScheduleAggRow
	for rows.Next() {
		var row ScheduleAggRow
		if err := rows.Scan(&row.StudentID, &row.UnpaidMonths, &row.TotalDue, &row.PartialPaid); err != nil {
			return nil, fmt.Errorf("failed to scan schedule aggregate: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// GetCollectedInWindow sums all payments inside [start, end).
func GetCollectedInWindow(db *sql.DB, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := db.QueryRow(`
		SELECT COALESCE(SUM(amount_paid), 0)
		FROM fee_payments
		WHERE payment_date >= $1 AND payment_date < $2
	`, start, end).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments: %w", err)
	}
	return total, nil
}
