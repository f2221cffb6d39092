package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rubulgithub/College-Payment-Management/app/models"
)

// PaymentFilters represents filtering and pagination options for payments.
type PaymentFilters struct {
	Purpose   string
	ClassID   string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// CreatePayment records a fee payment and fills in the generated fields.
func CreatePayment(db *sql.DB, p *models.FeePayment) error {
	query := `
		INSERT INTO fee_payments (student_id, class_id, amount_paid, payment_mode, purpose, payment_date, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(query,
		p.StudentID, p.ClassID, p.AmountPaid, p.PaymentMode,
		string(p.Purpose), p.PaymentDate, p.Remarks,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// GetPaymentsByStudent retrieves all payments for a student, newest first.
func GetPaymentsByStudent(db *sql.DB, studentID string) ([]*models.FeePayment, error) {
	query := `
		SELECT id, student_id, class_id, amount_paid, payment_mode, purpose,
			payment_date, remarks, created_at, updated_at
		FROM fee_payments
		WHERE student_id = $1
		ORDER BY payment_date DESC
	`
	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.FeePayment
	for rows.Next() {
		var p models.FeePayment
		var purpose string
		if err := rows.Scan(
			&p.ID, &p.StudentID, &p.ClassID, &p.AmountPaid, &p.PaymentMode,
			&purpose, &p.PaymentDate, &p.Remarks, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		p.Purpose = models.PaymentPurpose(purpose)
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}

// GetPayments retrieves a filtered, paginated page of payments joined with
// student and class details, plus the total row count for the filter.
func GetPayments(db *sql.DB, filters PaymentFilters) ([]*models.FeePayment, int, error) {
	baseWhere := ""
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filters.Purpose != "" {
		conditions = append(conditions, fmt.Sprintf("p.purpose = $%d", argIndex))
		args = append(args, filters.Purpose)
		argIndex++
	}
	if filters.ClassID != "" {
		conditions = append(conditions, fmt.Sprintf("s.class_id = $%d", argIndex))
		args = append(args, filters.ClassID)
		argIndex++
	}
	if filters.StartDate != nil && filters.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("p.payment_date BETWEEN $%d AND $%d", argIndex, argIndex+1))
		args = append(args, *filters.StartDate, *filters.EndDate)
		argIndex += 2
	}

	for i, cond := range conditions {
		if i == 0 {
			baseWhere = " WHERE " + cond
		} else {
			baseWhere += " AND " + cond
		}
	}

	countQuery := `
		SELECT COUNT(*)
		FROM fee_payments p
		JOIN students s ON p.student_id = s.id
	` + baseWhere

	var total int
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	listQuery := `
		SELECT p.id, p.student_id, p.class_id, p.amount_paid, p.payment_mode, p.purpose,
			p.payment_date, p.remarks, p.created_at, p.updated_at,
			s.id, s.student_name, s.roll_number, s.class_id,
			c.id, c.class_name
		FROM fee_payments p
		JOIN students s ON p.student_id = s.id
		JOIN classes c ON s.class_id = c.id
	` + baseWhere + fmt.Sprintf(" ORDER BY p.payment_date DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, filters.Limit, filters.Offset)

	rows, err := db.Query(listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.FeePayment
	for rows.Next() {
		var p models.FeePayment
		var s models.Student
		var c models.Class
		var purpose string
		if err := rows.Scan(
			&p.ID, &p.StudentID, &p.ClassID, &p.AmountPaid, &p.PaymentMode, &purpose,
			&p.PaymentDate, &p.Remarks, &p.CreatedAt, &p.UpdatedAt,
			&s.ID, &s.StudentName, &s.RollNumber, &s.ClassID,
			&c.ID, &c.ClassName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payment: %w", err)
		}
		p.Purpose = models.PaymentPurpose(purpose)
		s.Class = &c
		p.Student = &s
		payments = append(payments, &p)
	}
	return payments, total, rows.Err()
}

// DeletePayment removes a payment row.
func DeletePayment(db *sql.DB, id string) (bool, error) {
	res, err := db.Exec(`DELETE FROM fee_payments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete payment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
