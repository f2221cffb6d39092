package database

import (
	"database/sql"
	"fmt"

	"github.com/rubulgithub/College-Payment-Management/app/models"
)

// CreateClass inserts a new class and fills in the generated fields.
func CreateClass(db *sql.DB, class *models.Class) error {
	query := `
		INSERT INTO classes (class_name, yearly_fee, monthly_fee, admission_fee)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := db.QueryRow(query,
		class.ClassName, class.YearlyFee, class.MonthlyFee, class.AdmissionFee,
	).Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert class: %w", err)
	}
	return nil
}

// GetAllClasses retrieves all classes ordered by name.
func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `
		SELECT id, class_name, yearly_fee, monthly_fee, admission_fee, created_at, updated_at
		FROM classes
		ORDER BY class_name ASC
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch classes: %w", err)
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		var c models.Class
		if err := rows.Scan(
			&c.ID, &c.ClassName, &c.YearlyFee, &c.MonthlyFee, &c.AdmissionFee,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan class: %w", err)
		}
		classes = append(classes, &c)
	}
	return classes, rows.Err()
}

// GetClassByID fetches a single class. Returns nil when not found.
func GetClassByID(db *sql.DB, id string) (*models.Class, error) {
	query := `
		SELECT id, class_name, yearly_fee, monthly_fee, admission_fee, created_at, updated_at
		FROM classes
		WHERE id = $1
	`
	var c models.Class
	err := db.QueryRow(query, id).Scan(
		&c.ID, &c.ClassName, &c.YearlyFee, &c.MonthlyFee, &c.AdmissionFee,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch class: %w", err)
	}
	return &c, nil
}

// UpdateClass persists the given class fields and refreshes updated_at.
func UpdateClass(db *sql.DB, class *models.Class) error {
	query := `
		UPDATE classes
		SET class_name = $1, yearly_fee = $2, monthly_fee = $3, admission_fee = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`
	err := db.QueryRow(query,
		class.ClassName, class.YearlyFee, class.MonthlyFee, class.AdmissionFee, class.ID,
	).Scan(&class.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update class: %w", err)
	}
	return nil
}

// DeleteClass removes a class; dependent students, payments and schedules
// cascade at the database level.
func DeleteClass(db *sql.DB, id string) (bool, error) {
	res, err := db.Exec(`DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete class: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
