package database

import (
	"database/sql"
	"log"
)

// RunMigrations applies the schema at startup. Every statement is idempotent
// so the application can be restarted against an existing database.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			class_name TEXT NOT NULL UNIQUE,
			yearly_fee NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (yearly_fee >= 0),
			monthly_fee NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (monthly_fee >= 0),
			admission_fee NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (admission_fee >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_name TEXT NOT NULL,
			roll_number INTEGER NOT NULL,
			class_id UUID NOT NULL REFERENCES classes(id) ON DELETE CASCADE,
			guardian_name TEXT,
			phone_number VARCHAR(20),
			address TEXT,
			gender VARCHAR(10) NOT NULL CHECK (gender IN ('male', 'female')),
			admission_fee_paid_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			batch_year INTEGER NOT NULL DEFAULT EXTRACT(YEAR FROM NOW()),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (roll_number, class_id)
		)`,

		`CREATE TABLE IF NOT EXISTS fee_payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			class_id UUID NOT NULL,
			amount_paid NUMERIC(10,2) NOT NULL CHECK (amount_paid >= 0),
			payment_mode VARCHAR(50),
			purpose VARCHAR(20) NOT NULL DEFAULT 'monthly' CHECK (purpose IN ('monthly', 'admission')),
			payment_date TIMESTAMPTZ NOT NULL,
			remarks TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_fee_payments_payment_date ON fee_payments(payment_date)`,
		`CREATE INDEX IF NOT EXISTS idx_fee_payments_student_id ON fee_payments(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_fee_payments_class_id ON fee_payments(class_id)`,

		`CREATE TABLE IF NOT EXISTS fee_schedules (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			month INTEGER NOT NULL CHECK (month BETWEEN 1 AND 12),
			year INTEGER NOT NULL,
			due_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			paid_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
			status VARCHAR(10) NOT NULL DEFAULT 'unpaid' CHECK (status IN ('unpaid', 'partial', 'paid')),
			remarks TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, month, year)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_fee_schedules_year ON fee_schedules(year)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
