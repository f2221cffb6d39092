package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeePayment represents a single fee transaction recorded for a student.
// ClassID is captured at entry time and is not re-validated against the
// student's current class.
type FeePayment struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID   string          `json:"student_id" gorm:"not null;index;type:uuid"`
	ClassID     string          `json:"class_id" gorm:"not null;index;type:uuid"`
	AmountPaid  decimal.Decimal `json:"amount_paid" gorm:"not null;type:numeric(10,2)"`
	PaymentMode *string         `json:"payment_mode,omitempty" gorm:"type:varchar(50)"`
	Purpose     PaymentPurpose  `json:"purpose" gorm:"not null;default:'monthly';type:varchar(20)"`
	PaymentDate time.Time       `json:"payment_date" gorm:"not null;index"`
	Remarks     *string         `json:"remarks,omitempty"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Class   *Class   `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}
