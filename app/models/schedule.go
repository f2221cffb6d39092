package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeeSchedule is a per-student, per-month expected fee record. Status is set
// explicitly through the status endpoint and is not derived from paid_amount.
type FeeSchedule struct {
	ID         string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID  string          `json:"student_id" gorm:"not null;index;type:uuid"`
	Month      int             `json:"month" gorm:"not null"`
	Year       int             `json:"year" gorm:"not null"`
	DueAmount  decimal.Decimal `json:"due_amount" gorm:"type:numeric(10,2);default:0"`
	PaidAmount decimal.Decimal `json:"paid_amount" gorm:"type:numeric(10,2);default:0"`
	Status     ScheduleStatus  `json:"status" gorm:"not null;default:'unpaid';type:varchar(10)"`
	Remarks    *string         `json:"remarks,omitempty"`
	CreatedAt  time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
