package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Student struct {
	ID                     string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentName            string          `json:"student_name" gorm:"not null"`
	RollNumber             int             `json:"roll_number" gorm:"not null"`
	ClassID                string          `json:"class_id" gorm:"not null;index;type:uuid"`
	GuardianName           *string         `json:"guardian_name,omitempty"`
	PhoneNumber            *string         `json:"phone_number,omitempty" gorm:"type:varchar(20)"`
	Address                *string         `json:"address,omitempty"`
	Gender                 Gender          `json:"gender" gorm:"not null;type:varchar(10)"`
	AdmissionFeePaidAmount decimal.Decimal `json:"admission_fee_paid_amount" gorm:"type:numeric(10,2);default:0"`
	BatchYear              int             `json:"batch_year"`
	CreatedAt              time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt              time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	Class    *Class        `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
	Payments []*FeePayment `json:"payments,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
