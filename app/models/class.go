package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Class struct {
	ID           string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ClassName    string          `json:"class_name" gorm:"uniqueIndex;not null"`
	YearlyFee    decimal.Decimal `json:"yearly_fee" gorm:"type:numeric(10,2);default:0"`
	MonthlyFee   decimal.Decimal `json:"monthly_fee" gorm:"type:numeric(10,2);default:0"`
	AdmissionFee decimal.Decimal `json:"admission_fee" gorm:"type:numeric(10,2);default:0"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	Students []*Student `json:"students,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}
