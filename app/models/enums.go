package models

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// PaymentPurpose classifies what a fee payment covers.
type PaymentPurpose string

const (
	PurposeMonthly   PaymentPurpose = "monthly"
	PurposeAdmission PaymentPurpose = "admission"
)

// ScheduleStatus defines the payment state of a monthly fee schedule.
// The same values are used for a student's overall payment status in reports.
type ScheduleStatus string

const (
	StatusUnpaid  ScheduleStatus = "unpaid"
	StatusPartial ScheduleStatus = "partial"
	StatusPaid    ScheduleStatus = "paid"
)

// ValidScheduleStatus reports whether s is one of the allowed status values.
func ValidScheduleStatus(s string) bool {
	switch ScheduleStatus(s) {
	case StatusUnpaid, StatusPartial, StatusPaid:
		return true
	}
	return false
}
