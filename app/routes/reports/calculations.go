package reports

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rubulgithub/College-Payment-Management/app/models"
)

var monthsPerYear = decimal.NewFromInt(12)

// ExpectedYearly computes the full-year expected fee for a class:
// monthly fee accrued over twelve months plus the one-time admission fee.
func ExpectedYearly(monthlyFee, admissionFee decimal.Decimal) decimal.Decimal {
	return monthlyFee.Mul(monthsPerYear).Add(admissionFee)
}

// ExpectedToDate computes the accrual-to-date expected fee: monthly fee
// accrued linearly up to asOfMonth, admission fee in full from enrollment.
func ExpectedToDate(monthlyFee, admissionFee decimal.Decimal, asOfMonth int) decimal.Decimal {
	return monthlyFee.Mul(decimal.NewFromInt(int64(asOfMonth))).Add(admissionFee)
}

// ClassifyStatus derives a student's payment status from total paid versus
// expected. Paid wins whenever nothing is pending, including overpayment.
func ClassifyStatus(totalPaid, expected decimal.Decimal) models.ScheduleStatus {
	if totalPaid.LessThanOrEqual(decimal.Zero) {
		return models.StatusUnpaid
	}
	if expected.Sub(totalPaid).GreaterThan(decimal.Zero) {
		return models.StatusPartial
	}
	return models.StatusPaid
}

// CountUnpaidMonths counts schedule rows that are not fully paid.
func CountUnpaidMonths(schedules []ScheduleStatusRow) int {
	count := 0
	for _, fs := range schedules {
		if fs.Status != models.StatusPaid {
			count++
		}
	}
	return count
}

// FloorZero clamps a pending amount at zero for display. Overpayment is not
// surfaced as a negative figure in per-student contexts.
func FloorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Money renders a monetary figure with two-decimal fixed-point formatting.
// Accumulation stays unrounded; rounding happens only here, at the
// presentation boundary.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ErrNoWindow is returned when no reporting window parameter was supplied.
var ErrNoWindow = errors.New("please provide date or month and year or only year")

// PaymentWindow resolves the collected-fees reporting window from the query
// parameters. Exactly one of date, month+year or year selects the window;
// when several are supplied, date wins over month+year, which wins over a
// bare year. The returned range is half-open: [start, end).
func PaymentWindow(dateStr, monthStr, yearStr string) (time.Time, time.Time, error) {
	switch {
	case dateStr != "":
		day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateStr)
		}
		return day, day.AddDate(0, 0, 1), nil

	case monthStr != "" && yearStr != "":
		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q", monthStr)
		}
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid year %q", yearStr)
		}
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
		return start, start.AddDate(0, 1, 0), nil

	case yearStr != "":
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid year %q", yearStr)
		}
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
		return start, start.AddDate(1, 0, 0), nil

	default:
		return time.Time{}, time.Time{}, ErrNoWindow
	}
}
