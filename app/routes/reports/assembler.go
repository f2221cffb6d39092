package reports

import (
	"github.com/shopspring/decimal"

	"github.com/rubulgithub/College-Payment-Management/app/models"
)

// Input row types, populated by the query layer. The assemblers below are
// pure functions over these slices so report shapes can be exercised without
// a database.

// CollectionRow is a per-class payment sum for the collected-fees report.
// ClassName is nil when the payment rows reference a class that no longer
// exists; such rows are kept and labeled "Unknown" rather than dropped.
type CollectionRow struct {
	ClassID        string
	ClassName      *string
	TotalCollected decimal.Decimal
}

// RemainingRow carries one class's enrollment and collection figures for the
// remaining-fees report.
type RemainingRow struct {
	ClassID      string
	ClassName    string
	YearlyFee    decimal.Decimal
	StudentCount int
	TotalPaid    decimal.Decimal
}

// ClassFeeRow carries a class's fee configuration.
type ClassFeeRow struct {
	ClassID      string
	ClassName    string
	MonthlyFee   decimal.Decimal
	AdmissionFee decimal.Decimal
}

// StudentRow is a minimal student record for per-class grouping.
type StudentRow struct {
	StudentID   string
	StudentName string
	ClassID     string
}

// PaymentSumRow is a grouped payment sum keyed by class and student.
type PaymentSumRow struct {
	ClassID   string
	StudentID string
	TotalPaid decimal.Decimal
}

// ScheduleStatusRow is a schedule row reduced to its student and status.
type ScheduleStatusRow struct {
	StudentID string
	Status    models.ScheduleStatus
}

// StudentDuesRow is a student joined with class fee fields for the
// students-with-dues report.
type StudentDuesRow struct {
	StudentID        string
	StudentName      string
	RollNumber       int
	ClassID          string
	ClassName        string
	MonthlyFee       decimal.Decimal
	AdmissionFee     decimal.Decimal
	AdmissionFeePaid decimal.Decimal
}

// ScheduleAggRow aggregates a student's non-paid schedules for the current
// report year.
type ScheduleAggRow struct {
	StudentID    string
	UnpaidMonths int
	TotalDue     decimal.Decimal
	PartialPaid  decimal.Decimal
}

// ---- Collected-by-class report ----

type CollectedBreakdown struct {
	ClassID   string `json:"class_id"`
	ClassName string `json:"class_name"`
	Amount    string `json:"amount"`
}

type CollectedReport struct {
	TotalCollected string               `json:"total_collected"`
	Breakdown      []CollectedBreakdown `json:"breakdown"`
}

// BuildCollectedReport totals the window's payments and shapes the per-class
// breakdown. Orphaned class references get the name "Unknown".
func BuildCollectedReport(rows []CollectionRow) CollectedReport {
	total := decimal.Zero
	breakdown := make([]CollectedBreakdown, 0, len(rows))

	for _, row := range rows {
		total = total.Add(row.TotalCollected)
		name := "Unknown"
		if row.ClassName != nil {
			name = *row.ClassName
		}
		breakdown = append(breakdown, CollectedBreakdown{
			ClassID:   row.ClassID,
			ClassName: name,
			Amount:    Money(row.TotalCollected),
		})
	}

	return CollectedReport{
		TotalCollected: Money(total),
		Breakdown:      breakdown,
	}
}

// ---- Remaining-by-class report ----

type RemainingClassReport struct {
	ClassID         string `json:"class_id"`
	ClassName       string `json:"class_name"`
	StudentCount    int    `json:"student_count"`
	TotalExpected   string `json:"total_expected"`
	TotalPaid       string `json:"total_paid"`
	RemainingAmount string `json:"remaining_amount"`
}

type RemainingReport struct {
	Year   int                    `json:"year"`
	Report []RemainingClassReport `json:"report"`
}

// BuildRemainingReport computes expected versus collected per class for the
// year-to-date window. The remaining amount is deliberately not floored: a
// class collected beyond its expectation shows a negative remainder.
func BuildRemainingReport(rows []RemainingRow, year int) RemainingReport {
	report := make([]RemainingClassReport, 0, len(rows))

	for _, row := range rows {
		expected := row.YearlyFee.Mul(decimal.NewFromInt(int64(row.StudentCount)))
		remaining := expected.Sub(row.TotalPaid)

		report = append(report, RemainingClassReport{
			ClassID:         row.ClassID,
			ClassName:       row.ClassName,
			StudentCount:    row.StudentCount,
			TotalExpected:   Money(expected),
			TotalPaid:       Money(row.TotalPaid),
			RemainingAmount: Money(remaining),
		})
	}

	return RemainingReport{Year: year, Report: report}
}

// ---- Pending-payments report ----

type PendingStudentDetail struct {
	StudentID     string `json:"student_id"`
	StudentName   string `json:"student_name"`
	PaidAmount    string `json:"paid_amount"`
	PendingAmount string `json:"pending_amount"`
}

type PendingClassReport struct {
	ClassID        string                 `json:"class_id"`
	ClassName      string                 `json:"class_name"`
	TotalStudents  int                    `json:"total_students"`
	MonthlyFee     string                 `json:"monthly_fee"`
	AdmissionFee   string                 `json:"admission_fee"`
	YearlyFeeTotal string                 `json:"yearly_fee_total"`
	TotalExpected  string                 `json:"total_expected"`
	TotalCollected string                 `json:"total_collected"`
	TotalPending   string                 `json:"total_pending"`
	UnpaidMonths   int                    `json:"unpaid_months"`
	Students       []PendingStudentDetail `json:"students"`
}

type PendingOverall struct {
	TotalExpected     string `json:"total_expected"`
	TotalCollected    string `json:"total_collected"`
	TotalPending      string `json:"total_pending"`
	TotalUnpaidMonths int    `json:"total_unpaid_months"`
}

type PendingPaymentsReport struct {
	Year    int                  `json:"year"`
	Overall PendingOverall       `json:"overall"`
	Classes []PendingClassReport `json:"classes"`
}

// BuildPendingPaymentsReport crosses classes, students, this-year payment
// sums and schedule statuses into per-class and per-student pending figures.
// Both the class pending total and the per-student pending amount use the
// full yearly expectation and are not floored at zero.
func BuildPendingPaymentsReport(
	classes []ClassFeeRow,
	students []StudentRow,
	payments []PaymentSumRow,
	schedules []ScheduleStatusRow,
	year int,
) PendingPaymentsReport {
	studentsByClass := make(map[string][]StudentRow)
	for _, s := range students {
		studentsByClass[s.ClassID] = append(studentsByClass[s.ClassID], s)
	}

	paidByStudent := make(map[string]decimal.Decimal)
	paidByClass := make(map[string]decimal.Decimal)
	for _, p := range payments {
		paidByStudent[p.StudentID] = paidByStudent[p.StudentID].Add(p.TotalPaid)
		paidByClass[p.ClassID] = paidByClass[p.ClassID].Add(p.TotalPaid)
	}

	schedulesByStudent := make(map[string][]ScheduleStatusRow)
	for _, fs := range schedules {
		schedulesByStudent[fs.StudentID] = append(schedulesByStudent[fs.StudentID], fs)
	}

	overallExpected := decimal.Zero
	overallCollected := decimal.Zero
	overallUnpaidMonths := 0

	classReports := make([]PendingClassReport, 0, len(classes))
	for _, cls := range classes {
		classStudents := studentsByClass[cls.ClassID]
		yearlyTotal := ExpectedYearly(cls.MonthlyFee, cls.AdmissionFee)

		expected := yearlyTotal.Mul(decimal.NewFromInt(int64(len(classStudents))))
		collected := paidByClass[cls.ClassID]
		pending := expected.Sub(collected)

		var classSchedules []ScheduleStatusRow
		for _, s := range classStudents {
			classSchedules = append(classSchedules, schedulesByStudent[s.StudentID]...)
		}
		unpaidMonths := CountUnpaidMonths(classSchedules)

		details := make([]PendingStudentDetail, 0, len(classStudents))
		for _, s := range classStudents {
			paid := paidByStudent[s.StudentID]
			details = append(details, PendingStudentDetail{
				StudentID:     s.StudentID,
				StudentName:   s.StudentName,
				PaidAmount:    Money(paid),
				PendingAmount: Money(yearlyTotal.Sub(paid)),
			})
		}

		overallExpected = overallExpected.Add(expected)
		overallCollected = overallCollected.Add(collected)
		overallUnpaidMonths += unpaidMonths

		classReports = append(classReports, PendingClassReport{
			ClassID:        cls.ClassID,
			ClassName:      cls.ClassName,
			TotalStudents:  len(classStudents),
			MonthlyFee:     Money(cls.MonthlyFee),
			AdmissionFee:   Money(cls.AdmissionFee),
			YearlyFeeTotal: Money(yearlyTotal),
			TotalExpected:  Money(expected),
			TotalCollected: Money(collected),
			TotalPending:   Money(pending),
			UnpaidMonths:   unpaidMonths,
			Students:       details,
		})
	}

	return PendingPaymentsReport{
		Year: year,
		Overall: PendingOverall{
			TotalExpected:     Money(overallExpected),
			TotalCollected:    Money(overallCollected),
			TotalPending:      Money(overallExpected.Sub(overallCollected)),
			TotalUnpaidMonths: overallUnpaidMonths,
		},
		Classes: classReports,
	}
}

// ---- Students-with-dues report ----

type StudentDues struct {
	StudentID       string                `json:"student_id"`
	RollNumber      int                   `json:"roll_number"`
	StudentName     string                `json:"student_name"`
	ClassID         string                `json:"class_id"`
	ClassName       string                `json:"class_name"`
	MonthlyFee      string                `json:"monthly_fee"`
	AdmissionFee    string                `json:"admission_fee"`
	ExpectedTotal   string                `json:"expected_total"`
	TotalPaid       string                `json:"total_paid"`
	PendingAmount   string                `json:"pending_amount"`
	PaymentStatus   models.ScheduleStatus `json:"payment_status"`
	UnpaidMonths    int                   `json:"unpaid_months"`
	PartialPayments string                `json:"partial_payments"`
}

type DuesStatusCounts struct {
	Unpaid  int `json:"unpaid"`
	Partial int `json:"partial"`
	Total   int `json:"total"`
}

type StudentsWithDuesReport struct {
	Year            int              `json:"year"`
	UpToMonth       int              `json:"up_to_month"`
	TotalStudents   int              `json:"total_students"`
	PendingStudents DuesStatusCounts `json:"pending_students"`
	Students        []StudentDues    `json:"students"`
}

// BuildStudentsWithDuesReport computes each student's accrual-to-date dues.
// The admission fee paid at enrollment counts toward the total paid, the
// pending amount is floored at zero for display, and fully paid students are
// excluded from the listing.
func BuildStudentsWithDuesReport(
	students []StudentDuesRow,
	payments []PaymentSumRow,
	scheduleAggs []ScheduleAggRow,
	year, upToMonth int,
) StudentsWithDuesReport {
	paidByStudent := make(map[string]decimal.Decimal)
	for _, p := range payments {
		paidByStudent[p.StudentID] = paidByStudent[p.StudentID].Add(p.TotalPaid)
	}

	aggByStudent := make(map[string]ScheduleAggRow)
	for _, agg := range scheduleAggs {
		aggByStudent[agg.StudentID] = agg
	}

	pending := make([]StudentDues, 0)
	counts := DuesStatusCounts{}

	for _, s := range students {
		expected := ExpectedToDate(s.MonthlyFee, s.AdmissionFee, upToMonth)
		totalPaid := paidByStudent[s.StudentID].Add(s.AdmissionFeePaid)
		status := ClassifyStatus(totalPaid, expected)
		if status == models.StatusPaid {
			continue
		}

		agg := aggByStudent[s.StudentID]

		pending = append(pending, StudentDues{
			StudentID:       s.StudentID,
			RollNumber:      s.RollNumber,
			StudentName:     s.StudentName,
			ClassID:         s.ClassID,
			ClassName:       s.ClassName,
			MonthlyFee:      Money(s.MonthlyFee),
			AdmissionFee:    Money(s.AdmissionFee),
			ExpectedTotal:   Money(expected),
			TotalPaid:       Money(totalPaid),
			PendingAmount:   Money(FloorZero(expected.Sub(totalPaid))),
			PaymentStatus:   status,
			UnpaidMonths:    agg.UnpaidMonths,
			PartialPayments: Money(agg.PartialPaid),
		})

		switch status {
		case models.StatusUnpaid:
			counts.Unpaid++
		case models.StatusPartial:
			counts.Partial++
		}
	}
	counts.Total = len(pending)

	return StudentsWithDuesReport{
		Year:            year,
		UpToMonth:       upToMonth,
		TotalStudents:   len(students),
		PendingStudents: counts,
		Students:        pending,
	}
}

// ---- Fee summary ----

type FeeSummary struct {
	Today     string `json:"today"`
	ThisMonth string `json:"this_month"`
	ThisYear  string `json:"this_year"`
	Currency  string `json:"currency"`
}

// BuildFeeSummary shapes the dashboard collection totals.
func BuildFeeSummary(today, thisMonth, thisYear decimal.Decimal, currency string) FeeSummary {
	return FeeSummary{
		Today:     Money(today),
		ThisMonth: Money(thisMonth),
		ThisYear:  Money(thisYear),
		Currency:  currency,
	}
}
