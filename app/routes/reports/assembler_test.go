package reports

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubulgithub/College-Payment-Management/app/models"
)

func strPtr(s string) *string { return &s }

func TestBuildCollectedReport(t *testing.T) {
	rows := []CollectionRow{
		{ClassID: "c1", ClassName: strPtr("Grade 1"), TotalCollected: d("1500")},
		{ClassID: "c2", ClassName: strPtr("Grade 2"), TotalCollected: d("2500.50")},
	}

	report := BuildCollectedReport(rows)

	assert.Equal(t, "4000.50", report.TotalCollected)
	require.Len(t, report.Breakdown, 2)
	assert.Equal(t, "Grade 1", report.Breakdown[0].ClassName)
	assert.Equal(t, "1500.00", report.Breakdown[0].Amount)
}

func TestBuildCollectedReportOrphanClass(t *testing.T) {
	rows := []CollectionRow{
		{ClassID: "gone", ClassName: nil, TotalCollected: d("300")},
	}

	report := BuildCollectedReport(rows)

	require.Len(t, report.Breakdown, 1)
	assert.Equal(t, "Unknown", report.Breakdown[0].ClassName)
	assert.Equal(t, "300.00", report.TotalCollected)
}

func TestBuildCollectedReportEmpty(t *testing.T) {
	report := BuildCollectedReport(nil)

	assert.Equal(t, "0.00", report.TotalCollected)
	assert.NotNil(t, report.Breakdown)
	assert.Empty(t, report.Breakdown)
}

func TestBuildRemainingReport(t *testing.T) {
	// 3 students at yearly fee 500*12+1000 = 7000 each, 0 collected
	rows := []RemainingRow{
		{
			ClassID:      "c1",
			ClassName:    "Grade 1",
			YearlyFee:    ExpectedYearly(d("500"), d("1000")),
			StudentCount: 3,
			TotalPaid:    decimal.Zero,
		},
	}

	report := BuildRemainingReport(rows, 2026)

	assert.Equal(t, 2026, report.Year)
	require.Len(t, report.Report, 1)
	cls := report.Report[0]
	assert.Equal(t, 3, cls.StudentCount)
	assert.Equal(t, "21000.00", cls.TotalExpected)
	assert.Equal(t, "0.00", cls.TotalPaid)
	assert.Equal(t, "21000.00", cls.RemainingAmount)
}

func TestBuildRemainingReportOvercollected(t *testing.T) {
	rows := []RemainingRow{
		{
			ClassID:      "c1",
			ClassName:    "Grade 1",
			YearlyFee:    d("7000"),
			StudentCount: 1,
			TotalPaid:    d("8000"),
		},
	}

	report := BuildRemainingReport(rows, 2026)

	require.Len(t, report.Report, 1)
	assert.Equal(t, "-1000.00", report.Report[0].RemainingAmount)
}

func TestBuildPendingPaymentsReport(t *testing.T) {
	classes := []ClassFeeRow{
		{ClassID: "c1", ClassName: "Grade 1", MonthlyFee: d("500"), AdmissionFee: d("1000")},
	}
	students := []StudentRow{
		{StudentID: "s1", StudentName: "Amina", ClassID: "c1"},
		{StudentID: "s2", StudentName: "Bilal", ClassID: "c1"},
	}
	payments := []PaymentSumRow{
		{ClassID: "c1", StudentID: "s1", TotalPaid: d("3000")},
	}
	schedules := []ScheduleStatusRow{
		{StudentID: "s1", Status: models.StatusPaid},
		{StudentID: "s1", Status: models.StatusPartial},
		{StudentID: "s2", Status: models.StatusUnpaid},
	}

	report := BuildPendingPaymentsReport(classes, students, payments, schedules, 2026)

	require.Len(t, report.Classes, 1)
	cls := report.Classes[0]

	assert.Equal(t, 2, cls.TotalStudents)
	assert.Equal(t, "7000.00", cls.YearlyFeeTotal)
	assert.Equal(t, "14000.00", cls.TotalExpected)
	assert.Equal(t, "3000.00", cls.TotalCollected)
	assert.Equal(t, "11000.00", cls.TotalPending)
	assert.Equal(t, 2, cls.UnpaidMonths)

	require.Len(t, cls.Students, 2)
	assert.Equal(t, "3000.00", cls.Students[0].PaidAmount)
	assert.Equal(t, "4000.00", cls.Students[0].PendingAmount)
	assert.Equal(t, "0.00", cls.Students[1].PaidAmount)
	assert.Equal(t, "7000.00", cls.Students[1].PendingAmount)

	assert.Equal(t, "14000.00", report.Overall.TotalExpected)
	assert.Equal(t, "3000.00", report.Overall.TotalCollected)
	assert.Equal(t, "11000.00", report.Overall.TotalPending)
	assert.Equal(t, 2, report.Overall.TotalUnpaidMonths)
}

func TestBuildPendingPaymentsReportEmpty(t *testing.T) {
	report := BuildPendingPaymentsReport(nil, nil, nil, nil, 2026)

	assert.Equal(t, "0.00", report.Overall.TotalExpected)
	assert.Equal(t, "0.00", report.Overall.TotalCollected)
	assert.Equal(t, "0.00", report.Overall.TotalPending)
	assert.Empty(t, report.Classes)
}

func TestBuildStudentsWithDuesReport(t *testing.T) {
	// monthly 500, admission 1000, 1000 paid at enrollment, 3000 paid since.
	// By month 5 the expectation is 500*5+1000 = 3500 and 4000 is paid, so
	// the student is fully settled and excluded from the listing.
	students := []StudentDuesRow{
		{
			StudentID:        "s1",
			StudentName:      "Amina",
			RollNumber:       7,
			ClassID:          "c1",
			ClassName:        "Grade 1",
			MonthlyFee:       d("500"),
			AdmissionFee:     d("1000"),
			AdmissionFeePaid: d("1000"),
		},
		{
			StudentID:        "s2",
			StudentName:      "Bilal",
			RollNumber:       8,
			ClassID:          "c1",
			ClassName:        "Grade 1",
			MonthlyFee:       d("500"),
			AdmissionFee:     d("1000"),
			AdmissionFeePaid: decimal.Zero,
		},
		{
			StudentID:        "s3",
			StudentName:      "Chanda",
			RollNumber:       9,
			ClassID:          "c1",
			ClassName:        "Grade 1",
			MonthlyFee:       d("500"),
			AdmissionFee:     d("1000"),
			AdmissionFeePaid: d("500"),
		},
	}
	payments := []PaymentSumRow{
		{ClassID: "c1", StudentID: "s1", TotalPaid: d("3000")},
		{ClassID: "c1", StudentID: "s3", TotalPaid: d("1000")},
	}
	scheduleAggs := []ScheduleAggRow{
		{StudentID: "s3", UnpaidMonths: 2, TotalDue: d("1000"), PartialPaid: d("250")},
	}

	report := BuildStudentsWithDuesReport(students, payments, scheduleAggs, 2026, 5)

	assert.Equal(t, 2026, report.Year)
	assert.Equal(t, 5, report.UpToMonth)
	assert.Equal(t, 3, report.TotalStudents)

	// s1 paid 4000 against 3500 expected, dropped from the listing
	require.Len(t, report.Students, 2)

	s2 := report.Students[0]
	assert.Equal(t, "s2", s2.StudentID)
	assert.Equal(t, "3500.00", s2.ExpectedTotal)
	assert.Equal(t, "0.00", s2.TotalPaid)
	assert.Equal(t, "3500.00", s2.PendingAmount)
	assert.Equal(t, models.StatusUnpaid, s2.PaymentStatus)

	s3 := report.Students[1]
	assert.Equal(t, "s3", s3.StudentID)
	assert.Equal(t, "1500.00", s3.TotalPaid)
	assert.Equal(t, "2000.00", s3.PendingAmount)
	assert.Equal(t, models.StatusPartial, s3.PaymentStatus)
	assert.Equal(t, 2, s3.UnpaidMonths)
	assert.Equal(t, "250.00", s3.PartialPayments)

	assert.Equal(t, 1, report.PendingStudents.Unpaid)
	assert.Equal(t, 1, report.PendingStudents.Partial)
	assert.Equal(t, 2, report.PendingStudents.Total)
}

func TestBuildStudentsWithDuesNearlySettled(t *testing.T) {
	students := []StudentDuesRow{
		{
			StudentID:        "s1",
			StudentName:      "Amina",
			RollNumber:       1,
			ClassID:          "c1",
			ClassName:        "Grade 1",
			MonthlyFee:       d("500"),
			AdmissionFee:     decimal.Zero,
			AdmissionFeePaid: decimal.Zero,
		},
	}
	payments := []PaymentSumRow{
		{ClassID: "c1", StudentID: "s1", TotalPaid: d("1400")},
	}

	report := BuildStudentsWithDuesReport(students, payments, nil, 2026, 3)

	require.Len(t, report.Students, 1)
	assert.Equal(t, "100.00", report.Students[0].PendingAmount)
	assert.Equal(t, models.StatusPartial, report.Students[0].PaymentStatus)
}

func TestBuildStudentsWithDuesReportEmpty(t *testing.T) {
	report := BuildStudentsWithDuesReport(nil, nil, nil, 2026, 6)

	assert.Equal(t, 0, report.TotalStudents)
	assert.NotNil(t, report.Students)
	assert.Empty(t, report.Students)
	assert.Equal(t, 0, report.PendingStudents.Total)
}

func TestBuildFeeSummary(t *testing.T) {
	summary := BuildFeeSummary(d("150"), d("3200"), d("41000.5"), "PKR")

	assert.Equal(t, "150.00", summary.Today)
	assert.Equal(t, "3200.00", summary.ThisMonth)
	assert.Equal(t, "41000.50", summary.ThisYear)
	assert.Equal(t, "PKR", summary.Currency)
}
