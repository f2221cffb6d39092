package reports

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubulgithub/College-Payment-Management/app/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestExpectedYearly(t *testing.T) {
	got := ExpectedYearly(d("500"), d("1000"))
	assert.True(t, got.Equal(d("7000")), "expected 500*12+1000=7000, got %s", got)

	got = ExpectedYearly(decimal.Zero, decimal.Zero)
	assert.True(t, got.Equal(decimal.Zero))
}

func TestExpectedToDate(t *testing.T) {
	got := ExpectedToDate(d("500"), d("1000"), 5)
	assert.True(t, got.Equal(d("3500")), "expected 500*5+1000=3500, got %s", got)

	got = ExpectedToDate(d("500"), d("1000"), 1)
	assert.True(t, got.Equal(d("1500")))
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name     string
		paid     string
		expected string
		want     models.ScheduleStatus
	}{
		{"nothing paid", "0", "7000", models.StatusUnpaid},
		{"negative paid", "-10", "7000", models.StatusUnpaid},
		{"partially paid", "3000", "7000", models.StatusPartial},
		{"exactly paid", "7000", "7000", models.StatusPaid},
		{"overpaid", "8000", "7000", models.StatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStatus(d(tt.paid), d(tt.expected))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountUnpaidMonths(t *testing.T) {
	rows := []ScheduleStatusRow{
		{StudentID: "s1", Status: models.StatusUnpaid},
		{StudentID: "s1", Status: models.StatusPartial},
		{StudentID: "s1", Status: models.StatusPaid},
		{StudentID: "s2", Status: models.StatusUnpaid},
	}
	assert.Equal(t, 3, CountUnpaidMonths(rows))
	assert.Equal(t, 0, CountUnpaidMonths(nil))
}

func TestFloorZero(t *testing.T) {
	assert.True(t, FloorZero(d("-500")).Equal(decimal.Zero))
	assert.True(t, FloorZero(decimal.Zero).Equal(decimal.Zero))
	assert.True(t, FloorZero(d("250.50")).Equal(d("250.50")))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "0.00", Money(decimal.Zero))
	assert.Equal(t, "7000.00", Money(d("7000")))
	assert.Equal(t, "1234.50", Money(d("1234.5")))
}

func TestPaymentWindowDate(t *testing.T) {
	start, end, err := PaymentWindow("2026-03-15", "", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local), end)
}

func TestPaymentWindowMonthYear(t *testing.T) {
	start, end, err := PaymentWindow("", "2", "2026")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local), end)
}

func TestPaymentWindowYear(t *testing.T) {
	start, end, err := PaymentWindow("", "", "2026")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.Local), end)
}

func TestPaymentWindowPrecedence(t *testing.T) {
	// date wins over month+year
	start, end, err := PaymentWindow("2026-03-15", "6", "2025")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local), end)

	// month alone selects no window
	_, _, err = PaymentWindow("", "6", "")
	assert.ErrorIs(t, err, ErrNoWindow)
}

func TestPaymentWindowErrors(t *testing.T) {
	_, _, err := PaymentWindow("", "", "")
	assert.ErrorIs(t, err, ErrNoWindow)

	_, _, err = PaymentWindow("not-a-date", "", "")
	assert.Error(t, err)

	_, _, err = PaymentWindow("", "13", "2026")
	assert.Error(t, err)

	_, _, err = PaymentWindow("", "0", "2026")
	assert.Error(t, err)

	_, _, err = PaymentWindow("", "6", "abc")
	assert.Error(t, err)
}
