package payslip

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/payroll"
)

func amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEarningsRowsBreakdown(t *testing.T) {
	items := []payroll.Item{
		{Type: payroll.ItemTypeEarning, Category: "Overtime Pay", Amount: amount("1000")},
		{Type: payroll.ItemTypeEarning, Category: "Holiday Pay", Amount: amount("500")},
		{Type: payroll.ItemTypeEarning, Category: "Performance Bonus", Amount: amount("2500")},
	}

	rows := EarningsRows(items)
	assert.Len(t, rows, 3)

	assert.Equal(t, "Overtime Pay", rows[0].Description)
	assert.Equal(t, "5", rows[0].Hours)
	assert.Equal(t, "₱200.00", rows[0].Rate)
	assert.Equal(t, "₱1,000.00", rows[0].Current)

	assert.Equal(t, "5", rows[1].Hours)
	assert.Equal(t, "₱100.00", rows[1].Rate)

	// Only overtime and holiday categories carry the hour/rate breakdown.
	assert.Equal(t, "-", rows[2].Hours)
	assert.Equal(t, "-", rows[2].Rate)
	assert.Equal(t, "₱2,500.00", rows[2].Current)

	for _, row := range rows {
		assert.Equal(t, "N/A", row.YTD)
	}
}

func TestDeductionRowsNeverShowBreakdown(t *testing.T) {
	items := []payroll.Item{
		{Type: payroll.ItemTypeContribution, Category: "Overtime Pay", Amount: amount("300")},
		{Type: payroll.ItemTypeDeduction, Category: "SSS", Amount: amount("500")},
	}

	rows := DeductionRows(items)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "-", row.Hours)
		assert.Equal(t, "-", row.Rate)
		assert.Equal(t, "N/A", row.YTD)
	}
	assert.Equal(t, "₱500.00", rows[1].Current)
}

func TestBasicPayRow(t *testing.T) {
	row := BasicPayRow(amount("45000"))

	assert.Equal(t, "Basic Pay", row.Description)
	assert.Equal(t, "40", row.Hours)
	assert.Equal(t, "₱1,125.00", row.Rate)
	assert.Equal(t, "₱45,000.00", row.Current)
	assert.Equal(t, "N/A", row.YTD)
}
