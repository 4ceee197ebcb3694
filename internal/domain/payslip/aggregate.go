package payslip

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/payroll"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/money"
)

// BreakdownHours is the fixed hour figure shown for overtime and holiday
// earnings. It is a placeholder business rule, not derived from attendance.
const BreakdownHours = 5

// BasicPayHours is the fixed hour figure shown on the leading Basic Pay row.
const BasicPayHours = 40

// breakdownCategories lists the earning categories whose rows show an
// hour/rate breakdown instead of dashes.
var breakdownCategories = map[string]bool{
	"Overtime Pay": true,
	"Holiday Pay":  true,
}

// DisplayRow is one line of the earnings or deductions table. Derived fresh
// on every render, never persisted.
type DisplayRow struct {
	Description string
	Hours       string
	Rate        string
	Current     string
	YTD         string
}

// EarningsRows maps earning items to display rows, preserving item order.
// Categories with an hour/rate breakdown show BreakdownHours hours and
// rate = amount / hours; everything else shows dashes. Year-to-date totals
// are not computed, so YTD is always "N/A".
func EarningsRows(items []payroll.Item) []DisplayRow {
	rows := make([]DisplayRow, 0, len(items))
	for _, item := range items {
		row := DisplayRow{
			Description: item.Category,
			Hours:       "-",
			Rate:        "-",
			Current:     money.FormatCurrency(item.Amount),
			YTD:         money.NotAvailable,
		}
		if breakdownCategories[item.Category] {
			row.Hours = strconv.Itoa(BreakdownHours)
			row.Rate = money.FormatCurrency(item.Amount.Div(decimal.NewFromInt(BreakdownHours)))
		}
		rows = append(rows, row)
	}
	return rows
}

// DeductionRows maps deduction and contribution items to display rows,
// preserving item order. Deductions never show an hour/rate breakdown.
func DeductionRows(items []payroll.Item) []DisplayRow {
	rows := make([]DisplayRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, DisplayRow{
			Description: item.Category,
			Hours:       "-",
			Rate:        "-",
			Current:     money.FormatCurrency(item.Amount),
			YTD:         money.NotAvailable,
		})
	}
	return rows
}

// BasicPayRow is the fixed leading row of the earnings table, sourced from
// the payslip's snapshotted basic pay rather than from cycle items.
func BasicPayRow(basicPay decimal.Decimal) DisplayRow {
	return DisplayRow{
		Description: "Basic Pay",
		Hours:       strconv.Itoa(BasicPayHours),
		Rate:        money.FormatCurrency(basicPay.Div(decimal.NewFromInt(BasicPayHours))),
		Current:     money.FormatCurrency(basicPay),
		YTD:         money.NotAvailable,
	}
}
