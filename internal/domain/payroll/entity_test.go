package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func amount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestItemsForEmployee(t *testing.T) {
	items := []Item{
		{ID: "1", Scope: ScopeGlobal, Type: ItemTypeEarning, Category: "Holiday Pay", Amount: amount("500")},
		{ID: "2", Scope: ScopeSpecific, EmployeeID: strPtr("emp-a"), Type: ItemTypeEarning, Category: "Overtime Pay", Amount: amount("1000")},
		{ID: "3", Scope: ScopeSpecific, EmployeeID: strPtr("emp-b"), Type: ItemTypeDeduction, Category: "Loan", Amount: amount("200")},
		{ID: "4", Scope: ScopeGlobal, Type: ItemTypeContribution, Category: "SSS", Amount: amount("300")},
	}

	got := ItemsForEmployee(items, "emp-a")

	assert.Len(t, got, 3)
	for _, item := range got {
		if item.Scope == ScopeSpecific {
			assert.Equal(t, "emp-a", *item.EmployeeID)
		}
	}
}

func TestItemsForEmployeeNoSpecificMatches(t *testing.T) {
	items := []Item{
		{ID: "1", Scope: ScopeSpecific, EmployeeID: strPtr("emp-a"), Type: ItemTypeEarning, Category: "Bonus", Amount: amount("100")},
		{ID: "2", Scope: ScopeSpecific, EmployeeID: strPtr("emp-b"), Type: ItemTypeEarning, Category: "Bonus", Amount: amount("100")},
	}

	got := ItemsForEmployee(items, "emp-c")
	assert.Empty(t, got)
}

func TestPartition(t *testing.T) {
	items := []Item{
		{ID: "1", Type: ItemTypeEarning, Category: "Overtime Pay", Amount: amount("1000")},
		{ID: "2", Type: ItemTypeDeduction, Category: "Tardiness", Amount: amount("150")},
		{ID: "3", Type: ItemTypeContribution, Category: "PhilHealth", Amount: amount("400")},
		{ID: "4", Type: ItemTypeEarning, Category: "Holiday Pay", Amount: amount("500")},
	}

	earnings, deductions := Partition(items)

	assert.Len(t, earnings, 2)
	assert.Len(t, deductions, 2)
	// Contributions reduce take-home pay the same as deductions.
	assert.Equal(t, "PhilHealth", deductions[1].Category)

	// Every item lands on exactly one side.
	assert.Equal(t, len(items), len(earnings)+len(deductions))
}

func TestSumAmounts(t *testing.T) {
	items := []Item{
		{Amount: amount("1000.50")},
		{Amount: amount("499.50")},
	}

	assert.True(t, SumAmounts(items).Equal(amount("1500")))
	assert.True(t, SumAmounts(nil).Equal(decimal.Zero))
}
