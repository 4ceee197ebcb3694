package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/salary"
)

func TestComputePayslipMonthly(t *testing.T) {
	config := salary.SalaryConfig{
		BasicSalary:   amount("45000"),
		PayType:       salary.PayTypeMonthly,
		PaymentMethod: salary.PaymentMethodBankTransfer,
	}
	items := []Item{
		{Scope: ScopeGlobal, Type: ItemTypeEarning, Category: "Holiday Pay", Amount: amount("2000")},
		{Scope: ScopeSpecific, EmployeeID: strPtr("emp-a"), Type: ItemTypeEarning, Category: "Overtime Pay", Amount: amount("3000")},
		{Scope: ScopeGlobal, Type: ItemTypeContribution, Category: "SSS", Amount: amount("1350")},
		{Scope: ScopeSpecific, EmployeeID: strPtr("emp-b"), Type: ItemTypeDeduction, Category: "Loan", Amount: amount("500")},
	}

	slip := computePayslip("cycle-1", "emp-a", config, items)

	assert.Equal(t, "cycle-1", slip.CycleID)
	assert.Equal(t, "emp-a", slip.EmployeeID)
	assert.True(t, slip.BasicPay.Equal(amount("45000")), "basic pay %s", slip.BasicPay)
	// 45000 + 2000 + 3000; the other employee's loan is excluded.
	assert.True(t, slip.GrossPay.Equal(amount("50000")), "gross pay %s", slip.GrossPay)
	assert.True(t, slip.TotalDeductions.Equal(amount("1350")), "deductions %s", slip.TotalDeductions)
	assert.True(t, slip.NetPay.Equal(amount("48650")), "net pay %s", slip.NetPay)

	// The payment method is snapshotted so the payslip keeps it even if
	// the salary config changes later.
	if assert.NotNil(t, slip.PaymentMethod) {
		assert.Equal(t, "bank_transfer", *slip.PaymentMethod)
	}
}

func TestComputePayslipWithoutPaymentMethod(t *testing.T) {
	config := salary.SalaryConfig{
		BasicSalary: amount("30000"),
		PayType:     salary.PayTypeMonthly,
	}

	slip := computePayslip("cycle-1", "emp-a", config, nil)

	assert.Nil(t, slip.PaymentMethod)
}

func TestComputePayslipSemiMonthlyHalvesBasic(t *testing.T) {
	config := salary.SalaryConfig{
		BasicSalary: amount("45000"),
		PayType:     salary.PayTypeSemiMonthly,
	}

	slip := computePayslip("cycle-1", "emp-a", config, nil)

	assert.True(t, slip.BasicPay.Equal(amount("22500")))
	assert.True(t, slip.GrossPay.Equal(amount("22500")))
	assert.True(t, slip.TotalDeductions.Equal(amount("0")))
	assert.True(t, slip.NetPay.Equal(amount("22500")))
}

func TestComputePayslipDeductionsExceedGross(t *testing.T) {
	config := salary.SalaryConfig{
		BasicSalary: amount("1000"),
		PayType:     salary.PayTypeMonthly,
	}
	items := []Item{
		{Scope: ScopeGlobal, Type: ItemTypeDeduction, Category: "Loan", Amount: amount("1500")},
	}

	slip := computePayslip("cycle-1", "emp-a", config, items)

	// Net pay goes negative rather than being clamped; the operator should
	// see the real number.
	assert.True(t, slip.NetPay.Equal(amount("-500")), "net pay %s", slip.NetPay)
}
