package payslip

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/company"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/employee"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/payroll"
)

func strPtr(s string) *string { return &s }

func testDocumentInput() DocumentInput {
	payDate := time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)
	return DocumentInput{
		Payslip: Payslip{
			ID:              "slip-1",
			EmployeeID:      "emp-a",
			CycleID:         "cycle-1",
			Status:          StatusDraft,
			BasicPay:        amount("45000"),
			GrossPay:        amount("50000"),
			TotalDeductions: amount("5000"),
			NetPay:          amount("45000"),
			PaymentMethod:   strPtr("bank_transfer"),
		},
		Employee: employee.Employee{
			ID:            "emp-a",
			Code:          "EMP-001",
			FirstName:     "Juan",
			LastName:      "Dela Cruz",
			ContactNumber: strPtr("0917-555-0101"),
			Email:         strPtr("juan@example.com"),
		},
		Company: &company.Company{
			Name:    "Acme Corp",
			Address: strPtr("123 Ayala Ave\r\nMakati City"),
			Phone:   strPtr("(02) 8123-4567"),
			Email:   strPtr("hr@acme.example.com"),
		},
		Cycle: payroll.Cycle{
			ID:        "cycle-1",
			StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
			PayDate:   payDate,
		},
		Items: []payroll.Item{
			{Scope: payroll.ScopeSpecific, EmployeeID: strPtr("emp-a"), Type: payroll.ItemTypeEarning, Category: "Overtime Pay", Amount: amount("1000")},
			{Scope: payroll.ScopeGlobal, Type: payroll.ItemTypeEarning, Category: "Holiday Pay", Amount: amount("4000")},
			{Scope: payroll.ScopeGlobal, Type: payroll.ItemTypeContribution, Category: "SSS", Amount: amount("500")},
			{Scope: payroll.ScopeGlobal, Type: payroll.ItemTypeDeduction, Category: "Withholding Tax", Amount: amount("4500")},
			{Scope: payroll.ScopeSpecific, EmployeeID: strPtr("emp-b"), Type: payroll.ItemTypeEarning, Category: "Commission", Amount: amount("9999")},
		},
		PayType: "Monthly",
	}
}

func TestBuildDocument(t *testing.T) {
	doc := BuildDocument(testDocumentInput(), nil)

	assert.Equal(t, "Acme Corp", doc.CompanyName)
	assert.Equal(t, []string{"123 Ayala Ave", "Makati City"}, doc.CompanyAddress)
	assert.Equal(t, "Juan Dela Cruz", doc.EmployeeName)
	assert.Equal(t, "slip-1", doc.PayrollNumber)
	assert.Equal(t, "N/A", doc.SSSNumber)
	assert.Equal(t, "N/A", doc.TINNumber)

	// Basic Pay leads the earnings table, followed by the employee's own
	// items; the other employee's commission never appears.
	assert.Len(t, doc.Earnings, 3)
	assert.Equal(t, "Basic Pay", doc.Earnings[0].Description)
	assert.Equal(t, "Overtime Pay", doc.Earnings[1].Description)
	assert.Equal(t, "Holiday Pay", doc.Earnings[2].Description)

	assert.Len(t, doc.Deductions, 2)
	assert.Equal(t, "SSS", doc.Deductions[0].Description)
	assert.Equal(t, "₱500.00", doc.Deductions[0].Current)
	assert.Equal(t, "Withholding Tax", doc.Deductions[1].Description)

	// Totals come from the payslip snapshot, not from re-summing rows.
	assert.Equal(t, "₱50,000.00", doc.GrossPay)
	assert.Equal(t, "₱5,000.00", doc.TotalDeductions)
	assert.Equal(t, "₱45,000.00", doc.NetPay)
}

func TestBuildDocumentTrustsSnapshotOverItems(t *testing.T) {
	in := testDocumentInput()
	// Snapshot disagrees with the itemized rows.
	in.Payslip.GrossPay = amount("60000")

	doc := BuildDocument(in, nil)

	assert.Equal(t, "₱60,000.00", doc.GrossPay)
}

func TestBuildDocumentWithoutCompany(t *testing.T) {
	in := testDocumentInput()
	in.Company = nil

	doc := BuildDocument(in, nil)

	assert.Equal(t, "N/A", doc.CompanyName)
	assert.Equal(t, []string{"N/A"}, doc.CompanyAddress)
	assert.Equal(t, "N/A", doc.CompanyPhone)
}

func TestDocumentLines(t *testing.T) {
	doc := BuildDocument(testDocumentInput(), nil)
	lines := doc.Lines()
	text := strings.Join(lines, "\n")

	assert.Contains(t, text, "PAYSLIP")
	assert.Contains(t, text, "Acme Corp")
	assert.Contains(t, text, "Basic Pay")
	assert.Contains(t, text, "GROSS PAY")
	assert.Contains(t, text, "TOTAL DEDUCTIONS")
	assert.Contains(t, text, "NET PAY")
	assert.Contains(t, text, "₱45,000.00")
}

func TestPDFFilename(t *testing.T) {
	assert.Equal(t, "EMP-001_DelaCruz_Juan.pdf", PDFFilename("EMP-001", "Dela Cruz", "Juan"))
	assert.Equal(t, "E1_Doe_Jane.pdf", PDFFilename(" E1 ", "Doe", "Jane"))
}
