package payslip

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/company"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/employee"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/payroll"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/money"
)

// Document is the fully laid-out payslip: every value already formatted,
// ready for rasterization. It is assembled fresh per request and holds no
// references back to its inputs.
type Document struct {
	CompanyName    string
	CompanyAddress []string
	CompanyPhone   string
	CompanyEmail   string

	EmployeeName    string
	EmployeeCode    string
	EmployeeContact string
	EmployeeEmail   string

	PayDate       string
	PayType       string
	Period        string
	PayrollNumber string
	SSSNumber     string
	TINNumber     string
	PaymentMethod string

	Earnings        []DisplayRow
	GrossPay        string
	Deductions      []DisplayRow
	TotalDeductions string
	NetPay          string

	FooterContact string
}

// DocumentInput carries everything the document needs. Company is optional;
// absent company details render as "N/A".
type DocumentInput struct {
	Payslip  Payslip
	Employee employee.Employee
	Company  *company.Company
	Cycle    payroll.Cycle
	// Items is the full item list for the cycle; filtering down to the
	// employee happens here.
	Items   []payroll.Item
	PayType string
}

// BuildDocument assembles the payslip document. The gross, deductions, and
// net figures come straight from the payslip snapshot; itemized rows are
// shown alongside but never re-summed into the totals. When the two
// disagree the mismatch is logged, not corrected.
func BuildDocument(in DocumentInput, logger *slog.Logger) Document {
	applicable := payroll.ItemsForEmployee(in.Items, in.Payslip.EmployeeID)
	earningItems, deductionItems := payroll.Partition(applicable)

	warnOnTotalMismatch(in.Payslip, earningItems, deductionItems, logger)

	doc := Document{
		CompanyName:    money.NotAvailable,
		CompanyAddress: []string{money.NotAvailable},
		CompanyPhone:   money.NotAvailable,
		CompanyEmail:   money.NotAvailable,

		EmployeeName:    money.Fallback(in.Employee.FullName()),
		EmployeeCode:    money.Fallback(in.Employee.Code),
		EmployeeContact: fallbackPtr(in.Employee.ContactNumber),
		EmployeeEmail:   fallbackPtr(in.Employee.Email),

		PayDate:       money.FormatDate(&in.Cycle.PayDate),
		PayType:       money.Fallback(in.PayType),
		Period:        money.FormatPeriod(&in.Cycle.StartDate, &in.Cycle.EndDate),
		PayrollNumber: in.Payslip.ID,
		SSSNumber:     money.NotAvailable,
		TINNumber:     money.NotAvailable,
		PaymentMethod: fallbackPtr(in.Payslip.PaymentMethod),

		GrossPay:        money.FormatCurrency(in.Payslip.GrossPay),
		TotalDeductions: money.FormatCurrency(in.Payslip.TotalDeductions),
		NetPay:          money.FormatCurrency(in.Payslip.NetPay),
	}

	if in.Company != nil {
		doc.CompanyName = money.Fallback(in.Company.Name)
		doc.CompanyAddress = splitAddress(in.Company.Address)
		doc.CompanyPhone = fallbackPtr(in.Company.Phone)
		doc.CompanyEmail = fallbackPtr(in.Company.Email)
	}

	doc.Earnings = append([]DisplayRow{BasicPayRow(in.Payslip.BasicPay)}, EarningsRows(earningItems)...)
	doc.Deductions = DeductionRows(deductionItems)

	doc.FooterContact = fmt.Sprintf("For questions about this payslip, contact %s (%s, %s).",
		doc.EmployeeName, doc.EmployeeContact, doc.EmployeeEmail)

	return doc
}

// warnOnTotalMismatch compares the snapshot totals against the itemized
// sums. The document still shows the snapshot values either way; this only
// surfaces the discrepancy for operators.
func warnOnTotalMismatch(slip Payslip, earnings, deductions []payroll.Item, logger *slog.Logger) {
	if logger == nil {
		return
	}

	derivedGross := slip.BasicPay.Add(payroll.SumAmounts(earnings))
	derivedDeductions := payroll.SumAmounts(deductions)

	if !derivedGross.Equal(slip.GrossPay) || !derivedDeductions.Equal(slip.TotalDeductions) {
		logger.Warn("payslip totals disagree with itemized rows",
			"payslip_id", slip.ID,
			"snapshot_gross", slip.GrossPay.StringFixed(2),
			"derived_gross", derivedGross.StringFixed(2),
			"snapshot_deductions", slip.TotalDeductions.StringFixed(2),
			"derived_deductions", derivedDeductions.StringFixed(2),
		)
	}
}

const rowFormat = "%-28s %8s %12s %14s %10s"

// Lines lays the document out as fixed-width text lines for rasterization.
func (d Document) Lines() []string {
	var lines []string

	lines = append(lines, center(d.CompanyName))
	for _, addr := range d.CompanyAddress {
		lines = append(lines, center(addr))
	}
	lines = append(lines, center(d.CompanyPhone+"  |  "+d.CompanyEmail))
	lines = append(lines, "", center("PAYSLIP"), "")

	lines = append(lines,
		"Employee:   "+d.EmployeeName,
		"ID Number:  "+d.EmployeeCode,
		"Contact:    "+d.EmployeeContact,
		"Email:      "+d.EmployeeEmail,
		"",
		"Pay Date:       "+d.PayDate,
		"Pay Type:       "+d.PayType,
		"Period:         "+d.Period,
		"Payroll No.:    "+d.PayrollNumber,
		"SSS No.:        "+d.SSSNumber,
		"TIN:            "+d.TINNumber,
		"Payment Method: "+d.PaymentMethod,
		"",
	)

	lines = append(lines, "EARNINGS")
	lines = append(lines, fmt.Sprintf(rowFormat, "Description", "Hours", "Rate", "Current", "YTD"))
	for _, row := range d.Earnings {
		lines = append(lines, fmt.Sprintf(rowFormat, row.Description, row.Hours, row.Rate, row.Current, row.YTD))
	}
	lines = append(lines, fmt.Sprintf(rowFormat, "GROSS PAY", "", "", d.GrossPay, ""))
	lines = append(lines, "")

	lines = append(lines, "DEDUCTIONS")
	lines = append(lines, fmt.Sprintf(rowFormat, "Description", "Hours", "Rate", "Current", "YTD"))
	for _, row := range d.Deductions {
		lines = append(lines, fmt.Sprintf(rowFormat, row.Description, row.Hours, row.Rate, row.Current, row.YTD))
	}
	lines = append(lines, fmt.Sprintf(rowFormat, "TOTAL DEDUCTIONS", "", "", d.TotalDeductions, ""))
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf(rowFormat, "NET PAY", "", "", d.NetPay, ""))
	lines = append(lines, "")

	lines = append(lines,
		"This payslip is system generated and does not require a signature.",
		d.FooterContact,
	)

	return lines
}

const documentWidth = 76

func center(s string) string {
	if len(s) >= documentWidth {
		return s
	}
	pad := (documentWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func splitAddress(address *string) []string {
	if address == nil || strings.TrimSpace(*address) == "" {
		return []string{money.NotAvailable}
	}

	raw := strings.Split(strings.ReplaceAll(*address, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return []string{money.NotAvailable}
	}
	return lines
}

func fallbackPtr(s *string) string {
	if s == nil {
		return money.NotAvailable
	}
	return money.Fallback(*s)
}
