package payslip

type PayslipResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	CycleID         string  `json:"payroll_cycle_id"`
	Status          string  `json:"status"`
	BasicPay        string  `json:"basic_pay"`
	GrossPay        string  `json:"gross_pay"`
	TotalDeductions string  `json:"total_deductions"`
	NetPay          string  `json:"net_pay"`
	PaymentMethod   *string `json:"payment_method,omitempty"`
	IssuedDate      *string `json:"issued_date,omitempty"`
}

type DisplayRowResponse struct {
	Description string `json:"description"`
	Hours       string `json:"hours"`
	Rate        string `json:"rate"`
	Current     string `json:"current"`
	YTD         string `json:"ytd"`
}

// DocumentResponse mirrors the laid-out document for clients that render
// the payslip themselves instead of downloading an export.
type DocumentResponse struct {
	CompanyName    string   `json:"company_name"`
	CompanyAddress []string `json:"company_address"`
	CompanyPhone   string   `json:"company_phone"`
	CompanyEmail   string   `json:"company_email"`

	EmployeeName    string `json:"employee_name"`
	EmployeeCode    string `json:"employee_code"`
	EmployeeContact string `json:"employee_contact"`
	EmployeeEmail   string `json:"employee_email"`

	PayDate       string `json:"pay_date"`
	PayType       string `json:"pay_type"`
	Period        string `json:"period"`
	PayrollNumber string `json:"payroll_number"`
	SSSNumber     string `json:"sss_number"`
	TINNumber     string `json:"tin_number"`
	PaymentMethod string `json:"payment_method"`

	Earnings        []DisplayRowResponse `json:"earnings"`
	GrossPay        string               `json:"gross_pay"`
	Deductions      []DisplayRowResponse `json:"deductions"`
	TotalDeductions string               `json:"total_deductions"`
	NetPay          string               `json:"net_pay"`

	FooterContact string `json:"footer_contact"`
}

func toResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:              p.ID,
		EmployeeID:      p.EmployeeID,
		CycleID:         p.CycleID,
		Status:          string(p.Status),
		BasicPay:        p.BasicPay.StringFixed(2),
		GrossPay:        p.GrossPay.StringFixed(2),
		TotalDeductions: p.TotalDeductions.StringFixed(2),
		NetPay:          p.NetPay.StringFixed(2),
		PaymentMethod:   p.PaymentMethod,
	}
	if p.IssuedDate != nil {
		formatted := p.IssuedDate.Format("2006-01-02")
		resp.IssuedDate = &formatted
	}
	return resp
}

func toDocumentResponse(d Document) DocumentResponse {
	return DocumentResponse{
		CompanyName:    d.CompanyName,
		CompanyAddress: d.CompanyAddress,
		CompanyPhone:   d.CompanyPhone,
		CompanyEmail:   d.CompanyEmail,

		EmployeeName:    d.EmployeeName,
		EmployeeCode:    d.EmployeeCode,
		EmployeeContact: d.EmployeeContact,
		EmployeeEmail:   d.EmployeeEmail,

		PayDate:       d.PayDate,
		PayType:       d.PayType,
		Period:        d.Period,
		PayrollNumber: d.PayrollNumber,
		SSSNumber:     d.SSSNumber,
		TINNumber:     d.TINNumber,
		PaymentMethod: d.PaymentMethod,

		Earnings:        toRowResponses(d.Earnings),
		GrossPay:        d.GrossPay,
		Deductions:      toRowResponses(d.Deductions),
		TotalDeductions: d.TotalDeductions,
		NetPay:          d.NetPay,

		FooterContact: d.FooterContact,
	}
}

func toRowResponses(rows []DisplayRow) []DisplayRowResponse {
	result := make([]DisplayRowResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, DisplayRowResponse(row))
	}
	return result
}
