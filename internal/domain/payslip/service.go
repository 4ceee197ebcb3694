package payslip

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/company"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/employee"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/payroll"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/salary"
)

type PayslipService interface {
	Get(ctx context.Context, id string) (PayslipResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error)
	GetDocument(ctx context.Context, id string) (DocumentResponse, error)
	Issue(ctx context.Context, id string) error
	ExportPDF(ctx context.Context, id string) (Artifact, error)
	ExportPrint(ctx context.Context, id string, theme Theme) (Artifact, error)
}

type payslipServiceImpl struct {
	payslipRepo  PayslipRepository
	employeeRepo employee.EmployeeRepository
	companyRepo  company.CompanyRepository
	cycleRepo    payroll.CycleRepository
	itemRepo     payroll.ItemRepository
	salaryRepo   salary.SalaryConfigRepository
	logger       *slog.Logger
}

func NewPayslipService(
	payslipRepo PayslipRepository,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	cycleRepo payroll.CycleRepository,
	itemRepo payroll.ItemRepository,
	salaryRepo salary.SalaryConfigRepository,
	logger *slog.Logger,
) PayslipService {
	return &payslipServiceImpl{
		payslipRepo:  payslipRepo,
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		cycleRepo:    cycleRepo,
		itemRepo:     itemRepo,
		salaryRepo:   salaryRepo,
		logger:       logger,
	}
}

func (s *payslipServiceImpl) Get(ctx context.Context, id string) (PayslipResponse, error) {
	p, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return PayslipResponse{}, err
	}
	return toResponse(p), nil
}

func (s *payslipServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error) {
	slips, err := s.payslipRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]PayslipResponse, 0, len(slips))
	for _, p := range slips {
		result = append(result, toResponse(p))
	}
	return result, nil
}

func (s *payslipServiceImpl) GetDocument(ctx context.Context, id string) (DocumentResponse, error) {
	doc, _, err := s.buildDocument(ctx, id)
	if err != nil {
		return DocumentResponse{}, err
	}
	return toDocumentResponse(doc), nil
}

func (s *payslipServiceImpl) Issue(ctx context.Context, id string) error {
	if _, err := s.payslipRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.payslipRepo.Issue(ctx, id)
}

func (s *payslipServiceImpl) ExportPDF(ctx context.Context, id string) (Artifact, error) {
	doc, emp, err := s.buildDocument(ctx, id)
	if err != nil {
		return Artifact{}, err
	}
	return ExportPDF(doc, PDFFilename(emp.Code, emp.LastName, emp.FirstName))
}

func (s *payslipServiceImpl) ExportPrint(ctx context.Context, id string, theme Theme) (Artifact, error) {
	doc, emp, err := s.buildDocument(ctx, id)
	if err != nil {
		return Artifact{}, err
	}

	filename := PDFFilename(emp.Code, emp.LastName, emp.FirstName)
	filename = filename[:len(filename)-len(".pdf")] + ".html"
	return ExportPrint(doc, theme, filename)
}

// buildDocument gathers the payslip, employee, company, cycle, and item
// data and lays out the document. Company details are optional; the first
// company on record is used when present.
func (s *payslipServiceImpl) buildDocument(ctx context.Context, id string) (Document, employee.Employee, error) {
	slip, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return Document{}, employee.Employee{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, slip.EmployeeID)
	if err != nil {
		return Document{}, employee.Employee{}, err
	}

	cycle, err := s.cycleRepo.GetByID(ctx, slip.CycleID)
	if err != nil {
		return Document{}, employee.Employee{}, err
	}

	items, err := s.itemRepo.ListByCycle(ctx, slip.CycleID)
	if err != nil {
		return Document{}, employee.Employee{}, err
	}

	// An empty company list degrades to "N/A" headers, but a failed fetch
	// is a real error and must not render as missing data.
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return Document{}, employee.Employee{}, err
	}
	var comp *company.Company
	if len(companies) > 0 {
		comp = &companies[0]
	}

	payType := ""
	config, err := s.salaryRepo.GetActiveByEmployee(ctx, slip.EmployeeID, cycle.EndDate)
	if err == nil {
		payType = payTypeLabel(config.PayType)
	} else if !errors.Is(err, salary.ErrSalaryConfigNotFound) && !errors.Is(err, salary.ErrNoActiveSalaryConfig) {
		return Document{}, employee.Employee{}, err
	}

	in := DocumentInput{
		Payslip:  slip,
		Employee: emp,
		Company:  comp,
		Cycle:    cycle,
		Items:    items,
		PayType:  payType,
	}
	return BuildDocument(in, s.logger), emp, nil
}

func payTypeLabel(t salary.PayType) string {
	switch t {
	case salary.PayTypeMonthly:
		return "Monthly"
	case salary.PayTypeSemiMonthly:
		return "Semi-monthly"
	}
	return ""
}
