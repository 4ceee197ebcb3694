package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/hrpay-io/hrpay-backend-go/internal/domain/company"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/employee"
	"github.com/hrpay-io/hrpay-backend-go/internal/domain/salary"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/email"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/money"
	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/validator"
)

// GeneratedPayslip is the per-employee snapshot written when a cycle is
// processed. Totals are computed here so the stored payslip stays stable
// even if cycle items change afterwards.
type GeneratedPayslip struct {
	CycleID         string
	EmployeeID      string
	BasicPay        decimal.Decimal
	GrossPay        decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	PaymentMethod   *string
}

// PayslipWriter persists generated payslips. Replacing is draft-only:
// an issued payslip for the same employee and cycle is left untouched.
type PayslipWriter interface {
	ReplaceDraft(ctx context.Context, slip GeneratedPayslip) error
}

type PayrollService interface {
	ListCycles(ctx context.Context) ([]CycleResponse, error)
	GetCycle(ctx context.Context, id string) (CycleResponse, error)
	CreateCycle(ctx context.Context, req CreateCycleRequest) (CycleResponse, error)
	DeleteCycle(ctx context.Context, id string) error

	ListItems(ctx context.Context, cycleID string) ([]ItemResponse, error)
	CreateItem(ctx context.Context, req CreateItemRequest) (ItemResponse, error)
	DeleteItem(ctx context.Context, id string) error

	ProcessCycle(ctx context.Context, cycleID string) (ProcessCycleResponse, error)
}

type payrollServiceImpl struct {
	cycleRepo    CycleRepository
	itemRepo     ItemRepository
	employeeRepo employee.EmployeeRepository
	salaryRepo   salary.SalaryConfigRepository
	companyRepo  company.CompanyRepository
	payslips     PayslipWriter
	emails       email.EmailService
	logger       *slog.Logger
}

func NewPayrollService(
	cycleRepo CycleRepository,
	itemRepo ItemRepository,
	employeeRepo employee.EmployeeRepository,
	salaryRepo salary.SalaryConfigRepository,
	companyRepo company.CompanyRepository,
	payslips PayslipWriter,
	emails email.EmailService,
	logger *slog.Logger,
) PayrollService {
	return &payrollServiceImpl{
		cycleRepo:    cycleRepo,
		itemRepo:     itemRepo,
		employeeRepo: employeeRepo,
		salaryRepo:   salaryRepo,
		companyRepo:  companyRepo,
		payslips:     payslips,
		emails:       emails,
		logger:       logger,
	}
}

func (s *payrollServiceImpl) ListCycles(ctx context.Context) ([]CycleResponse, error) {
	cycles, err := s.cycleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]CycleResponse, 0, len(cycles))
	for _, c := range cycles {
		result = append(result, toCycleResponse(c))
	}
	return result, nil
}

func (s *payrollServiceImpl) GetCycle(ctx context.Context, id string) (CycleResponse, error) {
	c, err := s.cycleRepo.GetByID(ctx, id)
	if err != nil {
		return CycleResponse{}, err
	}
	return toCycleResponse(c), nil
}

func (s *payrollServiceImpl) CreateCycle(ctx context.Context, req CreateCycleRequest) (CycleResponse, error) {
	if err := req.Validate(); err != nil {
		return CycleResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	payDate, _ := validator.IsValidDate(req.PayDate)

	overlapping, err := s.cycleRepo.FindOverlapping(ctx, start, end)
	if err != nil {
		return CycleResponse{}, err
	}
	if len(overlapping) > 0 {
		return CycleResponse{}, ErrCycleOverlap
	}

	created, err := s.cycleRepo.Create(ctx, Cycle{
		StartDate: start,
		EndDate:   end,
		PayDate:   payDate,
		Status:    CycleStatusOpen,
	})
	if err != nil {
		return CycleResponse{}, err
	}
	return toCycleResponse(created), nil
}

func (s *payrollServiceImpl) DeleteCycle(ctx context.Context, id string) error {
	c, err := s.cycleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.Status == CycleStatusProcessed {
		return ErrCycleAlreadyProcessed
	}
	return s.cycleRepo.Delete(ctx, id)
}

func (s *payrollServiceImpl) ListItems(ctx context.Context, cycleID string) ([]ItemResponse, error) {
	if _, err := s.cycleRepo.GetByID(ctx, cycleID); err != nil {
		return nil, err
	}

	items, err := s.itemRepo.ListByCycle(ctx, cycleID)
	if err != nil {
		return nil, err
	}

	result := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		result = append(result, toItemResponse(i))
	}
	return result, nil
}

func (s *payrollServiceImpl) CreateItem(ctx context.Context, req CreateItemRequest) (ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return ItemResponse{}, err
	}

	cycle, err := s.cycleRepo.GetByID(ctx, req.CycleID)
	if err != nil {
		return ItemResponse{}, err
	}
	if cycle.Status == CycleStatusProcessed {
		return ItemResponse{}, ErrCycleAlreadyProcessed
	}

	if ItemScope(req.Scope) == ScopeSpecific {
		if _, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID); err != nil {
			return ItemResponse{}, err
		}
	}

	amount, _ := decimal.NewFromString(req.Amount)
	item := Item{
		CycleID:    req.CycleID,
		Scope:      ItemScope(req.Scope),
		EmployeeID: req.EmployeeID,
		Type:       ItemType(req.Type),
		Category:   req.Category,
		Amount:     amount,
	}
	if req.StartDate != nil {
		if d, ok := validator.IsValidDate(*req.StartDate); ok {
			item.StartDate = &d
		}
	}
	if req.EndDate != nil {
		if d, ok := validator.IsValidDate(*req.EndDate); ok {
			item.EndDate = &d
		}
	}
	created, err := s.itemRepo.Create(ctx, item)
	if err != nil {
		return ItemResponse{}, err
	}
	return toItemResponse(created), nil
}

func (s *payrollServiceImpl) DeleteItem(ctx context.Context, id string) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	cycle, err := s.cycleRepo.GetByID(ctx, item.CycleID)
	if err != nil {
		return err
	}
	if cycle.Status == CycleStatusProcessed {
		return ErrCycleAlreadyProcessed
	}

	return s.itemRepo.Delete(ctx, id)
}

// ProcessCycle generates one payslip per active employee with an active
// salary config. Existing drafts for the cycle are replaced; issued
// payslips are never overwritten, so reprocessing is safe.
func (s *payrollServiceImpl) ProcessCycle(ctx context.Context, cycleID string) (ProcessCycleResponse, error) {
	cycle, err := s.cycleRepo.GetByID(ctx, cycleID)
	if err != nil {
		return ProcessCycleResponse{}, err
	}

	items, err := s.itemRepo.ListByCycle(ctx, cycleID)
	if err != nil {
		return ProcessCycleResponse{}, err
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return ProcessCycleResponse{}, err
	}

	// The company name only feeds the notification email, so a failed
	// fetch is logged rather than aborting the whole run.
	companyName := ""
	if companies, err := s.companyRepo.List(ctx); err != nil {
		s.logger.Warn("failed to load company profile for notifications",
			"cycle_id", cycleID,
			"error", err,
		)
	} else if len(companies) > 0 {
		companyName = companies[0].Name
	}
	periodLabel := money.FormatPeriod(&cycle.StartDate, &cycle.EndDate)

	generated, skipped := 0, 0
	for _, emp := range employees {
		config, err := s.salaryRepo.GetActiveByEmployee(ctx, emp.ID, cycle.EndDate)
		if err != nil {
			if errors.Is(err, salary.ErrSalaryConfigNotFound) || errors.Is(err, salary.ErrNoActiveSalaryConfig) {
				s.logger.Warn("skipping employee without active salary config",
					"employee_id", emp.ID,
					"cycle_id", cycleID,
				)
				skipped++
				continue
			}
			return ProcessCycleResponse{}, err
		}

		slip := computePayslip(cycle.ID, emp.ID, config, items)
		if err := s.payslips.ReplaceDraft(ctx, slip); err != nil {
			return ProcessCycleResponse{}, fmt.Errorf("replace draft payslip for employee %s: %w", emp.ID, err)
		}
		generated++

		s.notifyEmployee(emp, companyName, periodLabel, slip.NetPay)
	}

	if generated == 0 {
		return ProcessCycleResponse{}, ErrNoEmployeesToProcess
	}

	if err := s.cycleRepo.UpdateStatus(ctx, cycleID, CycleStatusProcessed); err != nil {
		return ProcessCycleResponse{}, err
	}

	s.logger.Info("payroll cycle processed",
		"cycle_id", cycleID,
		"generated", generated,
		"skipped", skipped,
	)

	return ProcessCycleResponse{
		CycleID:   cycleID,
		Generated: generated,
		Skipped:   skipped,
	}, nil
}

func computePayslip(cycleID, employeeID string, config salary.SalaryConfig, items []Item) GeneratedPayslip {
	basic := config.BasicSalary
	if config.PayType == salary.PayTypeSemiMonthly {
		basic = basic.Div(decimal.NewFromInt(2))
	}

	applicable := ItemsForEmployee(items, employeeID)
	earnings, deductions := Partition(applicable)

	gross := basic.Add(SumAmounts(earnings))
	totalDeductions := SumAmounts(deductions)

	slip := GeneratedPayslip{
		CycleID:         cycleID,
		EmployeeID:      employeeID,
		BasicPay:        basic,
		GrossPay:        gross,
		TotalDeductions: totalDeductions,
		NetPay:          gross.Sub(totalDeductions),
	}
	if config.PaymentMethod != "" {
		method := string(config.PaymentMethod)
		slip.PaymentMethod = &method
	}
	return slip
}

func (s *payrollServiceImpl) notifyEmployee(emp employee.Employee, companyName, periodLabel string, netPay decimal.Decimal) {
	if emp.Email == nil || *emp.Email == "" {
		return
	}
	if err := s.emails.SendPayslipIssued(*emp.Email, emp.FullName(), companyName, periodLabel, money.FormatCurrency(netPay)); err != nil {
		s.logger.Warn("failed to send payslip notification",
			"employee_id", emp.ID,
			"error", err,
		)
	}
}
