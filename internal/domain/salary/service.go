package salary

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrpay-io/hrpay-backend-go/internal/pkg/validator"
)

type SalaryService interface {
	ListByEmployee(ctx context.Context, employeeID string) ([]SalaryConfigResponse, error)
	GetActiveByEmployee(ctx context.Context, employeeID string, at time.Time) (SalaryConfigResponse, error)
	Create(ctx context.Context, req CreateSalaryConfigRequest) (SalaryConfigResponse, error)
	Delete(ctx context.Context, id string) error
}

type salaryServiceImpl struct {
	repo SalaryConfigRepository
}

func NewSalaryService(repo SalaryConfigRepository) SalaryService {
	return &salaryServiceImpl{repo: repo}
}

func (s *salaryServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]SalaryConfigResponse, error) {
	configs, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]SalaryConfigResponse, 0, len(configs))
	for _, c := range configs {
		result = append(result, toResponse(c))
	}
	return result, nil
}

func (s *salaryServiceImpl) GetActiveByEmployee(ctx context.Context, employeeID string, at time.Time) (SalaryConfigResponse, error) {
	if at.IsZero() {
		at = time.Now()
	}

	config, err := s.repo.GetActiveByEmployee(ctx, employeeID, at)
	if err != nil {
		return SalaryConfigResponse{}, err
	}
	return toResponse(config), nil
}

func (s *salaryServiceImpl) Create(ctx context.Context, req CreateSalaryConfigRequest) (SalaryConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return SalaryConfigResponse{}, err
	}

	amount, _ := decimal.NewFromString(req.BasicSalary)
	effective, _ := validator.IsValidDate(req.EffectiveDate)

	created, err := s.repo.Create(ctx, SalaryConfig{
		EmployeeID:    req.EmployeeID,
		BasicSalary:   amount,
		PayType:       PayType(req.PayType),
		PaymentMethod: PaymentMethod(req.PaymentMethod),
		BankName:      req.BankName,
		BankAccount:   req.BankAccount,
		EffectiveDate: effective,
	})
	if err != nil {
		return SalaryConfigResponse{}, err
	}
	return toResponse(created), nil
}

func (s *salaryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
